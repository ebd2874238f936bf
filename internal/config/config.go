// Package config provides configuration loading and validation for the resume builder.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the complete service configuration, loaded from a JSON or YAML file
// decoded over Defaults().
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server"`
	Database DatabaseConfig `json:"database" yaml:"database"`
	Log      LogConfig      `json:"log" yaml:"log"`
	Profile  Profile        `json:"profile" yaml:"profile"`

	// JobDescriptions maps a short key (used as ?jd=<key>) to a description
	JobDescriptions       map[string]JobDescription `json:"job_descriptions" yaml:"job_descriptions" validate:"dive"`
	DefaultJobDescription string                    `json:"default_job_description" yaml:"default_job_description" validate:"required"`
	// RouteJobDescriptions overrides the default key per route name ("match", "resume", "resume-docx")
	RouteJobDescriptions map[string]string `json:"route_job_descriptions,omitempty" yaml:"route_job_descriptions,omitempty"`

	DownloadFilename string `json:"download_filename" yaml:"download_filename" validate:"required,endswith=.docx,excludesall=/\\"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port       int     `json:"port" yaml:"port" validate:"min=0,max=65535"`
	RateLimit  float64 `json:"rate_limit" yaml:"rate_limit" validate:"min=0"` // requests per second per client IP, 0 disables
	CORSOrigin string  `json:"cors_origin" yaml:"cors_origin"`
}

// DatabaseConfig selects the store backend
type DatabaseConfig struct {
	Driver string `json:"driver,omitempty" yaml:"driver,omitempty" validate:"omitempty,oneof=postgres postgresql pgx sqlite sqlite3"`
	URL    string `json:"url" yaml:"url" validate:"required"`
}

// LogConfig configures optional rotated file logging
type LogConfig struct {
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSize    int    `json:"max_size,omitempty" yaml:"max_size,omitempty" validate:"min=0"` // megabytes
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty" validate:"min=0"`
	MaxAge     int    `json:"max_age,omitempty" yaml:"max_age,omitempty" validate:"min=0"` // days
}

// Profile holds the biographical constants printed on every resume
type Profile struct {
	Name       string `json:"name" yaml:"name" validate:"required"`
	TargetRole string `json:"target_role,omitempty" yaml:"target_role,omitempty"`
	Location   string `json:"location,omitempty" yaml:"location,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty" validate:"omitempty,email"`
	Phone      string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Links      []Link `json:"links,omitempty" yaml:"links,omitempty" validate:"dive"`
	// Education is used when the education table is empty
	Education []Education `json:"education,omitempty" yaml:"education,omitempty" validate:"dive"`
}

// Link is a labeled profile URL
type Link struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url" validate:"required,url"`
}

// Education is a fallback education entry
type Education struct {
	School   string `json:"school" yaml:"school" validate:"required"`
	Degree   string `json:"degree" yaml:"degree" validate:"required"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
}

// JobDescription is a named job posting text to match against
type JobDescription struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Text  string `json:"text" yaml:"text" validate:"required"`
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := decodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load returns Defaults() when path is empty, otherwise the file decoded over
// the defaults. Keys absent from the file keep their default value, keys present
// win even when zero, so rate_limit: 0 and cors_origin: "" disable those features.
// Map entries are merged by key. Environment overrides are applied and the
// result is validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path != "" {
		if err := decodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}
	return nil
}

// ApplyEnv overrides database and port settings from DATABASE_URL, DATABASE_DRIVER and PORT
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := getenv("DATABASE_DRIVER"); v != "" {
		c.Database.Driver = v
	}
	if v := getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	return nil
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Errorf("config error: %s - %s", ve.Namespace(), ve.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if _, ok := c.JobDescriptions[c.DefaultJobDescription]; !ok {
		return fmt.Errorf("config error: default job description %q is not defined", c.DefaultJobDescription)
	}
	for route, key := range c.RouteJobDescriptions {
		if _, ok := c.JobDescriptions[key]; !ok {
			return fmt.Errorf("config error: job description %q for route %q is not defined", key, route)
		}
	}

	return nil
}

// JobDescriptionKey returns the configured key for route, falling back to the default
func (c *Config) JobDescriptionKey(route string) string {
	if key, ok := c.RouteJobDescriptions[route]; ok && key != "" {
		return key
	}
	return c.DefaultJobDescription
}

// JobDescriptionKeys returns the configured keys in sorted order
func (c *Config) JobDescriptionKeys() []string {
	keys := make([]string, 0, len(c.JobDescriptions))
	for k := range c.JobDescriptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
