// Package db provides relational storage access for resume data.
package db

import (
	"context"
	"fmt"
	"strings"
)

// Supported database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Store is the read surface used to build resumes, plus the schema and seed
// operations used by the CLI. Every List method returns rows in ascending id order.
type Store interface {
	ListCompanies(ctx context.Context) ([]Company, error)
	ListJobs(ctx context.Context) ([]Job, error)
	ListAccomplishments(ctx context.Context) ([]Accomplishment, error)
	ListTechnicalSkills(ctx context.Context) ([]TechnicalSkill, error)
	ListProjects(ctx context.Context) ([]Project, error)
	ListEducation(ctx context.Context) ([]Education, error)

	Migrate(ctx context.Context) error
	Seed(ctx context.Context, data *SeedData) error
	Ping(ctx context.Context) error
	Close() error
}

// Open connects to the database identified by driver and url
func Open(ctx context.Context, driver, url string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverPostgres, "postgresql", "pgx":
		return Connect(ctx, url)
	case DriverSQLite, "sqlite3":
		return NewSQLite(ctx, url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// DetectDriver guesses the driver from a connection URL.
// postgres:// and postgresql:// URLs map to postgres, everything else to sqlite.
func DetectDriver(url string) string {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// nullIfEmpty returns nil for empty strings so optional columns store NULL
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
