package experience

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/croberts/resume-builder/internal/db"
	"github.com/croberts/resume-builder/internal/schemas"
)

// LoadSeed reads a JSON or YAML seed file, validates it against the seed
// schema and returns the normalized content
func LoadSeed(path string) (*db.SeedData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	format := "json"
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		format = "yaml"
	}
	fail := func(msg string, err error) error {
		return &LoadError{Path: path, Format: format, Message: msg, Cause: err}
	}

	var seed db.SeedData
	if format == "yaml" {
		var doc any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fail("failed to unmarshal YAML", err)
		}
		if err := schemas.ValidateSeedDocument(doc); err != nil {
			return nil, fail("seed does not match schema", err)
		}
		if err := yaml.Unmarshal(content, &seed); err != nil {
			return nil, fail("failed to unmarshal YAML", err)
		}
	} else {
		if err := schemas.ValidateSeedJSON(content); err != nil {
			return nil, fail("seed does not match schema", err)
		}
		if err := json.Unmarshal(content, &seed); err != nil {
			return nil, fail("failed to unmarshal JSON", err)
		}
	}

	if err := NormalizeSeed(&seed); err != nil {
		return nil, err
	}
	return &seed, nil
}
