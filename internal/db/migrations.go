package db

import (
	"embed"
	"fmt"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// schemaStatements returns the schema for driver split into single statements
func schemaStatements(driver string) ([]string, error) {
	data, err := migrationsFS.ReadFile("migrations/" + driver + ".sql")
	if err != nil {
		return nil, fmt.Errorf("failed to read %s schema: %w", driver, err)
	}

	var stmts []string
	for _, part := range strings.Split(string(data), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts, nil
}
