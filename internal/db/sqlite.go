package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // sqlite driver
)

// SQLite implements Store on a local SQLite file
type SQLite struct {
	db *sqlx.DB
}

// NewSQLite opens the SQLite database at path. The path may carry a sqlite:// prefix.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	dsn := sqliteDSN(path)
	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// enable WAL mode
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			return nil, fmt.Errorf("failed to set WAL mode: %w (also failed to close db: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	return &SQLite{db: db}, nil
}

func sqliteDSN(path string) string {
	dsn := strings.TrimPrefix(path, "sqlite://")
	dsn = strings.TrimPrefix(dsn, "sqlite3://")
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)"
}

// Close closes the database
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable
func (s *SQLite) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Migrate creates all tables that do not exist yet
func (s *SQLite) Migrate(ctx context.Context) error {
	stmts, err := schemaStatements(DriverSQLite)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// ListCompanies returns all companies
func (s *SQLite) ListCompanies(ctx context.Context) ([]Company, error) {
	companies := []Company{}
	err := s.db.SelectContext(ctx, &companies,
		`SELECT id, name, COALESCE(location, '') AS location FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

// ListJobs returns all jobs joined with their company
func (s *SQLite) ListJobs(ctx context.Context) ([]Job, error) {
	jobs := []Job{}
	err := s.db.SelectContext(ctx, &jobs,
		`SELECT j.id, j.title, j.company_id,
		        COALESCE(j.summary, '') AS summary, COALESCE(j.dates, '') AS dates,
		        c.name AS company_name, COALESCE(c.location, '') AS company_location
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 ORDER BY j.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// ListAccomplishments returns all accomplishments
func (s *SQLite) ListAccomplishments(ctx context.Context) ([]Accomplishment, error) {
	items := []Accomplishment{}
	err := s.db.SelectContext(ctx, &items,
		`SELECT id, job_id, content FROM accomplishments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accomplishments: %w", err)
	}
	return items, nil
}

// ListTechnicalSkills returns all technical skills
func (s *SQLite) ListTechnicalSkills(ctx context.Context) ([]TechnicalSkill, error) {
	skills := []TechnicalSkill{}
	err := s.db.SelectContext(ctx, &skills,
		`SELECT id, name, COALESCE(category, '') AS category FROM technical_skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list technical skills: %w", err)
	}
	return skills, nil
}

// ListProjects returns all projects
func (s *SQLite) ListProjects(ctx context.Context) ([]Project, error) {
	projects := []Project{}
	err := s.db.SelectContext(ctx, &projects,
		`SELECT id, name, COALESCE(description, '') AS description, COALESCE(link, '') AS link
		 FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// ListEducation returns all education entries
func (s *SQLite) ListEducation(ctx context.Context) ([]Education, error) {
	entries := []Education{}
	err := s.db.SelectContext(ctx, &entries,
		`SELECT id, school, degree, COALESCE(location, '') AS location, COALESCE(date, '') AS date
		 FROM education ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	return entries, nil
}

// Seed replaces all resume content with data in a single transaction
func (s *SQLite) Seed(ctx context.Context, data *SeedData) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"accomplishments", "jobs", "companies", "technical_skills", "projects", "education"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	// restart ids at 1
	if _, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence"); err != nil {
		return fmt.Errorf("failed to reset sequences: %w", err)
	}

	for _, c := range data.Companies {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO companies (name, location) VALUES (?, ?)`,
			c.Name, nullIfEmpty(c.Location))
		if err != nil {
			return fmt.Errorf("failed to insert company %q: %w", c.Name, err)
		}
		companyID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read company id: %w", err)
		}

		for _, j := range c.Jobs {
			if err := insertSQLiteJob(ctx, tx, companyID, j); err != nil {
				return err
			}
		}
	}

	for _, sk := range data.TechnicalSkills {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO technical_skills (name, category) VALUES (?, ?)`,
			sk.Name, nullIfEmpty(sk.Category)); err != nil {
			return fmt.Errorf("failed to insert technical skill %q: %w", sk.Name, err)
		}
	}

	for _, pr := range data.Projects {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO projects (name, description, link) VALUES (?, ?, ?)`,
			pr.Name, nullIfEmpty(pr.Description), nullIfEmpty(pr.Link)); err != nil {
			return fmt.Errorf("failed to insert project %q: %w", pr.Name, err)
		}
	}

	for _, e := range data.Education {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO education (school, degree, location, date) VALUES (?, ?, ?, ?)`,
			e.School, e.Degree, nullIfEmpty(e.Location), nullIfEmpty(e.Date)); err != nil {
			return fmt.Errorf("failed to insert education %q: %w", e.School, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

func insertSQLiteJob(ctx context.Context, tx *sqlx.Tx, companyID int64, j SeedJob) error {
	res, err := tx.ExecContext(ctx,
		`INSERT INTO jobs (title, company_id, summary, dates) VALUES (?, ?, ?, ?)`,
		j.Title, companyID, nullIfEmpty(j.Summary), nullIfEmpty(j.Dates))
	if err != nil {
		return fmt.Errorf("failed to insert job %q: %w", j.Title, err)
	}
	jobID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read job id: %w", err)
	}

	for _, content := range j.Accomplishments {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO accomplishments (job_id, content) VALUES (?, ?)`,
			jobID, content); err != nil {
			return fmt.Errorf("failed to insert accomplishment: %w", err)
		}
	}
	return nil
}
