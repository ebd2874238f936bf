package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres wraps a PostgreSQL connection pool
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

// Close closes the connection pool
func (p *Postgres) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

// Ping verifies the database is reachable
func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Migrate creates all tables that do not exist yet
func (p *Postgres) Migrate(ctx context.Context) error {
	stmts, err := schemaStatements(DriverPostgres)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

// ListCompanies returns all companies
func (p *Postgres) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, COALESCE(location, '') FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []Company{}
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Location); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

// ListJobs returns all jobs joined with their company
func (p *Postgres) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT j.id, j.title, j.company_id, COALESCE(j.summary, ''), COALESCE(j.dates, ''),
		        c.name, COALESCE(c.location, '')
		 FROM jobs j
		 JOIN companies c ON c.id = j.company_id
		 ORDER BY j.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []Job{}
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.CompanyID, &j.Summary, &j.Dates,
			&j.CompanyName, &j.CompanyLocation); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// ListAccomplishments returns all accomplishments
func (p *Postgres) ListAccomplishments(ctx context.Context) ([]Accomplishment, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, job_id, content FROM accomplishments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accomplishments: %w", err)
	}
	defer rows.Close()

	items := []Accomplishment{}
	for rows.Next() {
		var a Accomplishment
		if err := rows.Scan(&a.ID, &a.JobID, &a.Content); err != nil {
			return nil, fmt.Errorf("failed to scan accomplishment: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// ListTechnicalSkills returns all technical skills
func (p *Postgres) ListTechnicalSkills(ctx context.Context) ([]TechnicalSkill, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, COALESCE(category, '') FROM technical_skills ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list technical skills: %w", err)
	}
	defer rows.Close()

	skills := []TechnicalSkill{}
	for rows.Next() {
		var s TechnicalSkill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category); err != nil {
			return nil, fmt.Errorf("failed to scan technical skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ListProjects returns all projects
func (p *Postgres) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, name, COALESCE(description, ''), COALESCE(link, '') FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []Project{}
	for rows.Next() {
		var pr Project
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Description, &pr.Link); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	return projects, rows.Err()
}

// ListEducation returns all education entries
func (p *Postgres) ListEducation(ctx context.Context) ([]Education, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id, school, degree, COALESCE(location, ''), COALESCE(date, '') FROM education ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list education: %w", err)
	}
	defer rows.Close()

	entries := []Education{}
	for rows.Next() {
		var e Education
		if err := rows.Scan(&e.ID, &e.School, &e.Degree, &e.Location, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan education: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Seed replaces all resume content with data in a single transaction
func (p *Postgres) Seed(ctx context.Context, data *SeedData) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`TRUNCATE accomplishments, jobs, companies, technical_skills, projects, education
		 RESTART IDENTITY CASCADE`); err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}

	for _, c := range data.Companies {
		var companyID int64
		if err := tx.QueryRow(ctx,
			`INSERT INTO companies (name, location) VALUES ($1, $2) RETURNING id`,
			c.Name, nullIfEmpty(c.Location),
		).Scan(&companyID); err != nil {
			return fmt.Errorf("failed to insert company %q: %w", c.Name, err)
		}

		for _, j := range c.Jobs {
			if err := insertPostgresJob(ctx, tx, companyID, j); err != nil {
				return err
			}
		}
	}

	for _, s := range data.TechnicalSkills {
		if _, err := tx.Exec(ctx,
			`INSERT INTO technical_skills (name, category) VALUES ($1, $2)`,
			s.Name, nullIfEmpty(s.Category)); err != nil {
			return fmt.Errorf("failed to insert technical skill %q: %w", s.Name, err)
		}
	}

	for _, pr := range data.Projects {
		if _, err := tx.Exec(ctx,
			`INSERT INTO projects (name, description, link) VALUES ($1, $2, $3)`,
			pr.Name, nullIfEmpty(pr.Description), nullIfEmpty(pr.Link)); err != nil {
			return fmt.Errorf("failed to insert project %q: %w", pr.Name, err)
		}
	}

	for _, e := range data.Education {
		if _, err := tx.Exec(ctx,
			`INSERT INTO education (school, degree, location, date) VALUES ($1, $2, $3, $4)`,
			e.School, e.Degree, nullIfEmpty(e.Location), nullIfEmpty(e.Date)); err != nil {
			return fmt.Errorf("failed to insert education %q: %w", e.School, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

func insertPostgresJob(ctx context.Context, tx pgx.Tx, companyID int64, j SeedJob) error {
	var jobID int64
	if err := tx.QueryRow(ctx,
		`INSERT INTO jobs (title, company_id, summary, dates) VALUES ($1, $2, $3, $4) RETURNING id`,
		j.Title, companyID, nullIfEmpty(j.Summary), nullIfEmpty(j.Dates),
	).Scan(&jobID); err != nil {
		return fmt.Errorf("failed to insert job %q: %w", j.Title, err)
	}

	for _, content := range j.Accomplishments {
		if _, err := tx.Exec(ctx,
			`INSERT INTO accomplishments (job_id, content) VALUES ($1, $2)`,
			jobID, content); err != nil {
			return fmt.Errorf("failed to insert accomplishment: %w", err)
		}
	}
	return nil
}
