package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	store, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))
	return store
}

func TestNewSQLite(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		store, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		require.NoError(t, store.Ping(context.Background()))
		require.NoError(t, store.Close())
	})

	t.Run("invalid path", func(t *testing.T) {
		store, err := NewSQLite(context.Background(), "/invalid/path/that/does/not/exist/test.db")
		assert.Error(t, err)
		assert.Nil(t, store)
	})

	t.Run("open through Open", func(t *testing.T) {
		store, err := Open(context.Background(), "sqlite3", filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		assert.IsType(t, &SQLite{}, store)
		require.NoError(t, store.Close())
	})
}

func TestSQLite_MigrateIsIdempotent(t *testing.T) {
	store := newTestSQLite(t)
	require.NoError(t, store.Migrate(context.Background()))

	var count int
	err := store.db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type='table'
		AND name IN ('companies','jobs','accomplishments','technical_skills','projects','education')`)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestSQLite_EmptyListsAreNotNil(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()

	companies, err := store.ListCompanies(ctx)
	require.NoError(t, err)
	assert.NotNil(t, companies)
	assert.Empty(t, companies)

	accomplishments, err := store.ListAccomplishments(ctx)
	require.NoError(t, err)
	assert.NotNil(t, accomplishments)
	assert.Empty(t, accomplishments)
}

func TestSQLite_SeedAndList(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	companies, err := store.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 2)
	assert.Equal(t, Company{ID: 1, Name: "ERT", Location: "Philadelphia, PA"}, companies[0])
	assert.Equal(t, Company{ID: 2, Name: "Acme"}, companies[1])

	jobs, err := store.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "RPA Developer", jobs[0].Title)
	assert.Equal(t, "ERT", jobs[0].CompanyName)
	assert.Equal(t, "Philadelphia, PA", jobs[0].CompanyLocation)
	assert.Equal(t, "2021 - Present", jobs[0].Dates)
	assert.Equal(t, int64(2), jobs[1].CompanyID)
	assert.Empty(t, jobs[1].Summary)

	accomplishments, err := store.ListAccomplishments(ctx)
	require.NoError(t, err)
	require.Len(t, accomplishments, 3)
	assert.Equal(t, "Built UiPath bots for invoice processing", accomplishments[0].Content)
	assert.Equal(t, jobs[0].ID, accomplishments[1].JobID)
	assert.Equal(t, jobs[1].ID, accomplishments[2].JobID)

	skills, err := store.ListTechnicalSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []TechnicalSkill{
		{ID: 1, Name: "UiPath", Category: "Automation"},
		{ID: 2, Name: "Python"},
	}, skills)

	projects, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "https://github.com/croberts/resume-builder", projects[0].Link)

	education, err := store.ListEducation(ctx)
	require.NoError(t, err)
	require.Len(t, education, 1)
	assert.Equal(t, "Jan 2012", education[0].Date)
}

func TestSQLite_SeedReplacesContent(t *testing.T) {
	store := newTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	second := &SeedData{
		Companies: []SeedCompany{
			{Name: "Solo", Jobs: []SeedJob{{Title: "Engineer", Accomplishments: []string{"Shipped"}}}},
		},
	}
	require.NoError(t, store.Seed(ctx, second))

	companies, err := store.ListCompanies(ctx)
	require.NoError(t, err)
	require.Len(t, companies, 1)
	assert.Equal(t, int64(1), companies[0].ID)
	assert.Equal(t, "Solo", companies[0].Name)

	skills, err := store.ListTechnicalSkills(ctx)
	require.NoError(t, err)
	assert.Empty(t, skills)
}

func TestSQLite_ForeignKeysEnforced(t *testing.T) {
	store := newTestSQLite(t)
	_, err := store.db.Exec(`INSERT INTO jobs (title, company_id) VALUES ('Ghost', 42)`)
	assert.Error(t, err)
}
