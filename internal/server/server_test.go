package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/croberts/resume-builder/internal/config"
	"github.com/croberts/resume-builder/internal/db"
	"github.com/croberts/resume-builder/internal/pipeline"
	"github.com/croberts/resume-builder/internal/rendering"
)

// brokenStore fails every read
type brokenStore struct {
	db.Store
}

var errBroken = errors.New("database is locked")

func (brokenStore) ListJobs(context.Context) ([]db.Job, error) {
	return nil, errBroken
}

func (brokenStore) ListAccomplishments(context.Context) ([]db.Accomplishment, error) {
	return nil, errBroken
}

func (brokenStore) ListTechnicalSkills(context.Context) ([]db.TechnicalSkill, error) {
	return nil, errBroken
}

func (brokenStore) ListProjects(context.Context) ([]db.Project, error) {
	return nil, errBroken
}

func (brokenStore) ListEducation(context.Context) ([]db.Education, error) {
	return nil, errBroken
}

func (brokenStore) Ping(context.Context) error {
	return errBroken
}

func testSeed() *db.SeedData {
	return &db.SeedData{
		Companies: []db.SeedCompany{
			{
				Name:     "ERT",
				Location: "Philadelphia, PA",
				Jobs: []db.SeedJob{{
					Title:   "RPA Developer",
					Summary: "Automation team lead",
					Dates:   "2021 - Present",
					Accomplishments: []string{
						"Built UiPath bots for invoice processing",
						"Organized team potlucks",
					},
				}},
			},
			{
				Name: "Acme",
				Jobs: []db.SeedJob{{
					Title:           "Analyst",
					Accomplishments: []string{"Reconciled Python reports"},
				}},
			},
		},
		TechnicalSkills: []db.SeedSkill{{Name: "UiPath", Category: "Automation"}, {Name: "Python", Category: "Languages"}},
		Projects:        []db.SeedProject{{Name: "Resume Builder", Link: "https://github.com/croberts/resume-builder"}},
	}
}

// newSQLiteStore opens a migrated store in a temp dir, seeded when seed is non-nil
func newSQLiteStore(t *testing.T, seed *db.SeedData) db.Store {
	t.Helper()
	ctx := context.Background()
	store, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(ctx))
	if seed != nil {
		require.NoError(t, store.Seed(ctx, seed))
	}
	return store
}

func newTestHandler(t *testing.T, store db.Store, mutate func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Defaults()
	cfg.Server.RateLimit = 0
	if mutate != nil {
		mutate(cfg)
	}
	s, err := New(pipeline.New(store, cfg), "test")
	require.NoError(t, err)
	return s.routes()
}

func serve(h http.Handler, method, target string, body *strings.Reader) *httptest.ResponseRecorder {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, http.NoBody)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), nil)

	w := serve(h, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHealth_StoreDown(t *testing.T) {
	h := newTestHandler(t, brokenStore{}, nil)

	w := serve(h, "GET", "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"error":"database unavailable"}`, w.Body.String())
}

func TestPing(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), nil)

	w := serve(h, "GET", "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestIndex(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), nil)

	w := serve(h, "GET", "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeHTML, w.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, len(indexRoutes), doc.Find("#routes li").Length())
	assert.Equal(t, 3, doc.Find("#job-descriptions li").Length())
	href, ok := doc.Find(`#job-descriptions a[href^="/resume-docx"]`).First().Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/resume-docx?jd="+config.JobAutomationDeveloper, href)
}

func TestUnknownRoute(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), nil)

	w := serve(h, "GET", "/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExperiences(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), nil)

	w := serve(h, "GET", "/experiences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.JSONEq(t, `[
		{
			"job_title": "RPA Developer",
			"company": "ERT",
			"summary": "Automation team lead",
			"accomplishments": ["Built UiPath bots for invoice processing", "Organized team potlucks"]
		},
		{
			"job_title": "Analyst",
			"company": "Acme",
			"summary": "",
			"accomplishments": ["Reconciled Python reports"]
		}
	]`, w.Body.String())
}

func TestExperiences_EmptyStore(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), nil)

	w := serve(h, "GET", "/experiences", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMatch_DefaultJobDescription(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), nil)

	w := serve(h, "GET", "/match", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"job_description": "We are seeking an experienced Automation Developer skilled in UiPath and RPA systems.\nThe role involves building bots, optimizing workflows, and automating manual tasks.",
		"keywords": ["automating", "automation", "bots", "building", "developer", "experienced", "involves",
			"manual", "optimizing", "role", "rpa", "seeking", "skilled", "systems", "tasks", "uipath", "workflows"],
		"matched_bullets": ["Built UiPath bots for invoice processing"]
	}`, w.Body.String())
}

func TestMatch_QueryParameterSelectsDescription(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), func(cfg *config.Config) {
		cfg.JobDescriptions["python"] = config.JobDescription{Text: "Python reporting"}
	})

	w := serve(h, "GET", "/match?jd=python", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"job_description": "Python reporting",
		"keywords": ["python", "reporting"],
		"matched_bullets": ["Reconciled Python reports"]
	}`, w.Body.String())
}

func TestMatch_UnknownJobDescription(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), nil)

	for _, target := range []string{"/match?jd=nope", "/match/export?jd=nope", "/resume?jd=nope", "/resume-docx?jd=nope"} {
		t.Run(target, func(t *testing.T) {
			w := serve(h, "GET", target, nil)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"unknown job description \"nope\""}`, w.Body.String())
		})
	}
}

func TestStoreFailures(t *testing.T) {
	h := newTestHandler(t, brokenStore{}, nil)

	for _, target := range []string{"/experiences", "/match", "/match/export", "/resume", "/resume-docx"} {
		t.Run(target, func(t *testing.T) {
			w := serve(h, "GET", target, nil)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"failed to read resume data"}`, w.Body.String())
		})
	}
}

func TestResumeHTML(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), nil)

	w := serve(h, "GET", "/resume?jd="+config.JobRPAUiPath, nil)
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	assert.Equal(t, "Christopher A. Roberts", doc.Find("#name").Text())

	jobs := doc.Find(".job")
	require.Equal(t, 2, jobs.Length())
	bullets := jobs.First().Find("li")
	require.Equal(t, 1, bullets.Length())
	assert.Equal(t, "Built UiPath bots for invoice processing", bullets.Text())
	assert.Equal(t, 0, jobs.Eq(1).Find("li").Length())
}

func TestResumeHTML_PostedJobDescription(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), nil)

	form := url.Values{"job_description": {"Python reconciliation"}}
	w := serve(h, "POST", "/resume", strings.NewReader(form.Encode()))
	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	var bullets []string
	doc.Find(".job li").Each(func(_ int, li *goquery.Selection) {
		bullets = append(bullets, li.Text())
	})
	assert.Equal(t, []string{"Reconciled Python reports"}, bullets)
}

func TestResumeDOCX(t *testing.T) {
	store := newSQLiteStore(t, testSeed())
	h := newTestHandler(t, store, nil)

	w := serve(h, "GET", "/resume-docx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeDOCX, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Christopher_Roberts_Resume.docx"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-cache")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")), "docx must be a zip package")

	// the route defaults to the rpa-uipath description and output is deterministic
	p := pipeline.New(store, config.Defaults())
	jd, err := p.ResolveJobDescription(config.JobRPAUiPath, "")
	require.NoError(t, err)
	resume, err := p.Build(context.Background(), jd)
	require.NoError(t, err)
	expected, err := rendering.RenderDOCX(resume)
	require.NoError(t, err)
	assert.Equal(t, expected, w.Body.Bytes())
}

func TestResumeDOCX_ConfiguredFilename(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), func(cfg *config.Config) {
		cfg.DownloadFilename = "Resume_RPA_Developer.docx"
	})

	w := serve(h, "GET", "/resume-docx", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="Resume_RPA_Developer.docx"`, w.Header().Get("Content-Disposition"))
}

func TestMatchExport(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, testSeed()), nil)

	w := serve(h, "GET", "/match/export?jd="+config.JobRPAUiPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, contentTypeXLSX, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Keyword_Match.xlsx"`, w.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	cell, err := f.GetCellValue(rendering.MatchSheet, "C8")
	require.NoError(t, err)
	assert.Equal(t, "Built UiPath bots for invoice processing", cell)
}

func TestRequestID(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), nil)

	w := serve(h, "GET", "/health", nil)
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	req := httptest.NewRequest("GET", "/health", http.NoBody)
	req.Header.Set(requestIDHeader, "9b2f7c1e-4a8d-4a53-9c2e-8f3f0d6b1a77")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "9b2f7c1e-4a8d-4a53-9c2e-8f3f0d6b1a77", rec.Header().Get(requestIDHeader))
}

func TestCORS(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), nil)

	w := serve(h, "OPTIONS", "/match", nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	h = newTestHandler(t, newSQLiteStore(t, nil), func(cfg *config.Config) { cfg.Server.CORSOrigin = "" })
	w = serve(h, "GET", "/health", nil)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	h := newTestHandler(t, newSQLiteStore(t, nil), func(cfg *config.Config) { cfg.Server.RateLimit = 1 })

	first := serve(h, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, first.Code)

	second := serve(h, "GET", "/health", nil)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "rate limit exceeded")
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&pipeline.UnknownJobDescriptionError{Key: "x"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&pipeline.DataAccessError{Op: "list jobs"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(&rendering.RenderError{Message: "zip"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "failed to read resume data", errorMessage(&pipeline.DataAccessError{Op: "list jobs", Cause: errBroken}))
	assert.Equal(t, "failed to render document", errorMessage(&rendering.TemplateError{Message: "bad"}))
	assert.Equal(t, "internal error", errorMessage(errors.New("boom")))
}
