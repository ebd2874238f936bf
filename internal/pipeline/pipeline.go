// Package pipeline builds resume view models from stored experience and a job description.
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/croberts/resume-builder/internal/config"
	"github.com/croberts/resume-builder/internal/db"
)

// Progress steps reported to a ProgressCallback
const (
	StepLoad     = "load"
	StepMatch    = "match"
	StepAssemble = "assemble"
)

// ProgressEvent represents a progress update during a build
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Pipeline is the application context shared by the HTTP handlers and the CLI.
// It holds the store handle and the loaded configuration; it never owns the store
// lifecycle, the caller opens and closes it.
type Pipeline struct {
	store      db.Store
	cfg        *config.Config
	onProgress ProgressCallback
}

// New creates a Pipeline reading from store. A nil cfg uses config.Defaults().
func New(store db.Store, cfg *config.Config) *Pipeline {
	if cfg == nil {
		cfg = config.Defaults()
	}
	return &Pipeline{store: store, cfg: cfg}
}

// OnProgress registers a callback for progress events; nil disables reporting
func (p *Pipeline) OnProgress(cb ProgressCallback) {
	p.onProgress = cb
}

// Config returns the configuration the pipeline was built with
func (p *Pipeline) Config() *config.Config {
	return p.cfg
}

// Ping checks that the store is reachable
func (p *Pipeline) Ping(ctx context.Context) error {
	if err := p.store.Ping(ctx); err != nil {
		return &DataAccessError{Op: "ping", Cause: err}
	}
	return nil
}

func (p *Pipeline) emit(step, message string, content any) {
	if p.onProgress != nil {
		p.onProgress(ProgressEvent{Step: step, Message: message, Content: content})
	}
}

// snapshot holds the rows of every table needed for a resume. The tables are
// read by independent concurrent queries, not one transaction, so a seed running
// at the same time can leave accomplishments whose job is missing from jobs.
type snapshot struct {
	jobs            []db.Job
	accomplishments []db.Accomplishment
	skills          []db.TechnicalSkill
	projects        []db.Project
	education       []db.Education
}

// loadSnapshot reads the requested tables concurrently. Jobs and accomplishments
// are always loaded; the remaining tables only when full is set.
func (p *Pipeline) loadSnapshot(ctx context.Context, full bool) (*snapshot, error) {
	g, gCtx := errgroup.WithContext(ctx)
	var snap snapshot
	var mu sync.Mutex // Protect snapshot assignments

	load := func(op string, fn func(context.Context) error) {
		g.Go(func() error {
			if err := fn(gCtx); err != nil {
				return &DataAccessError{Op: op, Cause: err}
			}
			return nil
		})
	}

	load("list jobs", func(ctx context.Context) error {
		rows, err := p.store.ListJobs(ctx)
		mu.Lock()
		snap.jobs = rows
		mu.Unlock()
		return err
	})
	load("list accomplishments", func(ctx context.Context) error {
		rows, err := p.store.ListAccomplishments(ctx)
		mu.Lock()
		snap.accomplishments = rows
		mu.Unlock()
		return err
	})
	if full {
		load("list technical skills", func(ctx context.Context) error {
			rows, err := p.store.ListTechnicalSkills(ctx)
			mu.Lock()
			snap.skills = rows
			mu.Unlock()
			return err
		})
		load("list projects", func(ctx context.Context) error {
			rows, err := p.store.ListProjects(ctx)
			mu.Lock()
			snap.projects = rows
			mu.Unlock()
			return err
		})
		load("list education", func(ctx context.Context) error {
			rows, err := p.store.ListEducation(ctx)
			mu.Lock()
			snap.education = rows
			mu.Unlock()
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.emit(StepLoad, fmt.Sprintf("Loaded %d jobs and %d accomplishments",
		len(snap.jobs), len(snap.accomplishments)), nil)
	return &snap, nil
}

// accomplishmentsByJob groups accomplishments under their job id, keeping input order
func accomplishmentsByJob(accomplishments []db.Accomplishment) map[int64][]db.Accomplishment {
	grouped := make(map[int64][]db.Accomplishment)
	for _, a := range accomplishments {
		grouped[a.JobID] = append(grouped[a.JobID], a)
	}
	return grouped
}
