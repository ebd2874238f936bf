// Package server provides the HTTP API and pages of the resume builder.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v8"
	"github.com/didip/tollbooth/v8/limiter"
	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/croberts/resume-builder/internal/config"
	"github.com/croberts/resume-builder/internal/pipeline"
	"github.com/croberts/resume-builder/internal/rendering"
)

// maxRequestSize caps request bodies, POST /resume carries a pasted job description
const maxRequestSize = 64 * 1024

// Server represents the HTTP server
type Server struct {
	pipeline *pipeline.Pipeline
	cfg      *config.Config
	html     *rendering.HTMLRenderer
	version  string
}

// New creates a new server instance serving resumes built by p
func New(p *pipeline.Pipeline, version string) (*Server, error) {
	html, err := rendering.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	return &Server{
		pipeline: p,
		cfg:      p.Config(),
		html:     html,
		version:  version,
	}, nil
}

// Run listens on address until ctx is canceled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, address string) error {
	httpServer := &http.Server{
		Addr:              address,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] failed to shutdown server: %v", err)
		}
	}()

	log.Printf("[INFO] starting server on %s", address)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	log.Printf("[INFO] server stopped")
	return nil
}

// routes returns the http.Handler with all routes configured
func (s *Server) routes() http.Handler {
	router := routegroup.New(http.NewServeMux())

	router.Use(
		rest.RealIP,
		rest.Recoverer(log.Default()),
		rest.AppInfo("resume-builder", "croberts", s.version),
		rest.Ping,
		requestID,
		rest.SizeLimit(maxRequestSize),
		logger.New(logger.Log(log.Default()), logger.Prefix("[DEBUG]")).Handler,
		s.withCORS,
	)
	if s.cfg.Server.RateLimit > 0 {
		router.Use(tollbooth.HTTPMiddleware(s.newLimiter()))
	}

	router.HandleFunc("GET /{$}", s.handleIndex)
	router.HandleFunc("GET /health", s.handleHealth)
	router.HandleFunc("GET /experiences", s.handleExperiences)
	router.HandleFunc("GET /match", s.handleMatch)
	router.HandleFunc("GET /resume", s.handleResume)
	router.HandleFunc("POST /resume", s.handleResume)

	router.Group().Route(func(downloads *routegroup.Bundle) {
		downloads.Use(rest.NoCache)
		downloads.HandleFunc("GET /match/export", s.handleMatchExport)
		downloads.HandleFunc("GET /resume-docx", s.handleResumeDOCX)
	})

	return router
}

// newLimiter builds the per-client-IP limiter; rest.RealIP has already resolved RemoteAddr
func (s *Server) newLimiter() *limiter.Limiter {
	lmt := tollbooth.NewLimiter(s.cfg.Server.RateLimit, nil)
	lmt.SetIPLookup(limiter.IPLookup{Name: "RemoteAddr"})
	lmt.SetMessageContentType("application/json; charset=utf-8")
	lmt.SetMessage(`{"error":"rate limit exceeded"}`)
	return lmt
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := s.cfg.Server.CORSOrigin
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
