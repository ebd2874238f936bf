package server

import (
	"bytes"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/croberts/resume-builder/internal/config"
	"github.com/croberts/resume-builder/internal/pipeline"
	"github.com/croberts/resume-builder/internal/rendering"
)

// Response content types
const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// matchExportFilename is the attachment name of the xlsx match export
const matchExportFilename = "Keyword_Match.xlsx"

// indexRoutes lists the endpoints shown on the landing page
var indexRoutes = []rendering.Route{
	{Method: "GET", Path: "/health", Description: "service health"},
	{Method: "GET", Path: "/experiences", Description: "stored jobs with all accomplishments (JSON)"},
	{Method: "GET", Path: "/match", Description: "keywords and matching accomplishments (JSON)"},
	{Method: "GET", Path: "/match/export", Description: "keyword match as a spreadsheet"},
	{Method: "GET", Path: "/resume", Description: "filtered resume (HTML)"},
	{Method: "GET", Path: "/resume-docx", Description: "filtered resume (Word)"},
}

// handleIndex renders the landing page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := rendering.IndexData{Name: s.cfg.Profile.Name, Routes: indexRoutes}
	for _, key := range s.cfg.JobDescriptionKeys() {
		data.JobDescriptions = append(data.JobDescriptions, rendering.JobDescriptionLink{
			Key:   key,
			Title: s.cfg.JobDescriptions[key].Title,
		})
	}

	var buf bytes.Buffer
	if err := s.html.RenderIndex(&buf, data); err != nil {
		sendError(w, r, err)
		return
	}
	s.writeHTML(w, &buf)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.pipeline.Ping(r.Context()); err != nil {
		rest.SendErrorJSON(w, r, log.Default(), http.StatusServiceUnavailable, err, "database unavailable")
		return
	}
	rest.RenderJSON(w, rest.JSON{"status": "ok"})
}

// handleExperiences returns every job with all of its accomplishments
func (s *Server) handleExperiences(w http.ResponseWriter, r *http.Request) {
	experiences, err := s.pipeline.Experiences(r.Context())
	if err != nil {
		sendError(w, r, err)
		return
	}
	rest.RenderJSON(w, experiences)
}

// handleMatch returns the keywords of the job description and the accomplishments matching them
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	jd, err := s.resolve(r, config.RouteMatch)
	if err != nil {
		sendError(w, r, err)
		return
	}
	result, err := s.pipeline.Match(r.Context(), jd)
	if err != nil {
		sendError(w, r, err)
		return
	}
	rest.RenderJSON(w, result)
}

// handleMatchExport returns the keyword match as an xlsx download
func (s *Server) handleMatchExport(w http.ResponseWriter, r *http.Request) {
	jd, err := s.resolve(r, config.RouteMatch)
	if err != nil {
		sendError(w, r, err)
		return
	}
	result, err := s.pipeline.Match(r.Context(), jd)
	if err != nil {
		sendError(w, r, err)
		return
	}
	data, err := rendering.RenderMatchXLSX(result)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeAttachment(w, contentTypeXLSX, matchExportFilename, data)
}

// handleResume renders the filtered resume as HTML.
// POST accepts a free-text job_description form field.
func (s *Server) handleResume(w http.ResponseWriter, r *http.Request) {
	jd, err := s.resolve(r, config.RouteResume)
	if err != nil {
		sendError(w, r, err)
		return
	}
	resume, err := s.pipeline.Build(r.Context(), jd)
	if err != nil {
		sendError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := s.html.RenderResume(&buf, resume); err != nil {
		sendError(w, r, err)
		return
	}
	s.writeHTML(w, &buf)
}

// handleResumeDOCX returns the filtered resume as a Word download
func (s *Server) handleResumeDOCX(w http.ResponseWriter, r *http.Request) {
	jd, err := s.resolve(r, config.RouteResumeDOCX)
	if err != nil {
		sendError(w, r, err)
		return
	}
	resume, err := s.pipeline.Build(r.Context(), jd)
	if err != nil {
		sendError(w, r, err)
		return
	}
	data, err := rendering.RenderDOCX(resume)
	if err != nil {
		sendError(w, r, err)
		return
	}
	writeAttachment(w, contentTypeDOCX, s.cfg.DownloadFilename, data)
}

// resolve picks the job description from the jd query parameter or, on POST, the job_description form field
func (s *Server) resolve(r *http.Request, route string) (pipeline.JobDescription, error) {
	var text string
	if r.Method == http.MethodPost {
		text = r.PostFormValue("job_description")
	}
	return s.pipeline.ResolveForRoute(route, r.URL.Query().Get("jd"), text)
}

func (s *Server) writeHTML(w http.ResponseWriter, buf *bytes.Buffer) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

func writeAttachment(w http.ResponseWriter, contentType, filename string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[WARN] failed to write attachment %s: %v", filename, err)
	}
}
