package server

import (
	"errors"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"

	"github.com/croberts/resume-builder/internal/pipeline"
	"github.com/croberts/resume-builder/internal/rendering"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// Unknown job descriptions are client errors; store and rendering failures are 500s.
func HTTPStatus(err error) int {
	var unknownJD *pipeline.UnknownJobDescriptionError
	if errors.As(err, &unknownJD) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// errorMessage is the client facing text for err; causes stay in the log
func errorMessage(err error) string {
	var unknownJD *pipeline.UnknownJobDescriptionError
	var dataErr *pipeline.DataAccessError
	var renderErr *rendering.RenderError
	var templateErr *rendering.TemplateError

	switch {
	case errors.As(err, &unknownJD):
		return unknownJD.Error()
	case errors.As(err, &dataErr):
		return "failed to read resume data"
	case errors.As(err, &renderErr), errors.As(err, &templateErr):
		return "failed to render document"
	default:
		return "internal error"
	}
}

// sendError writes {"error": msg} with the status mapped from err and logs the cause
func sendError(w http.ResponseWriter, r *http.Request, err error) {
	rest.SendErrorJSON(w, r, log.Default(), HTTPStatus(err), err, errorMessage(err))
}
