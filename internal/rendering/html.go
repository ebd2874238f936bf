package rendering

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/croberts/resume-builder/internal/types"
)

//go:embed templates
var templatesFS embed.FS

// Route describes one endpoint listed on the landing page
type Route struct {
	Method      string
	Path        string
	Description string
}

// JobDescriptionLink is a configured job description listed on the landing page
type JobDescriptionLink struct {
	Key   string
	Title string
}

// IndexData is the landing page model
type IndexData struct {
	Name            string
	Routes          []Route
	JobDescriptions []JobDescriptionLink
}

// HTMLRenderer renders resume and landing pages from embedded templates
type HTMLRenderer struct {
	templates map[string]*template.Template
}

// NewHTMLRenderer parses the embedded templates
func NewHTMLRenderer() (*HTMLRenderer, error) {
	funcMap := template.FuncMap{
		"displayURL": displayURL,
		"join":       strings.Join,
	}

	templates := make(map[string]*template.Template)
	for _, name := range []string{"index.html", "resume.html"} {
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templatesFS,
			"templates/"+name, "templates/partials/*.html")
		if err != nil {
			return nil, &TemplateError{Template: name, Message: "failed to parse", Cause: err}
		}
		templates[name] = tmpl
	}

	return &HTMLRenderer{templates: templates}, nil
}

// RenderResume writes the resume page to w
func (h *HTMLRenderer) RenderResume(w io.Writer, resume *types.Resume) error {
	if resume == nil {
		return &RenderError{Format: FormatHTML, Message: "resume is nil"}
	}
	return h.execute(w, "resume.html", resume)
}

// RenderIndex writes the landing page to w
func (h *HTMLRenderer) RenderIndex(w io.Writer, data IndexData) error {
	return h.execute(w, "index.html", data)
}

// execute renders into a buffer first so a failing template never writes a partial page
func (h *HTMLRenderer) execute(w io.Writer, name string, data any) error {
	tmpl, ok := h.templates[name]
	if !ok {
		return &TemplateError{Template: name, Message: "unknown template"}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return &TemplateError{Template: name, Message: "failed to execute", Cause: err}
	}
	if _, err := buf.WriteTo(w); err != nil {
		return &RenderError{Format: FormatHTML, Message: "failed to write " + name, Cause: err}
	}
	return nil
}
