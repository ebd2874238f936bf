// Package rendering assembles resumes into DOCX, HTML and XLSX artifacts.
package rendering

import "fmt"

// Output formats reported by RenderError
const (
	FormatDOCX = "docx"
	FormatHTML = "html"
	FormatXLSX = "xlsx"
)

// TemplateError is a failure to parse, find or execute a named HTML template
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template %s: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("template %s: %s", e.Template, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError is a failure producing a document in one output format
type RenderError struct {
	Format  string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("render %s: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
