// Package experience loads and normalizes seed files of resume content.
package experience

import "fmt"

// LoadError is returned when a seed file cannot be read, decoded or
// does not match the seed schema
type LoadError struct {
	Path    string
	Format  string // "json" or "yaml", empty when the file was never read
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	prefix := "load error"
	if e.Path != "" {
		prefix = fmt.Sprintf("load error: %s", e.Path)
	}
	if e.Format != "" {
		prefix += " (" + e.Format + ")"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NormalizationError points at the seed entry that is unusable after trimming
type NormalizationError struct {
	Section string // companies, jobs, projects or education
	Index   int
	Message string
}

// Location renders the entry as section[index], e.g. "projects[2]"
func (e *NormalizationError) Location() string {
	return fmt.Sprintf("%s[%d]", e.Section, e.Index)
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("normalization error: %s: %s", e.Location(), e.Message)
}
