package pipeline

import (
	"strings"
)

// JobDescription is the text matched against stored accomplishments.
// Key is empty for free text supplied by the caller.
type JobDescription struct {
	Key   string `json:"key,omitempty"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// ResolveJobDescription picks the job description for a request.
// Non-blank text wins, then a configured key, then the configured default.
func (p *Pipeline) ResolveJobDescription(key, text string) (JobDescription, error) {
	if strings.TrimSpace(text) != "" {
		return JobDescription{Text: text}, nil
	}
	if key == "" {
		key = p.cfg.DefaultJobDescription
	}
	jd, ok := p.cfg.JobDescriptions[key]
	if !ok {
		return JobDescription{}, &UnknownJobDescriptionError{Key: key}
	}
	return JobDescription{Key: key, Title: jd.Title, Text: jd.Text}, nil
}

// ResolveForRoute resolves a job description, defaulting to the key configured for route
func (p *Pipeline) ResolveForRoute(route, key, text string) (JobDescription, error) {
	if key == "" && strings.TrimSpace(text) == "" {
		key = p.cfg.JobDescriptionKey(route)
	}
	return p.ResolveJobDescription(key, text)
}
