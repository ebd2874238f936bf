// Package types provides type definitions for structured data used throughout the resume builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// MatchResult is the outcome of matching stored accomplishments against one job description
type MatchResult struct {
	JobDescription string   `json:"job_description"`
	Keywords       []string `json:"keywords"`
	MatchedBullets []string `json:"matched_bullets"`

	// Matches carries per-bullet context for exports; not part of the /match payload
	Matches []Match `json:"-"`
}

// Match is a matched accomplishment together with its job context
type Match struct {
	Company        string
	JobTitle       string
	Accomplishment string
	Keywords       []string
}
