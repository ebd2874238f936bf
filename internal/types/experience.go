// Package types provides type definitions for structured data used throughout the resume builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Experience is the JSON shape served by GET /experiences
type Experience struct {
	JobTitle        string   `json:"job_title"`
	Company         string   `json:"company"`
	Summary         string   `json:"summary"`
	Accomplishments []string `json:"accomplishments"`
}
