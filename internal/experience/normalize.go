package experience

import (
	"fmt"
	"strings"

	"github.com/croberts/resume-builder/internal/db"
)

// NormalizeSeed applies all normalization steps to seed data
func NormalizeSeed(seed *db.SeedData) error {
	TrimFields(seed)
	DeduplicateSkills(seed)
	DeduplicateAccomplishments(seed)
	return ValidateRequired(seed)
}

// collapseSpace trims s and folds runs of whitespace into single spaces
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TrimFields collapses whitespace in every text field
func TrimFields(seed *db.SeedData) {
	for i := range seed.Companies {
		c := &seed.Companies[i]
		c.Name = collapseSpace(c.Name)
		c.Location = collapseSpace(c.Location)
		for j := range c.Jobs {
			job := &c.Jobs[j]
			job.Title = collapseSpace(job.Title)
			job.Summary = collapseSpace(job.Summary)
			job.Dates = collapseSpace(job.Dates)
			for k := range job.Accomplishments {
				job.Accomplishments[k] = collapseSpace(job.Accomplishments[k])
			}
		}
	}
	for i := range seed.TechnicalSkills {
		s := &seed.TechnicalSkills[i]
		s.Name = collapseSpace(s.Name)
		s.Category = collapseSpace(s.Category)
	}
	for i := range seed.Projects {
		p := &seed.Projects[i]
		p.Name = collapseSpace(p.Name)
		p.Description = collapseSpace(p.Description)
		p.Link = strings.TrimSpace(p.Link)
	}
	for i := range seed.Education {
		e := &seed.Education[i]
		e.School = collapseSpace(e.School)
		e.Degree = collapseSpace(e.Degree)
		e.Location = collapseSpace(e.Location)
		e.Date = collapseSpace(e.Date)
	}
}

// DeduplicateSkills drops repeated skill names, compared case-insensitively.
// The first occurrence wins.
func DeduplicateSkills(seed *db.SeedData) {
	seen := make(map[string]struct{}, len(seed.TechnicalSkills))
	skills := make([]db.SeedSkill, 0, len(seed.TechnicalSkills))
	for _, s := range seed.TechnicalSkills {
		key := strings.ToLower(s.Name)
		if key == "" {
			continue // Skip empty skills
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		skills = append(skills, s)
	}
	seed.TechnicalSkills = skills
}

// DeduplicateAccomplishments drops blank and repeated accomplishments within each job
func DeduplicateAccomplishments(seed *db.SeedData) {
	for i := range seed.Companies {
		for j := range seed.Companies[i].Jobs {
			job := &seed.Companies[i].Jobs[j]
			seen := make(map[string]struct{}, len(job.Accomplishments))
			kept := make([]string, 0, len(job.Accomplishments))
			for _, a := range job.Accomplishments {
				if a == "" {
					continue
				}
				if _, exists := seen[a]; exists {
					continue
				}
				seen[a] = struct{}{}
				kept = append(kept, a)
			}
			job.Accomplishments = kept
		}
	}
}

// ValidateRequired checks that required names survived trimming
func ValidateRequired(seed *db.SeedData) error {
	for i, c := range seed.Companies {
		if c.Name == "" {
			return &NormalizationError{Section: "companies", Index: i, Message: "blank name"}
		}
		for j, job := range c.Jobs {
			if job.Title == "" {
				return &NormalizationError{
					Section: "jobs",
					Index:   j,
					Message: fmt.Sprintf("blank title at company %q", c.Name),
				}
			}
		}
	}
	for i, p := range seed.Projects {
		if p.Name == "" {
			return &NormalizationError{Section: "projects", Index: i, Message: "blank name"}
		}
	}
	for i, e := range seed.Education {
		if e.School == "" || e.Degree == "" {
			return &NormalizationError{Section: "education", Index: i, Message: "school and degree are required"}
		}
	}
	return nil
}
