// Package types provides type definitions for structured data used throughout the resume builder.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Resume is the fully assembled view model consumed by the HTML and DOCX renderers.
// Sections keep the order in which they were read from the store.
type Resume struct {
	Name           string              `json:"name"`
	TargetRole     string              `json:"target_role,omitempty"`
	Contact        Contact             `json:"contact"`
	Skills         []Skill             `json:"skills"`
	Experience     []ExperienceSection `json:"experience"`
	Projects       []Project           `json:"projects"`
	Education      []Education         `json:"education"`
	JobDescription string              `json:"job_description"`
	Keywords       []string            `json:"keywords"`
}

// Contact holds the contact line shown under the name
type Contact struct {
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Links    []Link `json:"links,omitempty"`
}

// Link is an external hyperlink with its display text
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Skill is a technical skill, optionally grouped under a category label
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// ExperienceSection is a single (job, company) pair with the accomplishments that matched
type ExperienceSection struct {
	Company  string   `json:"company"`
	Location string   `json:"location,omitempty"`
	Title    string   `json:"title"`
	Dates    string   `json:"dates,omitempty"`
	Bullets  []string `json:"bullets"`
}

// Project is a side project entry
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
}

// Education is a single institution entry
type Education struct {
	School   string `json:"school"`
	Degree   string `json:"degree"`
	Location string `json:"location,omitempty"`
	Date     string `json:"date,omitempty"`
}

// HasSkillCategories reports whether any skill carries a category label
func (r *Resume) HasSkillCategories() bool {
	for _, s := range r.Skills {
		if s.Category != "" {
			return true
		}
	}
	return false
}

// SkillGroup is a category label with the skill names filed under it
type SkillGroup struct {
	Category string
	Names    []string
}

// SkillGroups groups skills by category in first-seen order.
// Skills without a category are collected under "Other".
func (r *Resume) SkillGroups() []SkillGroup {
	groups := []SkillGroup{}
	index := make(map[string]int)
	for _, s := range r.Skills {
		category := s.Category
		if category == "" {
			category = "Other"
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, SkillGroup{Category: category})
		}
		groups[i].Names = append(groups[i].Names, s.Name)
	}
	return groups
}
