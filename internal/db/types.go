package db

// Company is an employer
type Company struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Location string `db:"location" json:"location,omitempty"`
}

// Job is a position held at exactly one company.
// CompanyName and CompanyLocation are filled by ListJobs via a join.
type Job struct {
	ID              int64  `db:"id" json:"id"`
	Title           string `db:"title" json:"title"`
	CompanyID       int64  `db:"company_id" json:"company_id"`
	Summary         string `db:"summary" json:"summary,omitempty"`
	Dates           string `db:"dates" json:"dates,omitempty"`
	CompanyName     string `db:"company_name" json:"company_name"`
	CompanyLocation string `db:"company_location" json:"company_location,omitempty"`
}

// Accomplishment is a single free-text bullet tied to one job
type Accomplishment struct {
	ID      int64  `db:"id" json:"id"`
	JobID   int64  `db:"job_id" json:"job_id"`
	Content string `db:"content" json:"content"`
}

// TechnicalSkill is a flat skill entry
type TechnicalSkill struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Category string `db:"category" json:"category,omitempty"`
}

// Project is a side project with an optional external link
type Project struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description,omitempty"`
	Link        string `db:"link" json:"link,omitempty"`
}

// Education is a standalone education entry
type Education struct {
	ID       int64  `db:"id" json:"id"`
	School   string `db:"school" json:"school"`
	Degree   string `db:"degree" json:"degree"`
	Location string `db:"location" json:"location,omitempty"`
	Date     string `db:"date" json:"date,omitempty"`
}

// SeedData is the full content loaded by Seed. Companies nest their jobs,
// and jobs nest their accomplishments, so references always resolve.
type SeedData struct {
	Companies       []SeedCompany   `json:"companies" yaml:"companies"`
	TechnicalSkills []SeedSkill     `json:"technical_skills" yaml:"technical_skills"`
	Projects        []SeedProject   `json:"projects" yaml:"projects"`
	Education       []SeedEducation `json:"education" yaml:"education"`
}

// SeedCompany is a company with its jobs
type SeedCompany struct {
	Name     string    `json:"name" yaml:"name"`
	Location string    `json:"location,omitempty" yaml:"location,omitempty"`
	Jobs     []SeedJob `json:"jobs" yaml:"jobs"`
}

// SeedJob is a job with its accomplishments
type SeedJob struct {
	Title           string   `json:"title" yaml:"title"`
	Summary         string   `json:"summary,omitempty" yaml:"summary,omitempty"`
	Dates           string   `json:"dates,omitempty" yaml:"dates,omitempty"`
	Accomplishments []string `json:"accomplishments" yaml:"accomplishments"`
}

// SeedSkill is a technical skill to insert
type SeedSkill struct {
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}

// SeedProject is a project to insert
type SeedProject struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// SeedEducation is an education entry to insert
type SeedEducation struct {
	School   string `json:"school" yaml:"school"`
	Degree   string `json:"degree" yaml:"degree"`
	Location string `json:"location,omitempty" yaml:"location,omitempty"`
	Date     string `json:"date,omitempty" yaml:"date,omitempty"`
}
