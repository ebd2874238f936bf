package config

// Built-in job description keys
const (
	JobAutomationDeveloper = "automation-developer"
	JobRPADeveloper        = "rpa-developer"
	JobRPAUiPath           = "rpa-uipath"
)

// Route names used with RouteJobDescriptions
const (
	RouteMatch      = "match"
	RouteResume     = "resume"
	RouteResumeDOCX = "resume-docx"
)

// DefaultDownloadFilename is the attachment name of the docx download
const DefaultDownloadFilename = "Christopher_Roberts_Resume.docx"

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:       8080,
			RateLimit:  10,
			CORSOrigin: "*",
		},
		Database: DatabaseConfig{
			URL: "resume.db",
		},
		Log: LogConfig{
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
		},
		Profile: Profile{
			Name:       "Christopher A. Roberts",
			TargetRole: "RPA Developer",
			// placeholder contact details, override them under profile: in the config file
			Location: "Philadelphia, PA",
			Email:    "croberts@example.com",
			Phone:    "(555) 010-0000",
			Links: []Link{
				{Label: "LinkedIn", URL: "https://www.linkedin.com/in/croberts"},
				{Label: "GitHub", URL: "https://github.com/croberts"},
			},
			Education: []Education{
				{School: "Drexel University", Degree: "Post-Baccalaureate Certificate in CS Foundations", Date: "Jan 2024"},
				{School: "Temple University", Degree: "BBA in Finance", Date: "Jan 2012"},
			},
		},
		JobDescriptions: map[string]JobDescription{
			JobAutomationDeveloper: {
				Title: "Automation Developer",
				Text: "We are seeking an experienced Automation Developer skilled in UiPath and RPA systems.\n" +
					"The role involves building bots, optimizing workflows, and automating manual tasks.",
			},
			JobRPADeveloper: {
				Title: "RPA Developer",
				Text:  "We are looking for an RPA Developer with expertise in UiPath and automation of financial processes.",
			},
			JobRPAUiPath: {
				Title: "RPA Developer (UiPath)",
				Text:  "Seeking a skilled RPA Developer with UiPath experience and a strong automation mindset.",
			},
		},
		DefaultJobDescription: JobAutomationDeveloper,
		RouteJobDescriptions: map[string]string{
			RouteMatch:      JobAutomationDeveloper,
			RouteResume:     JobRPADeveloper,
			RouteResumeDOCX: JobRPAUiPath,
		},
		DownloadFilename: DefaultDownloadFilename,
	}
}
