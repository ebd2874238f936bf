package rendering

import "github.com/croberts/resume-builder/internal/types"

func sampleResume() *types.Resume {
	return &types.Resume{
		Name:       "Christopher A. Roberts",
		TargetRole: "RPA Developer",
		Contact: types.Contact{
			Location: "Philadelphia, PA",
			Email:    "chris@example.com",
			Phone:    "555-0100",
			Links: []types.Link{
				{Label: "LinkedIn", URL: "https://www.linkedin.com/in/croberts"},
				{URL: "https://github.com/croberts/"},
			},
		},
		Skills: []types.Skill{
			{Name: "UiPath", Category: "Automation"},
			{Name: "Python", Category: "Languages"},
			{Name: "Power Automate", Category: "Automation"},
		},
		Experience: []types.ExperienceSection{
			{
				Company:  "ERT",
				Location: "Philadelphia, PA",
				Title:    "RPA Developer",
				Dates:    "2021 - Present",
				Bullets: []string{
					"Built UiPath bots to automate manual reconciliation tasks",
					"Automated invoice intake workflows",
				},
			},
			{
				Company: "Acme",
				Title:   "Analyst",
				Bullets: []string{"Developed Python automation scripts"},
			},
		},
		Projects: []types.Project{
			{Name: "Resume Builder", Description: "Keyword-filtered resumes", Link: "https://github.com/croberts/resume-builder"},
			{Name: "Notes"},
		},
		Education: []types.Education{
			{School: "Drexel University", Degree: "Post-Baccalaureate Certificate in CS Foundations", Date: "Jan 2024"},
			{School: "Temple University", Degree: "BBA in Finance", Location: "Philadelphia, PA", Date: "Jan 2012"},
		},
		JobDescription: "Seeking a skilled RPA Developer with UiPath experience.",
		Keywords:       []string{"developer", "rpa", "uipath"},
	}
}
