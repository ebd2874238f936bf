package pipeline

import (
	"context"
	"fmt"

	"github.com/croberts/resume-builder/internal/db"
	"github.com/croberts/resume-builder/internal/matching"
	"github.com/croberts/resume-builder/internal/types"
)

// Experiences returns every job with all of its accomplishments, in job order
func (p *Pipeline) Experiences(ctx context.Context) ([]types.Experience, error) {
	snap, err := p.loadSnapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	byJob := accomplishmentsByJob(snap.accomplishments)
	experiences := make([]types.Experience, 0, len(snap.jobs))
	for _, job := range snap.jobs {
		bullets := make([]string, 0, len(byJob[job.ID]))
		for _, a := range byJob[job.ID] {
			bullets = append(bullets, a.Content)
		}
		experiences = append(experiences, types.Experience{
			JobTitle:        job.Title,
			Company:         job.CompanyName,
			Summary:         job.Summary,
			Accomplishments: bullets,
		})
	}
	return experiences, nil
}

// Match extracts keywords from jd and returns the accomplishments mentioning any of them
func (p *Pipeline) Match(ctx context.Context, jd JobDescription) (*types.MatchResult, error) {
	snap, err := p.loadSnapshot(ctx, false)
	if err != nil {
		return nil, err
	}

	kw := matching.ExtractKeywords(jd.Text)
	matched := matching.MatchAccomplishments(snap.accomplishments, kw)
	p.emit(StepMatch, fmt.Sprintf("Matched %d of %d accomplishments against %d keywords",
		len(matched), len(snap.accomplishments), kw.Len()), kw.Sorted())

	jobs := make(map[int64]db.Job, len(snap.jobs))
	for _, job := range snap.jobs {
		jobs[job.ID] = job
	}

	result := &types.MatchResult{
		JobDescription: jd.Text,
		Keywords:       kw.Sorted(),
		MatchedBullets: make([]string, 0, len(matched)),
		Matches:        make([]types.Match, 0, len(matched)),
	}
	for _, a := range matched {
		job := jobs[a.JobID]
		result.MatchedBullets = append(result.MatchedBullets, a.Content)
		result.Matches = append(result.Matches, types.Match{
			Company:        job.CompanyName,
			JobTitle:       job.Title,
			Accomplishment: a.Content,
			Keywords:       matching.MatchedKeywords(a.Content, kw),
		})
	}
	return result, nil
}

// Build assembles the resume for jd. Every job is listed in job order with
// only its matching accomplishments; skills, projects and education are copied as stored.
func (p *Pipeline) Build(ctx context.Context, jd JobDescription) (*types.Resume, error) {
	snap, err := p.loadSnapshot(ctx, true)
	if err != nil {
		return nil, err
	}

	kw := matching.ExtractKeywords(jd.Text)
	matched := matching.MatchAccomplishments(snap.accomplishments, kw)
	p.emit(StepMatch, fmt.Sprintf("Matched %d of %d accomplishments against %d keywords",
		len(matched), len(snap.accomplishments), kw.Len()), kw.Sorted())

	resume := p.newResume()
	resume.JobDescription = jd.Text
	resume.Keywords = kw.Sorted()

	byJob := accomplishmentsByJob(matched)
	for _, job := range snap.jobs {
		bullets := make([]string, 0, len(byJob[job.ID]))
		for _, a := range byJob[job.ID] {
			bullets = append(bullets, a.Content)
		}
		resume.Experience = append(resume.Experience, types.ExperienceSection{
			Company:  job.CompanyName,
			Location: job.CompanyLocation,
			Title:    job.Title,
			Dates:    job.Dates,
			Bullets:  bullets,
		})
	}

	for _, s := range snap.skills {
		resume.Skills = append(resume.Skills, types.Skill{Name: s.Name, Category: s.Category})
	}
	for _, pr := range snap.projects {
		resume.Projects = append(resume.Projects, types.Project{
			Name:        pr.Name,
			Description: pr.Description,
			Link:        pr.Link,
		})
	}
	for _, e := range snap.education {
		resume.Education = append(resume.Education, types.Education{
			School:   e.School,
			Degree:   e.Degree,
			Location: e.Location,
			Date:     e.Date,
		})
	}
	if len(resume.Education) == 0 {
		for _, e := range p.cfg.Profile.Education {
			resume.Education = append(resume.Education, types.Education{
				School:   e.School,
				Degree:   e.Degree,
				Location: e.Location,
				Date:     e.Date,
			})
		}
	}

	p.emit(StepAssemble, fmt.Sprintf("Assembled resume with %d jobs, %d skills, %d projects, %d education entries",
		len(resume.Experience), len(resume.Skills), len(resume.Projects), len(resume.Education)), nil)
	return resume, nil
}

// newResume returns a resume carrying the configured profile, with empty non-nil sections
func (p *Pipeline) newResume() *types.Resume {
	profile := p.cfg.Profile
	resume := &types.Resume{
		Name:       profile.Name,
		TargetRole: profile.TargetRole,
		Contact: types.Contact{
			Location: profile.Location,
			Email:    profile.Email,
			Phone:    profile.Phone,
		},
		Skills:     []types.Skill{},
		Experience: []types.ExperienceSection{},
		Projects:   []types.Project{},
		Education:  []types.Education{},
	}
	for _, l := range profile.Links {
		resume.Contact.Links = append(resume.Contact.Links, types.Link{Label: l.Label, URL: l.URL})
	}
	return resume
}
