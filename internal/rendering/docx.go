package rendering

import (
	"strings"

	"github.com/croberts/resume-builder/internal/docx"
	"github.com/croberts/resume-builder/internal/types"
)

// Section headings, in document order
const (
	HeadingSkills     = "Technical Skills"
	HeadingExperience = "Professional Experience"
	HeadingProjects   = "Projects"
	HeadingEducation  = "Education"
)

const separator = " | "

// RenderDOCX assembles resume into a WordprocessingML document.
// Missing fields render as blank text.
func RenderDOCX(resume *types.Resume) ([]byte, error) {
	if resume == nil {
		return nil, &RenderError{Format: FormatDOCX, Message: "resume is nil"}
	}

	data, err := buildDocument(resume).Bytes()
	if err != nil {
		return nil, &RenderError{Format: FormatDOCX, Message: "failed to serialize docx", Cause: err}
	}
	return data, nil
}

// buildDocument appends every section in fixed order
func buildDocument(resume *types.Resume) *docx.Document {
	doc := docx.New()
	title := resume.Name
	if resume.TargetRole != "" {
		title += " - " + resume.TargetRole
	}
	doc.SetProperties(title, resume.Name)

	doc.AddHeading(resume.Name, 1)
	writeContactLine(doc, resume.Contact)
	writeSkills(doc, resume)
	writeExperience(doc, resume.Experience)
	writeProjects(doc, resume.Projects)
	writeEducation(doc, resume.Education)
	return doc
}

func writeContactLine(doc *docx.Document, c types.Contact) {
	p := doc.AddParagraph(docx.StyleNormal)
	first := true
	sep := func() {
		if !first {
			p.AddText(separator)
		}
		first = false
	}

	for _, field := range []string{c.Location, c.Email, c.Phone} {
		if field == "" {
			continue
		}
		sep()
		p.AddText(field)
	}
	for _, link := range c.Links {
		if link.URL == "" {
			continue
		}
		sep()
		label := link.Label
		if label == "" {
			label = displayURL(link.URL)
		}
		doc.AddHyperlink(p, label, link.URL)
	}
}

func writeSkills(doc *docx.Document, resume *types.Resume) {
	doc.AddHeading(HeadingSkills, 2)

	if !resume.HasSkillCategories() {
		for _, s := range resume.Skills {
			doc.AddParagraph(docx.StyleListBullet).AddText(s.Name)
		}
		return
	}

	p := doc.AddParagraph(docx.StyleNormal)
	for i, g := range resume.SkillGroups() {
		if i > 0 {
			p.AddBreak()
		}
		p.AddBold(g.Category + ":")
		p.AddText(" " + strings.Join(g.Names, ", "))
	}
}

func writeExperience(doc *docx.Document, sections []types.ExperienceSection) {
	doc.AddHeading(HeadingExperience, 2)

	for _, s := range sections {
		header := doc.AddParagraph(docx.StyleNormal)
		header.AddRightTabStop(docx.TextWidth)
		header.AddBold(joinNonEmpty(", ", s.Company, s.Location))
		header.AddTab()
		header.AddText(s.Dates)

		doc.AddParagraph(docx.StyleNormal).AddItalic(s.Title)

		for _, bullet := range s.Bullets {
			doc.AddParagraph(docx.StyleListBullet).AddText(bullet)
		}

		// spacer
		doc.AddParagraph(docx.StyleNormal)
	}
}

func writeProjects(doc *docx.Document, projects []types.Project) {
	doc.AddHeading(HeadingProjects, 2)

	for _, pr := range projects {
		p := doc.AddParagraph(docx.StyleNormal)
		p.AddBold(pr.Name)
		if pr.Description != "" {
			p.AddText(": " + pr.Description)
		}
		if pr.Link != "" {
			p.AddText(separator)
			doc.AddHyperlink(p, displayURL(pr.Link), pr.Link)
		}
	}
}

func writeEducation(doc *docx.Document, entries []types.Education) {
	doc.AddHeading(HeadingEducation, 2)

	for _, e := range entries {
		p := doc.AddParagraph(docx.StyleNormal)
		p.AddRightTabStop(docx.TextWidth)
		p.AddBold(e.School)
		if e.Location != "" {
			p.AddText(", " + e.Location)
		}
		p.AddTab()
		p.AddText(e.Date)
		p.AddBreak()
		p.AddText(e.Degree)
	}
}

// displayURL strips the scheme and a trailing slash for display
func displayURL(u string) string {
	if i := strings.Index(u, "://"); i >= 0 {
		u = u[i+3:]
	}
	return strings.TrimSuffix(u, "/")
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
