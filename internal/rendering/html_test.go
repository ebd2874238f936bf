package rendering

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/croberts/resume-builder/internal/types"
)

func renderResumeDoc(t *testing.T, resume *types.Resume) *goquery.Document {
	t.Helper()
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderResume(&buf, resume))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestHTMLRenderer_RenderResume(t *testing.T) {
	doc := renderResumeDoc(t, sampleResume())

	assert.Equal(t, "Christopher A. Roberts", doc.Find("h1#name").Text())
	assert.Contains(t, doc.Find("#target-role").Text(), "RPA Developer")

	var headings []string
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Text())
	})
	assert.Equal(t, []string{HeadingSkills, HeadingExperience, HeadingProjects, HeadingEducation}, headings)

	contact := doc.Find("#contact")
	assert.Contains(t, contact.Text(), "Philadelphia, PA | ")
	href, ok := contact.Find("a.link").First().Attr("href")
	require.True(t, ok)
	assert.Equal(t, "https://www.linkedin.com/in/croberts", href)
	assert.Equal(t, "github.com/croberts", contact.Find("a.link").Last().Text())

	skills := doc.Find("p#skills").Text()
	assert.Contains(t, skills, "Automation: UiPath, Power Automate")
	assert.Contains(t, skills, "Languages: Python")

	jobs := doc.Find(".job")
	require.Equal(t, 2, jobs.Length())
	assert.Equal(t, "ERT, Philadelphia, PA", jobs.First().Find(".company").Text())
	assert.Equal(t, "2021 - Present", jobs.First().Find(".dates").Text())

	var bullets []string
	jobs.First().Find("li").Each(func(_ int, s *goquery.Selection) {
		bullets = append(bullets, s.Text())
	})
	assert.Equal(t, sampleResume().Experience[0].Bullets, bullets)

	assert.Equal(t, 2, doc.Find(".education").Length())
	assert.Contains(t, doc.Find("#keywords").Text(), "developer, rpa, uipath")
}

func TestHTMLRenderer_UncategorizedSkillsAsList(t *testing.T) {
	doc := renderResumeDoc(t, &types.Resume{
		Name:   "Someone",
		Skills: []types.Skill{{Name: "UiPath"}, {Name: "SQL"}},
	})
	assert.Equal(t, 2, doc.Find("ul#skills li").Length())
	assert.Contains(t, doc.Text(), "No matching experience.")
}

func TestHTMLRenderer_EscapesContent(t *testing.T) {
	resume := sampleResume()
	resume.Experience[0].Bullets = []string{`<script>alert("x")</script>`}

	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.RenderResume(&buf, resume))
	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestHTMLRenderer_RenderResumeNil(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)
	var renderErr *RenderError
	require.ErrorAs(t, r.RenderResume(&bytes.Buffer{}, nil), &renderErr)
	assert.Equal(t, FormatHTML, renderErr.Format)
}

func TestHTMLRenderer_RenderIndex(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.RenderIndex(&buf, IndexData{
		Name: "Christopher A. Roberts",
		Routes: []Route{
			{Method: "GET", Path: "/experiences", Description: "work history as JSON"},
			{Method: "GET", Path: "/resume-docx", Description: "resume download"},
		},
		JobDescriptions: []JobDescriptionLink{{Key: "rpa-uipath", Title: "RPA Developer (UiPath)"}},
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Find("#routes li").Length())
	href, _ := doc.Find("#job-descriptions a").First().Attr("href")
	assert.Equal(t, "/match?jd=rpa-uipath", href)
	action, _ := doc.Find("form").Attr("action")
	assert.Equal(t, "/resume", action)
	assert.Equal(t, 1, doc.Find(`textarea[name="job_description"]`).Length())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestHTMLRenderer_WriteFailure(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	err = r.RenderIndex(failingWriter{}, IndexData{Name: "x"})
	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.True(t, strings.Contains(err.Error(), "closed"))
}

func TestHTMLRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	err = r.execute(&bytes.Buffer{}, "missing.html", nil)
	var templateErr *TemplateError
	require.ErrorAs(t, err, &templateErr)
	assert.Equal(t, "missing.html", templateErr.Template)
	assert.Equal(t, "template missing.html: unknown template", err.Error())
}
