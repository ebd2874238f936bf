// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/croberts/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "..."
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs the keywords extracted from a job description.
func (p *Printer) PrintKeywords(keywords []string) {
	if len(keywords) == 0 {
		p.printBox("KEYWORDS", "(none)")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Extracted %d keywords:\n", len(keywords)))
	line := ""
	for _, kw := range keywords {
		if line != "" && utf8.RuneCountInString(line)+len(kw)+2 > boxWidth-6 {
			sb.WriteString("  " + line + "\n")
			line = ""
		}
		if line != "" {
			line += ", "
		}
		line += kw
	}
	sb.WriteString("  " + line)

	p.printBox("KEYWORDS", sb.String())
}

// PrintMatchResult outputs the matched accomplishments with the keywords that hit each one.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	p.PrintKeywords(result.Keywords)

	if len(result.Matches) == 0 {
		p.printBox("MATCHED ACCOMPLISHMENTS", "No accomplishments matched")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Matched %d accomplishments:\n\n", len(result.Matches)))

	count := min(len(result.Matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := result.Matches[i]
		sb.WriteString(fmt.Sprintf("• %s\n", truncate(m.Accomplishment, 50)))
		sb.WriteString(fmt.Sprintf("  %s @ %s\n", m.JobTitle, m.Company))
		if len(m.Keywords) > 0 {
			sb.WriteString(fmt.Sprintf("  [%s]\n", truncate(strings.Join(m.Keywords, ", "), 40)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(result.Matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more accomplishments", len(result.Matches)-maxItemsToShow))
	}

	p.printBox("MATCHED ACCOMPLISHMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResume outputs a section-by-section summary of an assembled resume.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Name))
	if resume.TargetRole != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", resume.TargetRole))
	}
	sb.WriteString(fmt.Sprintf("Skills:   %d\n", len(resume.Skills)))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString("Experience:\n")
		for _, section := range resume.Experience {
			sb.WriteString(fmt.Sprintf("  • %s, %s (%d bullets)\n", section.Company, section.Title, len(section.Bullets)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("Projects:  %d\n", len(resume.Projects)))
	sb.WriteString(fmt.Sprintf("Education: %d", len(resume.Education)))

	p.printBox("ASSEMBLED RESUME", sb.String())
}

// PrintExperiences outputs the stored jobs with their accomplishment counts.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExperiences(experiences []types.Experience) {
	if len(experiences) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO EXPERIENCE STORED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	for i, e := range experiences {
		sb.WriteString(fmt.Sprintf("%s @ %s\n", e.JobTitle, e.Company))
		sb.WriteString(fmt.Sprintf("  %d accomplishments", len(e.Accomplishments)))
		if i < len(experiences)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("STORED EXPERIENCE", sb.String())
}
