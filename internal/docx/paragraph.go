package docx

import (
	"strconv"
	"strings"
)

// Twips is a length in twentieths of a point
type Twips int

// Inches converts inches to twips
func Inches(in float64) Twips {
	return Twips(in * 1440)
}

// Built-in paragraph and character styles defined in styles.xml
const (
	StyleNormal     = "Normal"
	StyleListBullet = "ListBullet"
	StyleHyperlink  = "Hyperlink"
)

// HyperlinkColor is the hex RGB color applied to hyperlink runs
const HyperlinkColor = "0563C1"

// bulletNumID is the numbering instance defined in numbering.xml
const bulletNumID = "1"

// RunFormat is the character formatting of a run
type RunFormat struct {
	Bold      bool
	Italic    bool
	Color     string // hex RGB, no leading #
	Size      int    // half-points, 0 keeps the style size
	Underline string // "single", "double", ...
	Style     string // character style id
}

func (f RunFormat) isZero() bool {
	return f == RunFormat{}
}

func (f RunFormat) toXML() *xmlRunProps {
	if f.isZero() {
		return nil
	}
	props := &xmlRunProps{}
	if f.Style != "" {
		props.Style = &xmlVal{Val: f.Style}
	}
	if f.Bold {
		props.Bold = &xmlOn{}
	}
	if f.Italic {
		props.Italic = &xmlOn{}
	}
	if f.Color != "" {
		props.Color = &xmlVal{Val: f.Color}
	}
	if f.Size > 0 {
		props.Size = &xmlVal{Val: strconv.Itoa(f.Size)}
	}
	if f.Underline != "" {
		props.Underline = &xmlVal{Val: f.Underline}
	}
	return props
}

type runTab struct{}

type runBreak struct{}

// Run is a sequence of text, tabs and breaks sharing one format
type Run struct {
	format  RunFormat
	content []any // string, runTab or runBreak
}

// Format returns the run formatting
func (r *Run) Format() RunFormat { return r.format }

// Text returns the run text with tabs as \t and breaks as \n
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.content {
		switch v := c.(type) {
		case string:
			sb.WriteString(v)
		case runTab:
			sb.WriteByte('\t')
		case runBreak:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (r *Run) toXML() xmlRun {
	out := xmlRun{Properties: r.format.toXML()}
	for _, c := range r.content {
		switch v := c.(type) {
		case string:
			out.Content = append(out.Content, xmlText{Space: "preserve", Text: v})
		case runTab:
			out.Content = append(out.Content, xmlTab{})
		case runBreak:
			out.Content = append(out.Content, xmlBreak{})
		}
	}
	return out
}

// Hyperlink is a run bound to an external relationship
type Hyperlink struct {
	relID  string
	target string
	run    *Run
}

// Target returns the link URL
func (h *Hyperlink) Target() string { return h.target }

// RelationshipID returns the document relationship id of the link
func (h *Hyperlink) RelationshipID() string { return h.relID }

// Paragraph is a block of runs and hyperlinks with optional style and tab stops
type Paragraph struct {
	style    string
	tabStops []Twips
	children []any // *Run or *Hyperlink
}

// Style returns the paragraph style id, empty for Normal
func (p *Paragraph) Style() string { return p.style }

// TabStops returns the right-aligned tab stop positions
func (p *Paragraph) TabStops() []Twips { return p.tabStops }

// Runs returns the plain runs of the paragraph, hyperlinks excluded
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.children {
		if r, ok := c.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Hyperlinks returns the hyperlinks of the paragraph in order
func (p *Paragraph) Hyperlinks() []*Hyperlink {
	var links []*Hyperlink
	for _, c := range p.children {
		if h, ok := c.(*Hyperlink); ok {
			links = append(links, h)
		}
	}
	return links
}

// Text returns the paragraph text including hyperlink text
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, c := range p.children {
		switch v := c.(type) {
		case *Run:
			sb.WriteString(v.Text())
		case *Hyperlink:
			sb.WriteString(v.run.Text())
		}
	}
	return sb.String()
}

// AddRun appends a formatted run
func (p *Paragraph) AddRun(text string, format RunFormat) *Run {
	r := &Run{format: format}
	if text != "" {
		r.content = append(r.content, text)
	}
	p.children = append(p.children, r)
	return r
}

// AddText appends a plain run
func (p *Paragraph) AddText(text string) *Run {
	return p.AddRun(text, RunFormat{})
}

// AddBold appends a bold run
func (p *Paragraph) AddBold(text string) *Run {
	return p.AddRun(text, RunFormat{Bold: true})
}

// AddItalic appends an italic run
func (p *Paragraph) AddItalic(text string) *Run {
	return p.AddRun(text, RunFormat{Italic: true})
}

// AddTab appends a tab character
func (p *Paragraph) AddTab() *Run {
	r := &Run{content: []any{runTab{}}}
	p.children = append(p.children, r)
	return r
}

// AddBreak appends a line break within the paragraph
func (p *Paragraph) AddBreak() *Run {
	r := &Run{content: []any{runBreak{}}}
	p.children = append(p.children, r)
	return r
}

// AddRightTabStop registers a right-aligned tab stop at pos
func (p *Paragraph) AddRightTabStop(pos Twips) {
	p.tabStops = append(p.tabStops, pos)
}

func (p *Paragraph) toXML() xmlParagraph {
	out := xmlParagraph{}

	if p.style != "" || len(p.tabStops) > 0 {
		props := &xmlParaProps{}
		if p.style != "" {
			props.Style = &xmlVal{Val: p.style}
		}
		if p.style == StyleListBullet {
			props.NumPr = &xmlNumPr{Level: xmlVal{Val: "0"}, NumID: xmlVal{Val: bulletNumID}}
		}
		if len(p.tabStops) > 0 {
			props.Tabs = &xmlTabs{}
			for _, pos := range p.tabStops {
				props.Tabs.Stops = append(props.Tabs.Stops, xmlTabStop{Val: "right", Pos: pos})
			}
		}
		out.Properties = props
	}

	for _, c := range p.children {
		switch v := c.(type) {
		case *Run:
			out.Children = append(out.Children, v.toXML())
		case *Hyperlink:
			out.Children = append(out.Children, xmlHyperlink{ID: v.relID, Runs: []xmlRun{v.run.toXML()}})
		}
	}
	return out
}
