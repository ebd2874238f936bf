// Package docx writes minimal WordprocessingML (.docx) documents.
// A Document is a mutable tree owned by one caller; it is not safe for concurrent use.
package docx

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// Letter page geometry
const (
	PageWidth  Twips = 12240
	PageHeight Twips = 15840
	PageMargin Twips = 1080
	// TextWidth is the usable line width between the margins
	TextWidth = PageWidth - 2*PageMargin
)

// first relationship ids are taken by styles and numbering
const firstLinkRelID = 3

type linkRel struct {
	id     string
	target string
}

// Document is an in-memory WordprocessingML document
type Document struct {
	paragraphs []*Paragraph
	links      []linkRel
	title      string
	creator    string
}

// New returns an empty document
func New() *Document {
	return &Document{}
}

// SetProperties sets the core title and creator properties
func (d *Document) SetProperties(title, creator string) {
	d.title = title
	d.creator = creator
}

// Paragraphs returns the document body in order
func (d *Document) Paragraphs() []*Paragraph {
	return d.paragraphs
}

// AddParagraph appends an empty paragraph with the given style id.
// An empty style or StyleNormal leaves the paragraph unstyled.
func (d *Document) AddParagraph(style string) *Paragraph {
	if style == StyleNormal {
		style = ""
	}
	p := &Paragraph{style: style}
	d.paragraphs = append(d.paragraphs, p)
	return p
}

// AddHeading appends a heading paragraph. Levels outside 1..3 are clamped.
func (d *Document) AddHeading(text string, level int) *Paragraph {
	level = max(1, min(level, 3))
	p := d.AddParagraph("Heading" + strconv.Itoa(level))
	if text != "" {
		p.AddText(text)
	}
	return p
}

// AddHyperlink appends a link run to p pointing at url. The target is stored
// as an external relationship exactly as given; one relationship is
// registered per distinct url.
func (d *Document) AddHyperlink(p *Paragraph, text, url string) *Hyperlink {
	h := &Hyperlink{
		relID:  d.linkID(url),
		target: url,
		run: &Run{
			format:  RunFormat{Style: StyleHyperlink, Color: HyperlinkColor, Underline: "single"},
			content: []any{text},
		},
	}
	p.children = append(p.children, h)
	return h
}

func (d *Document) linkID(url string) string {
	for _, l := range d.links {
		if l.target == url {
			return l.id
		}
	}
	id := "rId" + strconv.Itoa(firstLinkRelID+len(d.links))
	d.links = append(d.links, linkRel{id: id, target: url})
	return id
}

// Bytes serializes the document package
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes the zipped document package to w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	parts, err := d.parts()
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: w}
	if err := writePackage(cw, parts); err != nil {
		return cw.n, fmt.Errorf("failed to write docx package: %w", err)
	}
	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
