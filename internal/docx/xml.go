package docx

import "encoding/xml"

// WordprocessingML namespaces
const (
	nsMain          = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsRelationships = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPackageRels   = "http://schemas.openxmlformats.org/package/2006/relationships"
)

// Relationship types used by the document part
const (
	relStyles    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	relNumbering = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/numbering"
	relHyperlink = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
)

// Element structs below use literal prefixed names ("w:p") instead of
// encoding/xml namespaces so the output carries the prefixes Word expects.

type xmlDocument struct {
	XMLName xml.Name `xml:"w:document"`
	W       string   `xml:"xmlns:w,attr"`
	R       string   `xml:"xmlns:r,attr"`
	Body    xmlBody  `xml:"w:body"`
}

type xmlBody struct {
	Paragraphs []xmlParagraph `xml:"w:p"`
	Section    xmlSection     `xml:"w:sectPr"`
}

type xmlSection struct {
	PageSize xmlPageSize `xml:"w:pgSz"`
	Margins  xmlMargins  `xml:"w:pgMar"`
}

type xmlPageSize struct {
	W Twips `xml:"w:w,attr"`
	H Twips `xml:"w:h,attr"`
}

type xmlMargins struct {
	Top    Twips `xml:"w:top,attr"`
	Right  Twips `xml:"w:right,attr"`
	Bottom Twips `xml:"w:bottom,attr"`
	Left   Twips `xml:"w:left,attr"`
	Header Twips `xml:"w:header,attr"`
	Footer Twips `xml:"w:footer,attr"`
	Gutter Twips `xml:"w:gutter,attr"`
}

type xmlParagraph struct {
	XMLName    xml.Name      `xml:"w:p"`
	Properties *xmlParaProps `xml:"w:pPr,omitempty"`
	Children   []any
}

type xmlParaProps struct {
	Style *xmlVal   `xml:"w:pStyle,omitempty"`
	NumPr *xmlNumPr `xml:"w:numPr,omitempty"`
	Tabs  *xmlTabs  `xml:"w:tabs,omitempty"`
}

type xmlVal struct {
	Val string `xml:"w:val,attr"`
}

type xmlNumPr struct {
	Level xmlVal `xml:"w:ilvl"`
	NumID xmlVal `xml:"w:numId"`
}

type xmlTabs struct {
	Stops []xmlTabStop `xml:"w:tab"`
}

type xmlTabStop struct {
	Val string `xml:"w:val,attr"`
	Pos Twips  `xml:"w:pos,attr"`
}

type xmlHyperlink struct {
	XMLName xml.Name `xml:"w:hyperlink"`
	ID      string   `xml:"r:id,attr"`
	Runs    []xmlRun `xml:"w:r"`
}

type xmlRun struct {
	XMLName    xml.Name     `xml:"w:r"`
	Properties *xmlRunProps `xml:"w:rPr,omitempty"`
	Content    []any
}

// xmlRunProps fields follow the schema sequence: rStyle, b, i, color, sz, u
type xmlRunProps struct {
	Style     *xmlVal `xml:"w:rStyle,omitempty"`
	Bold      *xmlOn  `xml:"w:b,omitempty"`
	Italic    *xmlOn  `xml:"w:i,omitempty"`
	Color     *xmlVal `xml:"w:color,omitempty"`
	Size      *xmlVal `xml:"w:sz,omitempty"`
	Underline *xmlVal `xml:"w:u,omitempty"`
}

type xmlOn struct{}

type xmlText struct {
	XMLName xml.Name `xml:"w:t"`
	Space   string   `xml:"xml:space,attr,omitempty"`
	Text    string   `xml:",chardata"`
}

type xmlTab struct {
	XMLName xml.Name `xml:"w:tab"`
}

type xmlBreak struct {
	XMLName xml.Name `xml:"w:br"`
}

type xmlRelationships struct {
	XMLName       xml.Name          `xml:"Relationships"`
	Xmlns         string            `xml:"xmlns,attr"`
	Relationships []xmlRelationship `xml:"Relationship"`
}

type xmlRelationship struct {
	ID         string `xml:"Id,attr"`
	Type       string `xml:"Type,attr"`
	Target     string `xml:"Target,attr"`
	TargetMode string `xml:"TargetMode,attr,omitempty"`
}

type xmlCoreProperties struct {
	XMLName xml.Name `xml:"cp:coreProperties"`
	CP      string   `xml:"xmlns:cp,attr"`
	DC      string   `xml:"xmlns:dc,attr"`
	Title   string   `xml:"dc:title,omitempty"`
	Creator string   `xml:"dc:creator,omitempty"`
}
