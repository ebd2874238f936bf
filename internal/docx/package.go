package docx

import (
	"archive/zip"
	"embed"
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

//go:embed parts/*.xml
var staticParts embed.FS

// zipEpoch is stamped on every zip entry so output is byte-stable
var zipEpoch = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)

type part struct {
	name string
	data []byte
}

func (d *Document) parts() ([]part, error) {
	contentTypes, err := staticParts.ReadFile("parts/content_types.xml")
	if err != nil {
		return nil, fmt.Errorf("failed to read content types: %w", err)
	}
	packageRels, err := staticParts.ReadFile("parts/rels.xml")
	if err != nil {
		return nil, fmt.Errorf("failed to read package relationships: %w", err)
	}
	styles, err := staticParts.ReadFile("parts/styles.xml")
	if err != nil {
		return nil, fmt.Errorf("failed to read styles: %w", err)
	}
	numbering, err := staticParts.ReadFile("parts/numbering.xml")
	if err != nil {
		return nil, fmt.Errorf("failed to read numbering: %w", err)
	}

	core, err := marshalPart(xmlCoreProperties{
		CP:      "http://schemas.openxmlformats.org/package/2006/metadata/core-properties",
		DC:      "http://purl.org/dc/elements/1.1/",
		Title:   d.title,
		Creator: d.creator,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal core properties: %w", err)
	}

	document, err := marshalPart(d.documentXML())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	rels, err := marshalPart(d.relationshipsXML())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document relationships: %w", err)
	}

	return []part{
		{name: "[Content_Types].xml", data: contentTypes},
		{name: "_rels/.rels", data: packageRels},
		{name: "docProps/core.xml", data: core},
		{name: "word/document.xml", data: document},
		{name: "word/styles.xml", data: styles},
		{name: "word/numbering.xml", data: numbering},
		{name: "word/_rels/document.xml.rels", data: rels},
	}, nil
}

func (d *Document) documentXML() xmlDocument {
	doc := xmlDocument{
		W: nsMain,
		R: nsRelationships,
		Body: xmlBody{
			Paragraphs: make([]xmlParagraph, 0, len(d.paragraphs)),
			Section: xmlSection{
				PageSize: xmlPageSize{W: PageWidth, H: PageHeight},
				Margins: xmlMargins{
					Top: PageMargin, Right: PageMargin, Bottom: PageMargin, Left: PageMargin,
					Header: 720, Footer: 720,
				},
			},
		},
	}
	for _, p := range d.paragraphs {
		doc.Body.Paragraphs = append(doc.Body.Paragraphs, p.toXML())
	}
	return doc
}

func (d *Document) relationshipsXML() xmlRelationships {
	rels := xmlRelationships{
		Xmlns: nsPackageRels,
		Relationships: []xmlRelationship{
			{ID: "rId1", Type: relStyles, Target: "styles.xml"},
			{ID: "rId2", Type: relNumbering, Target: "numbering.xml"},
		},
	}
	for _, l := range d.links {
		rels.Relationships = append(rels.Relationships, xmlRelationship{
			ID:         l.id,
			Type:       relHyperlink,
			Target:     l.target,
			TargetMode: "External",
		})
	}
	return rels
}

func marshalPart(v any) ([]byte, error) {
	body, err := xml.Marshal(v)
	if err != nil {
		return nil, err
	}
	header := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"
	return append([]byte(header), body...), nil
}

func writePackage(w io.Writer, parts []part) error {
	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.CreateHeader(&zip.FileHeader{
			Name:     p.name,
			Method:   zip.Deflate,
			Modified: zipEpoch,
		})
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", p.name, err)
		}
		if _, err := fw.Write(p.data); err != nil {
			return fmt.Errorf("failed to write %s: %w", p.name, err)
		}
	}
	return zw.Close()
}
