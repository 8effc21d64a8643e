package xml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// BodyElement is an ordered child of the document body or of a table
// cell: a Paragraph, a Table, or a RawElement.
type BodyElement interface {
	isBodyElement()
}

// Document represents the word/document.xml part.
type Document struct {
	Attrs []xml.Attr // root element attributes (namespace declarations)
	Body  *Body
	// Extra holds root-level children other than the body, verbatim.
	Extra []*RawElement
}

// Body represents the document body. Elements keeps paragraphs, tables
// and uninterpreted block elements in source order; the trailing
// section properties are kept verbatim (Word requires them last).
type Body struct {
	Elements []BodyElement
	SectPr   *RawElement
}

// ParseDocument parses a Word document XML stream.
func ParseDocument(r io.Reader) (*Document, error) {
	d := xml.NewDecoder(r)

	var doc Document
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "document" {
			return nil, fmt.Errorf("unexpected root element <%s>", start.Name.Local)
		}

		doc.Attrs = start.Attr
		if err := doc.parseChildren(d); err != nil {
			return nil, fmt.Errorf("failed to parse document: %w", err)
		}
	}

	if doc.Body == nil {
		return nil, fmt.Errorf("document has no body")
	}
	return &doc, nil
}

func (doc *Document) parseChildren(d *xml.Decoder) error {
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "body" {
				body, err := parseBody(d)
				if err != nil {
					return err
				}
				doc.Body = body
				continue
			}
			raw, err := captureRaw(d, t)
			if err != nil {
				return err
			}
			doc.Extra = append(doc.Extra, raw)
		case xml.EndElement:
			if t.Name.Local == "document" {
				return nil
			}
		}
	}
}

func parseBody(d *xml.Decoder) (*Body, error) {
	body := &Body{}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				para, err := parseParagraph(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, para)
			case "tbl":
				table, err := parseTable(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, table)
			case "sectPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				body.SectPr = raw
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				body.Elements = append(body.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "body" {
				return body, nil
			}
		}
	}
}

// Paragraphs returns the body's top-level paragraphs in order.
func (b *Body) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range b.Elements {
		if p, ok := el.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Tables returns the body's top-level tables in order.
func (b *Body) Tables() []*Table {
	var tables []*Table
	for _, el := range b.Elements {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// WriteXML serializes the document back to WordprocessingML.
func (doc *Document) WriteXML(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	writeStartTag(&sb, "w:document", doc.Attrs)
	doc.Body.writeXML(&sb)
	for _, raw := range doc.Extra {
		raw.writeXML(&sb)
	}
	sb.WriteString("</w:document>")

	_, err := io.WriteString(w, sb.String())
	return err
}

// Bytes serializes the document to a byte slice.
func (doc *Document) Bytes() []byte {
	var sb strings.Builder
	_ = doc.WriteXML(&sb)
	return []byte(sb.String())
}

func (b *Body) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:body>")
	for _, el := range b.Elements {
		switch e := el.(type) {
		case *Paragraph:
			e.writeXML(sb)
		case *Table:
			e.writeXML(sb)
		case *RawElement:
			e.writeXML(sb)
		}
	}
	if b.SectPr != nil {
		b.SectPr.writeXML(sb)
	}
	sb.WriteString("</w:body>")
}
