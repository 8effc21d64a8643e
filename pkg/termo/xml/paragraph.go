package xml

import (
	"encoding/xml"
	"strings"
)

// ParagraphChild is an ordered child of a paragraph: a Run or a
// RawElement (hyperlinks, bookmarks, proofing marks, ...).
type ParagraphChild interface {
	isParagraphChild()
}

// Paragraph represents a paragraph: an ordered sequence of runs plus
// any surrounding markup the model does not interpret. Attrs carries
// the element's own attributes (revision ids, w14 paragraph ids)
// verbatim.
type Paragraph struct {
	Attrs      []xml.Attr
	Properties *RawElement // w:pPr, verbatim
	Children   []ParagraphChild
}

func (p Paragraph) isBodyElement() {}

func parseParagraph(d *xml.Decoder, start xml.StartElement) (*Paragraph, error) {
	para := &Paragraph{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "pPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				para.Properties = raw
			case "r":
				run, err := parseRun(d, t)
				if err != nil {
					return nil, err
				}
				para.Children = append(para.Children, run)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				para.Children = append(para.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				return para, nil
			}
		}
	}
}

// Runs returns the paragraph's runs in order. Runs nested inside
// hyperlinks are not included; those live in raw markup.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.Children {
		if r, ok := c.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Text returns the concatenated text of all runs in the paragraph.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text())
	}
	return sb.String()
}

func (p *Paragraph) writeXML(sb *strings.Builder) {
	writeStartTag(sb, "w:p", p.Attrs)
	if p.Properties != nil {
		p.Properties.writeXML(sb)
	}
	for _, c := range p.Children {
		switch child := c.(type) {
		case *Run:
			child.writeXML(sb)
		case *RawElement:
			child.writeXML(sb)
		}
	}
	sb.WriteString("</w:p>")
}
