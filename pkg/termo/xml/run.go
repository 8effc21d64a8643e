package xml

import (
	"encoding/xml"
	"strings"
)

// RunChild is an ordered child of a run: a Text node or a RawElement
// (breaks, tabs, drawings, ...).
type RunChild interface {
	isRunChild()
}

// Run represents a maximal span of text sharing one style. The style
// (w:rPr) is opaque raw markup; only the text content is mutable. The
// element's own attributes (revision ids) are kept verbatim.
type Run struct {
	Attrs      []xml.Attr
	Properties *RawElement // w:rPr, verbatim
	Children   []RunChild
}

func (r Run) isParagraphChild() {}

// Text represents a w:t text node.
type Text struct {
	Space   string // xml:space attribute, "preserve" when set
	Content string
}

func (t Text) isRunChild() {}

func parseRun(d *xml.Decoder, start xml.StartElement) (*Run, error) {
	run := &Run{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "rPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				run.Properties = raw
			case "t":
				text, err := parseText(d, t)
				if err != nil {
					return nil, err
				}
				run.Children = append(run.Children, text)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				run.Children = append(run.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "r" {
				return run, nil
			}
		}
	}
}

func parseText(d *xml.Decoder, start xml.StartElement) (*Text, error) {
	text := &Text{}
	for _, attr := range start.Attr {
		if attr.Name.Local == "space" {
			text.Space = attr.Value
		}
	}

	var sb strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.EndElement:
			if t.Name.Local == "t" {
				text.Content = sb.String()
				return text, nil
			}
		}
	}
}

// Text returns the run's text content.
func (r *Run) Text() string {
	var sb strings.Builder
	for _, c := range r.Children {
		if t, ok := c.(*Text); ok {
			sb.WriteString(t.Content)
		}
	}
	return sb.String()
}

// SetText replaces the run's text content in place. The run's style
// and its non-text children are untouched; the run itself is never
// removed, so its formatting markers persist even when emptied.
func (r *Run) SetText(s string) {
	var first *Text
	for _, c := range r.Children {
		if t, ok := c.(*Text); ok {
			if first == nil {
				first = t
			} else {
				t.Content = ""
			}
		}
	}
	if first == nil {
		if s == "" {
			return
		}
		first = &Text{}
		r.Children = append(r.Children, first)
	}
	first.Content = s
	if s != strings.TrimSpace(s) {
		first.Space = "preserve"
	}
}

func (r *Run) writeXML(sb *strings.Builder) {
	writeStartTag(sb, "w:r", r.Attrs)
	if r.Properties != nil {
		r.Properties.writeXML(sb)
	}
	for _, c := range r.Children {
		switch child := c.(type) {
		case *Text:
			child.writeXML(sb)
		case *RawElement:
			child.writeXML(sb)
		}
	}
	sb.WriteString("</w:r>")
}

func (t *Text) writeXML(sb *strings.Builder) {
	if t.Space == "preserve" {
		sb.WriteString(`<w:t xml:space="preserve">`)
	} else {
		sb.WriteString("<w:t>")
	}
	sb.WriteString(escapeText(t.Content))
	sb.WriteString("</w:t>")
}
