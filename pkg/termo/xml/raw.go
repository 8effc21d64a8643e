package xml

import (
	"encoding/xml"
	"strings"
)

// namespaceToPrefix converts a namespace URI to its conventional prefix.
// The Go decoder resolves prefixes to URIs while tokenizing; to re-emit
// captured elements verbatim the URIs have to be folded back.
func namespaceToPrefix(uri string) string {
	prefixMap := map[string]string{
		// Core Word namespaces
		"http://schemas.openxmlformats.org/wordprocessingml/2006/main":        "w",
		"http://schemas.openxmlformats.org/officeDocument/2006/relationships": "r",
		"http://schemas.openxmlformats.org/officeDocument/2006/math":          "m",
		"http://www.w3.org/XML/1998/namespace":                                "xml",
		// Drawing namespaces
		"http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing": "wp",
		"http://schemas.openxmlformats.org/drawingml/2006/main":                  "a",
		"http://schemas.openxmlformats.org/drawingml/2006/picture":               "pic",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing":    "wp14",
		"http://schemas.microsoft.com/office/drawing/2010/main":                  "a14",
		// VML namespaces
		"urn:schemas-microsoft-com:vml":           "v",
		"urn:schemas-microsoft-com:office:office": "o",
		"urn:schemas-microsoft-com:office:word":   "w10",
		// Markup compatibility namespace
		"http://schemas.openxmlformats.org/markup-compatibility/2006": "mc",
		// Word processing shapes and canvas
		"http://schemas.microsoft.com/office/word/2010/wordprocessingShape":  "wps",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingCanvas": "wpc",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingGroup":  "wpg",
		"http://schemas.microsoft.com/office/word/2010/wordprocessingInk":    "wpi",
		// Extended Word namespaces
		"http://schemas.microsoft.com/office/word/2010/wordml":               "w14",
		"http://schemas.microsoft.com/office/word/2012/wordml":               "w15",
		"http://schemas.microsoft.com/office/word/2015/wordml/symex":         "w16se",
		"http://schemas.microsoft.com/office/word/2016/wordml/cid":           "w16cid",
		"http://schemas.microsoft.com/office/word/2018/wordml":               "w16",
		"http://schemas.microsoft.com/office/word/2018/wordml/cex":           "w16cex",
		"http://schemas.microsoft.com/office/word/2020/wordml/sdtdatahash":   "w16sdtdh",
		"http://schemas.microsoft.com/office/word/2023/wordml/word16du":      "w16du",
		"http://schemas.microsoft.com/office/word/2006/wordml":               "wne",
		// Other drawing namespaces
		"http://schemas.microsoft.com/office/drawing/2016/ink":     "aink",
		"http://schemas.microsoft.com/office/drawing/2017/model3d": "am3d",
		// Office extension namespaces
		"http://schemas.microsoft.com/office/2019/extlst": "oel",
	}

	if prefix, ok := prefixMap[uri]; ok {
		return prefix
	}
	// Unknown namespaces come back as-is; with the standard Word
	// namespace set this does not happen in practice.
	return uri
}

// RawElement holds a verbatim chunk of WordprocessingML that the model
// does not interpret. It is re-emitted exactly as captured.
type RawElement struct {
	Name   string // prefixed element name, e.g. "w:pPr"
	Markup string // full markup including the element's own tags
}

func (r RawElement) isBodyElement()    {}
func (r RawElement) isParagraphChild() {}
func (r RawElement) isRunChild()       {}
func (r RawElement) isTableChild()     {}
func (r RawElement) isRowChild()       {}

func (r *RawElement) writeXML(sb *strings.Builder) {
	sb.WriteString(r.Markup)
}

// qualifiedName folds a decoder-resolved xml.Name back to its prefixed
// source form.
func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if n.Space == "xmlns" {
		return "xmlns:" + n.Local
	}
	return namespaceToPrefix(n.Space) + ":" + n.Local
}

func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = escapeText(s)
	return strings.ReplaceAll(s, `"`, "&quot;")
}

func writeStartTag(sb *strings.Builder, name string, attrs []xml.Attr) {
	sb.WriteString("<")
	sb.WriteString(name)
	for _, attr := range attrs {
		sb.WriteString(" ")
		sb.WriteString(qualifiedName(attr.Name))
		sb.WriteString(`="`)
		sb.WriteString(escapeAttr(attr.Value))
		sb.WriteString(`"`)
	}
	sb.WriteString(">")
}

// captureRaw reads the element opened by start to its matching end tag
// and returns it as a RawElement with prefixes restored.
func captureRaw(d *xml.Decoder, start xml.StartElement) (*RawElement, error) {
	name := qualifiedName(start.Name)

	var sb strings.Builder
	writeStartTag(&sb, name, start.Attr)

	depth := 1
	for depth > 0 {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			writeStartTag(&sb, qualifiedName(t.Name), t.Attr)
		case xml.EndElement:
			depth--
			sb.WriteString("</")
			sb.WriteString(qualifiedName(t.Name))
			sb.WriteString(">")
		case xml.CharData:
			sb.WriteString(escapeText(string(t)))
		}
	}

	return &RawElement{Name: name, Markup: sb.String()}, nil
}
