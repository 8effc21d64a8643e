package xml

import (
	"encoding/xml"
	"strings"
)

// TableChild is an ordered child of a table: a TableRow or a RawElement
// (bookmarks, range markers between rows).
type TableChild interface {
	isTableChild()
}

// RowChild is an ordered child of a table row: a TableCell or a
// RawElement.
type RowChild interface {
	isRowChild()
}

// Table represents a table in the document body or inside a cell.
// Rows and uninterpreted markup between them keep their source order in
// Children; tblPr and tblGrid are held separately since the schema pins
// them to the front.
type Table struct {
	Attrs      []xml.Attr
	Properties *RawElement // w:tblPr, verbatim
	Grid       *RawElement // w:tblGrid, verbatim
	Children   []TableChild
}

func (t Table) isBodyElement() {}

// TableRow represents a table row. Cells and uninterpreted markup keep
// their source order in Children.
type TableRow struct {
	Attrs      []xml.Attr
	Properties *RawElement // w:trPr, verbatim
	Children   []RowChild
}

func (r TableRow) isTableChild() {}

// TableCell represents a table cell. Its content is an ordered list of
// body elements: paragraphs, nested tables, and raw markup.
type TableCell struct {
	Attrs      []xml.Attr
	Properties *RawElement // w:tcPr, verbatim
	Elements   []BodyElement
}

func (c TableCell) isRowChild() {}

func parseTable(d *xml.Decoder, start xml.StartElement) (*Table, error) {
	table := &Table{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tblPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				table.Properties = raw
			case "tblGrid":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				table.Grid = raw
			case "tr":
				row, err := parseTableRow(d, t)
				if err != nil {
					return nil, err
				}
				table.Children = append(table.Children, row)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				table.Children = append(table.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tbl" {
				return table, nil
			}
		}
	}
}

func parseTableRow(d *xml.Decoder, start xml.StartElement) (*TableRow, error) {
	row := &TableRow{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "trPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				row.Properties = raw
			case "tc":
				cell, err := parseTableCell(d, t)
				if err != nil {
					return nil, err
				}
				row.Children = append(row.Children, cell)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				row.Children = append(row.Children, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tr" {
				return row, nil
			}
		}
	}
}

func parseTableCell(d *xml.Decoder, start xml.StartElement) (*TableCell, error) {
	cell := &TableCell{Attrs: start.Attr}
	for {
		tok, err := d.Token()
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tcPr":
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				cell.Properties = raw
			case "p":
				para, err := parseParagraph(d, t)
				if err != nil {
					return nil, err
				}
				cell.Elements = append(cell.Elements, para)
			case "tbl":
				nested, err := parseTable(d, t)
				if err != nil {
					return nil, err
				}
				cell.Elements = append(cell.Elements, nested)
			default:
				raw, err := captureRaw(d, t)
				if err != nil {
					return nil, err
				}
				cell.Elements = append(cell.Elements, raw)
			}
		case xml.EndElement:
			if t.Name.Local == "tc" {
				return cell, nil
			}
		}
	}
}

// Rows returns the table's rows in order.
func (t *Table) Rows() []*TableRow {
	var rows []*TableRow
	for _, c := range t.Children {
		if r, ok := c.(*TableRow); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

// Cells returns the row's cells in order.
func (r *TableRow) Cells() []*TableCell {
	var cells []*TableCell
	for _, c := range r.Children {
		if cell, ok := c.(*TableCell); ok {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Paragraphs returns the cell's direct paragraphs in order. Paragraphs
// of tables nested inside the cell are not included.
func (c *TableCell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range c.Elements {
		if p, ok := el.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

func (t *Table) writeXML(sb *strings.Builder) {
	writeStartTag(sb, "w:tbl", t.Attrs)
	if t.Properties != nil {
		t.Properties.writeXML(sb)
	}
	if t.Grid != nil {
		t.Grid.writeXML(sb)
	}
	for _, c := range t.Children {
		switch child := c.(type) {
		case *TableRow:
			child.writeXML(sb)
		case *RawElement:
			child.writeXML(sb)
		}
	}
	sb.WriteString("</w:tbl>")
}

func (r *TableRow) writeXML(sb *strings.Builder) {
	writeStartTag(sb, "w:tr", r.Attrs)
	if r.Properties != nil {
		r.Properties.writeXML(sb)
	}
	for _, c := range r.Children {
		switch child := c.(type) {
		case *TableCell:
			child.writeXML(sb)
		case *RawElement:
			child.writeXML(sb)
		}
	}
	sb.WriteString("</w:tr>")
}

func (c *TableCell) writeXML(sb *strings.Builder) {
	writeStartTag(sb, "w:tc", c.Attrs)
	if c.Properties != nil {
		c.Properties.writeXML(sb)
	}
	for _, el := range c.Elements {
		switch e := el.(type) {
		case *Paragraph:
			e.writeXML(sb)
		case *Table:
			e.writeXML(sb)
		case *RawElement:
			e.writeXML(sb)
		}
	}
	sb.WriteString("</w:tc>")
}
