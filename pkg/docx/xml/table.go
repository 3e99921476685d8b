package xml

import (
	"encoding/xml"
	"strings"

	"github.com/benjaminschreck/go-docxmodel/pkg/docx/attr"
)

// Table represents a table in the document
type Table struct {
	Properties *TableProperties
	Grid       *TableGrid
	Rows       []TableRow
}

// NewTable returns a table with empty properties and grid, which Word requires.
func NewTable(rows ...TableRow) *Table {
	return &Table{
		Properties: &TableProperties{},
		Grid:       &TableGrid{},
		Rows:       rows,
	}
}

// AddRow appends a row.
func (t *Table) AddRow(row TableRow) *Table {
	t.Rows = append(t.Rows, row)
	return t
}

func (t *Table) isBodyContent()      {}
func (t *Table) isTableCellContent() {}

func (t *Table) localName() string { return "tbl" }

func (t *Table) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(c xml.StartElement) error {
		switch c.Name.Local {
		case "tblPr":
			var props TableProperties
			if err := props.decode(dec, c); err != nil {
				return err
			}
			t.Properties = &props
		case "tblGrid":
			var grid TableGrid
			if err := grid.decode(dec, c); err != nil {
				return err
			}
			t.Grid = &grid
		case "tr":
			var row TableRow
			if err := row.decode(dec, c); err != nil {
				return err
			}
			t.Rows = append(t.Rows, row)
		default:
			return dec.drop(start, c)
		}
		return nil
	})
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (t *Table) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return t.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for Table to ensure proper namespacing
func (t Table) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("tbl")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if t.Properties != nil {
		if err := e.EncodeElement(t.Properties, xml.StartElement{Name: wname("tblPr")}); err != nil {
			return err
		}
	}
	if t.Grid != nil {
		if err := e.EncodeElement(t.Grid, xml.StartElement{Name: wname("tblGrid")}); err != nil {
			return err
		}
	}
	for i := range t.Rows {
		if err := e.EncodeElement(&t.Rows[i], xml.StartElement{Name: wname("tr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// TableProperties represents table formatting properties
type TableProperties struct {
	Style         *StyleRef
	Width         *TableWidth
	Justification attr.JustificationType
	Layout        attr.TableLayoutType
}

func (p *TableProperties) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		var err error
		switch t.Name.Local {
		case "tblStyle":
			p.Style, err = decodeStyleRef(t)
		case "tblW":
			p.Width, err = decodeTableWidth(t)
		case "jc":
			p.Justification, err = enumAttr(t, "val", attr.Justification)
		case "tblLayout":
			p.Layout, err = enumAttr(t, "type", attr.TableLayout)
		default:
			return dec.drop(start, t)
		}
		if err != nil {
			return err
		}
		return dec.skip(t)
	})
}

// MarshalXML implements custom XML marshaling for TableProperties
func (p TableProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("tblPr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: wname("tblStyle")}); err != nil {
			return err
		}
	}
	if p.Width != nil {
		if err := encodeLeaf(e, "w:tblW", p.Width.attrs()...); err != nil {
			return err
		}
	}
	if err := encodeEnumVal(e, "jc", attr.Justification, p.Justification); err != nil {
		return err
	}
	if p.Layout != attr.TableLayoutUnset {
		if err := encodeLeaf(e, "w:tblLayout", appendEnum(nil, "type", attr.TableLayout, p.Layout)...); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// TableWidth represents a table or cell width (w:tblW, w:tcW)
type TableWidth struct {
	W    *int
	Type attr.WidthType
}

func decodeTableWidth(start xml.StartElement) (*TableWidth, error) {
	w, err := lengthAttr(start, "w")
	if err != nil {
		return nil, err
	}
	typ, err := enumAttr(start, "type", attr.Width)
	if err != nil {
		return nil, err
	}
	return &TableWidth{W: w, Type: typ}, nil
}

func (w TableWidth) attrs() []xml.Attr {
	attrs := appendLength(nil, "w", w.W)
	return appendEnum(attrs, "type", attr.Width, w.Type)
}

// TableGrid represents table column definitions
type TableGrid struct {
	Columns []GridColumn
}

func (g *TableGrid) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		if t.Name.Local != "gridCol" {
			return dec.drop(start, t)
		}
		w, err := requiredLength(t, "w")
		if err != nil {
			return err
		}
		g.Columns = append(g.Columns, GridColumn{Width: w})
		return dec.skip(t)
	})
}

// MarshalXML implements custom XML marshaling for TableGrid
func (g TableGrid) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("tblGrid")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for _, col := range g.Columns {
		if err := encodeLeaf(e, "w:gridCol", wattr("w", attr.EncodeLength(col.Width))); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// GridColumn represents a table column
type GridColumn struct {
	Width int
}

// TableRow represents a row in a table
type TableRow struct {
	Properties *TableRowProperties
	Cells      []TableCell
}

// NewTableRow returns a row of cells.
func NewTableRow(cells ...TableCell) TableRow {
	return TableRow{Cells: cells}
}

func (r *TableRow) localName() string { return "tr" }

func (r *TableRow) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "trPr":
			var props TableRowProperties
			if err := props.decode(dec, t); err != nil {
				return err
			}
			r.Properties = &props
		case "tc":
			var cell TableCell
			if err := cell.decode(dec, t); err != nil {
				return err
			}
			r.Cells = append(r.Cells, cell)
		default:
			return dec.drop(start, t)
		}
		return nil
	})
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (r *TableRow) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return r.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for TableRow to ensure proper namespacing
func (r TableRow) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("tr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties != nil {
		if err := e.EncodeElement(r.Properties, xml.StartElement{Name: wname("trPr")}); err != nil {
			return err
		}
	}
	for i := range r.Cells {
		if err := e.EncodeElement(&r.Cells[i], xml.StartElement{Name: wname("tc")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// TableRowProperties represents row properties
type TableRowProperties struct {
	CantSplit bool // Prevent row from splitting across pages
	Height    *RowHeight
}

func (p *TableRowProperties) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "cantSplit":
			p.CantSplit = onOff(t)
		case "trHeight":
			val, err := lengthAttr(t, "val")
			if err != nil {
				return err
			}
			rule, err := enumAttr(t, "hRule", attr.HeightRule)
			if err != nil {
				return err
			}
			p.Height = &RowHeight{Val: val, Rule: rule}
		default:
			return dec.drop(start, t)
		}
		return dec.skip(t)
	})
}

// MarshalXML implements custom XML marshaling for TableRowProperties
func (p TableRowProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("trPr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.CantSplit {
		if err := encodeLeaf(e, "w:cantSplit"); err != nil {
			return err
		}
	}
	if p.Height != nil {
		attrs := appendLength(nil, "val", p.Height.Val)
		attrs = appendEnum(attrs, "hRule", attr.HeightRule, p.Height.Rule)
		if err := encodeLeaf(e, "w:trHeight", attrs...); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// RowHeight represents row height (w:trHeight)
type RowHeight struct {
	Val  *int
	Rule attr.HeightRuleType
}

// TableCell represents a cell in a table. Content holds paragraphs and
// nested tables in order; it may be empty.
type TableCell struct {
	Properties *TableCellProperties
	Content    []TableCellContent
}

// NewTableCell returns a cell holding content.
func NewTableCell(content ...TableCellContent) TableCell {
	return TableCell{Content: content}
}

// WithProperties returns the cell with p set as its properties.
func (c TableCell) WithProperties(p *TableCellProperties) TableCell {
	c.Properties = p
	return c
}

func (c *TableCell) localName() string { return "tc" }

func (c *TableCell) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		var content interface {
			TableCellContent
			element
		}
		switch t.Name.Local {
		case "tcPr":
			var props TableCellProperties
			if err := props.decode(dec, t); err != nil {
				return err
			}
			c.Properties = &props
			return nil
		case "p":
			content = &Paragraph{}
		case "tbl":
			content = &Table{}
		default:
			return dec.drop(start, t)
		}
		if err := content.decode(dec, t); err != nil {
			return err
		}
		c.Content = append(c.Content, content)
		return nil
	})
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (c *TableCell) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return c.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for TableCell to ensure proper namespacing
func (c TableCell) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("tc")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if c.Properties != nil {
		if err := e.EncodeElement(c.Properties, xml.StartElement{Name: wname("tcPr")}); err != nil {
			return err
		}
	}
	for _, content := range c.Content {
		var err error
		switch v := content.(type) {
		case *Paragraph:
			err = e.EncodeElement(v, xml.StartElement{Name: wname("p")})
		case *Table:
			err = e.EncodeElement(v, xml.StartElement{Name: wname("tbl")})
		}
		if err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// GetText returns the text of the cell's paragraphs joined by newlines.
// Nested tables contribute their cells in reading order.
func (c *TableCell) GetText() string {
	var texts []string
	for _, content := range c.Content {
		switch v := content.(type) {
		case *Paragraph:
			if text := v.GetText(); text != "" {
				texts = append(texts, text)
			}
		case *Table:
			for i := range v.Rows {
				for j := range v.Rows[i].Cells {
					if text := v.Rows[i].Cells[j].GetText(); text != "" {
						texts = append(texts, text)
					}
				}
			}
		}
	}
	return strings.Join(texts, "\n")
}

// TableCellProperties represents cell properties
type TableCellProperties struct {
	Width         *TableWidth
	GridSpan      *int
	VMerge        *VMerge
	Shading       *Shading
	VerticalAlign attr.VerticalAlignType
}

func (p *TableCellProperties) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "tcW":
			w, err := decodeTableWidth(t)
			if err != nil {
				return err
			}
			p.Width = w
		case "gridSpan":
			span, err := requiredLength(t, "val")
			if err != nil {
				return err
			}
			p.GridSpan = &span
		case "vMerge":
			val, err := enumAttr(t, "val", attr.VMerge)
			if err != nil {
				return err
			}
			p.VMerge = &VMerge{Val: val}
		case "shd":
			var s Shading
			s.Val, _ = attrValue(t, "val")
			s.Color, _ = attrValue(t, "color")
			s.Fill, _ = attrValue(t, "fill")
			s.ThemeFill, _ = attrValue(t, "themeFill")
			p.Shading = &s
		case "vAlign":
			va, err := enumAttr(t, "val", attr.VerticalAlign)
			if err != nil {
				return err
			}
			p.VerticalAlign = va
		default:
			return dec.drop(start, t)
		}
		return dec.skip(t)
	})
}

// MarshalXML implements custom XML marshaling for TableCellProperties
func (p TableCellProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("tcPr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Width != nil {
		if err := encodeLeaf(e, "w:tcW", p.Width.attrs()...); err != nil {
			return err
		}
	}
	if p.GridSpan != nil {
		if err := encodeInt(e, "gridSpan", *p.GridSpan); err != nil {
			return err
		}
	}
	if p.VMerge != nil {
		if err := encodeLeaf(e, "w:vMerge", appendEnum(nil, "val", attr.VMerge, p.VMerge.Val)...); err != nil {
			return err
		}
	}
	if p.Shading != nil {
		if err := encodeLeaf(e, "w:shd", p.Shading.attrs()...); err != nil {
			return err
		}
	}
	if err := encodeEnumVal(e, "vAlign", attr.VerticalAlign, p.VerticalAlign); err != nil {
		return err
	}

	return e.EncodeToken(start.End())
}

// VMerge marks a vertically merged cell. An unset Val means "continue".
type VMerge struct {
	Val attr.VMergeType
}

// Shading represents cell shading
type Shading struct {
	Val       string
	Color     string
	Fill      string
	ThemeFill string
}

func (s Shading) attrs() []xml.Attr {
	attrs := appendString(nil, "w:val", s.Val)
	attrs = appendString(attrs, "w:color", s.Color)
	attrs = appendString(attrs, "w:fill", s.Fill)
	return appendString(attrs, "w:themeFill", s.ThemeFill)
}
