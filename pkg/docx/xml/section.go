package xml

import (
	"encoding/xml"
)

// SectionProperties represents the page layout of the final section (w:sectPr)
type SectionProperties struct {
	PageSize   *PageSize
	PageMargin *PageMargin
	Columns    *PageCols
}

func (s *SectionProperties) localName() string { return "sectPr" }

func (s *SectionProperties) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		var err error
		switch t.Name.Local {
		case "pgSz":
			var size PageSize
			err = size.decodeAttrs(t)
			s.PageSize = &size
		case "pgMar":
			var margin PageMargin
			err = margin.decodeAttrs(t)
			s.PageMargin = &margin
		case "cols":
			var cols PageCols
			err = cols.decodeAttrs(t)
			s.Columns = &cols
		default:
			return dec.drop(start, t)
		}
		if err != nil {
			return err
		}
		return dec.skip(t)
	})
}

// UnmarshalXML implements xml.Unmarshaler.
func (s *SectionProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return s.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for SectionProperties
func (s SectionProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("sectPr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if s.PageSize != nil {
		if err := encodeLeaf(e, "w:pgSz", s.PageSize.attrs()...); err != nil {
			return err
		}
	}
	if s.PageMargin != nil {
		if err := encodeLeaf(e, "w:pgMar", s.PageMargin.attrs()...); err != nil {
			return err
		}
	}
	if s.Columns != nil {
		if err := encodeLeaf(e, "w:cols", s.Columns.attrs()...); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// PageSize represents page dimensions in twentieths of a point (w:pgSz)
type PageSize struct {
	W      *int
	H      *int
	Orient string // "portrait" or "landscape"
}

func (p *PageSize) decodeAttrs(start xml.StartElement) error {
	var err error
	if p.W, err = lengthAttr(start, "w"); err != nil {
		return err
	}
	if p.H, err = lengthAttr(start, "h"); err != nil {
		return err
	}
	p.Orient, _ = attrValue(start, "orient")
	return nil
}

func (p PageSize) attrs() []xml.Attr {
	attrs := appendLength(nil, "w", p.W)
	attrs = appendLength(attrs, "h", p.H)
	return appendString(attrs, "w:orient", p.Orient)
}

// PageMargin represents page margins (w:pgMar). Every field is optional.
type PageMargin struct {
	Top    *int
	Right  *int
	Bottom *int
	Left   *int
	Header *int
	Footer *int
	Gutter *int
}

func (m *PageMargin) fields() []struct {
	name string
	v    **int
} {
	return []struct {
		name string
		v    **int
	}{
		{"top", &m.Top},
		{"right", &m.Right},
		{"bottom", &m.Bottom},
		{"left", &m.Left},
		{"header", &m.Header},
		{"footer", &m.Footer},
		{"gutter", &m.Gutter},
	}
}

func (m *PageMargin) decodeAttrs(start xml.StartElement) error {
	for _, f := range m.fields() {
		v, err := lengthAttr(start, f.name)
		if err != nil {
			return err
		}
		*f.v = v
	}
	return nil
}

func (m PageMargin) attrs() []xml.Attr {
	var attrs []xml.Attr
	for _, f := range m.fields() {
		attrs = appendLength(attrs, f.name, *f.v)
	}
	return attrs
}

// PageCols represents the column layout of a section (w:cols)
type PageCols struct {
	Space *int
	Num   *int
}

func (c *PageCols) decodeAttrs(start xml.StartElement) error {
	var err error
	if c.Space, err = lengthAttr(start, "space"); err != nil {
		return err
	}
	c.Num, err = lengthAttr(start, "num")
	return err
}

func (c PageCols) attrs() []xml.Attr {
	attrs := appendLength(nil, "space", c.Space)
	return appendLength(attrs, "num", c.Num)
}
