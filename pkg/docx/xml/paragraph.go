package xml

import (
	"encoding/xml"
	"strings"

	"github.com/benjaminschreck/go-docxmodel/pkg/docx/attr"
)

// Paragraph represents a paragraph in the document
type Paragraph struct {
	Properties *ParagraphProperties
	// Content maintains the order of runs, revisions and hyperlinks
	Content []ParagraphContent
}

// NewParagraph returns an empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{}
}

// AddText appends a run holding a single w:t leaf.
func (p *Paragraph) AddText(s string) *Paragraph {
	return p.AddRun(NewRun().AddText(s))
}

// AddRun appends a run.
func (p *Paragraph) AddRun(r *Run) *Paragraph {
	p.Content = append(p.Content, r)
	return p
}

// Push appends any inline content.
func (p *Paragraph) Push(c ParagraphContent) *Paragraph {
	p.Content = append(p.Content, c)
	return p
}

// WithProperties sets the paragraph properties.
func (p *Paragraph) WithProperties(props *ParagraphProperties) *Paragraph {
	p.Properties = props
	return p
}

func (p *Paragraph) isBodyContent()      {}
func (p *Paragraph) isTableCellContent() {}

func (p *Paragraph) localName() string { return "p" }

func (p *Paragraph) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		var content interface {
			ParagraphContent
			element
		}
		switch t.Name.Local {
		case "pPr":
			var props ParagraphProperties
			if err := props.decode(dec, t); err != nil {
				return err
			}
			p.Properties = &props
			return nil
		case "r":
			content = &Run{}
		case "ins":
			content = &Insertion{}
		case "del":
			content = &Deletion{}
		case "hyperlink":
			content = &Hyperlink{}
		default:
			return dec.drop(start, t)
		}
		if err := content.decode(dec, t); err != nil {
			return err
		}
		p.Content = append(p.Content, content)
		return nil
	})
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (p *Paragraph) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for Paragraph to ensure proper namespacing
func (p Paragraph) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("p")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Properties != nil {
		if err := e.EncodeElement(p.Properties, xml.StartElement{Name: wname("pPr")}); err != nil {
			return err
		}
	}

	for _, content := range p.Content {
		var err error
		switch c := content.(type) {
		case *Run:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("r")})
		case *Insertion:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("ins")})
		case *Deletion:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("del")})
		case *Hyperlink:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("hyperlink")})
		}
		if err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// GetText returns the visible text of the paragraph: runs, insertions and
// hyperlinks in order. Deleted text is left out.
func (p *Paragraph) GetText() string {
	var sb strings.Builder
	for _, content := range p.Content {
		switch c := content.(type) {
		case *Run:
			sb.WriteString(c.GetText())
		case *Insertion:
			sb.WriteString(c.GetText())
		case *Hyperlink:
			sb.WriteString(c.GetText())
		}
	}
	return sb.String()
}

// ParagraphProperties represents paragraph formatting properties
type ParagraphProperties struct {
	Style         *StyleRef
	KeepNext      bool
	Spacing       *Spacing
	Indentation   *Indentation
	Justification attr.JustificationType
	// RunProperties are the paragraph mark's run properties
	RunProperties *RunProperties
}

func (p *ParagraphProperties) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "pStyle":
			style, err := decodeStyleRef(t)
			if err != nil {
				return err
			}
			p.Style = style
		case "keepNext":
			p.KeepNext = onOff(t)
		case "spacing":
			var s Spacing
			if err := s.decodeAttrs(t); err != nil {
				return err
			}
			p.Spacing = &s
		case "ind":
			var ind Indentation
			if err := ind.decodeAttrs(t); err != nil {
				return err
			}
			p.Indentation = &ind
		case "jc":
			jc, err := enumAttr(t, "val", attr.Justification)
			if err != nil {
				return err
			}
			p.Justification = jc
		case "rPr":
			var props RunProperties
			if err := props.decode(dec, t); err != nil {
				return err
			}
			p.RunProperties = &props
			return nil
		default:
			return dec.drop(start, t)
		}
		return dec.skip(t)
	})
}

// UnmarshalXML implements xml.Unmarshaler.
func (p *ParagraphProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for ParagraphProperties
func (p ParagraphProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("pPr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: wname("pStyle")}); err != nil {
			return err
		}
	}
	if p.KeepNext {
		if err := encodeLeaf(e, "w:keepNext"); err != nil {
			return err
		}
	}
	if p.Spacing != nil {
		if err := encodeLeaf(e, "w:spacing", p.Spacing.attrs()...); err != nil {
			return err
		}
	}
	if p.Indentation != nil {
		if err := encodeLeaf(e, "w:ind", p.Indentation.attrs()...); err != nil {
			return err
		}
	}
	if err := encodeEnumVal(e, "jc", attr.Justification, p.Justification); err != nil {
		return err
	}
	// Output run properties last (sets defaults for the paragraph mark)
	if p.RunProperties != nil {
		if err := e.EncodeElement(p.RunProperties, xml.StartElement{Name: wname("rPr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// Spacing represents paragraph spacing, in twentieths of a point
type Spacing struct {
	Before   *int
	After    *int
	Line     *int
	LineRule attr.LineRuleType
}

func (s *Spacing) decodeAttrs(start xml.StartElement) error {
	var err error
	if s.Before, err = lengthAttr(start, "before"); err != nil {
		return err
	}
	if s.After, err = lengthAttr(start, "after"); err != nil {
		return err
	}
	if s.Line, err = lengthAttr(start, "line"); err != nil {
		return err
	}
	s.LineRule, err = enumAttr(start, "lineRule", attr.LineRule)
	return err
}

func (s Spacing) attrs() []xml.Attr {
	attrs := appendLength(nil, "before", s.Before)
	attrs = appendLength(attrs, "after", s.After)
	attrs = appendLength(attrs, "line", s.Line)
	return appendEnum(attrs, "lineRule", attr.LineRule, s.LineRule)
}

// Indentation represents paragraph indentation, in twentieths of a point
type Indentation struct {
	Left      *int
	Right     *int
	FirstLine *int
	Hanging   *int
}

func (i *Indentation) decodeAttrs(start xml.StartElement) error {
	var err error
	if i.Left, err = lengthAttr(start, "left"); err != nil {
		return err
	}
	if i.Right, err = lengthAttr(start, "right"); err != nil {
		return err
	}
	if i.FirstLine, err = lengthAttr(start, "firstLine"); err != nil {
		return err
	}
	i.Hanging, err = lengthAttr(start, "hanging")
	return err
}

func (i Indentation) attrs() []xml.Attr {
	attrs := appendLength(nil, "left", i.Left)
	attrs = appendLength(attrs, "right", i.Right)
	attrs = appendLength(attrs, "firstLine", i.FirstLine)
	return appendLength(attrs, "hanging", i.Hanging)
}
