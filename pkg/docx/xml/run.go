package xml

import (
	"encoding/xml"
	"strings"

	"github.com/benjaminschreck/go-docxmodel/pkg/docx/attr"
)

// Run represents a run of text with common properties
type Run struct {
	Properties *RunProperties
	// Content keeps the leaves in document order
	Content []RunContent
}

// NewRun returns an empty run.
func NewRun() *Run {
	return &Run{}
}

// AddText appends a w:t leaf.
func (r *Run) AddText(s string) *Run {
	r.Content = append(r.Content, NewText(s))
	return r
}

// AddDeletedText appends a w:delText leaf.
func (r *Run) AddDeletedText(s string) *Run {
	r.Content = append(r.Content, &DelText{Text: Owned(s), Preserve: needsPreserve(s)})
	return r
}

// AddTab appends a w:tab leaf.
func (r *Run) AddTab() *Run {
	r.Content = append(r.Content, &Tab{})
	return r
}

// AddBreak appends a w:br leaf. BreakUnset writes a plain line break.
func (r *Run) AddBreak(t attr.BreakType) *Run {
	r.Content = append(r.Content, &Break{Type: t})
	return r
}

// AddContent appends any run leaf.
func (r *Run) AddContent(c RunContent) *Run {
	r.Content = append(r.Content, c)
	return r
}

// WithProperties sets the run properties.
func (r *Run) WithProperties(p *RunProperties) *Run {
	r.Properties = p
	return r
}

func (r *Run) isParagraphContent() {}

func (r *Run) localName() string { return "r" }

func (r *Run) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "rPr":
			var props RunProperties
			if err := props.decode(dec, t); err != nil {
				return err
			}
			r.Properties = &props
		case "t":
			text, preserve, err := decodeTextLeaf(dec, t)
			if err != nil {
				return err
			}
			r.Content = append(r.Content, &Text{Text: text, Preserve: preserve})
		case "delText":
			text, preserve, err := decodeTextLeaf(dec, t)
			if err != nil {
				return err
			}
			r.Content = append(r.Content, &DelText{Text: text, Preserve: preserve})
		case "tab":
			r.Content = append(r.Content, &Tab{})
			return dec.skip(t)
		case "br":
			typ, err := enumAttr(t, "type", attr.Break)
			if err != nil {
				return err
			}
			r.Content = append(r.Content, &Break{Type: typ})
			return dec.skip(t)
		case "cr":
			r.Content = append(r.Content, &CarriageReturn{})
			return dec.skip(t)
		case "pict":
			var pict Pict
			if err := pict.decode(dec, t); err != nil {
				return err
			}
			r.Content = append(r.Content, &pict)
		default:
			return dec.drop(start, t)
		}
		return nil
	})
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (r *Run) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return r.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for Run to ensure proper namespacing
func (r Run) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("r")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if r.Properties != nil {
		if err := e.EncodeElement(r.Properties, xml.StartElement{Name: wname("rPr")}); err != nil {
			return err
		}
	}

	for _, content := range r.Content {
		var err error
		switch c := content.(type) {
		case *Text:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("t")})
		case *DelText:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("delText")})
		case *Tab:
			err = encodeLeaf(e, "w:tab")
		case *Break:
			err = encodeLeaf(e, "w:br", appendEnum(nil, "type", attr.Break, c.Type)...)
		case *CarriageReturn:
			err = encodeLeaf(e, "w:cr")
		case *Pict:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("pict")})
		}
		if err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// GetText returns the concatenated text of the run. Tabs and breaks are
// rendered as "\t" and "\n"; deleted text is left out.
func (r *Run) GetText() string {
	var sb strings.Builder
	for _, content := range r.Content {
		switch c := content.(type) {
		case *Text:
			sb.WriteString(c.Text.String())
		case *Tab:
			sb.WriteByte('\t')
		case *Break, *CarriageReturn:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Text represents visible text content (w:t)
type Text struct {
	Text     Str
	Preserve bool
}

// NewText returns a w:t leaf owning s.
func NewText(s string) *Text {
	return &Text{Text: Owned(s), Preserve: needsPreserve(s)}
}

func (t *Text) isRunContent() {}

// MarshalXML implements custom XML marshaling for Text to ensure proper namespacing
func (t Text) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeTextLeaf(e, "w:t", t.Text, t.Preserve)
}

// DelText represents text removed in a tracked deletion (w:delText)
type DelText struct {
	Text     Str
	Preserve bool
}

func (t *DelText) isRunContent() {}

// MarshalXML implements custom XML marshaling for DelText
func (t DelText) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeTextLeaf(e, "w:delText", t.Text, t.Preserve)
}

func decodeTextLeaf(dec *decoder, start xml.StartElement) (Str, bool, error) {
	space, _ := attrValue(start, "space")
	text, err := dec.readText(start)
	if err != nil {
		return Str{}, false, err
	}
	return text, space == "preserve" || needsPreserve(text.String()), nil
}

func encodeTextLeaf(e *xml.Encoder, name string, text Str, preserve bool) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if preserve || needsPreserve(text.String()) {
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Space: NamespaceXML, Local: "space"},
			Value: "preserve",
		})
	}
	// Encoding the string directly avoids copying borrowed text.
	return e.EncodeElement(text.String(), start)
}

// Tab represents a tab character (w:tab)
type Tab struct{}

func (t *Tab) isRunContent() {}

// Break represents a line, column or page break (w:br)
type Break struct {
	Type attr.BreakType
}

func (b *Break) isRunContent() {}

// CarriageReturn represents a carriage return (w:cr)
type CarriageReturn struct{}

func (c *CarriageReturn) isRunContent() {}

// RunProperties represents run formatting properties
type RunProperties struct {
	Style     *StyleRef
	Font      *Font
	Bold      bool
	Italic    bool
	Strike    bool
	Color     string
	Size      *int // half-points
	Underline string
}

func (p *RunProperties) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "rStyle":
			style, err := decodeStyleRef(t)
			if err != nil {
				return err
			}
			p.Style = style
		case "rFonts":
			ascii, _ := attrValue(t, "ascii")
			hAnsi, _ := attrValue(t, "hAnsi")
			p.Font = &Font{ASCII: ascii, HAnsi: hAnsi}
		case "b":
			p.Bold = onOff(t)
		case "i":
			p.Italic = onOff(t)
		case "strike":
			p.Strike = onOff(t)
		case "color":
			p.Color, _ = attrValue(t, "val")
		case "sz":
			size, err := lengthAttr(t, "val")
			if err != nil {
				return err
			}
			p.Size = size
		case "u":
			p.Underline, _ = attrValue(t, "val")
		default:
			return dec.drop(start, t)
		}
		return dec.skip(t)
	})
}

// UnmarshalXML implements xml.Unmarshaler.
func (p *RunProperties) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for RunProperties
func (p RunProperties) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("rPr")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	if p.Style != nil {
		if err := e.EncodeElement(p.Style, xml.StartElement{Name: wname("rStyle")}); err != nil {
			return err
		}
	}
	if p.Font != nil {
		attrs := appendString(nil, "w:ascii", p.Font.ASCII)
		attrs = appendString(attrs, "w:hAnsi", p.Font.HAnsi)
		if err := encodeLeaf(e, "w:rFonts", attrs...); err != nil {
			return err
		}
	}
	// Output toggles as empty elements
	toggles := []struct {
		name string
		on   bool
	}{
		{"w:b", p.Bold},
		{"w:i", p.Italic},
		{"w:strike", p.Strike},
	}
	for _, tg := range toggles {
		if !tg.on {
			continue
		}
		if err := encodeLeaf(e, tg.name); err != nil {
			return err
		}
	}
	if p.Color != "" {
		if err := encodeVal(e, "color", p.Color); err != nil {
			return err
		}
	}
	if p.Size != nil {
		if err := encodeInt(e, "sz", *p.Size); err != nil {
			return err
		}
	}
	if p.Underline != "" {
		if err := encodeVal(e, "u", p.Underline); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// Font represents font information
type Font struct {
	ASCII string
	HAnsi string
}
