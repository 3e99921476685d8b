package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Document represents the main document part (w:document)
type Document struct {
	// Attrs preserves the root attributes (namespace declarations, mc:Ignorable)
	// in the literal prefixed form they are written back with.
	Attrs []xml.Attr
	Body  *Body
}

// NewDocument returns an empty document with the default namespace declarations.
func NewDocument() *Document {
	return &Document{
		Attrs: DefaultNamespaces(),
		Body:  &Body{},
	}
}

// Push appends a paragraph or table to the body.
func (doc *Document) Push(content BodyContent) *Document {
	if doc.Body == nil {
		doc.Body = &Body{}
	}
	doc.Body.Content = append(doc.Body.Content, content)
	return doc
}

func (doc *Document) localName() string { return "document" }

func (doc *Document) decode(dec *decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		doc.Attrs = append(doc.Attrs, rootAttr(a))
	}
	doc.declarePrefixes()
	return dec.children(start, func(t xml.StartElement) error {
		if t.Name.Local != "body" {
			return dec.drop(start, t)
		}
		var body Body
		if err := body.decode(dec, t); err != nil {
			return err
		}
		doc.Body = &body
		return nil
	})
}

// UnmarshalXML implements custom XML unmarshaling to preserve root attributes.
// Text is copied; use DecodeDocument to borrow it.
func (doc *Document) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return doc.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for Document
func (doc Document) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("document"), Attr: doc.Attrs}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if doc.Body != nil {
		if err := e.EncodeElement(doc.Body, xml.StartElement{Name: wname("body")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// Body represents the document body
type Body struct {
	// Content maintains the order of paragraphs and tables
	Content []BodyContent
	// SectionProperties at the end of the body (critical for Word compatibility)
	SectionProperties *SectionProperties
}

func (b *Body) localName() string { return "body" }

func (b *Body) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		var content interface {
			BodyContent
			element
		}
		switch t.Name.Local {
		case "p":
			content = &Paragraph{}
		case "tbl":
			content = &Table{}
		case "sectPr":
			var sect SectionProperties
			if err := sect.decode(dec, t); err != nil {
				return err
			}
			b.SectionProperties = &sect
			return nil
		default:
			return dec.drop(start, t)
		}
		if err := content.decode(dec, t); err != nil {
			return err
		}
		b.Content = append(b.Content, content)
		return nil
	})
}

// UnmarshalXML implements custom XML unmarshaling to preserve element order
func (b *Body) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return b.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling to preserve element order
func (b Body) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("body")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}

	for _, content := range b.Content {
		var err error
		switch c := content.(type) {
		case *Paragraph:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("p")})
		case *Table:
			err = e.EncodeElement(c, xml.StartElement{Name: wname("tbl")})
		}
		if err != nil {
			return err
		}
	}

	if b.SectionProperties != nil {
		if err := e.EncodeElement(b.SectionProperties, xml.StartElement{Name: wname("sectPr")}); err != nil {
			return err
		}
	}

	return e.EncodeToken(start.End())
}

// DecodeDocument parses a main document part held in src. Text leaves borrow
// from src, so src must not be modified while the tree is in use unless
// IntoOwned is called first.
func DecodeDocument(src []byte, opts ...DecodeOptions) (*Document, error) {
	doc, err := Decode[Document](src, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// ParseDocument parses a Word document XML. The input is read into a private
// buffer that the returned tree borrows from.
func ParseDocument(r io.Reader, opts ...DecodeOptions) (*Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return DecodeDocument(src, opts...)
}

// EncodeDocument writes doc, preceded by the XML declaration, to w.
func EncodeDocument(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return &EncodeError{Element: "document", Err: err}
	}
	enc := xml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return &EncodeError{Element: "document", Err: err}
	}
	if err := enc.Close(); err != nil {
		return &EncodeError{Element: "document", Err: err}
	}
	return nil
}

// Marshal returns the encoded document, including the XML declaration.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
