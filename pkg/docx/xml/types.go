package xml

import (
	"encoding/xml"
)

// Node is any part of the content tree that can hold text leaves.
// The method set is closed to this package; see walk.go.
type Node interface {
	walkText(yield func(*Str) bool) bool
}

// BodyContent is an element of the document body: *Paragraph or *Table.
type BodyContent interface {
	Node
	isBodyContent()
}

// ParagraphContent is an inline element of a paragraph: *Run, *Insertion,
// *Deletion or *Hyperlink.
type ParagraphContent interface {
	Node
	isParagraphContent()
}

// TableCellContent is a block inside a table cell: *Paragraph or *Table.
type TableCellContent interface {
	Node
	isTableCellContent()
}

// RunContent is a leaf of a run: *Text, *DelText, *Tab, *Break,
// *CarriageReturn or *Pict.
type RunContent interface {
	Node
	isRunContent()
}

// StyleRef references a style by id (w:pStyle, w:rStyle, w:tblStyle).
type StyleRef struct {
	Val string
}

func decodeStyleRef(start xml.StartElement) (*StyleRef, error) {
	v, err := requiredAttr(start, "val")
	if err != nil {
		return nil, err
	}
	return &StyleRef{Val: v}, nil
}

// MarshalXML implements custom XML marshaling for StyleRef
func (s StyleRef) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	// The element name depends on the context (pStyle, rStyle, tblStyle)
	// so we keep the provided name
	start.Attr = []xml.Attr{wattr("val", s.Val)}
	return e.EncodeElement(struct{}{}, start)
}
