package xml

import (
	"encoding/xml"
	"strings"
)

// Hyperlink represents a hyperlink in the document. RelID is a relationship
// id of the containing part; Anchor targets a bookmark instead.
type Hyperlink struct {
	RelID   string
	Anchor  string
	History string
	Runs    []Run
}

func (h *Hyperlink) isParagraphContent() {}

func (h *Hyperlink) localName() string { return "hyperlink" }

func (h *Hyperlink) decode(dec *decoder, start xml.StartElement) error {
	h.RelID, _ = attrValue(start, "id")
	h.Anchor, _ = attrValue(start, "anchor")
	h.History, _ = attrValue(start, "history")
	runs, err := decodeRuns(dec, start)
	h.Runs = runs
	return err
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (h *Hyperlink) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return h.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for Hyperlink to ensure proper namespacing
func (h Hyperlink) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	attrs := appendString(nil, "r:id", h.RelID)
	attrs = appendString(attrs, "w:anchor", h.Anchor)
	attrs = appendString(attrs, "w:history", h.History)
	return encodeRuns(e, xml.StartElement{Name: wname("hyperlink"), Attr: attrs}, h.Runs)
}

// GetText returns the concatenated text of all runs in a hyperlink
func (h *Hyperlink) GetText() string {
	var sb strings.Builder
	for i := range h.Runs {
		sb.WriteString(h.Runs[i].GetText())
	}
	return sb.String()
}
