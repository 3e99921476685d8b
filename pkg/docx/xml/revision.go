package xml

import (
	"encoding/xml"
	"strings"
)

// Revision holds the tracked-change metadata shared by w:ins and w:del.
// All fields are optional.
type Revision struct {
	ID     string
	Author string
	Date   string
}

func (r *Revision) decodeAttrs(start xml.StartElement) {
	r.ID, _ = attrValue(start, "id")
	r.Author, _ = attrValue(start, "author")
	r.Date, _ = attrValue(start, "date")
}

func (r Revision) attrs() []xml.Attr {
	attrs := appendString(nil, "w:id", r.ID)
	attrs = appendString(attrs, "w:author", r.Author)
	return appendString(attrs, "w:date", r.Date)
}

// Insertion represents inserted content in track changes (w:ins)
type Insertion struct {
	Revision
	Runs []Run
}

// NewInsertion returns an insertion attributed to author.
func NewInsertion(author string, runs ...Run) *Insertion {
	return &Insertion{Revision: Revision{Author: author}, Runs: runs}
}

func (i *Insertion) isParagraphContent() {}

func (i *Insertion) localName() string { return "ins" }

func (i *Insertion) decode(dec *decoder, start xml.StartElement) error {
	i.decodeAttrs(start)
	runs, err := decodeRuns(dec, start)
	i.Runs = runs
	return err
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (i *Insertion) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return i.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for Insertion
func (i Insertion) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRuns(e, xml.StartElement{Name: wname("ins"), Attr: i.attrs()}, i.Runs)
}

// GetText returns the inserted text.
func (i *Insertion) GetText() string {
	var sb strings.Builder
	for j := range i.Runs {
		sb.WriteString(i.Runs[j].GetText())
	}
	return sb.String()
}

// Deletion represents deleted content in track changes (w:del).
// The removed text lives in w:delText leaves of its runs.
type Deletion struct {
	Revision
	Runs []Run
}

// NewDeletion returns a deletion attributed to author.
func NewDeletion(author string, runs ...Run) *Deletion {
	return &Deletion{Revision: Revision{Author: author}, Runs: runs}
}

func (d *Deletion) isParagraphContent() {}

func (d *Deletion) localName() string { return "del" }

func (d *Deletion) decode(dec *decoder, start xml.StartElement) error {
	d.decodeAttrs(start)
	runs, err := decodeRuns(dec, start)
	d.Runs = runs
	return err
}

// UnmarshalXML implements xml.Unmarshaler; text is copied.
func (d *Deletion) UnmarshalXML(dc *xml.Decoder, start xml.StartElement) error {
	return d.decode(ownedDecoder(dc), start)
}

// MarshalXML implements custom XML marshaling for Deletion
func (d Deletion) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeRuns(e, xml.StartElement{Name: wname("del"), Attr: d.attrs()}, d.Runs)
}

// GetText returns the deleted text.
func (d *Deletion) GetText() string {
	var sb strings.Builder
	for _, run := range d.Runs {
		for _, content := range run.Content {
			if dt, ok := content.(*DelText); ok {
				sb.WriteString(dt.Text.String())
			}
		}
	}
	return sb.String()
}

// decodeRuns reads the w:r children of a run container; other children are dropped.
func decodeRuns(dec *decoder, start xml.StartElement) ([]Run, error) {
	var runs []Run
	err := dec.children(start, func(t xml.StartElement) error {
		if t.Name.Local != "r" {
			return dec.drop(start, t)
		}
		var run Run
		if err := run.decode(dec, t); err != nil {
			return err
		}
		runs = append(runs, run)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func encodeRuns(e *xml.Encoder, start xml.StartElement, runs []Run) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	for i := range runs {
		if err := e.EncodeElement(&runs[i], xml.StartElement{Name: wname("r")}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
