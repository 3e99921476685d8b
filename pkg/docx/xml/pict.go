package xml

import (
	"encoding/xml"
)

// Pict is a legacy VML drawing container (w:pict). Only the path to an
// embedded image is modeled: w:pict → v:shape | v:rect → v:imagedata.
// Every level is optional.
type Pict struct {
	Shape *Shape
	Rect  *Rect
}

func (p *Pict) isRunContent() {}

func (p *Pict) localName() string { return "pict" }

func (p *Pict) decode(dec *decoder, start xml.StartElement) error {
	return dec.children(start, func(t xml.StartElement) error {
		switch t.Name.Local {
		case "shape":
			var shape Shape
			if err := shape.decode(dec, t); err != nil {
				return err
			}
			p.Shape = &shape
		case "rect":
			var rect Rect
			if err := rect.decode(dec, t); err != nil {
				return err
			}
			p.Rect = &rect
		default:
			return dec.drop(start, t)
		}
		return nil
	})
}

// UnmarshalXML implements xml.Unmarshaler.
func (p *Pict) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	return p.decode(ownedDecoder(d), start)
}

// MarshalXML implements custom XML marshaling for Pict
func (p Pict) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start = xml.StartElement{Name: wname("pict")}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if p.Shape != nil {
		if err := e.EncodeElement(p.Shape, xml.StartElement{Name: xml.Name{Local: "v:shape"}}); err != nil {
			return err
		}
	}
	if p.Rect != nil {
		if err := e.EncodeElement(p.Rect, xml.StartElement{Name: xml.Name{Local: "v:rect"}}); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}

// ImageData returns the first image reference of the drawing, or nil.
func (p *Pict) ImageData() *ImageData {
	if p.Shape != nil && p.Shape.ImageData != nil {
		return p.Shape.ImageData
	}
	if p.Rect != nil && p.Rect.ImageData != nil {
		return p.Rect.ImageData
	}
	return nil
}

// Shape is a VML shape (v:shape)
type Shape struct {
	ID        string
	Style     string
	ImageData *ImageData
}

func (s *Shape) decode(dec *decoder, start xml.StartElement) error {
	s.ID, _ = attrValue(start, "id")
	s.Style, _ = attrValue(start, "style")
	data, err := decodeImageDataChild(dec, start)
	s.ImageData = data
	return err
}

// MarshalXML implements custom XML marshaling for Shape
func (s Shape) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	attrs := appendString(nil, "id", s.ID)
	attrs = appendString(attrs, "style", s.Style)
	return encodeImageDataParent(e, xml.StartElement{Name: xml.Name{Local: "v:shape"}, Attr: attrs}, s.ImageData)
}

// Rect is a VML rectangle (v:rect)
type Rect struct {
	ImageData *ImageData
}

func (r *Rect) decode(dec *decoder, start xml.StartElement) error {
	data, err := decodeImageDataChild(dec, start)
	r.ImageData = data
	return err
}

// MarshalXML implements custom XML marshaling for Rect
func (r Rect) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	return encodeImageDataParent(e, xml.StartElement{Name: xml.Name{Local: "v:rect"}}, r.ImageData)
}

// ImageData references an image part (v:imagedata). RelID is a relationship
// id of the containing part; it is resolved by the package, never owned here.
type ImageData struct {
	RelID string
	Title string
}

func decodeImageDataChild(dec *decoder, start xml.StartElement) (*ImageData, error) {
	var data *ImageData
	err := dec.children(start, func(t xml.StartElement) error {
		if t.Name.Local != "imagedata" {
			return dec.drop(start, t)
		}
		data = &ImageData{}
		data.RelID, _ = attrValue(t, "id")
		data.Title, _ = attrValue(t, "title")
		return dec.skip(t)
	})
	return data, err
}

func encodeImageDataParent(e *xml.Encoder, start xml.StartElement, data *ImageData) error {
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	if data != nil {
		attrs := appendString(nil, "r:id", data.RelID)
		attrs = appendString(attrs, "o:title", data.Title)
		if err := encodeLeaf(e, "v:imagedata", attrs...); err != nil {
			return err
		}
	}
	return e.EncodeToken(start.End())
}
