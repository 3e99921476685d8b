package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/benjaminschreck/go-docxmodel/pkg/docx/attr"
)

// DecodeOptions tunes DecodeDocument and Decode.
type DecodeOptions struct {
	// OnDrop, when set, is called for every child element the model does not
	// declare. The child is skipped and will not be written back.
	OnDrop func(parent, child xml.Name)
}

// element is implemented by every node that can be decoded on its own.
type element interface {
	localName() string
	decode(dec *decoder, start xml.StartElement) error
}

// decoder wraps an encoding/xml decoder. When src is set it is the exact
// input of d, and text leaves are borrowed from it.
type decoder struct {
	d    *xml.Decoder
	src  []byte
	opts DecodeOptions
}

func newDecoder(src []byte, opts []DecodeOptions) *decoder {
	dec := &decoder{
		d:   xml.NewDecoder(bytes.NewReader(src)),
		src: src,
	}
	if len(opts) > 0 {
		dec.opts = opts[0]
	}
	return dec
}

// ownedDecoder adapts a foreign decoder; every text leaf is copied.
func ownedDecoder(d *xml.Decoder) *decoder {
	return &decoder{d: d}
}

// Decode parses the first element of src as a T. The root element must be
// the one T models. Text leaves borrow from src.
func Decode[T any, P interface {
	*T
	element
}](src []byte, opts ...DecodeOptions) (*T, error) {
	dec := newDecoder(src, opts)
	v := P(new(T))
	for {
		tok, err := dec.d.Token()
		if err == io.EOF {
			return nil, &DecodeError{Element: v.localName(), Err: io.ErrUnexpectedEOF}
		}
		if err != nil {
			return nil, &DecodeError{Element: v.localName(), Err: err}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != v.localName() {
			return nil, &DecodeError{Element: start.Name.Local, Err: fmt.Errorf("%w: want <%s>", ErrUnexpectedElement, v.localName())}
		}
		if err := v.decode(dec, start); err != nil {
			return nil, err
		}
		return (*T)(v), nil
	}
}

// children calls fn for every direct child element of start until the
// matching end element. fn must consume the child completely.
func (dec *decoder) children(start xml.StartElement, fn func(child xml.StartElement) error) error {
	for {
		tok, err := dec.d.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return &DecodeError{Element: start.Name.Local, Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if err := fn(t); err != nil {
				return err
			}
		case xml.EndElement:
			return nil
		}
	}
}

// drop skips an undeclared child and reports it.
func (dec *decoder) drop(parent, child xml.StartElement) error {
	if dec.opts.OnDrop != nil {
		dec.opts.OnDrop(parent.Name, child.Name)
	}
	if err := dec.d.Skip(); err != nil {
		return &DecodeError{Element: child.Name.Local, Err: err}
	}
	return nil
}

// readText reads the character data of a text element up to its end tag.
// A single run of character data whose raw bytes match the decoded value is
// borrowed from the source; anything else is copied.
func (dec *decoder) readText(start xml.StartElement) (Str, error) {
	var (
		text   Str
		pieces int
	)
	for {
		lo := dec.d.InputOffset()
		tok, err := dec.d.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return Str{}, &DecodeError{Element: start.Name.Local, Err: err}
		}
		switch t := tok.(type) {
		case xml.CharData:
			hi := dec.d.InputOffset()
			if pieces == 0 {
				text = dec.view(lo, hi, t)
			} else {
				text = Owned(text.String() + string(t))
			}
			pieces++
		case xml.StartElement:
			if err := dec.drop(start, t); err != nil {
				return Str{}, err
			}
		case xml.EndElement:
			return text, nil
		}
	}
}

// view borrows src[lo:hi] when it is byte-identical to data.
func (dec *decoder) view(lo, hi int64, data []byte) Str {
	if dec.src != nil && lo >= 0 && hi <= int64(len(dec.src)) && lo <= hi {
		raw := dec.src[lo:hi]
		if bytes.Equal(raw, data) {
			return borrow(raw)
		}
	}
	return Owned(string(data))
}

// attrValue finds an attribute by local name, ignoring namespace declarations.
func attrValue(start xml.StartElement, local string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" {
			continue
		}
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

func requiredAttr(start xml.StartElement, local string) (string, error) {
	v, ok := attrValue(start, local)
	if !ok {
		return "", &DecodeError{Element: start.Name.Local, Attr: local, Err: ErrMissingAttribute}
	}
	return v, nil
}

// lengthAttr decodes an optional rounded length attribute.
func lengthAttr(start xml.StartElement, local string) (*int, error) {
	v, ok := attrValue(start, local)
	if !ok {
		return nil, nil
	}
	n, err := attr.DecodeLength(v)
	if err != nil {
		return nil, &DecodeError{Element: start.Name.Local, Attr: local, Err: err}
	}
	return &n, nil
}

// requiredLength decodes a mandatory rounded length attribute.
func requiredLength(start xml.StartElement, local string) (int, error) {
	v, err := requiredAttr(start, local)
	if err != nil {
		return 0, err
	}
	n, err := attr.DecodeLength(v)
	if err != nil {
		return 0, &DecodeError{Element: start.Name.Local, Attr: local, Err: err}
	}
	return n, nil
}

// enumAttr decodes an optional enum attribute; absent yields the zero value.
func enumAttr[T comparable](start xml.StartElement, local string, codec *attr.Enum[T]) (T, error) {
	var zero T
	v, ok := attrValue(start, local)
	if !ok {
		return zero, nil
	}
	out, err := codec.Decode(v)
	if err != nil {
		return zero, &DecodeError{Element: start.Name.Local, Attr: local, Err: err}
	}
	return out, nil
}

// onOff reads a toggle element such as <w:b/> or <w:b w:val="false"/>.
func onOff(start xml.StartElement) bool {
	v, ok := attrValue(start, "val")
	if !ok {
		return true
	}
	switch v {
	case "0", "false", "off":
		return false
	}
	return true
}

func wname(local string) xml.Name {
	return xml.Name{Local: "w:" + local}
}

func wattr(local, value string) xml.Attr {
	return xml.Attr{Name: wname(local), Value: value}
}

func appendString(attrs []xml.Attr, name, value string) []xml.Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: value})
}

func appendLength(attrs []xml.Attr, local string, v *int) []xml.Attr {
	if v == nil {
		return attrs
	}
	return append(attrs, wattr(local, attr.EncodeLength(*v)))
}

func appendEnum[T comparable](attrs []xml.Attr, local string, codec *attr.Enum[T], v T) []xml.Attr {
	if s := codec.Encode(v); s != "" {
		attrs = append(attrs, wattr(local, s))
	}
	return attrs
}

// encodeLeaf writes an element without children.
func encodeLeaf(e *xml.Encoder, name string, attrs ...xml.Attr) error {
	return e.EncodeElement(struct{}{}, xml.StartElement{Name: xml.Name{Local: name}, Attr: attrs})
}

// encodeVal writes <w:name w:val="..."/>.
func encodeVal(e *xml.Encoder, local, val string) error {
	return encodeLeaf(e, "w:"+local, wattr("val", val))
}

// encodeEnumVal writes <w:name w:val="..."/>, or nothing when v is unset or
// has no literal.
func encodeEnumVal[T comparable](e *xml.Encoder, local string, codec *attr.Enum[T], v T) error {
	s := codec.Encode(v)
	if s == "" {
		return nil
	}
	return encodeVal(e, local, s)
}

// encodeInt writes <w:name w:val="n"/>.
func encodeInt(e *xml.Encoder, local string, n int) error {
	return encodeVal(e, local, strconv.Itoa(n))
}

// skip consumes a declared element whose content is not modeled.
func (dec *decoder) skip(start xml.StartElement) error {
	if err := dec.d.Skip(); err != nil {
		return &DecodeError{Element: start.Name.Local, Err: err}
	}
	return nil
}
