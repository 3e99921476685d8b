package xml

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAttribute is returned when a required attribute is absent.
	ErrMissingAttribute = errors.New("missing required attribute")
	// ErrUnexpectedElement is returned when a fragment root is not the requested element.
	ErrUnexpectedElement = errors.New("unexpected element")
	// ErrInvalidText is returned when text cannot be stored in an XML text node.
	ErrInvalidText = errors.New("text is not valid XML character data")
)

// DecodeError reports a malformed or unrecognized shape. Element is the local
// name of the innermost element that failed; Attr is set when an attribute
// value was at fault.
type DecodeError struct {
	Element string
	Attr    string
	Err     error
}

func (e *DecodeError) Error() string {
	if e.Attr != "" {
		return fmt.Sprintf("decode <%s> attribute %s: %v", e.Element, e.Attr, e.Err)
	}
	return fmt.Sprintf("decode <%s>: %v", e.Element, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError wraps a failure of the underlying writer.
type EncodeError struct {
	Element string
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode <%s>: %v", e.Element, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// IsDecodeError checks if an error is a decode error
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
