package attr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber is returned when a length literal is not a finite number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrUnknownEnumValue is returned when an enum literal is not in the closed set.
	ErrUnknownEnumValue = errors.New("unknown enum value")
)

// Error reports the literal that failed to decode.
type Error struct {
	Type  string
	Value string
	Err   error
}

func (e *Error) Error() string {
	if e.Type != "" {
		return fmt.Sprintf("%s: %v %q", e.Type, e.Err, e.Value)
	}
	return fmt.Sprintf("%v %q", e.Err, e.Value)
}

func (e *Error) Unwrap() error {
	return e.Err
}
