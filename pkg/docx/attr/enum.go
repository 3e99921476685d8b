package attr

import "sort"

// Enum is a fixed bidirectional mapping between the constants of T and their
// attribute literals. The zero value of T is reserved for "not set" and has
// no literal.
type Enum[T comparable] struct {
	name    string
	literal map[T]string
	value   map[string]T
}

// NewEnum builds an Enum from a constant → literal table.
func NewEnum[T comparable](name string, literals map[T]string) *Enum[T] {
	e := &Enum[T]{
		name:    name,
		literal: make(map[T]string, len(literals)),
		value:   make(map[string]T, len(literals)),
	}
	for v, s := range literals {
		e.literal[v] = s
		e.value[s] = v
	}
	return e
}

// Name returns the enumeration name used in error messages.
func (e *Enum[T]) Name() string {
	return e.name
}

// Decode maps a literal to its constant. Matching is exact and case sensitive.
func (e *Enum[T]) Decode(s string) (T, error) {
	v, ok := e.value[s]
	if !ok {
		var zero T
		return zero, &Error{Type: e.name, Value: s, Err: ErrUnknownEnumValue}
	}
	return v, nil
}

// Encode maps a constant to its literal. Values outside the table, including
// the zero value, encode as "".
func (e *Enum[T]) Encode(v T) string {
	return e.literal[v]
}

// Literals returns the accepted literals in sorted order.
func (e *Enum[T]) Literals() []string {
	out := make([]string, 0, len(e.value))
	for s := range e.value {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
