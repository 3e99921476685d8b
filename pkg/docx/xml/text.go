package xml

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Str is the storage of a text leaf. It is either borrowed, a view into the
// buffer the tree was decoded from, or owned. The zero value is an empty
// owned string.
type Str struct {
	s        string
	borrowed bool
}

// Owned returns an owned Str holding a private copy of s.
func Owned(s string) Str {
	return Str{s: strings.Clone(s)}
}

// borrow returns a Str viewing b without copying. b must not be modified
// while the Str is borrowed.
func borrow(b []byte) Str {
	if len(b) == 0 {
		return Str{}
	}
	return Str{s: unsafe.String(&b[0], len(b)), borrowed: true}
}

// String returns the text. For a borrowed Str the result shares memory with
// the source buffer.
func (s Str) String() string {
	return s.s
}

// Len returns the length of the text in bytes.
func (s Str) Len() int {
	return len(s.s)
}

// Borrowed reports whether the text is still a view into a source buffer.
func (s Str) Borrowed() bool {
	return s.borrowed
}

// Set replaces the text with an owned copy of v. It fails with ErrInvalidText
// when v is not valid UTF-8 or contains characters XML 1.0 does not allow,
// leaving the previous text in place.
func (s *Str) Set(v string) error {
	if !ValidText(v) {
		return ErrInvalidText
	}
	s.s = strings.Clone(v)
	s.borrowed = false
	return nil
}

// IntoOwned copies borrowed text so it no longer references the source buffer.
func (s *Str) IntoOwned() {
	if !s.borrowed {
		return
	}
	s.s = strings.Clone(s.s)
	s.borrowed = false
}

// ValidText reports whether v can be stored in an XML 1.0 text node.
func ValidText(v string) bool {
	if !utf8.ValidString(v) {
		return false
	}
	for _, r := range v {
		if !isXMLChar(r) {
			return false
		}
	}
	return true
}

func isXMLChar(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// needsPreserve reports whether Word would trim the text without xml:space="preserve".
func needsPreserve(s string) bool {
	if s == "" {
		return false
	}
	first, last := s[0], s[len(s)-1]
	return first == ' ' || first == '\t' || first == '\n' ||
		last == ' ' || last == '\t' || last == '\n'
}
