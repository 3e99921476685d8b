// Package attr converts WordprocessingML attribute literals to typed values and back.
//
// Two families are covered:
//
//   - Rounded lengths: producers in the wild attach unit suffixes (pt, cm, mm,
//     in, pc, pi, em, %) and fractional parts to attributes the schema declares
//     as plain integers. DecodeLength accepts those forms and rounds to the
//     nearest integer; EncodeLength always writes a bare decimal integer.
//   - Closed enumerations: Enum maps a fixed set of Go constants to their
//     literal attribute strings. Decoding an unknown literal fails.
//
// Decoding is permissive, encoding is canonical, so a value is stable after
// its first decode.
package attr
