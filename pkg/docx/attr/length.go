package attr

import (
	"math"
	"strconv"
	"strings"
)

// lengthUnits lists the unit suffixes tolerated on length attributes.
// stripUnit removes the longest one that matches.
var lengthUnits = []string{"pt", "cm", "mm", "in", "pc", "pi", "em", "%"}

// stripUnit removes one trailing unit suffix after trimming whitespace.
func stripUnit(s string) string {
	s = strings.TrimSpace(s)
	best := ""
	for _, unit := range lengthUnits {
		if len(unit) > len(best) && strings.HasSuffix(s, unit) {
			best = unit
		}
	}
	if best == "" {
		return s
	}
	return strings.TrimSpace(strings.TrimSuffix(s, best))
}

// DecodeLength parses a length attribute such as "240", "12.4pt" or " 1.5 cm ".
// The unit is discarded, the number is rounded half away from zero.
func DecodeLength(s string) (int, error) {
	num := stripUnit(s)
	if isHexFloat(num) {
		return 0, &Error{Type: "length", Value: s, Err: ErrInvalidNumber}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &Error{Type: "length", Value: s, Err: ErrInvalidNumber}
	}
	r := math.Round(f)
	if r < math.MinInt64 || r >= math.MaxInt64 || int64(int(r)) != int64(r) {
		return 0, &Error{Type: "length", Value: s, Err: ErrInvalidNumber}
	}
	return int(r), nil
}

// isHexFloat reports whether s uses the 0x float syntax, which ParseFloat
// accepts but decimal lengths never use.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// EncodeLength renders a length as a plain decimal integer.
func EncodeLength(v int) string {
	return strconv.Itoa(v)
}
