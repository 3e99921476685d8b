package docx

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/benjaminschreck/go-docxmodel/pkg/docx/xml"
)

// Replacement is one search string and the text that replaces it.
type Replacement struct {
	Old string `mapstructure:"old"`
	New string `mapstructure:"new"`
}

// Dictionary is an ordered list of replacements. Entries are applied one
// after another in list order.
type Dictionary []Replacement

// NewDictionary builds a dictionary from old, new pairs.
func NewDictionary(pairs ...string) (Dictionary, error) {
	if len(pairs)%2 == 1 {
		return nil, fmt.Errorf("odd number of arguments: missing replacement for %q", pairs[len(pairs)-1])
	}
	dict := make(Dictionary, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		dict = append(dict, Replacement{Old: pairs[i], New: pairs[i+1]})
	}
	if err := dict.Validate(); err != nil {
		return nil, err
	}
	return dict, nil
}

// DictionaryFromMap builds a dictionary from m. Keys listed in order come
// first, in that order; the remaining keys follow sorted, so the result is
// deterministic. Keys in order that are missing from m are ignored.
func DictionaryFromMap(m map[string]string, order []string) (Dictionary, error) {
	dict := make(Dictionary, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, k := range order {
		v, ok := m[k]
		if !ok || seen[k] {
			continue
		}
		seen[k] = true
		dict = append(dict, Replacement{Old: k, New: v})
	}
	rest := make([]string, 0, len(m)-len(seen))
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	for _, k := range rest {
		dict = append(dict, Replacement{Old: k, New: m[k]})
	}
	if err := dict.Validate(); err != nil {
		return nil, err
	}
	return dict, nil
}

// Validate rejects empty search strings.
func (d Dictionary) Validate() error {
	for i, r := range d {
		if r.Old == "" {
			return fmt.Errorf("replacement %d: %w", i, ErrEmptyKey)
		}
	}
	return nil
}

// Replacer applies a dictionary to text leaves. It is safe for concurrent
// use on distinct trees.
type Replacer struct {
	dict Dictionary
}

// NewReplacer compiles dict.
func NewReplacer(dict Dictionary) (*Replacer, error) {
	if err := dict.Validate(); err != nil {
		return nil, err
	}
	return &Replacer{dict: slices.Clone(dict)}, nil
}

// segment is a piece of text being rewritten. Replaced segments hold text
// written by an earlier entry and are not searched again.
type segment struct {
	text     string
	replaced bool
}

// ReplaceString applies the entries to s in dictionary order. Each entry
// replaces every non-overlapping occurrence, left to right, in the parts of s
// that no earlier entry produced. Replacement text is never searched again.
func (r *Replacer) ReplaceString(s string) string {
	if len(r.dict) == 0 {
		return s
	}
	segs := []segment{{text: s}}
	for _, rep := range r.dict {
		segs = replaceSegments(segs, rep)
	}
	if len(segs) == 1 {
		return segs[0].text
	}
	var sb strings.Builder
	for _, seg := range segs {
		sb.WriteString(seg.text)
	}
	return sb.String()
}

// replaceSegments returns segs unchanged when rep matches nowhere.
func replaceSegments(segs []segment, rep Replacement) []segment {
	var out []segment
	for i, seg := range segs {
		if seg.replaced || !strings.Contains(seg.text, rep.Old) {
			if out != nil {
				out = append(out, seg)
			}
			continue
		}
		if out == nil {
			out = append(make([]segment, 0, len(segs)+2), segs[:i]...)
		}
		rest := seg.text
		for {
			j := strings.Index(rest, rep.Old)
			if j < 0 {
				break
			}
			if j > 0 {
				out = append(out, segment{text: rest[:j]})
			}
			out = append(out, segment{text: rep.New, replaced: true})
			rest = rest[j+len(rep.Old):]
		}
		if rest != "" {
			out = append(out, segment{text: rest})
		}
	}
	if out == nil {
		return segs
	}
	return out
}

// Replace rewrites every text leaf under n whose text the dictionary changes
// and returns the number of leaves rewritten. Unchanged leaves are not
// touched and keep borrowing from their source.
//
// When a new value cannot be stored the walk stops with a
// *SubstitutionError; leaves visited before it keep their new text.
func (r *Replacer) Replace(n xml.Node) (int, error) {
	if len(r.dict) == 0 {
		return 0, nil
	}

	var leaf, rewritten int
	for s := range xml.TextsMut(n) {
		old := s.String()
		if next := r.ReplaceString(old); next != old {
			if err := s.Set(next); err != nil {
				Logger().Debug("substitution aborted",
					zap.Int("leaf", leaf),
					zap.Int("rewritten", rewritten),
					zap.Error(err))
				return rewritten, &SubstitutionError{Leaf: leaf, Err: err}
			}
			rewritten++
		}
		leaf++
	}

	Logger().Debug("substitution finished",
		zap.Int("leaves", leaf),
		zap.Int("rewritten", rewritten),
		zap.Int("keys", len(r.dict)))
	return rewritten, nil
}

// ReplaceText applies dict to every text leaf under n. See Replacer.Replace.
func ReplaceText(n xml.Node, dict Dictionary) (int, error) {
	r, err := NewReplacer(dict)
	if err != nil {
		return 0, err
	}
	return r.Replace(n)
}
