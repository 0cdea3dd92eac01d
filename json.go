package charclass

import "encoding/json"

// MarshalJSON encodes the set as its canonical list of inclusive
// [start, end] code-point pairs, e.g. [[97,122]] for [a-z]. The form is
// stable and language-agnostic; the empty set encodes as [].
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.pairs())
}

// UnmarshalJSON decodes a list of [start, end] pairs. The pairs are
// validated and normalized, so any ordering or overlap in the input yields
// the same canonical set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var pairs [][2]rune
	if err := json.Unmarshal(data, &pairs); err != nil {
		return err
	}
	ranges := make([]Range, len(pairs))
	for i, p := range pairs {
		ranges[i] = Range{Lo: p[0], Hi: p[1]}
	}
	set, err := NewSet(ranges...)
	if err != nil {
		return err
	}
	*s = set
	return nil
}
