package charclass

import (
	"iter"
	"math/big"

	"github.com/dlclark/charclass/rangeset"
)

// Range is an inclusive pair of code points. Build validated ranges with
// NewRange; set constructors re-validate every range they are handed, so a
// literal Range with bad endpoints is caught at construction time.
type Range struct {
	Lo, Hi rune
}

// NewRange builds the inclusive range [lo, hi]. It fails with
// rangeset.ErrOutOfDomain if an endpoint is a surrogate or outside the
// Unicode space, and with rangeset.ErrInvalidRange if lo > hi.
func NewRange(lo, hi rune) (Range, error) {
	if _, err := rangeset.NewRange[rune, runes](lo, hi); err != nil {
		return Range{}, err
	}
	return Range{Lo: lo, Hi: hi}, nil
}

// Single returns the degenerate range holding just r.
func Single(r rune) Range { return Range{Lo: r, Hi: r} }

// Set is a set of Unicode code points held in canonical form. The zero Set
// is the empty set.
type Set struct {
	rs rangeset.Set[rune, runes]
}

// Empty returns the empty set.
func Empty() Set { return Set{} }

// Any returns the set of all Unicode scalar values.
func Any() Set { return Set{rs: rangeset.Full[rune, runes]()} }

// NewSet builds a set from the given ranges. Order and duplication are
// irrelevant; overlapping and adjacent ranges are merged into canonical
// form.
func NewSet(ranges ...Range) (Set, error) {
	converted := make([]rangeset.Range[rune], 0, len(ranges))
	for _, r := range ranges {
		rr, err := rangeset.NewRange[rune, runes](r.Lo, r.Hi)
		if err != nil {
			return Set{}, err
		}
		converted = append(converted, rr)
	}
	rs, err := rangeset.New[rune, runes](converted...)
	if err != nil {
		return Set{}, err
	}
	return Set{rs: rs}, nil
}

// MustSet is like NewSet but panics if a range is invalid. It simplifies
// safe initialization of global variables holding character classes.
func MustSet(ranges ...Range) Set {
	set, err := NewSet(ranges...)
	if err != nil {
		panic(`charclass: NewSet: ` + err.Error())
	}
	return set
}

// SetOf builds a set from individual code points. Order and duplication are
// irrelevant.
func SetOf(rs ...rune) (Set, error) {
	set, err := rangeset.Of[rune, runes](rs...)
	if err != nil {
		return Set{}, err
	}
	return Set{rs: set}, nil
}

// Ranges returns the canonical range sequence.
func (s Set) Ranges() []Range {
	inner := s.rs.Ranges()
	out := make([]Range, len(inner))
	for i, r := range inner {
		out[i] = Range{Lo: r.Lo(), Hi: r.Hi()}
	}
	return out
}

// IsEmpty reports whether the set contains no code points.
func (s Set) IsEmpty() bool { return s.rs.IsEmpty() }

// IsAny reports whether the set contains every Unicode scalar value.
func (s Set) IsAny() bool { return s.rs.IsFull() }

// Union returns the set of code points in s, t, or both.
func (s Set) Union(t Set) Set { return Set{rs: s.rs.Union(t.rs)} }

// Intersect returns the set of code points present in both s and t.
func (s Set) Intersect(t Set) Set { return Set{rs: s.rs.Intersect(t.rs)} }

// Difference returns the set of code points in s that are not in t.
func (s Set) Difference(t Set) Set { return Set{rs: s.rs.Difference(t.rs)} }

// SymmetricDifference returns the set of code points in exactly one of s
// and t.
func (s Set) SymmetricDifference(t Set) Set {
	return Set{rs: s.rs.SymmetricDifference(t.rs)}
}

// Complement returns the set of Unicode scalar values not in s.
func (s Set) Complement() Set { return Set{rs: s.rs.Complement()} }

// SubsetOf reports whether every code point of s is also in t.
func (s Set) SubsetOf(t Set) bool { return s.rs.SubsetOf(t.rs) }

// Equal reports whether s and t contain exactly the same code points.
func (s Set) Equal(t Set) bool { return s.rs.Equal(t.rs) }

// Cardinality returns the number of code points in the set. The full domain
// holds 1,112,064 scalar values, so the count always fits.
func (s Set) Cardinality() uint64 { return s.rs.Cardinality().Uint64() }

// BigCardinality returns the count as the exact arbitrary-precision value
// produced by the generic core.
func (s Set) BigCardinality() *big.Int { return s.rs.Cardinality() }

// Contains reports whether r is a member of the set. Surrogates are never
// members.
func (s Set) Contains(r rune) bool { return s.rs.Contains(r) }

// All iterates the code points of the set in ascending order.
func (s Set) All() iter.Seq[rune] { return s.rs.All() }

// String renders the set as a regular-expression character class.
func (s Set) String() string { return s.ToRegex() }

// pairs flattens the canonical ranges into the [lo, hi] pair form the
// property tables use.
func (s Set) pairs() [][2]rune {
	inner := s.rs.Ranges()
	out := make([][2]rune, len(inner))
	for i, r := range inner {
		out[i] = [2]rune{r.Lo(), r.Hi()}
	}
	return out
}
