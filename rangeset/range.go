package rangeset

import "github.com/pkg/errors"

// Range is an immutable inclusive [lo, hi] pair of domain elements.
// The zero Range holds the zero value of E at both ends.
type Range[E any] struct {
	lo, hi E
}

// Lo returns the inclusive lower bound.
func (r Range[E]) Lo() E { return r.lo }

// Hi returns the inclusive upper bound.
func (r Range[E]) Hi() E { return r.hi }

// NewRange builds the inclusive range [lo, hi]. It fails with
// ErrOutOfDomain if either endpoint is not a valid domain element and with
// ErrInvalidRange if lo orders after hi. A range may span an excluded
// sub-range of the domain; the excluded elements are simply never members.
func NewRange[E any, D Domain[E]](lo, hi E) (Range[E], error) {
	var d D
	if !d.Valid(lo) {
		return Range[E]{}, errors.Wrapf(ErrOutOfDomain, "range start %v", lo)
	}
	if !d.Valid(hi) {
		return Range[E]{}, errors.Wrapf(ErrOutOfDomain, "range end %v", hi)
	}
	if d.Compare(lo, hi) > 0 {
		return Range[E]{}, errors.Wrapf(ErrInvalidRange, "start %v after end %v", lo, hi)
	}
	return Range[E]{lo: lo, hi: hi}, nil
}
