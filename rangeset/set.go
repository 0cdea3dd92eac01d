package rangeset

import (
	"slices"

	"github.com/pkg/errors"
)

// Set is a subset of the domain D held as a canonical sequence of ranges:
// sorted ascending by start, non-overlapping, non-adjacent. The zero Set is
// the empty set.
//
// Sets are immutable values. Every operation returns a new Set and never
// mutates its operands, so sets may be shared freely across goroutines.
type Set[E any, D Domain[E]] struct {
	ranges []Range[E]
}

// Empty returns the empty set.
func Empty[E any, D Domain[E]]() Set[E, D] {
	return Set[E, D]{}
}

// Full returns the set covering the whole domain.
func Full[E any, D Domain[E]]() Set[E, D] {
	var d D
	return Set[E, D]{ranges: []Range[E]{{lo: d.Min(), hi: d.Max()}}}
}

// New builds a set from the given ranges. Order and duplication are
// irrelevant; overlapping and adjacent ranges are merged. Endpoints are
// re-validated so a hand-built zero Range cannot smuggle an invalid element
// into the set.
func New[E any, D Domain[E]](ranges ...Range[E]) (Set[E, D], error) {
	var d D
	rs := make([]Range[E], 0, len(ranges))
	for _, r := range ranges {
		if !d.Valid(r.lo) || !d.Valid(r.hi) {
			return Set[E, D]{}, errors.Wrapf(ErrOutOfDomain, "range [%v, %v]", r.lo, r.hi)
		}
		if d.Compare(r.lo, r.hi) > 0 {
			return Set[E, D]{}, errors.Wrapf(ErrInvalidRange, "start %v after end %v", r.lo, r.hi)
		}
		rs = append(rs, r)
	}
	return Set[E, D]{ranges: normalize[E, D](rs)}, nil
}

// Of builds a set from individual elements. Order and duplication are
// irrelevant.
func Of[E any, D Domain[E]](elems ...E) (Set[E, D], error) {
	var d D
	rs := make([]Range[E], 0, len(elems))
	for _, e := range elems {
		if !d.Valid(e) {
			return Set[E, D]{}, errors.Wrapf(ErrOutOfDomain, "element %v", e)
		}
		rs = append(rs, Range[E]{lo: e, hi: e})
	}
	return Set[E, D]{ranges: normalize[E, D](rs)}, nil
}

// Ranges returns a copy of the canonical range sequence.
func (s Set[E, D]) Ranges() []Range[E] {
	return slices.Clone(s.ranges)
}

// NumRanges returns the number of ranges in the canonical form.
func (s Set[E, D]) NumRanges() int { return len(s.ranges) }

// IsEmpty reports whether the set contains no elements.
func (s Set[E, D]) IsEmpty() bool { return len(s.ranges) == 0 }

// IsFull reports whether the set covers the whole domain.
func (s Set[E, D]) IsFull() bool {
	var d D
	return len(s.ranges) == 1 &&
		d.Compare(s.ranges[0].lo, d.Min()) == 0 &&
		d.Compare(s.ranges[0].hi, d.Max()) == 0
}

// normalize sorts the ranges and merges every overlapping or adjacent pair.
// It owns the canonical-form invariant: every constructor and any operation
// that cannot prove canonical output funnels through it. The input slice is
// sorted in place.
func normalize[E any, D Domain[E]](rs []Range[E]) []Range[E] {
	if len(rs) == 0 {
		return nil
	}
	var d D
	slices.SortFunc(rs, func(a, b Range[E]) int {
		if c := d.Compare(a.lo, b.lo); c != 0 {
			return c
		}
		return d.Compare(a.hi, b.hi)
	})
	return sweep[E, D](rs)
}

// sweep merges sorted ranges left to right. A range folds into the running
// range when its start is at or before the successor of the running end;
// a running end with no successor sits on the domain boundary and absorbs
// everything after it.
func sweep[E any, D Domain[E]](rs []Range[E]) []Range[E] {
	var d D
	out := make([]Range[E], 0, len(rs))
	cur := rs[0]
	for _, r := range rs[1:] {
		next, ok := d.Next(cur.hi)
		if !ok || d.Compare(r.lo, next) <= 0 {
			if d.Compare(r.hi, cur.hi) > 0 {
				cur.hi = r.hi
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}
	return append(out, cur)
}
