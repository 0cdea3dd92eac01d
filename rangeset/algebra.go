package rangeset

import (
	"iter"
	"math/big"
	"sort"
)

// Union returns the set of elements in s, t, or both.
func (s Set[E, D]) Union(t Set[E, D]) Set[E, D] {
	if s.IsEmpty() {
		return t
	}
	if t.IsEmpty() {
		return s
	}
	var d D
	merged := make([]Range[E], 0, len(s.ranges)+len(t.ranges))
	i, j := 0, 0
	for i < len(s.ranges) && j < len(t.ranges) {
		if d.Compare(s.ranges[i].lo, t.ranges[j].lo) <= 0 {
			merged = append(merged, s.ranges[i])
			i++
		} else {
			merged = append(merged, t.ranges[j])
			j++
		}
	}
	merged = append(merged, s.ranges[i:]...)
	merged = append(merged, t.ranges[j:]...)
	return Set[E, D]{ranges: sweep[E, D](merged)}
}

// Intersect returns the set of elements present in both s and t.
//
// The two-pointer sweep emits the overlap of each overlapping pair and
// advances whichever range ends first. Because both inputs are canonical the
// output is already sorted, disjoint, and non-adjacent: consecutive overlaps
// are separated by a gap of at least one element missing from s or from t.
func (s Set[E, D]) Intersect(t Set[E, D]) Set[E, D] {
	var d D
	var out []Range[E]
	i, j := 0, 0
	for i < len(s.ranges) && j < len(t.ranges) {
		a, b := s.ranges[i], t.ranges[j]
		lo := a.lo
		if d.Compare(b.lo, lo) > 0 {
			lo = b.lo
		}
		hi := a.hi
		if d.Compare(b.hi, hi) < 0 {
			hi = b.hi
		}
		if d.Compare(lo, hi) <= 0 {
			out = append(out, Range[E]{lo: lo, hi: hi})
		}
		if d.Compare(a.hi, b.hi) < 0 {
			i++
		} else {
			j++
		}
	}
	return Set[E, D]{ranges: out}
}

// Difference returns the set of elements in s that are not in t,
// subtracting t's ranges from s's in a single sweep.
func (s Set[E, D]) Difference(t Set[E, D]) Set[E, D] {
	if s.IsEmpty() || t.IsEmpty() {
		return s
	}
	var d D
	var out []Range[E]
	j := 0
	for _, r := range s.ranges {
		for j < len(t.ranges) && d.Compare(t.ranges[j].hi, r.lo) < 0 {
			j++
		}
		cur := r.lo
		covered := false
		for k := j; k < len(t.ranges) && d.Compare(t.ranges[k].lo, r.hi) <= 0; k++ {
			if d.Compare(t.ranges[k].lo, cur) > 0 {
				// cur survives up to just before the subtracted range
				p, _ := d.Prev(t.ranges[k].lo)
				out = append(out, Range[E]{lo: cur, hi: p})
			}
			if d.Compare(t.ranges[k].hi, r.hi) >= 0 {
				covered = true
				break
			}
			n, _ := d.Next(t.ranges[k].hi)
			cur = n
		}
		if !covered {
			out = append(out, Range[E]{lo: cur, hi: r.hi})
		}
	}
	return Set[E, D]{ranges: out}
}

// SymmetricDifference returns the set of elements in exactly one of s and t.
func (s Set[E, D]) SymmetricDifference(t Set[E, D]) Set[E, D] {
	return s.Difference(t).Union(t.Difference(s))
}

// Complement returns the set of domain elements not in s, walking the gaps
// before, between, and after s's ranges.
func (s Set[E, D]) Complement() Set[E, D] {
	var d D
	if len(s.ranges) == 0 {
		return Full[E, D]()
	}
	out := make([]Range[E], 0, len(s.ranges)+1)
	if d.Compare(s.ranges[0].lo, d.Min()) > 0 {
		p, _ := d.Prev(s.ranges[0].lo)
		out = append(out, Range[E]{lo: d.Min(), hi: p})
	}
	for i := 0; i+1 < len(s.ranges); i++ {
		// canonical form guarantees a non-empty gap between neighbors
		n, _ := d.Next(s.ranges[i].hi)
		p, _ := d.Prev(s.ranges[i+1].lo)
		out = append(out, Range[E]{lo: n, hi: p})
	}
	if last := s.ranges[len(s.ranges)-1]; d.Compare(last.hi, d.Max()) < 0 {
		n, _ := d.Next(last.hi)
		out = append(out, Range[E]{lo: n, hi: d.Max()})
	}
	return Set[E, D]{ranges: out}
}

// SubsetOf reports whether every element of s is also in t. It sweeps the
// two range sequences without materializing an intersection.
func (s Set[E, D]) SubsetOf(t Set[E, D]) bool {
	var d D
	j := 0
	for _, r := range s.ranges {
		for j < len(t.ranges) && d.Compare(t.ranges[j].hi, r.hi) < 0 {
			j++
		}
		if j == len(t.ranges) || d.Compare(t.ranges[j].lo, r.lo) > 0 {
			return false
		}
	}
	return true
}

// Equal reports whether s and t contain exactly the same elements. The
// canonical-form invariant makes this a structural comparison of the two
// range sequences.
func (s Set[E, D]) Equal(t Set[E, D]) bool {
	if len(s.ranges) != len(t.ranges) {
		return false
	}
	var d D
	for i, r := range s.ranges {
		if d.Compare(r.lo, t.ranges[i].lo) != 0 || d.Compare(r.hi, t.ranges[i].hi) != 0 {
			return false
		}
	}
	return true
}

// Cardinality returns the exact number of elements in s. The accumulator is
// arbitrary precision so no domain size can overflow it.
func (s Set[E, D]) Cardinality() *big.Int {
	var d D
	total := new(big.Int)
	for _, r := range s.ranges {
		total.Add(total, d.Distance(r.lo, r.hi))
	}
	return total
}

// Contains reports whether e is an element of s.
func (s Set[E, D]) Contains(e E) bool {
	var d D
	if !d.Valid(e) {
		return false
	}
	// first range whose end is at or after e
	i := sort.Search(len(s.ranges), func(i int) bool {
		return d.Compare(s.ranges[i].hi, e) >= 0
	})
	return i < len(s.ranges) && d.Compare(s.ranges[i].lo, e) <= 0
}

// All iterates the elements of s in ascending order.
func (s Set[E, D]) All() iter.Seq[E] {
	var d D
	return func(yield func(E) bool) {
		for _, r := range s.ranges {
			for e := r.lo; ; {
				if !yield(e) {
					return
				}
				if d.Compare(e, r.hi) >= 0 {
					break
				}
				n, ok := d.Next(e)
				if !ok {
					break
				}
				e = n
			}
		}
	}
}
