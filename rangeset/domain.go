// Package rangeset implements canonical sets of inclusive ranges over any
// totally-ordered discrete domain.
//
// A Set is always kept in canonical form: ranges sorted ascending, never
// overlapping, never adjacent. That makes structural equality of the range
// sequences equivalent to logical set equality, and every algebraic
// operation runs in time proportional to the number of ranges involved,
// never the size of the domain.
package rangeset

import "math/big"

// Domain describes a totally-ordered, discrete, finite domain of values.
//
// Implementations are expected to be stateless struct types: a Domain is
// supplied to Set as a type parameter and instantiated with its zero value,
// so sets stay plain comparable values carrying no domain reference.
type Domain[E any] interface {
	// Compare orders two elements the usual way: negative if a < b,
	// zero if equal, positive if a > b.
	Compare(a, b E) int

	// Min and Max are the inclusive bounds of the domain.
	Min() E
	Max() E

	// Next returns the successor of e, skipping any excluded sub-ranges.
	// It reports false when e has no successor (e is Max).
	Next(e E) (E, bool)

	// Prev returns the predecessor of e, skipping any excluded sub-ranges.
	// It reports false when e has no predecessor (e is Min).
	Prev(e E) (E, bool)

	// Distance returns the number of domain elements in [a, b] inclusive,
	// requiring a <= b. The result is at least 1 and is exact for any
	// domain size.
	Distance(a, b E) *big.Int

	// Valid reports whether e is a member of the domain. Elements inside
	// an excluded sub-range (or outside Min/Max) are not valid.
	Valid(e E) bool
}
