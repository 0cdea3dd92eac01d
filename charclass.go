/*
Package charclass manipulates regular-expression character classes as sets of
Unicode code points.

A Set is a canonical collection of disjoint, sorted code-point ranges over
the Unicode scalar values (all code points except the surrogate block). Sets
are immutable values: union, intersection, difference, complement, and the
rest of the algebra all return new sets, so a Set may be shared freely
across goroutines.

A Set renders back to character-class syntax with ToRegex, which prefers the
most compact conventional form: `.` for the full domain, `[]` for the empty
set, a Perl class or named Unicode property (`\d`, `\p{Greek}`,
`\P{ASCII_Hex_Digit}`, ...) when the set matches one exactly, and an explicit
bracket expression otherwise.

	lower := charclass.MustSet(charclass.Range{Lo: 'a', Hi: 'z'})
	hex := charclass.MustSet(
		charclass.Range{Lo: '0', Hi: '9'},
		charclass.Range{Lo: 'A', Hi: 'F'},
		charclass.Range{Lo: 'a', Hi: 'f'},
	)
	lower.ToRegex()                 // "[a-z]"
	hex.ToRegex()                   // "\p{ASCII_Hex_Digit}"
	hex.Complement().ToRegex()      // "\P{ASCII_Hex_Digit}"
	lower.Difference(hex).ToRegex() // "[g-z]"

The generic range-set algebra lives in the rangeset subpackage; this package
is its code-point instantiation. Named property data comes from the props
subpackage, which exposes the generated Unicode tables the Go toolchain ships
for a pinned Unicode version.
*/
package charclass
