package charclass

import (
	"fmt"
	"strings"

	"github.com/dlclark/charclass/props"
	"github.com/dlclark/charclass/rangeset"
)

// bracket-expression metacharacters, escaped wherever they appear
const metachars = `*+?()[]{}|\-^.`

// Renderer converts sets to character-class text, consulting a property
// table to find named forms. The zero Renderer uses the default Unicode
// table; NewRenderer injects another, which is how tests supply small
// synthetic tables.
type Renderer struct {
	table *props.Table
}

var defaultRenderer = &Renderer{}

// NewRenderer returns a Renderer that searches the given property table.
func NewRenderer(t *props.Table) *Renderer { return &Renderer{table: t} }

func (r *Renderer) tbl() *props.Table {
	if r.table == nil {
		return props.Default()
	}
	return r.table
}

// ToRegex renders the set as a regular-expression character class using the
// default property table.
//
// The most compact conventional form wins: `.` for the full domain, an
// impossible `[]` for the empty set, an escape or Perl class or named
// property (`\n`, `\d`, `\p{Name}`) when the set matches one exactly, the
// negated form of those when the complement matches, and otherwise an
// explicit bracket expression, itself negated when that reads shorter.
func (s Set) ToRegex() string { return defaultRenderer.Render(s) }

// Render renders the set as a regular-expression character class.
func (r *Renderer) Render(s Set) string {
	if s.IsEmpty() {
		return "[]"
	}
	if s.IsAny() {
		return "."
	}
	if tok, ok := r.identify(s); ok {
		return tok
	}
	return bracket(s)
}

// identify searches for a named rendering: a single-character escape, then
// the property table against the set, then against its complement. Positive
// forms win ties with negated ones by running first.
func (r *Renderer) identify(s Set) (string, bool) {
	ranges := s.rs.Ranges()
	if len(ranges) == 1 && ranges[0].Lo() == ranges[0].Hi() {
		if esc, ok := controlEscape(ranges[0].Lo()); ok {
			return esc, true
		}
	}
	tbl := r.tbl()
	if e, ok := tbl.Match(s.pairs()); ok {
		return positiveToken(e), true
	}
	if e, ok := tbl.Match(s.Complement().pairs()); ok {
		return negatedToken(e), true
	}
	return "", false
}

func positiveToken(e props.Entry) string {
	if e.Category == props.PerlClass {
		return `\` + e.Name
	}
	return `\p{` + e.Name + `}`
}

func negatedToken(e props.Entry) string {
	if e.Category == props.PerlClass {
		return `\` + strings.ToUpper(e.Name)
	}
	return `\P{` + e.Name + `}`
}

// bracket renders an explicit bracket expression. A set holding exactly one
// code point renders bare. A set covering more than half the domain is also
// rendered as its negated complement, and the shorter text wins; on a tie
// the positive form is kept.
func bracket(s Set) string {
	ranges := s.rs.Ranges()
	if len(ranges) == 1 && ranges[0].Lo() == ranges[0].Hi() {
		return printable(ranges[0].Lo())
	}
	direct := "[" + classBody(ranges) + "]"
	if 2*s.Cardinality() > DomainSize {
		negated := "[^" + classBody(s.Complement().rs.Ranges()) + "]"
		if len(negated) < len(direct) {
			return negated
		}
	}
	return direct
}

func classBody(ranges []rangeset.Range[rune]) string {
	var sb strings.Builder
	var d runes
	for _, r := range ranges {
		lo, hi := r.Lo(), r.Hi()
		sb.WriteString(printable(lo))
		if lo == hi {
			continue
		}
		if next, _ := d.Next(lo); next != hi {
			sb.WriteByte('-')
		}
		sb.WriteString(printable(hi))
	}
	return sb.String()
}

// printable renders a single code point: printable ASCII raw (escaped when
// it is a metacharacter), the conventional control escapes, and a hex
// escape for everything else.
func printable(r rune) string {
	if r >= 0x20 && r < 0x7E {
		if strings.ContainsRune(metachars, r) {
			return `\` + string(r)
		}
		return string(r)
	}
	if esc, ok := controlEscape(r); ok {
		return esc
	}
	return fmt.Sprintf(`\x{%04x}`, r)
}

func controlEscape(r rune) (string, bool) {
	switch r {
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	case '\v':
		return `\v`, true
	}
	return "", false
}
