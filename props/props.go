// Package props exposes the named Unicode property tables consumed by the
// charclass renderer: general categories, scripts, boolean properties, and
// the Perl-style classes, each mapped to its canonical code-point ranges.
//
// A Table is immutable once built. The default table is derived once from
// the generated Unicode data shipped with the Go toolchain for a pinned
// Unicode version and may be shared freely across goroutines; New builds
// small synthetic tables for tests.
package props

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// ErrUnknownProperty is returned by Lookup when no property with the given
// name exists in the category. Renderer searches treat it as "no match".
var ErrUnknownProperty = errors.New("props: unknown property")

// Category tags the kind of a property entry.
type Category uint8

const (
	// PerlClass names the Perl-style classes "d", "s", and "w".
	PerlClass Category = iota
	// GeneralCategory names a Unicode general category such as "Lu" or "N".
	GeneralCategory
	// Binary names a boolean property such as "ASCII_Hex_Digit".
	Binary
	// Script names a Unicode script such as "Latin" or "Greek".
	Script
)

func (c Category) String() string {
	switch c {
	case PerlClass:
		return "perl class"
	case GeneralCategory:
		return "general category"
	case Binary:
		return "binary property"
	case Script:
		return "script"
	}
	return "unknown category"
}

// Entry is one named property and its code-point ranges. Ranges must be
// canonical: sorted ascending, non-overlapping, non-adjacent, with no
// surrogate endpoints. Entries and their ranges are read-only once handed
// to a Table.
type Entry struct {
	Name     string
	Category Category
	Ranges   [][2]rune

	hash uint64
}

// Hash returns a structural hash of a canonical range list. Two equal range
// lists always hash alike, so the renderer can index property sets by hash
// and fall back to a structural comparison only within a bucket.
func Hash(pairs [][2]rune) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, p := range pairs {
		binary.LittleEndian.PutUint32(buf[:4], uint32(p[0]))
		binary.LittleEndian.PutUint32(buf[4:], uint32(p[1]))
		d.Write(buf[:])
	}
	return d.Sum64()
}

// Table is a read-only collection of property entries with name and
// structural-hash indexes.
type Table struct {
	entries []Entry
	byName  map[Category]map[string]int
	byHash  map[uint64][]int
}

// New builds a table from the given entries. Entry order is significant:
// when several entries hold the same set, Match returns the earliest one.
func New(entries []Entry) *Table {
	t := &Table{
		entries: make([]Entry, len(entries)),
		byName:  make(map[Category]map[string]int),
		byHash:  make(map[uint64][]int, len(entries)),
	}
	for i, e := range entries {
		e.hash = Hash(e.Ranges)
		t.entries[i] = e
		names := t.byName[e.Category]
		if names == nil {
			names = make(map[string]int)
			t.byName[e.Category] = names
		}
		names[e.Name] = i
		t.byHash[e.hash] = append(t.byHash[e.hash], i)
	}
	return t
}

// Lookup returns the canonical ranges of the named property, or
// ErrUnknownProperty if the category holds no property with that exact
// name. Callers must not modify the returned ranges.
func (t *Table) Lookup(cat Category, name string) ([][2]rune, error) {
	if i, ok := t.byName[cat][name]; ok {
		return t.entries[i].Ranges, nil
	}
	return nil, errors.Wrapf(ErrUnknownProperty, "%s %q", cat, name)
}

// Match looks up the property whose set equals the given canonical range
// list, using the structural-hash index and verifying candidates by
// comparison. It reports false when no property matches.
func (t *Table) Match(pairs [][2]rune) (Entry, bool) {
	for _, i := range t.byHash[Hash(pairs)] {
		if pairsEqual(t.entries[i].Ranges, pairs) {
			return t.entries[i], true
		}
	}
	return Entry{}, false
}

// Entries returns all entries in the table in index order. Callers must not
// modify the result.
func (t *Table) Entries() []Entry { return t.entries }

// EntriesIn returns the entries of one category in index order.
func (t *Table) EntriesIn(cat Category) []Entry {
	var out []Entry
	for _, e := range t.entries {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

func pairsEqual(a, b [][2]rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
