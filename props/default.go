package props

import (
	"maps"
	"slices"
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

const (
	surrMin = 0xD800
	surrMax = 0xDFFF
)

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide property table built from the generated
// Unicode data in the standard library: every general category, script, and
// boolean property, plus the Perl classes. It is built once on first use and
// never mutated afterward.
func Default() *Table {
	defaultOnce.Do(func() { defaultTable = New(defaultEntries()) })
	return defaultTable
}

// UnicodeVersion returns the Unicode version the default table's data is
// pinned to.
func UnicodeVersion() string { return unicode.Version }

// defaultEntries lists the Perl classes first so that ties against a
// general category holding the same set (\d and Nd, \s and White_Space)
// resolve to the shorter Perl form, then each category with names sorted
// for a deterministic table.
func defaultEntries() []Entry {
	entries := []Entry{
		{Name: "d", Category: PerlClass, Ranges: pairsFromTable(unicode.Nd)},
		{Name: "s", Category: PerlClass, Ranges: pairsFromTable(unicode.White_Space)},
		{Name: "w", Category: PerlClass, Ranges: pairsFromTable(perlWord())},
	}
	entries = appendCategory(entries, GeneralCategory, unicode.Categories)
	entries = appendCategory(entries, Binary, unicode.Properties)
	entries = appendCategory(entries, Script, unicode.Scripts)
	return entries
}

// perlWord builds the UTS#18 word class the way the regex ecosystem defines
// it: Alphabetic (L, Nl, Other_Alphabetic) plus marks, decimal digits,
// connector punctuation, and Join_Control.
func perlWord() *unicode.RangeTable {
	return rangetable.Merge(
		unicode.L,
		unicode.Nl,
		unicode.Properties["Other_Alphabetic"],
		unicode.M,
		unicode.Nd,
		unicode.Pc,
		unicode.Properties["Join_Control"],
	)
}

func appendCategory(entries []Entry, cat Category, tables map[string]*unicode.RangeTable) []Entry {
	for _, name := range slices.Sorted(maps.Keys(tables)) {
		pairs := pairsFromTable(tables[name])
		if len(pairs) == 0 {
			// Cs clips to nothing in a surrogate-free domain
			continue
		}
		entries = append(entries, Entry{Name: name, Category: cat, Ranges: pairs})
	}
	return entries
}

// pairsFromTable flattens a RangeTable into canonical [lo, hi] pairs,
// expanding strides, clipping out the surrogate block, and merging runs that
// touch across it (U+D7FF and U+E000 are adjacent scalar values).
func pairsFromTable(t *unicode.RangeTable) [][2]rune {
	var out [][2]rune
	add := func(lo, hi rune) {
		if lo >= surrMin && lo <= surrMax {
			lo = surrMax + 1
		}
		if hi >= surrMin && hi <= surrMax {
			hi = surrMin - 1
		}
		if lo > hi {
			return
		}
		if n := len(out); n > 0 {
			prev := out[n-1][1]
			next := prev + 1
			if prev == surrMin-1 {
				next = surrMax + 1
			}
			if lo <= next {
				if hi > prev {
					out[n-1][1] = hi
				}
				return
			}
		}
		out = append(out, [2]rune{lo, hi})
	}
	for _, r := range t.R16 {
		if r.Stride == 1 {
			add(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			add(c, c)
		}
	}
	for _, r := range t.R32 {
		if r.Stride == 1 {
			add(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			add(c, c)
		}
	}
	return out
}
