package charclass

import (
	"math/big"
	"unicode/utf8"
)

const (
	surrMin  = 0xD800
	surrMax  = 0xDFFF
	surrSize = surrMax - surrMin + 1
)

// DomainSize is the number of Unicode scalar values: every code point from
// U+0000 through U+10FFFF except the surrogate block.
const DomainSize = 0x110000 - surrSize

// runes implements rangeset.Domain over the Unicode scalar values. The
// surrogate block is excluded, so the successor of U+D7FF is U+E000 and a
// range spanning the block never counts surrogates among its elements.
type runes struct{}

func (runes) Compare(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (runes) Min() rune { return 0 }

func (runes) Max() rune { return utf8.MaxRune }

func (runes) Valid(r rune) bool {
	return r >= 0 && r <= utf8.MaxRune && (r < surrMin || r > surrMax)
}

func (runes) Next(r rune) (rune, bool) {
	switch {
	case r >= utf8.MaxRune:
		return 0, false
	case r == surrMin-1:
		return surrMax + 1, true
	}
	return r + 1, true
}

func (runes) Prev(r rune) (rune, bool) {
	switch {
	case r <= 0:
		return 0, false
	case r == surrMax+1:
		return surrMin - 1, true
	}
	return r - 1, true
}

func (runes) Distance(a, b rune) *big.Int {
	return big.NewInt(scalarIndex(b) - scalarIndex(a) + 1)
}

// scalarIndex maps a scalar value onto the surrogate-free number line so
// distances across the block come out right.
func scalarIndex(r rune) int64 {
	if r > surrMax {
		return int64(r) - surrSize
	}
	return int64(r)
}
