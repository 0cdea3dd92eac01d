package charclass

import (
	"testing"

	"github.com/dlclark/charclass/rangeset"
	"github.com/stretchr/testify/require"
)

func hexDigits() Set {
	return MustSet(
		Range{Lo: '0', Hi: '9'},
		Range{Lo: 'A', Hi: 'F'},
		Range{Lo: 'a', Hi: 'f'},
	)
}

func TestLowercaseLetters(t *testing.T) {
	set := MustSet(Range{Lo: 'a', Hi: 'z'})
	require.Equal(t, uint64(26), set.Cardinality())
	require.Equal(t, "[a-z]", set.ToRegex())
	require.Equal(t, []Range{{Lo: 'a', Hi: 'z'}}, set.Ranges())
}

func TestEmptyAndAny(t *testing.T) {
	e := Empty()
	require.True(t, e.IsEmpty())
	require.Equal(t, uint64(0), e.Cardinality())
	require.Equal(t, "[]", e.ToRegex())

	a := Any()
	require.True(t, a.IsAny())
	require.Equal(t, uint64(DomainSize), a.Cardinality())
	require.Equal(t, uint64(1112064), a.Cardinality())
	require.Equal(t, ".", a.ToRegex())

	require.True(t, e.Complement().Equal(a))
	require.True(t, a.Complement().Equal(e))
}

func TestConstructionErrors(t *testing.T) {
	_, err := NewRange('z', 'a')
	require.ErrorIs(t, err, rangeset.ErrInvalidRange)

	_, err = NewRange(0xD800, 0xE000)
	require.ErrorIs(t, err, rangeset.ErrOutOfDomain)

	_, err = NewSet(Range{Lo: 'a', Hi: 0xDC00})
	require.ErrorIs(t, err, rangeset.ErrOutOfDomain)

	_, err = SetOf('a', 0xD800)
	require.ErrorIs(t, err, rangeset.ErrOutOfDomain)

	require.Panics(t, func() { MustSet(Range{Lo: 'z', Hi: 'a'}) })
}

func TestNormalizationMergesAcrossSurrogateGap(t *testing.T) {
	// U+D7FF and U+E000 are adjacent scalar values
	set := MustSet(Range{Lo: 'A', Hi: '퟿'}, Range{Lo: '', Hi: ''})
	require.Equal(t, []Range{{Lo: 'A', Hi: ''}}, set.Ranges())
	require.True(t, set.Equal(MustSet(Range{Lo: 'A', Hi: ''})))
}

func TestSetOf(t *testing.T) {
	set, err := SetOf('c', 'a', 'b', 'a', 'x')
	require.NoError(t, err)
	require.Equal(t, []Range{{Lo: 'a', Hi: 'c'}, {Lo: 'x', Hi: 'x'}}, set.Ranges())
	require.Equal(t, uint64(4), set.Cardinality())
}

func TestAlgebra(t *testing.T) {
	lower := MustSet(Range{Lo: 'a', Hi: 'z'})
	hex := hexDigits()

	require.Equal(t, []Range{{Lo: 'g', Hi: 'z'}}, lower.Difference(hex).Ranges())
	require.Equal(t, []Range{{Lo: 'a', Hi: 'f'}}, lower.Intersect(hex).Ranges())

	union := lower.Union(hex)
	require.Equal(t, []Range{
		{Lo: '0', Hi: '9'},
		{Lo: 'A', Hi: 'F'},
		{Lo: 'a', Hi: 'z'},
	}, union.Ranges())

	require.True(t, lower.SubsetOf(union))
	require.True(t, hex.SubsetOf(union))
	require.False(t, union.SubsetOf(lower))

	sym := lower.SymmetricDifference(hex)
	require.True(t, sym.Equal(union.Difference(lower.Intersect(hex))))
}

func TestComplementRoundTrip(t *testing.T) {
	for _, set := range []Set{
		Empty(),
		Any(),
		MustSet(Range{Lo: 0, Hi: 'z'}),
		hexDigits(),
		MustSet(Single('\n')),
	} {
		comp := set.Complement()
		require.True(t, comp.Complement().Equal(set))
		require.True(t, set.Union(comp).IsAny())
		require.True(t, set.Intersect(comp).IsEmpty())
		require.Equal(t, uint64(DomainSize), set.Cardinality()+comp.Cardinality())
	}
}

func TestContainsAndAll(t *testing.T) {
	set := hexDigits()
	for r := range set.All() {
		require.True(t, set.Contains(r))
	}
	require.True(t, set.Contains('A'))
	require.False(t, set.Contains('G'))
	require.False(t, set.Contains(0xD800))
	require.False(t, Any().Contains(0xD800))

	var count int
	for range set.All() {
		count++
	}
	require.Equal(t, 22, count)
}

func TestBigCardinality(t *testing.T) {
	require.Equal(t, int64(DomainSize), Any().BigCardinality().Int64())
	require.Equal(t, int64(26), MustSet(Range{Lo: 'a', Hi: 'z'}).BigCardinality().Int64())
}
