package charclass

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestSuccessorSkipsSurrogates(t *testing.T) {
	var d runes

	n, ok := d.Next('')
	require.True(t, ok)
	require.Equal(t, '', n)

	n, ok = d.Next('퟿')
	require.True(t, ok)
	require.Equal(t, '', n)

	n, ok = d.Next('')
	require.True(t, ok)
	require.Equal(t, '', n)

	_, ok = d.Next(utf8.MaxRune)
	require.False(t, ok)
}

func TestPredecessorSkipsSurrogates(t *testing.T) {
	var d runes

	p, ok := d.Prev('')
	require.True(t, ok)
	require.Equal(t, '', p)

	p, ok = d.Prev('')
	require.True(t, ok)
	require.Equal(t, '퟿', p)

	p, ok = d.Prev('')
	require.True(t, ok)
	require.Equal(t, '', p)

	_, ok = d.Prev(0)
	require.False(t, ok)
}

func TestDistance(t *testing.T) {
	var d runes
	require.Equal(t, int64(26), d.Distance('a', 'z').Int64())
	require.Equal(t, int64(2), d.Distance('퟿', '').Int64())
	require.Equal(t, int64(DomainSize), d.Distance(0, utf8.MaxRune).Int64())
}

func TestValid(t *testing.T) {
	var d runes
	require.True(t, d.Valid(0))
	require.True(t, d.Valid('a'))
	require.True(t, d.Valid('퟿'))
	require.True(t, d.Valid(''))
	require.True(t, d.Valid(utf8.MaxRune))

	require.False(t, d.Valid(0xD800))
	require.False(t, d.Valid(0xDC00))
	require.False(t, d.Valid(0xDFFF))
	require.False(t, d.Valid(-1))
	require.False(t, d.Valid(utf8.MaxRune+1))
}
