package charclass

import "testing"

func BenchmarkToRegexHit(b *testing.B) {
	set := hexDigitsBench()
	comp := set.Complement()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.ToRegex()
		comp.ToRegex()
	}
}

func BenchmarkToRegexMiss(b *testing.B) {
	set := MustSet(Range{Lo: 'a', Hi: 'z'}, Range{Lo: '0', Hi: '9'})
	comp := set.Complement()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.ToRegex()
		comp.ToRegex()
	}
}

func BenchmarkCardinality(b *testing.B) {
	set := hexDigitsBench()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		set.Cardinality()
	}
}

func BenchmarkUnion(b *testing.B) {
	x := MustSet(Range{Lo: 'a', Hi: 'f'}, Range{Lo: '0', Hi: '4'}, Range{Lo: 'x', Hi: 'z'})
	y := MustSet(Range{Lo: 'c', Hi: 'k'}, Range{Lo: '3', Hi: '9'})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Union(y)
	}
}

func hexDigitsBench() Set {
	return MustSet(
		Range{Lo: 'a', Hi: 'f'},
		Range{Lo: 'A', Hi: 'F'},
		Range{Lo: '0', Hi: '9'},
	)
}
