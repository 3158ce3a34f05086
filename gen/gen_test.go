package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgumentGenerator_Deterministic(t *testing.T) {
	a := NewArgumentGenerator(7)
	b := NewArgumentGenerator(7)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.RandSmallInt(), b.RandSmallInt())
		require.Equal(t, a.RandBigLong(), b.RandBigLong())
		require.Equal(t, a.IncLong(), b.IncLong())
	}

	a.Reset(7)
	b.Reset(7)
	require.Equal(t, a.RandSmallDouble(), b.RandSmallDouble())
}

func TestArgumentGenerator_SmallValuesAreSmall(t *testing.T) {
	g := NewArgumentGenerator(1)

	for i := 0; i < 1000; i++ {
		v := g.RandSmallInt()
		require.GreaterOrEqual(t, v, int32(0))
		require.Less(t, v, int32(1<<16))

		require.Less(t, g.RandSmallLong(), int64(1<<16))
	}
}

func TestArgumentGenerator_IncrementedSequences(t *testing.T) {
	g := NewArgumentGenerator(0)

	require.Equal(t, int64(0), g.IncLong())
	require.Equal(t, int64(1), g.IncLong())
	require.Equal(t, int64(2), g.IncLong())

	g.Reset(5)
	require.Equal(t, int32(5), g.IncSmallInt())
	require.Equal(t, int32(6+1<<16), g.IncBigInt())
}

func TestZipfian_RangeAndSkew(t *testing.T) {
	const n = 1000
	z := NewZipfian(n, DefaultZipfTheta)

	counts := make(map[uint64]int)
	for i := 0; i < 100000; i++ {
		v := z.Next()
		require.Less(t, v, uint64(n))
		counts[v]++
	}

	// The distribution is skewed toward low integers: 0 must dominate the
	// tail by a wide margin.
	require.Greater(t, counts[0], counts[n/2]*10)
	require.Greater(t, counts[0], 1000)
}

func TestZipfian_ResetReproduces(t *testing.T) {
	z := NewZipfian(100, DefaultZipfTheta)

	z.Reset(42)
	first := make([]uint64, 20)
	for i := range first {
		first[i] = z.Next()
	}

	z.Reset(42)
	for i := range first {
		require.Equal(t, first[i], z.Next())
	}
}

func TestWordGenerator_LimitAndWeighting(t *testing.T) {
	g := NewWordGenerator(3)

	require.Equal(t, MaxWordLimit(), g.SetWordLimit(0))
	require.Equal(t, MaxWordLimit(), g.SetWordLimit(MaxWordLimit()+5))
	require.Equal(t, 10, g.SetWordLimit(10))

	top10 := make(map[string]bool)
	for _, ww := range commonWords[:10] {
		top10[ww.word] = true
	}

	theCount := 0
	for i := 0; i < 10000; i++ {
		w := g.Word()
		require.True(t, top10[w], "word %q outside the configured limit", w)
		if w == "the" {
			theCount++
		}
	}

	// "the" carries roughly a quarter of the top-10 weight.
	require.Greater(t, theCount, 1000)
}

func TestWordGenerator_Sentence(t *testing.T) {
	g := NewWordGenerator(1)

	s := g.Sentence(40)
	require.Len(t, s, 40)
	require.True(t, strings.Contains(s, " "))
}
