package logbuf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack/logpack/errs"
	"github.com/logpack/logpack/format"
	"github.com/logpack/logpack/section"
)

func compressAll(t *testing.T, src []byte) []byte {
	t.Helper()

	dst := make([]byte, CompressBound(len(src)))
	n, err := Compress(dst, src)
	require.NoError(t, err)

	return dst[:n]
}

// TestRoundTrip_SpecScenario encodes one record with 3 integer arguments
// {1, 300, 70000} (packed widths 1, 2, 3) followed by a zero-arity double
// record, then verifies both records and the timestamp delta survive the
// round trip.
func TestRoundTrip_SpecScenario(t *testing.T) {
	enc := NewEncoder(make([]byte, 1024), WithClock(fixedClock(1000, 1017)))

	require.True(t, enc.AppendInts([]int32{1, 300, 70000}))
	require.True(t, enc.AppendDoubles(nil))

	compressed := compressAll(t, enc.Bytes())

	// First record: header (1+1+2) + pair control/data (1+1+2) + odd
	// control/data (1+3). Second record: header only (1+1+1).
	require.Len(t, compressed, 15)

	records, err := Decompress(compressed)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.Equal(t, uint64(1000), records[0].Timestamp)
	require.Equal(t, format.KindInt, records[0].Kind)
	require.Equal(t, []int32{1, 300, 70000}, records[0].Ints)

	require.Equal(t, uint64(1017), records[1].Timestamp)
	require.Equal(t, format.KindDouble, records[1].Kind)
	require.Equal(t, 0, records[1].Arity())
	require.Equal(t, uint64(17), records[1].Timestamp-records[0].Timestamp)
}

func TestRoundTrip_AllBands(t *testing.T) {
	enc := NewEncoder(make([]byte, 4096), WithClock(fixedClock(10, 20, 30, 40)))

	texts := []string{"first string", "second", "", "and so on"}
	ints := []int32{0, -1, 127, -70000, 2147483647}
	longs := []int64{0, 1 << 40, -1, 300}
	doubles := []float64{0, 3.14159, -2.5e300}

	require.True(t, enc.AppendTexts(texts))
	require.True(t, enc.AppendInts(ints))
	require.True(t, enc.AppendLongs(longs))
	require.True(t, enc.AppendDoubles(doubles))

	records, err := Decompress(compressAll(t, enc.Bytes()))
	require.NoError(t, err)
	require.Len(t, records, 4)

	require.Equal(t, texts, records[0].Texts)
	require.Equal(t, ints, records[1].Ints)
	require.Equal(t, longs, records[2].Longs)
	require.Equal(t, doubles, records[3].Doubles)

	for i, want := range []uint64{10, 20, 30, 40} {
		require.Equal(t, want, records[i].Timestamp)
	}
}

func TestRoundTrip_EvenAndOddArity(t *testing.T) {
	for arity := 0; arity < 12; arity++ {
		enc := NewEncoder(make([]byte, 2048), WithClock(fixedClock(100)))

		args := make([]int64, arity)
		for i := range args {
			args[i] = int64(i) * 1000
		}
		require.True(t, enc.AppendLongs(args))

		records, err := Decompress(compressAll(t, enc.Bytes()))
		require.NoError(t, err)
		require.Len(t, records, 1)
		require.Equal(t, arity, records[0].Arity())
		if arity > 0 {
			require.Equal(t, args, records[0].Longs)
		}
	}
}

func TestCompress_ShrinksNumericPayloads(t *testing.T) {
	enc := NewEncoder(make([]byte, 1<<16), WithClock(fixedClock(1, 2, 3, 4, 5, 6, 7, 8)))

	for i := 0; i < 100; i++ {
		require.True(t, enc.AppendLongs([]int64{1, 2, 3, 4}))
	}

	compressed := compressAll(t, enc.Bytes())
	require.Less(t, len(compressed), enc.Len(),
		"small numeric arguments must shrink below their native size")
}

func TestCompress_DstTooSmall(t *testing.T) {
	enc := NewEncoder(make([]byte, 1024), WithClock(fixedClock(1)))
	require.True(t, enc.AppendInts([]int32{1, 2, 3}))

	small := make([]byte, 2)
	_, err := Compress(small, enc.Bytes())
	require.ErrorIs(t, err, errs.ErrDstTooSmall)
}

func TestCompress_RejectsBadInput(t *testing.T) {
	t.Run("truncated header", func(t *testing.T) {
		_, err := Compress(make([]byte, 64), make([]byte, section.HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrTruncatedData)
	})

	t.Run("entry size past input", func(t *testing.T) {
		h := section.EntryHeader{Timestamp: 1, FormatID: 64, EntrySize: 999}
		_, err := Compress(make([]byte, 64), h.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidEntrySize)
	})

	t.Run("invalid format id", func(t *testing.T) {
		h := section.EntryHeader{Timestamp: 1, FormatID: 300, EntrySize: section.HeaderSize}
		_, err := Compress(make([]byte, 64), h.Bytes())
		require.ErrorIs(t, err, errs.ErrMalformedData)
	})
}

func TestDecompress_MalformedFormatID(t *testing.T) {
	// A header whose packed format id lands past the double band.
	// Control byte: id width 2, delta width 0; id = 300.
	src := []byte{0x02, 0x2c, 0x01}
	_, err := Decompress(src)
	require.ErrorIs(t, err, errs.ErrMalformedData)
}

func TestDecompress_TruncatedStream(t *testing.T) {
	enc := NewEncoder(make([]byte, 1024), WithClock(fixedClock(50)))
	require.True(t, enc.AppendTexts([]string{"hello", "world"}))

	compressed := compressAll(t, enc.Bytes())

	for cut := 1; cut < len(compressed); cut++ {
		_, err := Decompress(compressed[:cut])
		require.Error(t, err, "cut at %d bytes must not decode cleanly", cut)
	}
}

func TestDecompress_Empty(t *testing.T) {
	records, err := Decompress(nil)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDump(t *testing.T) {
	enc := NewEncoder(make([]byte, 1024), WithClock(fixedClock(100, 130)))
	require.True(t, enc.AppendInts([]int32{1, 300}))
	require.True(t, enc.AppendTexts([]string{"hi"}))

	var out bytes.Buffer
	require.NoError(t, Dump(&out, compressAll(t, enc.Bytes())))

	text := out.String()
	require.Contains(t, text, "[0] at 100 (+100): 2 Int args")
	require.Contains(t, text, "\t1: 300")
	require.Contains(t, text, "[1] at 130 (+30): 1 Text args")
	require.Contains(t, text, "\t0: hi")
}

func TestDump_MalformedReportsInOutput(t *testing.T) {
	var out bytes.Buffer
	err := Dump(&out, []byte{0x02, 0x2c, 0x01})
	require.Error(t, err)
	require.True(t, strings.Contains(out.String(), "malformed data"))
}
