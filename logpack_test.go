package logpack

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack/logpack/format"
)

func TestTopLevel_RoundTrip(t *testing.T) {
	buf := make([]byte, 4096)
	enc := NewEncoder(buf)

	require.True(t, enc.AppendInts([]int32{1, 300, 70000}))
	require.True(t, enc.AppendTexts([]string{"hello", "world"}))
	require.True(t, enc.AppendDoubles([]float64{3.5}))

	dst := make([]byte, CompressBound(enc.Len()))
	n, err := Compress(dst, enc.Bytes())
	require.NoError(t, err)
	require.Less(t, n, enc.Len())

	records, err := Decompress(dst[:n])
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, []int32{1, 300, 70000}, records[0].Ints)
	require.Equal(t, []string{"hello", "world"}, records[1].Texts)
	require.Equal(t, []float64{3.5}, records[2].Doubles)

	// Timestamps from the default clock move forward.
	require.LessOrEqual(t, records[0].Timestamp, records[1].Timestamp)
	require.LessOrEqual(t, records[1].Timestamp, records[2].Timestamp)
}

func TestTopLevel_Dump(t *testing.T) {
	buf := make([]byte, 1024)
	enc := NewEncoder(buf)
	require.True(t, enc.AppendLongs([]int64{42}))

	dst := make([]byte, CompressBound(enc.Len()))
	n, err := Compress(dst, enc.Bytes())
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Dump(&out, dst[:n]))
	require.Contains(t, out.String(), "1 Long args")
	require.Contains(t, out.String(), "\t0: 42")
}

func TestTopLevel_KindExposure(t *testing.T) {
	buf := make([]byte, 256)
	enc := NewEncoder(buf)
	require.True(t, enc.AppendInts(nil))

	dst := make([]byte, CompressBound(enc.Len()))
	n, err := Compress(dst, enc.Bytes())
	require.NoError(t, err)

	records, err := Decompress(dst[:n])
	require.NoError(t, err)
	require.Equal(t, format.KindInt, records[0].Kind)
	require.Equal(t, 0, records[0].Arity())
}
