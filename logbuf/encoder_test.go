package logbuf

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logpack/logpack/format"
	"github.com/logpack/logpack/section"
)

// fixedClock returns a clock that yields pre-baked timestamps in order.
func fixedClock(timestamps ...uint64) func() uint64 {
	i := 0
	return func() uint64 {
		ts := timestamps[i%len(timestamps)]
		i++

		return ts
	}
}

func TestEncoder_AppendInts_Layout(t *testing.T) {
	buf := make([]byte, 256)
	enc := NewEncoder(buf, WithClock(fixedClock(1000)))

	require.True(t, enc.AppendInts([]int32{1, 300}))
	require.Equal(t, section.HeaderSize+8, enc.Len())

	h, err := section.ParseEntryHeader(enc.Bytes())
	require.NoError(t, err)
	require.Equal(t, uint64(1000), h.Timestamp)
	require.Equal(t, format.NewFormatID(format.KindInt, 2), h.FormatID)
	require.Equal(t, uint32(section.HeaderSize+8), h.EntrySize)

	// Raw little-endian argument payload.
	payload := enc.Bytes()[section.HeaderSize:]
	require.Equal(t, []byte{1, 0, 0, 0, 0x2c, 0x01, 0, 0}, payload)
}

func TestEncoder_AppendTexts_NulTerminated(t *testing.T) {
	buf := make([]byte, 256)
	enc := NewEncoder(buf, WithClock(fixedClock(1)))

	require.True(t, enc.AppendTexts([]string{"ab", ""}))

	payload := enc.Bytes()[section.HeaderSize:]
	require.Equal(t, []byte{'a', 'b', 0, 0}, payload)
}

func TestEncoder_CapacityRefusal(t *testing.T) {
	// Room for the header but not the payload.
	buf := make([]byte, section.HeaderSize+7)
	enc := NewEncoder(buf, WithClock(fixedClock(1)))

	require.False(t, enc.AppendLongs([]int64{42}))
	require.Equal(t, 0, enc.Len(), "refused append must not move the cursor")

	// A smaller record still fits afterwards.
	require.True(t, enc.AppendInts([]int32{}))
	require.Equal(t, section.HeaderSize, enc.Len())
}

func TestEncoder_ZeroArityRecords(t *testing.T) {
	buf := make([]byte, 256)
	enc := NewEncoder(buf, WithClock(fixedClock(5)))

	require.True(t, enc.AppendDoubles(nil))
	require.Equal(t, section.HeaderSize, enc.Len())

	h, err := section.ParseEntryHeader(enc.Bytes())
	require.NoError(t, err)
	require.Equal(t, format.NewFormatID(format.KindDouble, 0), h.FormatID)
	require.Equal(t, 0, h.PayloadSize())
}

func TestEncoder_ArityPanics(t *testing.T) {
	enc := NewEncoder(make([]byte, 1<<16))

	args := make([]int32, format.MaxArity)
	require.Panics(t, func() { enc.AppendInts(args) })

	// Even when the buffer could never hold it, the arity bug must surface.
	small := NewEncoder(make([]byte, 4))
	require.Panics(t, func() { small.AppendInts(args) })
}

func TestEncoder_Reset(t *testing.T) {
	enc := NewEncoder(make([]byte, 256), WithClock(fixedClock(1)))

	require.True(t, enc.AppendInts([]int32{7}))
	require.NotZero(t, enc.Len())

	enc.Reset()
	require.Equal(t, 0, enc.Len())
	require.Equal(t, 256, enc.Remaining())
}

func TestEncoder_FillUntilRefusal(t *testing.T) {
	enc := NewEncoder(make([]byte, 1024), WithClock(fixedClock(1, 2, 3, 4)))

	count := 0
	for enc.AppendLongs([]int64{int64(count)}) {
		count++
	}

	require.Equal(t, 1024/(section.HeaderSize+8), count)
	require.LessOrEqual(t, enc.Len(), enc.Cap())
}
