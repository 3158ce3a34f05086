package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWidthOf(t *testing.T) {
	tests := []struct {
		name        string
		value       uint64
		nativeWidth int
		want        int
	}{
		{"zero", 0, 8, 0},
		{"one byte", 1, 8, 1},
		{"one byte max", 255, 8, 1},
		{"two bytes", 256, 8, 2},
		{"two bytes typical", 300, 8, 2},
		{"three bytes", 70000, 8, 3},
		{"full u32", 0xffffffff, 4, 4},
		{"full u64", 0xffffffffffffffff, 8, 8},
		{"negative int32 zero-extended", uint64(uint32(0x80000000)), 4, 4},
		{"int width cap", uint64(uint32(0xffffffff)), 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, WidthOf(tt.value, tt.nativeWidth))
		})
	}
}

func TestPackUnpack_ExactForAllWidths(t *testing.T) {
	values := []uint64{
		0, 1, 0x7f, 0x80, 0xff, 0x100, 300, 70000,
		0xdeadbeef, 1 << 32, 0x0102030405060708, ^uint64(0),
	}

	for _, v := range values {
		w := WidthOf(v, 8)
		packed := AppendPacked(nil, v, w)
		require.Len(t, packed, w)
		require.Equal(t, v, Unpack(packed, w))
	}
}

func TestPackUnpack_NegativeValues(t *testing.T) {
	// Negative two's-complement values have nonzero high bytes: they pack at
	// full native width but must round-trip bit-for-bit.
	ints := []int32{-1, -300, -70000, -2147483648}
	for _, v := range ints {
		u := uint64(uint32(v))
		w := WidthOf(u, 4)
		require.Equal(t, 4, w)

		packed := AppendPacked(nil, u, w)
		require.Equal(t, v, int32(uint32(Unpack(packed, w))))
	}

	longs := []int64{-1, -300, -9223372036854775808}
	for _, v := range longs {
		u := uint64(v)
		w := WidthOf(u, 8)
		require.Equal(t, 8, w)

		packed := AppendPacked(nil, u, w)
		require.Equal(t, v, int64(Unpack(packed, w)))
	}
}

func TestPacked_LittleEndianByteOrder(t *testing.T) {
	packed := AppendPacked(nil, 0x010203, 3)
	require.Equal(t, []byte{0x03, 0x02, 0x01}, packed)
}

func TestNibbles(t *testing.T) {
	for first := 0; first <= 8; first++ {
		for second := 0; second <= 8; second++ {
			b := Nibbles(first, second)
			gotFirst, gotSecond := SplitNibbles(b)
			require.Equal(t, first, gotFirst)
			require.Equal(t, second, gotSecond)
		}
	}
}
