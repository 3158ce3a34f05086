package encoding

import "math/bits"

// This file implements the variable-width integer packing primitive shared by
// the compressor and decompressor. A value of native width w (4 or 8 bytes)
// is stored as its lowest n bytes in little-endian order, where n is the
// smallest count whose zero-extension reproduces the original bit pattern.
// Widths fit in a 4-bit nibble (n is in [0, 8]); two consecutive arguments
// share one control byte, halving the per-argument overhead.
//
// The scheme is exact for every value: negative two's-complement values have
// nonzero high bytes and simply pack at full native width, so the packed form
// never expands the data bytes.

// WidthOf returns the smallest byte count n in [0, nativeWidth] such that the
// lowest n bytes of v, zero-extended back to nativeWidth bytes, reproduce v
// exactly. A width of 0 means the value is zero and contributes no data bytes.
//
// Callers must zero-extend narrower values into v before calling; e.g. an
// int32 argument is passed as uint64(uint32(v)) with nativeWidth 4.
func WidthOf(v uint64, nativeWidth int) int {
	n := (bits.Len64(v) + 7) / 8
	if n > nativeWidth {
		n = nativeWidth
	}

	return n
}

// AppendPacked appends the lowest width bytes of v to dst in little-endian
// order and returns the extended slice. width must come from WidthOf for the
// same value; passing a smaller width silently truncates.
func AppendPacked(dst []byte, v uint64, width int) []byte {
	for i := 0; i < width; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}

	return dst
}

// Unpack reads exactly width bytes from src and zero-extends them to a
// uint64. Callers reinterpret the result as the original numeric type.
// src must be at least width bytes long.
func Unpack(src []byte, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(src[i]) << (8 * i)
	}

	return v
}

// Nibbles packs two width codes into a single control byte: first in the
// low-order nibble, second in the high-order nibble. For an unpaired final
// argument the second width is 0.
func Nibbles(first, second int) byte {
	return byte(first&0xf) | byte(second&0xf)<<4
}

// SplitNibbles is the inverse of Nibbles.
func SplitNibbles(b byte) (first, second int) {
	return int(b & 0xf), int(b >> 4)
}
