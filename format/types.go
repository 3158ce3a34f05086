package format

import "fmt"

type (
	// ArgKind identifies the argument type a log record carries. A record
	// holds zero or more arguments of a single kind.
	ArgKind uint8

	// CompressionType identifies a generic compression algorithm used by the
	// benchmark harness alongside the structural codec.
	CompressionType uint8
)

const (
	KindText   ArgKind = 0x0 // KindText represents NUL-terminated string arguments.
	KindInt    ArgKind = 0x1 // KindInt represents 4-byte integer arguments.
	KindLong   ArgKind = 0x2 // KindLong represents 8-byte integer arguments.
	KindDouble ArgKind = 0x3 // KindDouble represents 8-byte IEEE-754 arguments.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents gzip (DEFLATE) compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
	CompressionZstd CompressionType = 0x5 // CompressionZstd represents Zstandard compression.
)

func (k ArgKind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindDouble:
		return "Double"
	default:
		return "Unknown"
	}
}

// NativeWidth returns the uncompressed per-argument byte width of the kind.
// Text arguments are variable length and report 0.
func (k ArgKind) NativeWidth() int {
	switch k {
	case KindInt:
		return 4
	case KindLong, KindDouble:
		return 8
	default:
		return 0
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// The format identifier space is partitioned into four contiguous 64-wide
// bands, one per argument kind. The offset within a band is the record's
// arity, so a single integer carries both the kind and the argument count.
const (
	// MaxArity is the exclusive upper bound on a record's argument count.
	MaxArity = 64

	TextBandStart   = 0
	IntBandStart    = 64
	LongBandStart   = 128
	DoubleBandStart = 192

	// FormatIDLimit is the exclusive upper bound of the identifier space.
	// Any decoded identifier at or above this limit is malformed.
	FormatIDLimit = DoubleBandStart + MaxArity
)

// FormatID is the banded wire encoding of (ArgKind, arity). Internally the
// codec works with the explicit pair; FormatID exists only at the wire
// boundary for compactness.
type FormatID uint32

// NewFormatID encodes an argument kind and arity into a banded identifier.
//
// It panics if arity is not in [0, MaxArity): the identifier space cannot
// represent it, which indicates a caller bug rather than a recoverable
// condition.
func NewFormatID(kind ArgKind, arity int) FormatID {
	if arity < 0 || arity >= MaxArity {
		panic(fmt.Sprintf("format: arity %d out of range [0, %d)", arity, MaxArity))
	}

	switch kind {
	case KindText:
		return FormatID(TextBandStart + arity)
	case KindInt:
		return FormatID(IntBandStart + arity)
	case KindLong:
		return FormatID(LongBandStart + arity)
	case KindDouble:
		return FormatID(DoubleBandStart + arity)
	default:
		panic(fmt.Sprintf("format: unknown argument kind %d", kind))
	}
}

// Kind returns the argument kind encoded in the identifier's band.
// The result is unspecified for invalid identifiers; check Valid first when
// decoding untrusted input.
func (id FormatID) Kind() ArgKind {
	switch {
	case id < IntBandStart:
		return KindText
	case id < LongBandStart:
		return KindInt
	case id < DoubleBandStart:
		return KindLong
	default:
		return KindDouble
	}
}

// Arity returns the argument count encoded as the offset within the band.
func (id FormatID) Arity() int {
	return int(id % MaxArity)
}

// Valid reports whether the identifier falls inside one of the four bands.
// The double band's upper bound is the authoritative limit.
func (id FormatID) Valid() bool {
	return id < FormatIDLimit
}

func (id FormatID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("FormatID(%d, invalid)", uint32(id))
	}

	return fmt.Sprintf("FormatID(%s, arity=%d)", id.Kind(), id.Arity())
}
