package logbuf

import (
	"math"
	"time"

	"github.com/logpack/logpack/endian"
	"github.com/logpack/logpack/format"
	"github.com/logpack/logpack/section"
)

// encoderEpoch anchors the default clock. Go exposes no portable cycle
// counter, so the default timestamp is monotonic nanoseconds since process
// start, which preserves the property the compressor exploits: timestamps
// only move forward and consecutive deltas are small.
var encoderEpoch = time.Now()

func defaultClock() uint64 {
	return uint64(time.Since(encoderEpoch))
}

// Encoder appends uncompressed log records into a caller-owned buffer.
//
// The buffer is supplied up front and never reallocated: when a record would
// not fit in the remaining capacity the append reports false and writes
// nothing, leaving the write cursor unchanged. The caller is expected to
// compress or rotate the buffer and retry.
//
// The Encoder is NOT safe for concurrent use; its only state is the write
// cursor over the caller's buffer.
type Encoder struct {
	buf   []byte
	off   int
	clock func() uint64
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithClock overrides the timestamp source. The clock must be monotonically
// non-decreasing across appends for the compressed headers to stay small;
// correctness does not depend on it.
func WithClock(clock func() uint64) Option {
	return func(e *Encoder) {
		e.clock = clock
	}
}

// NewEncoder creates an Encoder writing into buf. len(buf) is the capacity;
// the encoder never writes past it.
func NewEncoder(buf []byte, opts ...Option) *Encoder {
	e := &Encoder{
		buf:   buf,
		clock: defaultClock,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// AppendTexts appends one record carrying string arguments. Each string is
// stored NUL-terminated, so the strings themselves must not contain NUL
// bytes.
//
// Returns false if the record would not fit; nothing is written in that case.
// Panics if len(args) >= format.MaxArity.
func (e *Encoder) AppendTexts(args []string) bool {
	payloadSize := 0
	for _, s := range args {
		payloadSize += len(s) + 1
	}

	off, ok := e.appendHeader(format.KindText, len(args), payloadSize)
	if !ok {
		return false
	}

	for _, s := range args {
		off += copy(e.buf[off:], s)
		e.buf[off] = 0
		off++
	}
	e.off = off

	return true
}

// AppendInts appends one record carrying 4-byte integer arguments.
//
// Returns false if the record would not fit; nothing is written in that case.
// Panics if len(args) >= format.MaxArity.
func (e *Encoder) AppendInts(args []int32) bool {
	off, ok := e.appendHeader(format.KindInt, len(args), 4*len(args))
	if !ok {
		return false
	}

	engine := endian.GetLittleEndianEngine()
	for _, v := range args {
		engine.PutUint32(e.buf[off:], uint32(v))
		off += 4
	}
	e.off = off

	return true
}

// AppendLongs appends one record carrying 8-byte integer arguments.
//
// Returns false if the record would not fit; nothing is written in that case.
// Panics if len(args) >= format.MaxArity.
func (e *Encoder) AppendLongs(args []int64) bool {
	off, ok := e.appendHeader(format.KindLong, len(args), 8*len(args))
	if !ok {
		return false
	}

	engine := endian.GetLittleEndianEngine()
	for _, v := range args {
		engine.PutUint64(e.buf[off:], uint64(v))
		off += 8
	}
	e.off = off

	return true
}

// AppendDoubles appends one record carrying 8-byte floating-point arguments.
// Doubles are stored as raw IEEE-754 bits and are never width-packed.
//
// Returns false if the record would not fit; nothing is written in that case.
// Panics if len(args) >= format.MaxArity.
func (e *Encoder) AppendDoubles(args []float64) bool {
	off, ok := e.appendHeader(format.KindDouble, len(args), 8*len(args))
	if !ok {
		return false
	}

	engine := endian.GetLittleEndianEngine()
	for _, v := range args {
		engine.PutUint64(e.buf[off:], math.Float64bits(v))
		off += 8
	}
	e.off = off

	return true
}

// appendHeader checks capacity, writes the entry header, and returns the
// payload write offset. The arity check runs before the capacity check:
// an oversized arity is a caller bug and must surface even when the buffer
// happens to be full.
func (e *Encoder) appendHeader(kind format.ArgKind, arity, payloadSize int) (int, bool) {
	id := format.NewFormatID(kind, arity) // panics on arity >= MaxArity

	required := section.HeaderSize + payloadSize
	if len(e.buf)-e.off < required {
		return 0, false
	}

	h := section.EntryHeader{
		Timestamp: e.clock(),
		FormatID:  id,
		EntrySize: uint32(required),
	}
	h.PutTo(e.buf[e.off:])

	return e.off + section.HeaderSize, true
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int {
	return e.off
}

// Cap returns the total capacity of the underlying buffer.
func (e *Encoder) Cap() int {
	return len(e.buf)
}

// Remaining returns the free capacity left in the buffer.
func (e *Encoder) Remaining() int {
	return len(e.buf) - e.off
}

// Bytes returns the encoded records written so far. The slice aliases the
// caller's buffer and is valid until the next append or Reset.
func (e *Encoder) Bytes() []byte {
	return e.buf[:e.off]
}

// Reset rewinds the write cursor without touching the buffer contents.
func (e *Encoder) Reset() {
	e.off = 0
}
