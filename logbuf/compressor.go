package logbuf

import (
	"fmt"

	"github.com/logpack/logpack/encoding"
	"github.com/logpack/logpack/endian"
	"github.com/logpack/logpack/errs"
	"github.com/logpack/logpack/format"
	"github.com/logpack/logpack/section"
)

// CompressBound returns a capacity guaranteed to hold the compressed form of
// n bytes of encoder output.
//
// The structural codec never expands data bytes, but each numeric argument
// pair costs one control byte the raw form does not have. Per record the
// compressed header is at most 13 of the raw 16 bytes and the control bytes
// are at most argBytes/8 + 1, so the whole stream fits in n + n/8 plus a
// small constant.
func CompressBound(n int) int {
	return n + n/8 + 16
}

// checkedWriter is a bounds-checked cursor over the destination buffer.
// Every write validates the remaining capacity first, so a too-small
// destination fails cleanly instead of writing out of range.
type checkedWriter struct {
	dst []byte
	off int
}

func (w *checkedWriter) write(p []byte) error {
	if len(w.dst)-w.off < len(p) {
		return errs.ErrDstTooSmall
	}
	w.off += copy(w.dst[w.off:], p)

	return nil
}

func (w *checkedWriter) writeByte(b byte) error {
	if len(w.dst)-w.off < 1 {
		return errs.ErrDstTooSmall
	}
	w.dst[w.off] = b
	w.off++

	return nil
}

func (w *checkedWriter) writePacked(v uint64, width int) error {
	if len(w.dst)-w.off < width {
		return errs.ErrDstTooSmall
	}
	for i := 0; i < width; i++ {
		w.dst[w.off+i] = byte(v >> (8 * i))
	}
	w.off += width

	return nil
}

// Compress applies the structural compaction scheme to encoder output in src
// and writes the result to dst, returning the number of bytes written.
//
// The pass walks src record by record: each 16-byte entry header collapses
// into a delta-compressed header, integer and long arguments are width-packed
// in two-nibble pairs, and text or double payloads are copied verbatim.
//
// Errors:
//   - errs.ErrDstTooSmall: dst cannot hold the output; use CompressBound.
//   - errs.ErrTruncatedData / errs.ErrInvalidEntrySize: src is not a whole
//     number of well-formed records.
//   - errs.ErrMalformedData: a record's format identifier or payload layout
//     is inconsistent.
func Compress(dst, src []byte) (int, error) {
	w := checkedWriter{dst: dst}

	var scratch [16]byte
	readPos := 0
	lastTime := uint64(0)

	for readPos < len(src) {
		h, err := section.ParseEntryHeader(src[readPos:])
		if err != nil {
			return 0, fmt.Errorf("%w: record header at offset %d", errs.ErrTruncatedData, readPos)
		}

		entrySize := int(h.EntrySize)
		if entrySize < section.HeaderSize || readPos+entrySize > len(src) {
			return 0, fmt.Errorf("%w: entry size %d at offset %d", errs.ErrInvalidEntrySize, entrySize, readPos)
		}
		if !h.FormatID.Valid() {
			return 0, fmt.Errorf("%w: format id %d at offset %d", errs.ErrMalformedData, h.FormatID, readPos)
		}

		hdr := encoding.AppendHeader(scratch[:0], h.FormatID, h.Timestamp, lastTime)
		if err := w.write(hdr); err != nil {
			return 0, err
		}
		lastTime = h.Timestamp

		payload := src[readPos+section.HeaderSize : readPos+entrySize]
		kind := h.FormatID.Kind()

		switch kind {
		case format.KindText, format.KindDouble:
			// Incompressible payloads are copied verbatim.
			if err := w.write(payload); err != nil {
				return 0, err
			}
		case format.KindInt, format.KindLong:
			width := kind.NativeWidth()
			if len(payload) != h.FormatID.Arity()*width {
				return 0, fmt.Errorf("%w: %s payload of %d bytes for arity %d",
					errs.ErrMalformedData, kind, len(payload), h.FormatID.Arity())
			}
			if err := compressPairs(&w, payload, width); err != nil {
				return 0, err
			}
		}

		readPos += entrySize
	}

	return w.off, nil
}

// compressPairs width-packs a numeric payload, emitting one control byte per
// argument pair followed by the packed values. An odd final argument gets a
// control byte with the high nibble zero; the decoder mirrors the pairing.
func compressPairs(w *checkedWriter, payload []byte, width int) error {
	engine := endian.GetLittleEndianEngine()
	count := len(payload) / width

	for i := 0; i < count; i += 2 {
		v1 := loadArg(engine, payload, i, width)
		w1 := encoding.WidthOf(v1, width)

		var v2 uint64
		w2 := 0
		if i+1 < count {
			v2 = loadArg(engine, payload, i+1, width)
			w2 = encoding.WidthOf(v2, width)
		}

		if err := w.writeByte(encoding.Nibbles(w1, w2)); err != nil {
			return err
		}
		if err := w.writePacked(v1, w1); err != nil {
			return err
		}
		if i+1 < count {
			if err := w.writePacked(v2, w2); err != nil {
				return err
			}
		}
	}

	return nil
}

// loadArg reads the i-th native-width argument from a raw payload,
// zero-extended to uint64 for width computation.
func loadArg(engine endian.EndianEngine, payload []byte, i, width int) uint64 {
	if width == 4 {
		return uint64(engine.Uint32(payload[i*4:]))
	}

	return engine.Uint64(payload[i*8:])
}
