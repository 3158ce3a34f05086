package section

import (
	"github.com/logpack/logpack/endian"
	"github.com/logpack/logpack/errs"
	"github.com/logpack/logpack/format"
)

// EntryHeader is the fixed-size header preceding every uncompressed log
// record. Records are packed contiguously with no padding, so the next
// record begins exactly EntrySize bytes after this header starts.
type EntryHeader struct {
	// Timestamp is a monotonic counter sampled when the record was appended.
	Timestamp uint64 // byte offset 0-7
	// FormatID multiplexes the record's argument kind and arity via band
	// membership; see the format package.
	FormatID format.FormatID // byte offset 8-11
	// EntrySize is the total record size: HeaderSize plus the argument
	// payload size.
	EntrySize uint32 // byte offset 12-15
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least HeaderSize bytes)
//
// Returns:
//   - error: errs.ErrInvalidHeaderSize if data is shorter than HeaderSize
func (h *EntryHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()
	h.Timestamp = engine.Uint64(data[TimestampOffset : TimestampOffset+8])
	h.FormatID = format.FormatID(engine.Uint32(data[FormatIDOffset : FormatIDOffset+4]))
	h.EntrySize = engine.Uint32(data[EntrySizeOffset : EntrySizeOffset+4])

	return nil
}

// PayloadSize returns the argument payload size declared by the header.
// The result is negative when EntrySize is smaller than the header itself,
// which callers must treat as malformed.
func (h *EntryHeader) PayloadSize() int {
	return int(h.EntrySize) - HeaderSize
}

// Bytes serializes the EntryHeader into a freshly allocated byte slice.
func (h *EntryHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.PutTo(b)

	return b
}

// PutTo serializes the header into the first HeaderSize bytes of b, which
// must be at least HeaderSize long.
func (h *EntryHeader) PutTo(b []byte) {
	engine := endian.GetLittleEndianEngine()
	engine.PutUint64(b[TimestampOffset:TimestampOffset+8], h.Timestamp)
	engine.PutUint32(b[FormatIDOffset:FormatIDOffset+4], uint32(h.FormatID))
	engine.PutUint32(b[EntrySizeOffset:EntrySizeOffset+4], h.EntrySize)
}

// ParseEntryHeader parses an EntryHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least HeaderSize bytes)
//
// Returns:
//   - EntryHeader: Parsed header struct
//   - error: errs.ErrInvalidHeaderSize if data is too short
func ParseEntryHeader(data []byte) (EntryHeader, error) {
	var h EntryHeader
	if err := h.Parse(data); err != nil {
		return EntryHeader{}, err
	}

	return h, nil
}
