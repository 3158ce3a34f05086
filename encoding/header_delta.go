package encoding

import (
	"github.com/logpack/logpack/errs"
	"github.com/logpack/logpack/format"
)

// The compressed header collapses a record's (FormatID, timestamp) pair into
// one control byte plus two variable-width values:
//
//	control byte: low nibble  = packed width of the format identifier
//	              high nibble = packed width of the timestamp delta
//	followed by:  formatID bytes, then delta bytes
//
// The timestamp is stored as a delta against the previous record's timestamp
// within the same pass; consecutive records in a trace typically have small
// deltas, so most headers shrink from 16 bytes to 2-5 bytes. The first
// record's delta is relative to 0. The format identifier's value space is at
// most 256, so it packs into 0 or 1 bytes.

// formatIDNativeWidth is the uncompressed width of the format identifier.
const formatIDNativeWidth = 4

// AppendHeader appends the compressed header for a record to dst and returns
// the extended slice.
//
// Parameters:
//   - dst: Destination slice to append to
//   - id: The record's banded format identifier
//   - ts: The record's timestamp
//   - prevTS: The previous record's timestamp within this pass (0 for the first record)
func AppendHeader(dst []byte, id format.FormatID, ts, prevTS uint64) []byte {
	delta := ts - prevTS

	idWidth := WidthOf(uint64(id), formatIDNativeWidth)
	deltaWidth := WidthOf(delta, 8)

	dst = append(dst, Nibbles(idWidth, deltaWidth))
	dst = AppendPacked(dst, uint64(id), idWidth)
	dst = AppendPacked(dst, delta, deltaWidth)

	return dst
}

// DecodeHeader decodes one compressed header from the front of src.
//
// The decoded timestamp is reconstructed by advancing prevTS by the decoded
// delta; threading the returned timestamp into the next call keeps a decode
// pass synchronized with the encode pass.
//
// Parameters:
//   - src: Input slice positioned at a compressed header
//   - prevTS: The previous record's reconstructed timestamp (0 for the first record)
//
// Returns:
//   - id: The record's banded format identifier
//   - ts: The record's reconstructed timestamp
//   - n: Bytes consumed from src
//   - err: errs.ErrTruncatedData if src ends inside the header
func DecodeHeader(src []byte, prevTS uint64) (id format.FormatID, ts uint64, n int, err error) {
	if len(src) < 1 {
		return 0, 0, 0, errs.ErrTruncatedData
	}

	idWidth, deltaWidth := SplitNibbles(src[0])
	n = 1 + idWidth + deltaWidth
	if len(src) < n {
		return 0, 0, 0, errs.ErrTruncatedData
	}

	id = format.FormatID(Unpack(src[1:], idWidth))
	delta := Unpack(src[1+idWidth:], deltaWidth)

	return id, prevTS + delta, n, nil
}
