// Package errs defines the sentinel errors used across logpack packages.
//
// Callers should match errors with errors.Is since most call sites wrap these
// sentinels with additional context via fmt.Errorf("%w: ...").
package errs

import "errors"

var (
	// ErrDstTooSmall indicates the destination buffer cannot hold the
	// compressed output. No bytes past the destination's length are written.
	ErrDstTooSmall = errors.New("destination buffer too small")

	// ErrMalformedData indicates a decoded format identifier falls outside
	// all known bands, or a payload does not match its declared layout.
	ErrMalformedData = errors.New("malformed compressed data")

	// ErrTruncatedData indicates the input ended in the middle of a record.
	ErrTruncatedData = errors.New("truncated compressed data")

	// ErrInvalidHeaderSize indicates an entry header slice is not exactly
	// section.HeaderSize bytes.
	ErrInvalidHeaderSize = errors.New("invalid entry header size")

	// ErrInvalidEntrySize indicates an entry header declares a size smaller
	// than the header itself or larger than the remaining input.
	ErrInvalidEntrySize = errors.New("invalid entry size")
)
