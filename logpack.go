// Package logpack provides a structural compression codec for binary log
// entries: typed, variable-arity records are packed into a dense byte stream
// and reconstructed exactly, without any general-purpose compression pass.
//
// The codec exploits two regularities of structured log traffic:
//
//   - Timestamps are monotonically increasing and usually close together,
//     so each record stores only a variable-width delta.
//   - Numeric arguments are frequently small relative to their storage
//     width, so each argument stores only its significant low-order bytes.
//
// # Basic Usage
//
// Building a buffer of records and compressing it:
//
//	buf := make([]byte, 64*1024)
//	enc := logpack.NewEncoder(buf)
//
//	for !enc.AppendInts([]int32{count, errCode}) {
//	    // Buffer full: compress and rotate.
//	    dst := make([]byte, logpack.CompressBound(enc.Len()))
//	    n, _ := logpack.Compress(dst, enc.Bytes())
//	    flush(dst[:n])
//	    enc.Reset()
//	}
//
// Inspecting a compressed stream:
//
//	records, err := logpack.Decompress(compressed)
//	// or, for human consumption:
//	logpack.Dump(os.Stdout, compressed)
//
// # Scope
//
// The compressed stream is strictly sequential (no random access), carries
// no record count (the caller supplies the byte length), and is a private
// in-process layout: it is not versioned and not intended for cross-process
// exchange.
//
// # Package Structure
//
// This package is a thin wrapper over the codec packages; use them directly
// for fine-grained control:
//
//   - logbuf: encoder, compressor, decompressor
//   - encoding: variable-width packing and header delta primitives
//   - format: argument kinds and banded format identifiers
//   - section: uncompressed entry header layout
//   - compress: generic codecs used by the benchmark harness
//   - gen, bench: synthetic workloads and the comparison harness
package logpack

import (
	"io"

	"github.com/logpack/logpack/logbuf"
)

// Encoder appends uncompressed log records into a caller-owned buffer.
type Encoder = logbuf.Encoder

// Record is one reconstructed log entry.
type Record = logbuf.Record

// NewEncoder creates an Encoder writing into buf.
func NewEncoder(buf []byte, opts ...logbuf.Option) *Encoder {
	return logbuf.NewEncoder(buf, opts...)
}

// Compress applies the structural compaction scheme to encoder output in
// src, writing to dst and returning the bytes written.
func Compress(dst, src []byte) (int, error) {
	return logbuf.Compress(dst, src)
}

// CompressBound returns a dst capacity guaranteed to hold the compressed
// form of n bytes of encoder output.
func CompressBound(n int) int {
	return logbuf.CompressBound(n)
}

// Decompress reconstructs the records of a compressed stream.
func Decompress(src []byte) ([]Record, error) {
	return logbuf.Decompress(src)
}

// Dump writes a human-readable rendering of a compressed stream to w.
func Dump(w io.Writer, src []byte) error {
	return logbuf.Dump(w, src)
}
