// Package logbuf implements the structural log-entry codec: an Encoder that
// packs typed, variable-arity records into a caller-owned buffer, a Compress
// pass that collapses those records into a dense byte stream, and a
// Decompress/Dump pair that reconstructs them for verification.
//
// The codec exploits two regularities of structured log traffic: timestamps
// are monotonically increasing and usually close together, and numeric
// arguments are frequently small relative to their storage width. It is a
// structural/width compressor only; no entropy coding is applied, which is
// what keeps a single pass fast enough to run on the logging hot path.
//
// Everything here is single-threaded and synchronous. Each call owns its
// input and output buffers for its duration, and no state persists between
// calls beyond what the caller threads through explicitly.
package logbuf
