// Package encoding implements the wire-level primitives of the structural
// codec: variable-width integer packing with paired nibble control bytes,
// and the delta-compressed record header.
//
// Both primitives are purely functional. The only cross-record state in the
// codec, the previous record's timestamp, is passed into and returned from
// each header call explicitly so the codec stays reentrant and each step can
// be tested in isolation.
package encoding
