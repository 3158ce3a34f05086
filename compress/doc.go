// Package compress provides the generic compression codecs the benchmark
// harness runs alongside the structural log codec: gzip, S2, LZ4, Zstd, and
// a no-op baseline.
//
// These codecs are the comparison set, not part of the structural codec's
// wire format. Each implements the Codec interface over whole payloads, with
// pooled encoder state where the underlying library benefits from reuse.
package compress
