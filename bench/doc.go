// Package bench generates synthetic log buffers and measures the structural
// codec against generic compression algorithms over them, producing
// size/timing comparison tables.
//
// Each run fills an uncompressed buffer from a seeded dataset definition,
// times every configured algorithm over the identical bytes, and verifies
// every round trip before reporting. The harness consumes the codec through
// its two public call points only: appending typed records and
// compressing/decompressing whole buffers.
package bench
