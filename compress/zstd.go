package compress

// ZstdCompressor provides Zstandard compression, the strongest-ratio
// algorithm in the benchmark comparisons.
//
// Two implementations exist behind build tags: the default pure-Go
// klauspost/compress encoder, and a cgo binding to libzstd enabled with the
// cgozstd tag for environments where the native library's throughput
// matters.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
