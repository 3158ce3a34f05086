package compress

import (
	"fmt"

	"github.com/logpack/logpack/format"
)

// Compressor compresses a complete payload in one call.
//
// In this repository the payloads are whole uncompressed log buffers: the
// benchmark harness runs each generic algorithm over the same input as the
// structural codec to compare ratios and throughput, and optionally over the
// structural codec's output for double compression.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the data is corrupted or was compressed with an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// NewCodec returns the codec for the given compression type.
func NewCodec(typ format.CompressionType) (Codec, error) {
	switch typ {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionGzip:
		return NewGzipCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("unknown compression type: %d", typ)
	}
}
