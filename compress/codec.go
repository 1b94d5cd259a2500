package compress

import (
	"fmt"

	"github.com/arloliu/tuplecodec/format"
)

// Compressor compresses serialized tuple payloads.
//
// Payloads are typically small (tens of bytes to a few kilobytes), so
// implementations favor low per-call overhead over maximum ratio.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The returned slice is newly allocated and owned by the caller; the
	// input slice is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores tuple payloads compressed by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// payload.
	//
	// Returns an error if the data is corrupted or was compressed with an
	// incompatible algorithm. The returned slice is newly allocated and
	// owned by the caller; the input slice is not modified.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid compression type: %s", compressionType)
	}
}
