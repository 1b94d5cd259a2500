package compress

// NoOpCompressor bypasses data without compression.
//
// Useful when payloads are already dense (binary encodings, pre-compressed
// data) or when measuring the overhead of the codec layers themselves.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is, without processing or copying.
// The result shares the input's backing memory.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, without processing or copying.
// The result shares the input's backing memory.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
