package compress

// ZstdCompressor compresses tuple payloads with Zstandard.
//
// Best suited when the pipeline link is bandwidth-bound and payloads are
// large enough to amortize the higher per-call cost. The implementation is
// selected at build time: pure Go (klauspost/compress) by default, the cgo
// binding (valyala/gozstd) when built with cgo.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
