// Package compress provides compression codecs for serialized tuple
// payloads, plus a tuple codec decorator that applies them transparently.
//
// In a pipeline that also encrypts, compression belongs inside the
// encryption layer: ciphertext is incompressible, so the compressing codec
// wraps the inner serialization codec and the encrypting codec wraps the
// compressing one.
//
// Supported algorithms:
//   - None: no compression (NoOpCompressor)
//   - Zstd: best ratio, moderate speed (pure Go by default, cgo gozstd with
//     CGO_ENABLED=1)
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// Byte-level codecs implement the Codec interface:
//
//	c, _ := compress.CreateCodec(format.CompressionLZ4)
//	compressed, _ := c.Compress(payload)
//	original, _ := c.Decompress(compressed)
//
// The Tuple decorator lifts a byte-level Codec onto a tuple codec:
//
//	inner := codec.NewGobCodec[Event]()
//	compressing, _ := compress.NewTuple[Event](inner, format.CompressionLZ4)
package compress
