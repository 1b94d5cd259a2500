// Package tuplecodec provides tuple codecs for distributed stream-processing
// pipelines: serialization of logical values to byte views, partition-key
// computation for routing, and codec decorators that add transparent
// compression and AES encryption to any existing codec.
//
// # Core Concepts
//
//   - codec.Slice: immutable zero-copy view into a byte buffer
//     (buffer, offset, length)
//   - codec.Codec[T]: Serialize / Deserialize / PartitionKey for tuples of
//     type T
//   - encrypt.Codec[T]: decorator encrypting the serialized bytes while
//     partitioning stays on the plaintext value
//   - compress.Tuple[T]: decorator compressing the serialized bytes
//
// # Basic Usage
//
// Encrypting a string codec with a generated key:
//
//	inner := tuplecodec.NewString()
//	c, err := tuplecodec.NewEncrypted[string](inner, encrypt.Generate())
//	if err != nil {
//	    return err
//	}
//
//	data, _ := c.Serialize("Lorem Ipsum")  // ciphertext view
//	value, _ := c.Deserialize(data)       // "Lorem Ipsum"
//
// Loading the key from a keystore file:
//
//	props, _ := encrypt.LoadProperties("keystore.properties")
//	c, err := tuplecodec.NewEncrypted[string](inner, encrypt.Keystore(props))
//
// Stacking compression inside encryption (ciphertext is incompressible, so
// compression must run first):
//
//	c, err := tuplecodec.NewSecure[Event](
//	    tuplecodec.NewGob[Event](), encrypt.Generate(), format.CompressionLZ4)
//
// Decorators forward PartitionKey to the inner codec on the original value,
// so adding them never changes how tuples are distributed across downstream
// workers.
//
// # Package Structure
//
// This package provides convenient top-level constructors around the codec,
// encrypt, and compress packages, which can be used directly for
// fine-grained control.
package tuplecodec

import (
	"github.com/arloliu/tuplecodec/codec"
	"github.com/arloliu/tuplecodec/compress"
	"github.com/arloliu/tuplecodec/encrypt"
	"github.com/arloliu/tuplecodec/format"
)

// NewString creates a codec for string tuples.
func NewString() codec.StringCodec {
	return codec.NewStringCodec()
}

// NewGob creates a codec for gob-encodable tuples of type T.
func NewGob[T any]() codec.GobCodec[T] {
	return codec.NewGobCodec[T]()
}

// NewEncrypted wraps inner with transparent AES encryption, provisioning
// the key from src.
func NewEncrypted[T any](inner codec.Codec[T], src encrypt.KeySource) (*encrypt.Codec[T], error) {
	return encrypt.New(inner, src)
}

// NewCompressed wraps inner with payload compression.
func NewCompressed[T any](inner codec.Codec[T], compressionType format.CompressionType) (*compress.Tuple[T], error) {
	return compress.NewTuple(inner, compressionType)
}

// NewSecure wraps inner with compression inside encryption: tuples are
// serialized, compressed, then encrypted.
func NewSecure[T any](inner codec.Codec[T], src encrypt.KeySource, compressionType format.CompressionType) (*encrypt.Codec[T], error) {
	compressed, err := compress.NewTuple(inner, compressionType)
	if err != nil {
		return nil, err
	}

	return encrypt.New[T](compressed, src)
}
