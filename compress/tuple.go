package compress

import (
	"fmt"

	"github.com/arloliu/tuplecodec/codec"
	"github.com/arloliu/tuplecodec/format"
)

// Tuple decorates an inner tuple codec with payload compression.
//
// Serialization passes through the inner codec and the serialized bytes are
// compressed; deserialization decompresses before handing the plaintext
// payload to the inner codec. PartitionKey forwards to the inner codec on
// the original logical value, so compression never changes tuple routing.
type Tuple[T any] struct {
	inner codec.Codec[T]
	codec Codec
}

var _ codec.Codec[string] = (*Tuple[string])(nil)

// NewTuple creates a compressing codec around inner using the given
// compression type.
func NewTuple[T any](inner codec.Codec[T], compressionType format.CompressionType) (*Tuple[T], error) {
	c, err := CreateCodec(compressionType)
	if err != nil {
		return nil, err
	}

	return &Tuple[T]{inner: inner, codec: c}, nil
}

// Serialize serializes value with the inner codec and compresses the
// resulting byte region.
func (t *Tuple[T]) Serialize(value T) (codec.Slice, error) {
	plain, err := t.inner.Serialize(value)
	if err != nil {
		return codec.Slice{}, fmt.Errorf("inner serialize: %w", err)
	}

	compressed, err := t.codec.Compress(plain.Bytes())
	if err != nil {
		return codec.Slice{}, fmt.Errorf("compressing tuple: %w", err)
	}

	return codec.New(compressed), nil
}

// Deserialize decompresses the referenced byte region and reconstructs the
// logical value with the inner codec.
func (t *Tuple[T]) Deserialize(data codec.Slice) (T, error) {
	plain, err := t.codec.Decompress(data.Bytes())
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decompressing tuple: %w", err)
	}

	return t.inner.Deserialize(codec.New(plain))
}

// PartitionKey forwards to the inner codec on the original logical value.
func (t *Tuple[T]) PartitionKey(value T) (int32, error) {
	return t.inner.PartitionKey(value)
}
