package codec

import (
	"bytes"
	"encoding/gob"

	"github.com/arloliu/tuplecodec/internal/hash"
)

// GobCodec serializes tuples of any gob-encodable type T using encoding/gob.
//
// Gob is self-describing, so the codec needs no schema registration for
// structs, maps, and slices. The partition key is the folded xxHash64 of the
// serialized bytes; gob encoding is deterministic for a given value, which
// keeps the key stable for equal values.
//
// Each call uses a fresh encoder so that the gob type-descriptor stream is
// complete in every payload; tuples must be individually decodable because
// they are routed to different workers.
type GobCodec[T any] struct{}

var _ Codec[int] = GobCodec[int]{}

// NewGobCodec creates a new gob codec for values of type T.
func NewGobCodec[T any]() GobCodec[T] {
	return GobCodec[T]{}
}

func (GobCodec[T]) Serialize(value T) (Slice, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return Slice{}, err
	}

	return New(buf.Bytes()), nil
}

func (GobCodec[T]) Deserialize(data Slice) (T, error) {
	var value T
	if err := gob.NewDecoder(bytes.NewReader(data.Bytes())).Decode(&value); err != nil {
		var zero T
		return zero, err
	}

	return value, nil
}

func (c GobCodec[T]) PartitionKey(value T) (int32, error) {
	data, err := c.Serialize(value)
	if err != nil {
		return 0, err
	}

	return hash.Partition(data.Bytes()), nil
}
