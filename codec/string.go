package codec

import "github.com/arloliu/tuplecodec/internal/hash"

// StringCodec serializes string tuples as their raw UTF-8 bytes.
//
// The partition key is the folded xxHash64 of the string, so equal strings
// always route to the same downstream worker.
type StringCodec struct{}

var _ Codec[string] = StringCodec{}

// NewStringCodec creates a new string codec.
func NewStringCodec() StringCodec {
	return StringCodec{}
}

func (StringCodec) Serialize(value string) (Slice, error) {
	return New([]byte(value)), nil
}

func (StringCodec) Deserialize(data Slice) (string, error) {
	return data.String(), nil
}

func (StringCodec) PartitionKey(value string) (int32, error) {
	return hash.PartitionString(value), nil
}
