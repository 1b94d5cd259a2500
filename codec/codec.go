package codec

// Codec converts tuples of type T between their logical value and a byte
// representation, and computes the partition key used to route a tuple to a
// downstream worker.
//
// Implementations serialize one tuple per call; framing, batching, and
// transport are the caller's concern. A Codec that decorates another Codec
// (encryption, compression) must forward PartitionKey to the inner codec on
// the original logical value so that adding the decorator never changes how
// tuples are distributed across workers.
//
// PartitionKey must be deterministic: equal values yield equal keys.
type Codec[T any] interface {
	// Serialize converts a logical value into a byte view.
	//
	// The returned Slice may reference an internal or shared buffer; callers
	// that retain the bytes across calls should use Slice.CopyBytes.
	Serialize(value T) (Slice, error)

	// Deserialize reconstructs the logical value from a byte view produced
	// by Serialize. The view's offset and length are honored exactly; bytes
	// outside the referenced region are never read.
	Deserialize(data Slice) (T, error)

	// PartitionKey computes the routing key for a value.
	PartitionKey(value T) (int32, error)
}
