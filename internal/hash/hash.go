package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of the given bytes.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 of the given string without copying it.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Partition folds the xxHash64 of the given bytes into an int32 partition key.
// The high and low halves are mixed so that truncation keeps all 64 input bits
// relevant.
func Partition(data []byte) int32 {
	return fold(xxhash.Sum64(data))
}

// PartitionString is Partition for string payloads.
func PartitionString(data string) int32 {
	return fold(xxhash.Sum64String(data))
}

func fold(sum uint64) int32 {
	return int32(uint32(sum) ^ uint32(sum>>32))
}
