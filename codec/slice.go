package codec

import (
	"bytes"
	"fmt"
)

// Slice is an immutable, zero-copy view into a byte buffer, described by a
// buffer reference, an offset, and a length.
//
// Slices avoid copying tuple bytes between the serialization and encryption
// stages of a pipeline: a codec can hand out a view into a larger transport
// buffer without slicing off a fresh allocation.
//
// Equality is value-based over the referenced bytes, never over buffer
// identity or offsets: two Slices referencing equal byte regions of
// different buffers compare equal.
//
// The zero value is an empty view.
type Slice struct {
	buf    []byte
	offset int
	length int
}

// New creates a Slice covering the whole of data.
//
// The Slice references data directly without copying; callers must not
// mutate data while the Slice is in use.
func New(data []byte) Slice {
	return Slice{buf: data, length: len(data)}
}

// NewOffset creates a Slice referencing the sub-region data[offset:offset+length].
//
// Views into the middle of a larger buffer are a first-class case: transport
// layers commonly deliver tuple payloads embedded in framed buffers.
//
// Returns an error when the described region does not fit within data.
func NewOffset(data []byte, offset, length int) (Slice, error) {
	if offset < 0 || length < 0 || offset+length > len(data) {
		return Slice{}, fmt.Errorf("slice region [%d:%d) out of range for buffer of %d bytes",
			offset, offset+length, len(data))
	}

	return Slice{buf: data, offset: offset, length: length}, nil
}

// Bytes returns the referenced byte region without copying.
//
// The returned slice aliases the backing buffer; treat it as read-only.
func (s Slice) Bytes() []byte {
	return s.buf[s.offset : s.offset+s.length]
}

// CopyBytes returns a fresh copy of the referenced byte region.
func (s Slice) CopyBytes() []byte {
	out := make([]byte, s.length)
	copy(out, s.buf[s.offset:])

	return out
}

// Len returns the number of bytes the view references.
func (s Slice) Len() int {
	return s.length
}

// IsEmpty reports whether the view references zero bytes.
func (s Slice) IsEmpty() bool {
	return s.length == 0
}

// Equal reports whether two Slices reference equal byte content.
func (s Slice) Equal(other Slice) bool {
	return bytes.Equal(s.Bytes(), other.Bytes())
}

// String returns the referenced bytes interpreted as a string.
func (s Slice) String() string {
	return string(s.Bytes())
}
