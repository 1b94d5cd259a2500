package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlice_New(t *testing.T) {
	data := []byte("hello world")
	s := New(data)

	require.Equal(t, len(data), s.Len())
	require.False(t, s.IsEmpty())
	require.Equal(t, data, s.Bytes())
	require.Equal(t, "hello world", s.String())
}

func TestSlice_ZeroValue(t *testing.T) {
	var s Slice

	require.Equal(t, 0, s.Len())
	require.True(t, s.IsEmpty())
	require.Empty(t, s.Bytes())
}

func TestSlice_NewOffset(t *testing.T) {
	data := []byte("xxhello worldxx")

	s, err := NewOffset(data, 2, 11)
	require.NoError(t, err)
	require.Equal(t, 11, s.Len())
	require.Equal(t, "hello world", s.String())
}

func TestSlice_NewOffset_OutOfRange(t *testing.T) {
	data := []byte("short")

	tests := []struct {
		name   string
		offset int
		length int
	}{
		{"negative offset", -1, 3},
		{"negative length", 0, -1},
		{"region past end", 3, 4},
		{"offset past end", 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOffset(data, tt.offset, tt.length)
			require.Error(t, err)
		})
	}
}

func TestSlice_Bytes_ZeroCopy(t *testing.T) {
	data := []byte("mutable")
	s := New(data)

	data[0] = 'M'
	require.Equal(t, "Mutable", s.String())
}

func TestSlice_CopyBytes(t *testing.T) {
	data := []byte("mutable")
	s := New(data)

	cp := s.CopyBytes()
	data[0] = 'M'
	require.Equal(t, []byte("mutable"), cp)
}

func TestSlice_Equal_ValueBased(t *testing.T) {
	a := New([]byte("payload"))

	// Same bytes embedded at a different offset of a different buffer.
	buf := append([]byte("......."), "payload"...)
	b, err := NewOffset(buf, 7, 7)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	c := New([]byte("Payload"))
	require.False(t, a.Equal(c))
}
