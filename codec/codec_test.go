package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringCodec_RoundTrip(t *testing.T) {
	c := NewStringCodec()

	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"ascii", "Lorem Ipsum"},
		{"unicode", "métrique-температура"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := c.Serialize(tt.value)
			require.NoError(t, err)

			got, err := c.Deserialize(data)
			require.NoError(t, err)
			require.Equal(t, tt.value, got)
		})
	}
}

func TestStringCodec_PartitionKey(t *testing.T) {
	c := NewStringCodec()

	p1, err := c.PartitionKey("Lorem Ipsum")
	require.NoError(t, err)
	p2, err := c.PartitionKey("Lorem Ipsum")
	require.NoError(t, err)
	require.Equal(t, p1, p2)

	p3, err := c.PartitionKey("Lorem Ipsum!")
	require.NoError(t, err)
	require.NotEqual(t, p1, p3)
}

type event struct {
	ID    uint64
	Name  string
	Score float64
	Tags  []string
}

func TestGobCodec_RoundTrip(t *testing.T) {
	c := NewGobCodec[event]()

	want := event{ID: 42, Name: "click", Score: 0.75, Tags: []string{"web", "mobile"}}

	data, err := c.Serialize(want)
	require.NoError(t, err)
	require.False(t, data.IsEmpty())

	got, err := c.Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestGobCodec_RoundTripOffsetView(t *testing.T) {
	c := NewGobCodec[string]()

	data, err := c.Serialize("Lorem Ipsum")
	require.NoError(t, err)

	// Embed the payload in the middle of a larger buffer.
	buf := make([]byte, data.Len()+20)
	copy(buf[10:], data.Bytes())
	view, err := NewOffset(buf, 10, data.Len())
	require.NoError(t, err)

	got, err := c.Deserialize(view)
	require.NoError(t, err)
	require.Equal(t, "Lorem Ipsum", got)
}

func TestGobCodec_Deserialize_Corrupt(t *testing.T) {
	c := NewGobCodec[event]()

	_, err := c.Deserialize(New([]byte{0xff, 0x00, 0x13, 0x37}))
	require.Error(t, err)
}

func TestGobCodec_PartitionKey_Deterministic(t *testing.T) {
	c := NewGobCodec[event]()
	v := event{ID: 7, Name: "view"}

	p1, err := c.PartitionKey(v)
	require.NoError(t, err)
	p2, err := c.PartitionKey(v)
	require.NoError(t, err)
	require.Equal(t, p1, p2)
}
