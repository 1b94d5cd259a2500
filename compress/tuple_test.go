package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tuplecodec/codec"
	"github.com/arloliu/tuplecodec/format"
)

func TestTuple_RoundTrip(t *testing.T) {
	value := strings.Repeat("compressible tuple content ", 32)

	for _, cType := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		t.Run(cType.String(), func(t *testing.T) {
			c, err := NewTuple[string](codec.NewStringCodec(), cType)
			require.NoError(t, err)

			data, err := c.Serialize(value)
			require.NoError(t, err)

			got, err := c.Deserialize(data)
			require.NoError(t, err)
			require.Equal(t, value, got)
		})
	}
}

func TestTuple_InvalidCompressionType(t *testing.T) {
	_, err := NewTuple[string](codec.NewStringCodec(), format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestTuple_PartitionKeyInvariance(t *testing.T) {
	inner := codec.NewStringCodec()
	c, err := NewTuple[string](inner, format.CompressionLZ4)
	require.NoError(t, err)

	for _, value := range []string{"", "a", "Lorem Ipsum"} {
		want, err := inner.PartitionKey(value)
		require.NoError(t, err)

		got, err := c.PartitionKey(value)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestTuple_Deserialize_Corrupt(t *testing.T) {
	c, err := NewTuple[string](codec.NewStringCodec(), format.CompressionZstd)
	require.NoError(t, err)

	_, err = c.Deserialize(codec.New([]byte{0x00, 0x01, 0x02, 0x03}))
	require.Error(t, err)
}
