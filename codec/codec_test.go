package codec_test

import (
	"testing"

	"github.com/davidvella/chain/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGobSerializer(t *testing.T) {
	type payload struct {
		Name  string
		Count int
	}

	s := codec.NewGobSerializer[payload]()

	in := payload{Name: "test", Count: 42}
	data, err := s.SerializeValue(in)
	require.NoError(t, err)

	out, err := s.DeserializeValue(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestGobSerializerBadData(t *testing.T) {
	s := codec.NewGobSerializer[string]()
	_, err := s.DeserializeValue([]byte{0xFF, 0x00})
	assert.Error(t, err)
}

func TestStringSerializer(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "empty string", value: ""},
		{name: "ascii", value: "hello"},
		{name: "unicode", value: "héllo wörld"},
	}

	s := codec.StringSerializer{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := s.SerializeValue(tt.value)
			require.NoError(t, err)

			out, err := s.DeserializeValue(data)
			require.NoError(t, err)
			assert.Equal(t, tt.value, out)
		})
	}
}

func TestBytesSerializerCopies(t *testing.T) {
	s := codec.BytesSerializer{}

	in := []byte("abc")
	data, err := s.SerializeValue(in)
	require.NoError(t, err)

	in[0] = 'z'
	assert.Equal(t, []byte("abc"), data)

	out, err := s.DeserializeValue(data)
	require.NoError(t, err)
	data[0] = 'z'
	assert.Equal(t, []byte("abc"), out)
}

func TestInt64Serializer(t *testing.T) {
	s := codec.Int64Serializer{}

	for _, v := range []int64{0, 1, -1, 1<<62 - 1, -(1 << 62)} {
		data, err := s.SerializeValue(v)
		require.NoError(t, err)
		require.Len(t, data, 8)

		out, err := s.DeserializeValue(data)
		require.NoError(t, err)
		assert.Equal(t, v, out)
	}
}

func TestInt64SerializerInvalidLength(t *testing.T) {
	s := codec.Int64Serializer{}
	_, err := s.DeserializeValue([]byte{1, 2, 3})
	assert.Error(t, err)
}
