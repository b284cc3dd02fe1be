package artifact_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptpix/promptpix/pkg/service/artifact"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: []byte{}},
		{name: "one byte", data: []byte{0x01}},
		{name: "two bytes", data: []byte{0x01, 0x02}},
		{name: "three bytes", data: []byte{0x01, 0x02, 0x03}},
		{name: "five bytes", data: []byte{0xff, 0x00, 0x7f, 0x80, 0x01}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := artifact.Encode(tt.data)

			expectedLen := (len(tt.data) + 2) / 3 * 4
			assert.Len(t, encoded, expectedLen)

			decoded, err := artifact.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.data, decoded)
		})
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	_, err := artifact.Decode("not-base64!!")
	assert.Error(t, err)
}

func TestDataURI(t *testing.T) {
	encoded := artifact.Encode([]byte{1, 2, 3})

	uri := artifact.DataURI(encoded)
	assert.Equal(t, "data:image/png;base64,"+encoded, uri)

	// Wrapping an already wrapped value must not stack prefixes.
	assert.Equal(t, uri, artifact.DataURI(uri))

	assert.Equal(t, encoded, artifact.StripDataURI(uri))
	assert.Equal(t, encoded, artifact.StripDataURI(encoded))
}

func TestDecode_AcceptsDataURI(t *testing.T) {
	data := []byte{9, 8, 7}

	decoded, err := artifact.Decode(artifact.DataURI(artifact.Encode(data)))
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestPreview(t *testing.T) {
	short := "AQID"
	assert.Equal(t, short, artifact.Preview(short))

	long := strings.Repeat("A", 100)
	preview := artifact.Preview(long)
	assert.Equal(t, strings.Repeat("A", 30)+"...", preview)
}
