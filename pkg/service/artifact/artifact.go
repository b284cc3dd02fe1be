package artifact

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	dataURIPrefix = "data:image/png;base64,"
	previewLength = 30
)

// Encode turns raw image bytes into base64 text. The raw base64 form is the
// canonical persisted representation; the data URI prefix is only added when
// rendering a response.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func Decode(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(StripDataURI(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return data, nil
}

// DataURI wraps encoded text in a png data URI, unless it already is one.
func DataURI(encoded string) string {
	if strings.HasPrefix(encoded, dataURIPrefix) {
		return encoded
	}

	return dataURIPrefix + encoded
}

func StripDataURI(value string) string {
	return strings.TrimPrefix(value, dataURIPrefix)
}

// Preview truncates encoded text for confirmation payloads.
func Preview(encoded string) string {
	return lo.TernaryF(
		len(encoded) > previewLength,
		func() string { return encoded[:previewLength] + "..." },
		func() string { return encoded },
	)
}
