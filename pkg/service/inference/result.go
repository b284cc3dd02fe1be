package inference

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// Result is the polymorphic upstream response. Backends disagree on shape:
// some return a raw byte stream, some an HTTP-response-like object with a
// buffer accessor, some a structured JSON payload carrying encoded images.
// The variant set is sealed so Normalize can dispatch exhaustively.
type Result interface {
	isResult()
}

// StreamResult wraps a backend that returns raw bytes as a stream. Normalize
// drains it fully and closes it when the reader is a ReadCloser.
type StreamResult struct {
	Reader io.Reader
}

// BytesResponse is the accessor surface of response-like upstream objects.
type BytesResponse interface {
	Bytes() []byte
}

// ResponseResult wraps a backend that returns a response-like object.
type ResponseResult struct {
	Response BytesResponse
}

// StructuredResult wraps a backend that returns a decoded JSON payload. The
// image may live under "image", under the first element of "images", or under
// choices[0].message.content.
type StructuredResult struct {
	Payload map[string]any
}

func (StreamResult) isResult()     {}
func (ResponseResult) isResult()   {}
func (StructuredResult) isResult() {}

// InvalidResponseError reports an upstream payload that matched none of the
// tolerated shapes. Detail carries a best-effort serialization of the payload
// for diagnostics.
type InvalidResponseError struct {
	Detail string
}

func (e *InvalidResponseError) Error() string {
	return fmt.Sprintf("invalid upstream response: %s", e.Detail)
}

// Normalize reduces any tolerated Result variant to a contiguous byte buffer,
// preserving order and content. An unrecognized shape yields an
// InvalidResponseError, never a panic.
func Normalize(result Result) ([]byte, error) {
	switch r := result.(type) {
	case StreamResult:
		return drainStream(r.Reader)
	case ResponseResult:
		if r.Response == nil {
			return nil, &InvalidResponseError{Detail: "response object is nil"}
		}
		return r.Response.Bytes(), nil
	case StructuredResult:
		return extractStructured(r.Payload)
	default:
		return nil, &InvalidResponseError{Detail: describePayload(result)}
	}
}

func drainStream(reader io.Reader) ([]byte, error) {
	if reader == nil {
		return nil, &InvalidResponseError{Detail: "stream is nil"}
	}

	if closer, ok := reader.(io.ReadCloser); ok {
		defer closer.Close()
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to drain image stream: %w", err)
	}

	return data, nil
}

func extractStructured(payload map[string]any) ([]byte, error) {
	if image, ok := payload["image"]; ok {
		return coerceImage(image, payload)
	}

	if images, ok := payload["images"].([]any); ok && len(images) > 0 {
		return coerceImage(images[0], payload)
	}

	if content, ok := firstChoiceContent(payload); ok {
		return coerceImage(content, payload)
	}

	return nil, &InvalidResponseError{Detail: describePayload(payload)}
}

func firstChoiceContent(payload map[string]any) (any, bool) {
	choices, ok := payload["choices"].([]any)
	if !ok || len(choices) == 0 {
		return nil, false
	}

	choice, ok := choices[0].(map[string]any)
	if !ok {
		return nil, false
	}

	message, ok := choice["message"].(map[string]any)
	if !ok {
		return nil, false
	}

	content, ok := message["content"]
	return content, ok
}

func coerceImage(value any, payload map[string]any) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		data, err := base64.StdEncoding.DecodeString(v)
		if err != nil {
			return nil, &InvalidResponseError{Detail: describePayload(payload)}
		}
		return data, nil
	default:
		return nil, &InvalidResponseError{Detail: describePayload(payload)}
	}
}

func describePayload(payload any) string {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%v", payload)
	}

	return string(data)
}
