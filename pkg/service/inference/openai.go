package inference

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAiRunner backs image generation with the OpenAI images API. The API
// returns a structured payload with base64 image data, so Run surfaces a
// StructuredResult.
type OpenAiRunner struct {
	apiKey string
	client *openai.Client
}

var _ Runner = (*OpenAiRunner)(nil)

func NewOpenAiRunner(apiKey string) *OpenAiRunner {
	client := openai.NewClient(apiKey)
	return &OpenAiRunner{
		apiKey: apiKey,
		client: client,
	}
}

func (r *OpenAiRunner) Run(ctx context.Context, model string, params Params) (Result, error) {
	req := openai.ImageRequest{
		Prompt:         params.Prompt,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
		N:              1,
		Model:          model,
	}

	resp, err := r.client.CreateImage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create image: %w", err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no image data returned")
	}

	return StructuredResult{
		Payload: map[string]any{"image": resp.Data[0].B64JSON},
	}, nil
}
