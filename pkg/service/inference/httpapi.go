package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// HttpRunner backs image generation with a text2image HTTP endpoint that
// answers with raw PNG bytes, so Run surfaces a StreamResult.
type HttpRunner struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

var _ Runner = (*HttpRunner)(nil)

type httpRunnerRequest struct {
	Prompt         string  `json:"prompt"`
	NegativePrompt string  `json:"negative_prompt,omitempty"`
	Model          string  `json:"model"`
	Steps          int     `json:"steps,omitempty"`
	Guidance       float64 `json:"guidance,omitempty"`
	Width          int     `json:"width,omitempty"`
	Height         int     `json:"height,omitempty"`
}

func NewHttpRunner(endpoint string, apiKey string, client *http.Client) *HttpRunner {
	if client == nil {
		client = http.DefaultClient
	}

	return &HttpRunner{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   client,
	}
}

func (r *HttpRunner) Run(ctx context.Context, model string, params Params) (Result, error) {
	body, err := json.Marshal(httpRunnerRequest{
		Prompt:         params.Prompt,
		NegativePrompt: params.NegativePrompt,
		Model:          model,
		Steps:          params.Steps,
		Guidance:       params.GuidanceScale,
		Width:          params.Width,
		Height:         params.Height,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call inference endpoint: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("inference endpoint returned status %d: %s", resp.StatusCode, detail)
	}

	slog.Debug("received image from inference endpoint", "model", model)

	return StreamResult{Reader: resp.Body}, nil
}
