package inference

import "context"

// Params carries the generation parameters passed to the backend. Tuning
// values are fixed by the caller, never user-controlled.
type Params struct {
	Prompt         string
	NegativePrompt string
	Steps          int
	GuidanceScale  float64
	Width          int
	Height         int
}

// Runner is the inference capability: prompt in, image out. The response
// shape varies per backend, so runners return a Result variant that the
// caller normalizes with Normalize.
type Runner interface {
	Run(ctx context.Context, model string, params Params) (Result, error)
}
