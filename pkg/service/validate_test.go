package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGenerateRequest(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		wantPrompt string
		wantUserId string
		wantErr    string
	}{
		{
			name:       "valid",
			body:       map[string]any{"prompt": "a red cube", "userId": "u1"},
			wantPrompt: "a red cube",
			wantUserId: "u1",
		},
		{
			name:       "trims surrounding whitespace",
			body:       map[string]any{"prompt": "  a red cube  ", "userId": "\tu1\n"},
			wantPrompt: "a red cube",
			wantUserId: "u1",
		},
		{
			name:    "missing prompt",
			body:    map[string]any{"userId": "u1"},
			wantErr: promptRequiredMessage,
		},
		{
			name:    "empty prompt",
			body:    map[string]any{"prompt": "", "userId": "u1"},
			wantErr: promptRequiredMessage,
		},
		{
			name:    "whitespace-only prompt",
			body:    map[string]any{"prompt": "   ", "userId": "u1"},
			wantErr: promptRequiredMessage,
		},
		{
			name:    "non-text prompt",
			body:    map[string]any{"prompt": float64(42), "userId": "u1"},
			wantErr: promptRequiredMessage,
		},
		{
			name:    "missing userId",
			body:    map[string]any{"prompt": "a red cube"},
			wantErr: userIdRequiredMessage,
		},
		{
			name:    "whitespace-only userId",
			body:    map[string]any{"prompt": "a red cube", "userId": " \n "},
			wantErr: userIdRequiredMessage,
		},
		{
			name:    "non-text userId",
			body:    map[string]any{"prompt": "a red cube", "userId": []any{"u1"}},
			wantErr: userIdRequiredMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, userId, err := validateGenerateRequest(tt.body)

			if tt.wantErr != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantErr, validationErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPrompt, prompt)
			assert.Equal(t, tt.wantUserId, userId)
		})
	}
}
