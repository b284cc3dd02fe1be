package setup

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "openai backend",
			config: Config{
				OpenAiApiKey: "sk-test",
				RedisAddr:    "localhost:6379",
			},
			wantErr: false,
		},
		{
			name: "http backend",
			config: Config{
				InferenceUrl: "https://inference.example/text2image",
				RedisAddr:    "localhost:6379",
			},
			wantErr: false,
		},
		{
			name: "no inference backend",
			config: Config{
				RedisAddr: "localhost:6379",
			},
			wantErr: true,
		},
		{
			name: "no redis",
			config: Config{
				OpenAiApiKey: "sk-test",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		t.Setenv(EnvOpenAiApiKey, "sk-test")
		t.Setenv(EnvRedisAddr, "localhost:6379")
		t.Setenv(EnvImageModel, "")
		t.Setenv(EnvRedisDb, "")
		t.Setenv(EnvAllowedOrigins, "")

		setupResult, err := Setup(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "sk-test", setupResult.OpenAiApiKey)
		assert.Equal(t, defaultModel, setupResult.Model)
		assert.Equal(t, 0, setupResult.RedisDb)
		assert.Equal(t, DefaultAllowedOrigins, setupResult.AllowedOrigins)
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv(EnvInferenceUrl, "https://inference.example/text2image")
		t.Setenv(EnvInferenceApiKey, "key")
		t.Setenv(EnvRedisAddr, "redis:6379")
		t.Setenv(EnvRedisDb, "3")
		t.Setenv(EnvImageModel, "sdxl")
		t.Setenv(EnvAllowedOrigins, "https://a.example, https://b.example")
		t.Setenv(EnvApiIpPort, ":8080")

		setupResult, err := Setup(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "sdxl", setupResult.Model)
		assert.Equal(t, 3, setupResult.RedisDb)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, setupResult.AllowedOrigins)
		assert.Equal(t, ":8080", setupResult.ApiIpPort)
	})

	t.Run("invalid redis db", func(t *testing.T) {
		t.Setenv(EnvOpenAiApiKey, "sk-test")
		t.Setenv(EnvRedisAddr, "localhost:6379")
		t.Setenv(EnvRedisDb, "not-a-number")

		_, err := Setup(context.Background())
		assert.Error(t, err)
	})

	t.Run("missing required config", func(t *testing.T) {
		t.Setenv(EnvOpenAiApiKey, "")
		t.Setenv(EnvInferenceUrl, "")
		t.Setenv(EnvRedisAddr, "")

		_, err := Setup(context.Background())
		assert.Error(t, err)
	})
}
