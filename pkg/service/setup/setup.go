package setup

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/promptpix/promptpix/pkg/service/debug"
)

const defaultModel = "dall-e-3"

// DefaultAllowedOrigins is the CORS allow-list used when ALLOWED_ORIGINS is
// not set.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"https://app.promptpix.io",
}

type SetupResult struct {
	OpenAiApiKey    string
	InferenceUrl    string
	InferenceApiKey string
	Model           string
	RedisAddr       string
	RedisPassword   string
	RedisDb         int
	AllowedOrigins  []string
	ApiIpPort       string
}

func Setup(ctx context.Context) (*SetupResult, error) {
	config, err := NewConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to get config from env: %v", err)
	}

	setupResult, err := newSetupResult(config)
	if err != nil {
		return nil, fmt.Errorf("failed to build setup result: %v", err)
	}

	if debug.IsDebugShowSetup() {
		slog.Info("setup output", "setupOutput", setupResult)
	}

	return setupResult, nil
}

func newSetupResult(config *Config) (*SetupResult, error) {
	redisDb := 0
	if config.RedisDb != "" {
		parsed, err := strconv.Atoi(config.RedisDb)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", EnvRedisDb, err)
		}
		redisDb = parsed
	}

	model := config.ImageModel
	if model == "" {
		model = defaultModel
	}

	allowedOrigins := DefaultAllowedOrigins
	if config.AllowedOrigins != "" {
		allowedOrigins = lo.Map(strings.Split(config.AllowedOrigins, ","), func(origin string, _ int) string {
			return strings.TrimSpace(origin)
		})
	}

	return &SetupResult{
		OpenAiApiKey:    config.OpenAiApiKey,
		InferenceUrl:    config.InferenceUrl,
		InferenceApiKey: config.InferenceApiKey,
		Model:           model,
		RedisAddr:       config.RedisAddr,
		RedisPassword:   config.RedisPassword,
		RedisDb:         redisDb,
		AllowedOrigins:  allowedOrigins,
		ApiIpPort:       config.ApiIpPort,
	}, nil
}
