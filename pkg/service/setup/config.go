package setup

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ApiIpPort       string
	OpenAiApiKey    string
	InferenceUrl    string
	InferenceApiKey string
	ImageModel      string
	RedisAddr       string
	RedisPassword   string
	RedisDb         string
	AllowedOrigins  string
}

func NewConfigFromEnv() (*Config, error) {
	// A local .env is optional; deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{
		ApiIpPort:       os.Getenv(EnvApiIpPort),
		OpenAiApiKey:    os.Getenv(EnvOpenAiApiKey),
		InferenceUrl:    os.Getenv(EnvInferenceUrl),
		InferenceApiKey: os.Getenv(EnvInferenceApiKey),
		ImageModel:      os.Getenv(EnvImageModel),
		RedisAddr:       os.Getenv(EnvRedisAddr),
		RedisPassword:   os.Getenv(EnvRedisPassword),
		RedisDb:         os.Getenv(EnvRedisDb),
		AllowedOrigins:  os.Getenv(EnvAllowedOrigins),
	}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.OpenAiApiKey == "" && c.InferenceUrl == "" {
		return errors.New("OPENAI_API_KEY or INFERENCE_URL is required")
	}
	if c.RedisAddr == "" {
		return errors.New("REDIS_ADDR is required")
	}

	return nil
}
