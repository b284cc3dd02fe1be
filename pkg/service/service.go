package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/gin-gonic/gin"

	"github.com/promptpix/promptpix/pkg/service/artifact"
	"github.com/promptpix/promptpix/pkg/service/artstore"
	"github.com/promptpix/promptpix/pkg/service/inference"
	"github.com/promptpix/promptpix/pkg/service/setup"
)

// Generation parameters are fixed constants, never user-controlled. The style
// template and negative prompt are appended to every prompt as plain string
// concatenation.
const (
	promptStyleTemplate = "highly detailed, vivid colors, sharp focus, digital art"
	negativePrompt      = "blurry, low quality, watermark, text, extra limbs"

	inferenceSteps = 30
	guidanceScale  = 7.5
	imageWidth     = 1024
	imageHeight    = 1024

	defaultArtifactTTL       = 30 * 24 * time.Hour
	defaultMaxConcurrentRuns = 8
)

type Service struct {
	runner  inference.Runner
	store   artstore.KeyValueStore
	runPool pond.ResultPool[[]byte]

	apiRouter *gin.Engine

	model          string
	allowedOrigins []string
	artifactTTL    time.Duration
	apiIpPort      string
}

type ServiceConfig struct {
	Runner inference.Runner
	Store  artstore.KeyValueStore

	Model             string
	AllowedOrigins    []string
	ArtifactTTL       time.Duration
	MaxConcurrentRuns int
	ApiIpPort         string
}

func NewService(config *ServiceConfig) (*Service, error) {
	if config == nil {
		return nil, errors.New("config is nil")
	}
	if config.Runner == nil {
		return nil, errors.New("inference runner is required")
	}
	if config.Store == nil {
		return nil, errors.New("key-value store is required")
	}
	if config.Model == "" {
		return nil, errors.New("model identifier is required")
	}

	artifactTTL := config.ArtifactTTL
	if artifactTTL == 0 {
		artifactTTL = defaultArtifactTTL
	}

	maxConcurrentRuns := config.MaxConcurrentRuns
	if maxConcurrentRuns == 0 {
		maxConcurrentRuns = defaultMaxConcurrentRuns
	}

	allowedOrigins := config.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = setup.DefaultAllowedOrigins
	}

	service := &Service{
		runner:  config.Runner,
		store:   config.Store,
		runPool: pond.NewResultPool[[]byte](maxConcurrentRuns),

		model:          config.Model,
		allowedOrigins: allowedOrigins,
		artifactTTL:    artifactTTL,
		apiIpPort:      config.ApiIpPort,
	}

	service.apiRouter = service.generateRouter()

	return service, nil
}

func NewServiceConfigFromSetupResult(ctx context.Context, setupResult *setup.SetupResult) (*ServiceConfig, error) {
	if setupResult == nil {
		return nil, errors.New("setup result is nil")
	}

	var runner inference.Runner
	switch {
	case setupResult.OpenAiApiKey != "":
		runner = inference.NewOpenAiRunner(setupResult.OpenAiApiKey)
	case setupResult.InferenceUrl != "":
		runner = inference.NewHttpRunner(setupResult.InferenceUrl, setupResult.InferenceApiKey, http.DefaultClient)
	default:
		return nil, errors.New("no inference backend configured")
	}

	redisStore := artstore.NewRedisStore(setupResult.RedisAddr, setupResult.RedisPassword, setupResult.RedisDb)
	if err := redisStore.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &ServiceConfig{
		Runner:         runner,
		Store:          artstore.NewCachedStore(redisStore),
		Model:          setupResult.Model,
		AllowedOrigins: setupResult.AllowedOrigins,
		ApiIpPort:      setupResult.ApiIpPort,
	}, nil
}

// Generate runs the pipeline for one sanitized request: invoke inference,
// normalize the response, encode, store under the user id. Returns the full
// encoded image. Upstream calls share a bounded pool so a burst of requests
// cannot flood the backend.
func (s *Service) Generate(ctx context.Context, prompt string, userId string) (string, error) {
	params := inference.Params{
		Prompt:         augmentPrompt(prompt),
		NegativePrompt: negativePrompt,
		Steps:          inferenceSteps,
		GuidanceScale:  guidanceScale,
		Width:          imageWidth,
		Height:         imageHeight,
	}

	task := s.runPool.SubmitErr(func() ([]byte, error) {
		result, err := s.runner.Run(ctx, s.model, params)
		if err != nil {
			return nil, err
		}

		return inference.Normalize(result)
	})

	data, err := task.Wait()
	if err != nil {
		var invalidErr *inference.InvalidResponseError
		if errors.As(err, &invalidErr) {
			return "", &UpstreamError{Detail: invalidErr.Detail}
		}

		return "", &UpstreamError{Detail: err.Error()}
	}

	if len(data) == 0 {
		return "", &UpstreamError{Detail: "empty image payload"}
	}

	encoded := artifact.Encode(data)

	if err := s.store.Put(ctx, userId, encoded, s.artifactTTL); err != nil {
		return "", &StorageError{Err: err}
	}

	slog.Info("stored generated image", "userId", userId, "bytes", len(data))

	return encoded, nil
}

// GetImage returns the stored encoded image for a user, or NotFoundError.
func (s *Service) GetImage(ctx context.Context, userId string) (string, error) {
	value, err := s.store.Get(ctx, userId)
	if err != nil {
		if artstore.IsNotFound(err) {
			return "", &NotFoundError{UserId: userId}
		}

		return "", &StorageError{Err: err}
	}

	return value, nil
}

// DeleteImage removes the stored image regardless of prior existence.
func (s *Service) DeleteImage(ctx context.Context, userId string) error {
	if err := s.store.Delete(ctx, userId); err != nil {
		return &StorageError{Err: err}
	}

	return nil
}

func augmentPrompt(prompt string) string {
	return fmt.Sprintf("%s, %s", prompt, promptStyleTemplate)
}

func (s *Service) Model() string {
	return s.model
}

func (s *Service) ArtifactTTL() time.Duration {
	return s.artifactTTL
}

func (s *Service) ApiIpPort() string {
	return s.apiIpPort
}
