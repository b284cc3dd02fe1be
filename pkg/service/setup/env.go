package setup

const (
	EnvApiIpPort       = "API_IP_PORT"
	EnvOpenAiApiKey    = "OPENAI_API_KEY"
	EnvInferenceUrl    = "INFERENCE_URL"
	EnvInferenceApiKey = "INFERENCE_API_KEY"
	EnvImageModel      = "IMAGE_MODEL"
	EnvRedisAddr       = "REDIS_ADDR"
	EnvRedisPassword   = "REDIS_PASSWORD"
	EnvRedisDb         = "REDIS_DB"
	EnvAllowedOrigins  = "ALLOWED_ORIGINS"
)
