package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied before the environment is read.
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultRateLimitWindow   = 60
	DefaultRateLimitRequests = 20
	DefaultCacheTTLMinutes   = 30
	DefaultModelName         = "gemini-2.0-flash"
	DefaultTemperature       = 0.4
)

// envPrefix namespaces the environment variables, e.g.
// STUDYPACK_SERVER_PORT, STUDYPACK_RATE_LIMIT_MAX_REQUESTS,
// STUDYPACK_LLM_GEMINI_API_KEY.
const envPrefix = "STUDYPACK"

// Load reads configuration from environment variables, applies defaults and
// validates the result. Returns a populated Config or an error if loading or
// validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("rate_limit.window_seconds", DefaultRateLimitWindow)
	v.SetDefault("rate_limit.max_requests", DefaultRateLimitRequests)
	v.SetDefault("cache.ttl_minutes", DefaultCacheTTLMinutes)
	v.SetDefault("cache.max_entries", 0)
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.temperature", DefaultTemperature)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
