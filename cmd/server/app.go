package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/exambooster/studypack-api/internal/cache"
	"github.com/exambooster/studypack-api/internal/config"
	"github.com/exambooster/studypack-api/internal/generation"
	"github.com/exambooster/studypack-api/internal/platform/gemini"
	"github.com/exambooster/studypack-api/internal/platform/logger"
	"github.com/exambooster/studypack-api/internal/ratelimit"
	"github.com/exambooster/studypack-api/internal/service"
)

// application holds the process-wide dependencies. The cache and limiter are
// constructed once here and passed by reference to the handlers, so their
// lifecycle is explicit instead of living in package-level singletons.
type application struct {
	config           *config.Config
	logger           *slog.Logger
	limiter          *ratelimit.Limiter
	studyPackService *service.StudyPackService
}

// newApplication loads configuration, sets up logging and wires the request
// pipeline. An absent Gemini API key is a valid configuration: the service
// then runs in template-only mode.
func newApplication(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"rate_limit_window_seconds", cfg.RateLimit.WindowSeconds,
		"rate_limit_max_requests", cfg.RateLimit.MaxRequests,
		"cache_ttl_minutes", cfg.Cache.TTLMinutes)

	var provider generation.Generator
	if cfg.LLM.GeminiAPIKey != "" {
		geminiGen, err := gemini.NewGenerator(ctx, appLogger, cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
		}
		provider = geminiGen
		appLogger.Info("Gemini generator configured", "model", cfg.LLM.ModelName)
	} else {
		appLogger.Info("No Gemini API key configured, running in template-only mode")
	}

	packCache := cache.New(cfg.Cache.TTL(), cfg.Cache.MaxEntries)
	limiter := ratelimit.NewLimiter(cfg.RateLimit.Window(), cfg.RateLimit.MaxRequests)

	svc := service.NewStudyPackService(
		packCache,
		provider,
		generation.NewTemplateGenerator(),
		appLogger,
	)

	return &application{
		config:           cfg,
		logger:           appLogger,
		limiter:          limiter,
		studyPackService: svc,
	}, nil
}
