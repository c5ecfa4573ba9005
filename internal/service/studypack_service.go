// Package service contains the study pack orchestration logic: cache lookup,
// provider generation and the template fallback decision.
package service

import (
	"context"
	"log/slog"

	"github.com/exambooster/studypack-api/internal/cache"
	"github.com/exambooster/studypack-api/internal/domain"
	"github.com/exambooster/studypack-api/internal/generation"
)

// Result is a study pack plus its cache provenance. Cached is true only when
// the pack was served from the memoization cache without invoking a
// generator.
type Result struct {
	domain.StudyPack
	Cached bool
}

// StudyPackService composes the cache and the two generators into the
// request pipeline. It is the single place that knows the fallback policy:
// a nil or failing provider degrades silently to template content, and no
// generation failure ever escapes CreateStudyPack.
type StudyPackService struct {
	cache    *cache.Cache
	provider generation.Generator
	fallback generation.Generator
	logger   *slog.Logger
}

// NewStudyPackService creates the orchestrator. provider may be nil, which
// means the external service is unconfigured and every miss is served by
// fallback. fallback must be a total generator (the template generator).
func NewStudyPackService(
	c *cache.Cache,
	provider generation.Generator,
	fallback generation.Generator,
	logger *slog.Logger,
) *StudyPackService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyPackService{
		cache:    c,
		provider: provider,
		fallback: fallback,
		logger:   logger,
	}
}

// CreateStudyPack returns the study pack for a validated request, serving
// from cache when fresh and generating (provider first, template on any
// failure) on a miss. Newly generated content is cached under the
// normalized request key with the default TTL.
func (s *StudyPackService) CreateStudyPack(ctx context.Context, req domain.GenerationRequest) (*Result, error) {
	key := cache.BuildKey(req)

	if pack, ok := s.cache.Read(key); ok {
		s.logger.DebugContext(ctx, "study pack served from cache", "cache_key", key)
		return &Result{StudyPack: pack, Cached: true}, nil
	}

	var pack *domain.StudyPack

	if s.provider != nil {
		generated, err := s.provider.Generate(ctx, req)
		if err != nil {
			// Absorbed: provider failure is invisible to the caller
			// beyond the content itself coming from the template.
			s.logger.WarnContext(ctx, "provider generation failed, falling back to template content",
				"cache_key", key,
				"error", err)
		} else {
			pack = generated
		}
	}

	if pack == nil {
		pack, _ = s.fallback.Generate(ctx, req)
	}

	pack.Normalize()
	s.cache.Write(key, *pack)

	return &Result{StudyPack: *pack, Cached: false}, nil
}
