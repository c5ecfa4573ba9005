package generation

import (
	"context"

	"github.com/exambooster/studypack-api/internal/domain"
)

// Generator produces study pack content for a validated request. This
// interface is the boundary between the application core and external
// AI/LLM services.
type Generator interface {
	// Generate creates study pack content for the given request. It returns
	// the generated pack or an error (see errors.go for the specific kinds).
	// Implementations make at most one attempt per call; recovery from
	// failure is the caller's concern.
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.StudyPack, error)
}
