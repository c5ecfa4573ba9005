package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/exambooster/studypack-api/internal/config"
	"github.com/exambooster/studypack-api/internal/domain"
	"github.com/exambooster/studypack-api/internal/generation"
	"google.golang.org/genai"
)

// Generator implements generation.Generator using Google's Gemini API.
type Generator struct {
	logger      *slog.Logger
	client      *genai.Client
	model       string
	temperature float32
}

var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a Gemini-backed generator from the LLM configuration.
// The API key and model name must be set; the caller decides what an absent
// key means (for this service: template-only mode, so no generator is
// constructed at all).
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return &Generator{
		logger:      logger,
		client:      client,
		model:       cfg.ModelName,
		temperature: float32(cfg.Temperature),
	}, nil
}

// Generate makes a single JSON-constrained call to the Gemini API and
// coerces the response into a study pack. Transport or status failures
// return generation.ErrRequestFailed; a missing or unparseable payload
// returns generation.ErrInvalidResponse. No retries.
func (g *Generator) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.StudyPack, error) {
	prompt := buildPrompt(req)

	g.logger.DebugContext(ctx, "calling Gemini API",
		"model", g.model,
		"prompt_length", len(prompt))

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(g.temperature),
		ResponseMIMEType:  "application/json",
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrRequestFailed, err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: response missing content", generation.ErrInvalidResponse)
	}

	var schema responseSchema
	if err := json.Unmarshal([]byte(text), &schema); err != nil {
		return nil, fmt.Errorf("%w: failed to parse JSON payload: %v", generation.ErrInvalidResponse, err)
	}

	pack := coercePack(ctx, g.logger, schema)

	g.logger.InfoContext(ctx, "Gemini generation succeeded",
		"model", g.model,
		"notes", len(pack.Notes),
		"mcqs", len(pack.MCQs),
		"short_questions", len(pack.ShortQuestions))

	return pack, nil
}

// coercePack converts the raw payload fields into a study pack. A field
// that is absent or not the expected sequence shape degrades to an empty
// sequence; the other fields are unaffected.
func coercePack(ctx context.Context, logger *slog.Logger, schema responseSchema) *domain.StudyPack {
	pack := &domain.StudyPack{
		Notes:          coerceStrings(ctx, logger, "notes", schema.Notes),
		MCQs:           coerceMCQs(ctx, logger, schema.MCQs),
		ShortQuestions: coerceStrings(ctx, logger, "shortQuestions", schema.ShortQuestions),
		RevisionSheet:  coerceStrings(ctx, logger, "revisionSheet", schema.RevisionSheet),
	}
	pack.Normalize()
	return pack
}

func coerceStrings(ctx context.Context, logger *slog.Logger, field string, raw json.RawMessage) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		logger.WarnContext(ctx, "provider field is not a string array, dropping it",
			"field", field,
			"error", err)
		return []string{}
	}
	return values
}

func coerceMCQs(ctx context.Context, logger *slog.Logger, raw json.RawMessage) []domain.MCQ {
	if len(raw) == 0 {
		return []domain.MCQ{}
	}
	var mcqs []domain.MCQ
	if err := json.Unmarshal(raw, &mcqs); err != nil {
		logger.WarnContext(ctx, "provider field is not an MCQ array, dropping it",
			"field", "mcqs",
			"error", err)
		return []domain.MCQ{}
	}
	return mcqs
}
