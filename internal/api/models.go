package api

import "github.com/exambooster/studypack-api/internal/domain"

// GenerateRequest is the raw, untyped generation request body. Fields other
// than topic and examMode tolerate non-string JSON scalars; normalization
// and validation happen in domain.NewGenerationRequest.
type GenerateRequest struct {
	Topic      any `json:"topic"`
	ClassLevel any `json:"classLevel"`
	Language   any `json:"language"`
	ExamMode   any `json:"examMode"`
}

// MCQResponse is a single MCQ in the response payload.
type MCQResponse struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// StudyPackResponse is the success payload: the study pack content plus the
// echoed request fields and the cache provenance flag.
type StudyPackResponse struct {
	Topic          string        `json:"topic"`
	ClassLevel     string        `json:"classLevel"`
	Language       string        `json:"language"`
	ExamMode       bool          `json:"examMode"`
	Notes          []string      `json:"notes"`
	MCQs           []MCQResponse `json:"mcqs"`
	ShortQuestions []string      `json:"shortQuestions"`
	RevisionSheet  []string      `json:"revisionSheet"`
	Cached         bool          `json:"cached"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	OK bool `json:"ok"`
}

func mcqsToResponse(mcqs []domain.MCQ) []MCQResponse {
	out := make([]MCQResponse, len(mcqs))
	for i, mcq := range mcqs {
		out[i] = MCQResponse{
			Question: mcq.Question,
			Options:  mcq.Options,
			Answer:   mcq.Answer,
		}
	}
	return out
}
