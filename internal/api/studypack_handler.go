package api

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/exambooster/studypack-api/internal/api/shared"
	"github.com/exambooster/studypack-api/internal/domain"
	"github.com/exambooster/studypack-api/internal/ratelimit"
	"github.com/exambooster/studypack-api/internal/service"
)

// StudyPackHandler handles study pack generation requests.
type StudyPackHandler struct {
	service *service.StudyPackService
	limiter *ratelimit.Limiter
	logger  *slog.Logger
}

// NewStudyPackHandler creates a new StudyPackHandler.
func NewStudyPackHandler(
	svc *service.StudyPackService,
	limiter *ratelimit.Limiter,
	logger *slog.Logger,
) *StudyPackHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyPackHandler{
		service: svc,
		limiter: limiter,
		logger:  logger,
	}
}

// Generate handles POST /api/study-packs requests. Pipeline order: validate,
// then rate-limit, then orchestrate — a malformed body never consumes window
// quota, and a rejected client never triggers generation work.
func (h *StudyPackHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var body GenerateRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.InvalidRequestMessage)
		return
	}

	req, err := domain.NewGenerationRequest(body.Topic, body.ClassLevel, body.Language, body.ExamMode)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, domain.InvalidRequestMessage)
		return
	}

	clientID := clientAddr(r)
	if !h.limiter.Admit(clientID) {
		shared.RespondWithError(w, r, http.StatusTooManyRequests, domain.RateLimitedMessage)
		return
	}

	result, err := h.service.CreateStudyPack(r.Context(), req)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "study pack creation failed",
			"error", err,
			"client_id", clientID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, domain.InternalErrorMessage)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StudyPackResponse{
		Topic:          req.Topic,
		ClassLevel:     req.ClassLevel,
		Language:       req.Language,
		ExamMode:       req.ExamMode,
		Notes:          result.Notes,
		MCQs:           mcqsToResponse(result.MCQs),
		ShortQuestions: result.ShortQuestions,
		RevisionSheet:  result.RevisionSheet,
		Cached:         result.Cached,
	})
}

// Health handles GET /health requests.
func (h *StudyPackHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{OK: true})
}

// clientAddr derives the opaque rate-limit client identifier from the
// request. The chi RealIP middleware has already folded any forwarded
// address header into RemoteAddr.
func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if host == "" {
		return "unknown"
	}
	return host
}
