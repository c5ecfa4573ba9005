package cache

import (
	"strings"

	"github.com/exambooster/studypack-api/internal/domain"
)

// keySeparator joins the key parts. Topics cannot contain it after
// normalization in any way that matters: the other parts come from closed
// sets, so the key remains unambiguous.
const keySeparator = "::"

// BuildKey derives the cache key for a request. Two requests that differ
// only in topic casing or surrounding whitespace collide to the same key;
// distinct (classLevel, language, examMode) tuples never collide.
func BuildKey(req domain.GenerationRequest) string {
	mode := "normal"
	if req.ExamMode {
		mode = "exam"
	}

	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(req.Topic)),
		req.ClassLevel,
		req.Language,
		mode,
	}, keySeparator)
}
