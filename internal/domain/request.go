package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Class levels and languages the service accepts. Both sets are closed:
// anything outside them is rejected before reaching the pipeline.
var (
	validClassLevels = map[string]bool{"6": true, "7": true, "8": true, "9": true, "10": true}
	validLanguages   = map[string]bool{"English": true, "Hindi": true}
)

// GenerationRequest is the canonical, validated form of an incoming study
// pack request. Construct it with NewGenerationRequest; a value built that
// way always has all four fields within their domains.
type GenerationRequest struct {
	Topic      string
	ClassLevel string
	Language   string
	ExamMode   bool
}

// NewGenerationRequest normalizes and validates a raw request record into a
// GenerationRequest. Topic must be a string and is trimmed; classLevel and
// language tolerate non-string JSON scalars and are coerced to strings before
// the closed-set check; examMode follows truthiness (absent, false, zero and
// empty string are false).
//
// Any rule failure returns ErrInvalidRequest. Callers surface
// InvalidRequestMessage, never the individual rule that fired.
func NewGenerationRequest(topic, classLevel, language, examMode any) (GenerationRequest, error) {
	topicStr, ok := topic.(string)
	if !ok {
		return GenerationRequest{}, ErrInvalidRequest
	}
	topicStr = strings.TrimSpace(topicStr)

	req := GenerationRequest{
		Topic:      topicStr,
		ClassLevel: coerceString(classLevel),
		Language:   coerceString(language),
		ExamMode:   coerceBool(examMode),
	}

	if err := req.Validate(); err != nil {
		return GenerationRequest{}, err
	}

	return req, nil
}

// Validate checks that all fields are within their domains.
func (r GenerationRequest) Validate() error {
	if r.Topic == "" || strings.TrimSpace(r.Topic) != r.Topic {
		return ErrInvalidRequest
	}

	if !validClassLevels[r.ClassLevel] {
		return ErrInvalidRequest
	}

	if !validLanguages[r.Language] {
		return ErrInvalidRequest
	}

	return nil
}

// coerceString renders a decoded JSON scalar as a string. Numbers keep their
// literal form (decode request bodies with UseNumber so 7 becomes "7", not
// "7.000000"). Non-scalar values coerce to "", which then fails the
// closed-set check.
func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return ""
	default:
		return ""
	}
}

// coerceBool applies truthiness to a decoded JSON value.
func coerceBool(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case string:
		return val != ""
	case json.Number:
		return val.String() != "0"
	case float64:
		return val != 0
	default:
		return true
	}
}
