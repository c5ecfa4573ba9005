package gemini

import "encoding/json"

// responseSchema holds the raw JSON fields of the provider payload. Each
// field stays unparsed until coercion so that one malformed field cannot
// poison the others.
type responseSchema struct {
	Notes          json.RawMessage `json:"notes"`
	MCQs           json.RawMessage `json:"mcqs"`
	ShortQuestions json.RawMessage `json:"shortQuestions"`
	RevisionSheet  json.RawMessage `json:"revisionSheet"`
}
