package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGenerationRequest(t *testing.T) {
	tests := []struct {
		name       string
		topic      any
		classLevel any
		language   any
		examMode   any
		want       GenerationRequest
		wantErr    bool
	}{
		{
			name:       "valid request",
			topic:      "Gravity",
			classLevel: "8",
			language:   "Hindi",
			examMode:   true,
			want:       GenerationRequest{Topic: "Gravity", ClassLevel: "8", Language: "Hindi", ExamMode: true},
		},
		{
			name:       "topic is trimmed",
			topic:      "  Photosynthesis  ",
			classLevel: "7",
			language:   "English",
			examMode:   false,
			want:       GenerationRequest{Topic: "Photosynthesis", ClassLevel: "7", Language: "English"},
		},
		{
			name:       "numeric class level coerces to string",
			topic:      "Algebra",
			classLevel: json.Number("9"),
			language:   "English",
			examMode:   nil,
			want:       GenerationRequest{Topic: "Algebra", ClassLevel: "9", Language: "English"},
		},
		{
			name:       "empty topic rejected",
			topic:      "",
			classLevel: "6",
			language:   "English",
			wantErr:    true,
		},
		{
			name:       "whitespace-only topic rejected",
			topic:      "   ",
			classLevel: "6",
			language:   "English",
			wantErr:    true,
		},
		{
			name:       "non-string topic rejected",
			topic:      json.Number("42"),
			classLevel: "6",
			language:   "English",
			wantErr:    true,
		},
		{
			name:       "missing topic rejected",
			topic:      nil,
			classLevel: "6",
			language:   "English",
			wantErr:    true,
		},
		{
			name:       "class level outside set rejected",
			topic:      "Gravity",
			classLevel: "11",
			language:   "English",
			wantErr:    true,
		},
		{
			name:       "missing class level rejected",
			topic:      "Gravity",
			classLevel: nil,
			language:   "English",
			wantErr:    true,
		},
		{
			name:       "unknown language rejected",
			topic:      "Gravity",
			classLevel: "8",
			language:   "French",
			wantErr:    true,
		},
		{
			name:       "language is case sensitive",
			topic:      "Gravity",
			classLevel: "8",
			language:   "english",
			wantErr:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewGenerationRequest(tc.topic, tc.classLevel, tc.language, tc.examMode)

			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExamModeTruthiness(t *testing.T) {
	tests := []struct {
		name     string
		examMode any
		want     bool
	}{
		{"absent", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"empty string", "", false},
		{"non-empty string", "yes", true},
		{"zero", json.Number("0"), false},
		{"non-zero number", json.Number("1"), true},
		{"object", map[string]any{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewGenerationRequest("Gravity", "8", "English", tc.examMode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, req.ExamMode)
		})
	}
}
