package generation

import (
	"context"
	"testing"

	"github.com/exambooster/studypack-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateGeneratorShape(t *testing.T) {
	req := domain.GenerationRequest{Topic: "Photosynthesis", ClassLevel: "7", Language: "English"}

	pack, err := NewTemplateGenerator().Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, pack.Notes, 4)
	assert.Len(t, pack.MCQs, 10)
	assert.Len(t, pack.ShortQuestions, 5)
	assert.NotEmpty(t, pack.RevisionSheet)

	for _, mcq := range pack.MCQs {
		assert.Len(t, mcq.Options, 4)
		assert.Contains(t, domain.AnswerLetters, mcq.Answer)
	}
}

func TestTemplateGeneratorContent(t *testing.T) {
	req := domain.GenerationRequest{Topic: "Photosynthesis", ClassLevel: "7", Language: "English"}

	pack, err := NewTemplateGenerator().Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t,
		"Photosynthesis is explained here in simple English for Class 7 students.",
		pack.Notes[0])
	assert.Equal(t, "Photosynthesis practice MCQ 1 (English, Class 7)", pack.MCQs[0].Question)
	assert.Equal(t, "Option C for question 3", pack.MCQs[2].Options[2])
	assert.Equal(t, "Define Photosynthesis in your own words. (English)", pack.ShortQuestions[0])
	assert.Equal(t, "Quick Revision: Photosynthesis (Class 7, English)", pack.RevisionSheet[0])
	assert.Len(t, pack.RevisionSheet, 6)
}

func TestTemplateGeneratorRoundRobinAnswers(t *testing.T) {
	req := domain.GenerationRequest{Topic: "Gravity", ClassLevel: "9", Language: "Hindi"}

	pack, err := NewTemplateGenerator().Generate(context.Background(), req)
	require.NoError(t, err)

	want := []string{"A", "B", "C", "D", "A", "B", "C", "D", "A", "B"}
	for i, mcq := range pack.MCQs {
		assert.Equal(t, want[i], mcq.Answer, "answer for MCQ %d", i+1)
	}
}

func TestTemplateGeneratorDeterministic(t *testing.T) {
	req := domain.GenerationRequest{Topic: "Acids", ClassLevel: "10", Language: "Hindi", ExamMode: true}
	gen := NewTemplateGenerator()

	first, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
