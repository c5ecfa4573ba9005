package generation

import (
	"context"
	"fmt"

	"github.com/exambooster/studypack-api/internal/domain"
)

// TemplateGenerator produces a deterministic, pedagogically generic study
// pack from the request fields alone: exactly 4 notes, 10 MCQs with answers
// cycling A,B,C,D, 5 short questions and a fixed-structure revision sheet.
// It never fails and has no external dependencies, which is the whole point:
// it is the fallback that guarantees the service always returns a
// well-formed pack.
type TemplateGenerator struct{}

// NewTemplateGenerator creates a TemplateGenerator.
func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// Generate builds the template pack. It satisfies the Generator interface;
// the error is always nil and the context is unused, the generation being
// pure string interpolation.
func (g *TemplateGenerator) Generate(_ context.Context, req domain.GenerationRequest) (*domain.StudyPack, error) {
	pack := &domain.StudyPack{
		Notes:          templateNotes(req.Topic, req.ClassLevel, req.Language),
		MCQs:           templateMCQs(req.Topic, req.ClassLevel, req.Language),
		ShortQuestions: templateShortQuestions(req.Topic, req.ClassLevel, req.Language),
		RevisionSheet:  templateRevisionSheet(req.Topic, req.ClassLevel, req.Language),
	}
	return pack, nil
}

func templateNotes(topic, classLevel, language string) []string {
	return []string{
		fmt.Sprintf("%s is explained here in simple %s for Class %s students.", topic, language, classLevel),
		fmt.Sprintf("%s is important because it appears in exams and helps connect textbook theory to daily life.", topic),
		fmt.Sprintf("Always remember: definition, process, and one practical example of %s.", topic),
		fmt.Sprintf("Write short points and keywords while revising %s to improve scoring speed.", topic),
	}
}

func templateMCQs(topic, classLevel, language string) []domain.MCQ {
	mcqs := make([]domain.MCQ, 10)
	for i := range mcqs {
		number := i + 1
		mcqs[i] = domain.MCQ{
			Question: fmt.Sprintf("%s practice MCQ %d (%s, Class %s)", topic, number, language, classLevel),
			Options: []string{
				fmt.Sprintf("Option A for question %d", number),
				fmt.Sprintf("Option B for question %d", number),
				fmt.Sprintf("Option C for question %d", number),
				fmt.Sprintf("Option D for question %d", number),
			},
			Answer: domain.AnswerLetters[i%len(domain.AnswerLetters)],
		}
	}
	return mcqs
}

func templateShortQuestions(topic, classLevel, language string) []string {
	return []string{
		fmt.Sprintf("Define %s in your own words. (%s)", topic, language),
		fmt.Sprintf("Why is %s important for Class %s?", topic, classLevel),
		fmt.Sprintf("Write two key points related to %s.", topic),
		fmt.Sprintf("Give one real-life example linked to %s.", topic),
		fmt.Sprintf("How would you revise %s one day before the exam?", topic),
	}
}

func templateRevisionSheet(topic, classLevel, language string) []string {
	return []string{
		fmt.Sprintf("Quick Revision: %s (Class %s, %s)", topic, classLevel, language),
		"1) Definition in 2 lines",
		"2) Core concept and process",
		"3) 4-5 important keywords",
		"4) Diagram/flow (if applicable)",
		"5) Last-minute recall points",
	}
}
