package gemini

import (
	"fmt"

	"github.com/exambooster/studypack-api/internal/domain"
)

// systemInstruction constrains the model to the study pack JSON shape.
const systemInstruction = "You are an expert school tutor. Return valid JSON only with keys: " +
	"notes (string[]), mcqs (array of {question, options:string[4], answer}), " +
	"shortQuestions (string[]), revisionSheet (string[]). " +
	"Keep language simple and age-appropriate."

// buildPrompt renders the user instruction: the request fields plus the
// explicit content quota the response must meet.
func buildPrompt(req domain.GenerationRequest) string {
	mode := "Normal"
	if req.ExamMode {
		mode = "Exam Mode"
	}

	return fmt.Sprintf(
		"Generate study content for topic: %s. Class: %s. Language: %s. Mode: %s. "+
			"Return exactly 4 short notes, 10 MCQs with 4 options and correct answer letter, "+
			"5 short-answer questions, and a one-page style revision bullet summary.",
		req.Topic, req.ClassLevel, req.Language, mode,
	)
}
