package domain

// AnswerLetters are the valid answer keys for an MCQ, in option order.
var AnswerLetters = []string{"A", "B", "C", "D"}

// MCQ is a single multiple-choice question with four options and the letter
// of the correct one.
type MCQ struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// StudyPack is the structured content bundle returned for a topic, class and
// language combination: short notes, practice MCQs, short-answer questions
// and a revision summary. The Cached flag is owned by the orchestrating
// service; generators never set it.
type StudyPack struct {
	Notes          []string `json:"notes"`
	MCQs           []MCQ    `json:"mcqs"`
	ShortQuestions []string `json:"shortQuestions"`
	RevisionSheet  []string `json:"revisionSheet"`
}

// Normalize replaces nil sequences with empty ones so a pack always
// serializes as JSON arrays, never null. Provider responses that lost a
// field during coercion pass through here before being cached or returned.
func (p *StudyPack) Normalize() {
	if p.Notes == nil {
		p.Notes = []string{}
	}
	if p.MCQs == nil {
		p.MCQs = []MCQ{}
	}
	if p.ShortQuestions == nil {
		p.ShortQuestions = []string{}
	}
	if p.RevisionSheet == nil {
		p.RevisionSheet = []string{}
	}
	for i := range p.MCQs {
		if p.MCQs[i].Options == nil {
			p.MCQs[i].Options = []string{}
		}
	}
}
