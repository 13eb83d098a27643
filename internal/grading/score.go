// Package grading holds the pure scoring, reconciliation, and validation
// logic shared by the result endpoints and the answer-sheet renderer.
package grading

// Grade bands as percentages of correct answers. A result below GradeBand3
// receives grade 2, the lowest grade the platform issues.
const (
	GradeBand5 = 85
	GradeBand4 = 71
	GradeBand3 = 56
)

const (
	GradeMin = 2
	GradeMax = 5
)

// Answer is one positionally-indexed answer inside a result record.
// QuestionText and CorrectAnswer are denormalized copies taken at
// submission time, not references into the questions table.
type Answer struct {
	QuestionText   string `json:"question"`
	SelectedAnswer string `json:"selectedAnswer"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	Section        string `json:"section,omitempty"`
}

// Score is the outcome of grading a (possibly incomplete) answer list.
type Score struct {
	Correct    int     `json:"correct"`
	Incorrect  int     `json:"incorrect"`
	Unanswered int     `json:"unanswered"`
	Percentage float64 `json:"percentage"`
	Grade      int     `json:"grade"`
}

// CalculateScore grades an answer list against the expected question count.
// Positions beyond len(answers) are unanswered and count as incorrect.
// totalQuestions <= 0 yields the zero-safe minimum instead of an error:
// these records are historical data and the admin views must stay usable
// over them. When len(answers) exceeds totalQuestions the extra answers
// still count; unanswered is clamped to zero rather than going negative.
func CalculateScore(answers []Answer, totalQuestions int) Score {
	correct := 0
	for _, a := range answers {
		if a.IsCorrect {
			correct++
		}
	}

	if totalQuestions <= 0 {
		return Score{Correct: correct, Incorrect: len(answers) - correct, Grade: GradeMin}
	}

	answered := len(answers)
	unanswered := totalQuestions - answered
	if unanswered < 0 {
		unanswered = 0
	}

	pct := 100 * float64(correct) / float64(totalQuestions)

	return Score{
		Correct:    correct,
		Incorrect:  (answered - correct) + unanswered,
		Unanswered: unanswered,
		Percentage: pct,
		Grade:      GradeFor(correct, totalQuestions),
	}
}

// GradeFor maps a raw correct count to the 2..5 grade scale.
func GradeFor(correct, totalQuestions int) int {
	if totalQuestions <= 0 {
		return GradeMin
	}
	pct := 100 * float64(correct) / float64(totalQuestions)
	switch {
	case pct >= GradeBand5:
		return 5
	case pct >= GradeBand4:
		return 4
	case pct >= GradeBand3:
		return 3
	default:
		return GradeMin
	}
}
