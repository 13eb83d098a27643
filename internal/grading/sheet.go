package grading

// DefaultExamSize is the fixed answer-sheet length used when a result
// record carries no totalQuestions of its own.
const DefaultExamSize = 100

// DefaultOptionLetters is the option set printed on the bubble sheet.
var DefaultOptionLetters = []string{"A", "B", "C", "D"}

// BubbleStyle describes how a single bubble is drawn.
type BubbleStyle int

const (
	BubbleEmpty           BubbleStyle = iota // outline only
	BubbleSelectedCorrect                    // filled black
	BubbleSelectedWrong                      // filled with red outline
)

// Bubble is one option circle on a sheet row.
type Bubble struct {
	Letter   string
	Selected bool
	Style    BubbleStyle
}

// SheetRow is one question line on the answer sheet. Unanswered rows have
// no selected bubble at all.
type SheetRow struct {
	Number     int // 1-based question number
	Selected   string
	IsCorrect  bool
	Unanswered bool
	Bubbles    []Bubble
}

// BuildSheet reconciles a raw (possibly short) answer list into a grid of
// exactly expectedTotal rows, one per question position. Rows beyond the
// recorded answers are synthesized as unanswered so the printed sheet has
// a fixed shape no matter how early the student stopped. The transform is
// deterministic and keeps no state; callers may re-run it freely.
func BuildSheet(answers []Answer, expectedTotal int, letters []string) []SheetRow {
	if expectedTotal <= 0 {
		expectedTotal = DefaultExamSize
	}
	if len(letters) == 0 {
		letters = DefaultOptionLetters
	}

	rows := make([]SheetRow, expectedTotal)
	for i := 0; i < expectedTotal; i++ {
		row := SheetRow{Number: i + 1, Unanswered: true}
		if i < len(answers) {
			row.Selected = answers[i].SelectedAnswer
			row.IsCorrect = answers[i].IsCorrect
			row.Unanswered = answers[i].SelectedAnswer == ""
		}

		row.Bubbles = make([]Bubble, len(letters))
		for j, letter := range letters {
			b := Bubble{Letter: letter}
			if !row.Unanswered && row.Selected == letter {
				b.Selected = true
				if row.IsCorrect {
					b.Style = BubbleSelectedCorrect
				} else {
					b.Style = BubbleSelectedWrong
				}
			}
			row.Bubbles[j] = b
		}
		rows[i] = row
	}
	return rows
}
