package grading

import "testing"

func answerList(total, correct int) []Answer {
	answers := make([]Answer, total)
	for i := range answers {
		answers[i] = Answer{SelectedAnswer: "A", CorrectAnswer: "A", IsCorrect: i < correct}
		if i >= correct {
			answers[i].SelectedAnswer = "B"
		}
	}
	return answers
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name       string
		answered   int
		correct    int
		total      int
		wantScore  Score
	}{
		{
			name:     "abandoned exam counts tail as incorrect",
			answered: 7, correct: 5, total: 10,
			wantScore: Score{Correct: 5, Incorrect: 5, Unanswered: 3, Percentage: 50, Grade: 2},
		},
		{
			name:     "perfect short exam",
			answered: 4, correct: 4, total: 4,
			wantScore: Score{Correct: 4, Incorrect: 0, Unanswered: 0, Percentage: 100, Grade: 5},
		},
		{
			name:     "all unanswered",
			answered: 0, correct: 0, total: 10,
			wantScore: Score{Correct: 0, Incorrect: 10, Unanswered: 10, Percentage: 0, Grade: 2},
		},
		{
			name:     "more answers than expected clamps unanswered",
			answered: 12, correct: 12, total: 10,
			wantScore: Score{Correct: 12, Incorrect: 0, Unanswered: 0, Percentage: 120, Grade: 5},
		},
		{
			name:     "zero total is safe",
			answered: 0, correct: 0, total: 0,
			wantScore: Score{Correct: 0, Incorrect: 0, Unanswered: 0, Percentage: 0, Grade: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateScore(answerList(tc.answered, tc.correct), tc.total)
			if got != tc.wantScore {
				t.Errorf("CalculateScore() = %+v, want %+v", got, tc.wantScore)
			}
		})
	}
}

func TestCalculateScore_Accounting(t *testing.T) {
	// Unanswered positions count as incorrect, so correct + incorrect
	// must equal totalQuestions for any answered <= total, with
	// unanswered reported separately as the missing tail.
	for total := 1; total <= 25; total++ {
		for answered := 0; answered <= total; answered++ {
			for correct := 0; correct <= answered; correct++ {
				s := CalculateScore(answerList(answered, correct), total)
				if s.Correct+s.Incorrect != total {
					t.Fatalf("accounting broken: total=%d answered=%d correct=%d got %+v",
						total, answered, correct, s)
				}
				if s.Unanswered != total-answered {
					t.Fatalf("unanswered tail wrong: total=%d answered=%d got %+v",
						total, answered, s)
				}
			}
		}
	}
}

func TestGradeFor_Bands(t *testing.T) {
	tests := []struct {
		correct int
		total   int
		want    int
	}{
		{85, 100, 5},
		{84, 100, 4},
		{71, 100, 4},
		{70, 100, 3},
		{56, 100, 3},
		{55, 100, 2},
		{0, 100, 2},
		{100, 100, 5},
		{0, 0, 2},
		{3, -1, 2},
	}
	for _, tc := range tests {
		if got := GradeFor(tc.correct, tc.total); got != tc.want {
			t.Errorf("GradeFor(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestGradeFor_Monotonic(t *testing.T) {
	const total = 100
	prev := GradeMin
	for correct := 0; correct <= total; correct++ {
		g := GradeFor(correct, total)
		if g < prev {
			t.Fatalf("grade decreased at correct=%d: %d -> %d", correct, prev, g)
		}
		prev = g
	}
	if prev != GradeMax {
		t.Errorf("full score grade = %d, want %d", prev, GradeMax)
	}
}
