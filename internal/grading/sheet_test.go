package grading

import (
	"reflect"
	"testing"
)

func TestBuildSheet_FixedShape(t *testing.T) {
	tests := []struct {
		name     string
		answers  int
		expected int
		wantRows int
	}{
		{"empty list still yields full grid", 0, 10, 10},
		{"short list is padded", 7, 10, 10},
		{"exact fit", 4, 4, 4},
		{"zero expected falls back to default exam size", 3, 0, DefaultExamSize},
		{"negative expected falls back to default exam size", 0, -5, DefaultExamSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows := BuildSheet(answerList(tc.answers, tc.answers), tc.expected, nil)
			if len(rows) != tc.wantRows {
				t.Fatalf("BuildSheet returned %d rows, want %d", len(rows), tc.wantRows)
			}
			for i, row := range rows {
				if row.Number != i+1 {
					t.Errorf("row %d numbered %d", i, row.Number)
				}
				if len(row.Bubbles) != len(DefaultOptionLetters) {
					t.Errorf("row %d has %d bubbles", i, len(row.Bubbles))
				}
			}
		})
	}
}

func TestBuildSheet_PaddedRowsAreUnanswered(t *testing.T) {
	rows := BuildSheet(answerList(3, 2), 6, nil)

	for i := 0; i < 3; i++ {
		if rows[i].Unanswered {
			t.Errorf("row %d should carry the recorded answer", i)
		}
	}
	for i := 3; i < 6; i++ {
		if !rows[i].Unanswered {
			t.Errorf("padded row %d should be unanswered", i)
		}
		for _, b := range rows[i].Bubbles {
			if b.Selected || b.Style != BubbleEmpty {
				t.Errorf("padded row %d has a non-empty bubble %+v", i, b)
			}
		}
	}
}

func TestBuildSheet_BubbleStyles(t *testing.T) {
	answers := []Answer{
		{SelectedAnswer: "A", CorrectAnswer: "A", IsCorrect: true},
		{SelectedAnswer: "C", CorrectAnswer: "B", IsCorrect: false},
		{SelectedAnswer: "", CorrectAnswer: "D", IsCorrect: false},
	}
	rows := BuildSheet(answers, 3, nil)

	if got := rows[0].Bubbles[0].Style; got != BubbleSelectedCorrect {
		t.Errorf("correct selection style = %v, want BubbleSelectedCorrect", got)
	}
	if got := rows[1].Bubbles[2].Style; got != BubbleSelectedWrong {
		t.Errorf("wrong selection style = %v, want BubbleSelectedWrong", got)
	}
	if !rows[2].Unanswered {
		t.Error("empty selection should render as an unanswered row")
	}
	for _, b := range rows[2].Bubbles {
		if b.Selected {
			t.Errorf("unanswered row has selected bubble %q", b.Letter)
		}
	}
}

func TestBuildSheet_Idempotent(t *testing.T) {
	answers := answerList(5, 3)
	first := BuildSheet(answers, 8, nil)
	second := BuildSheet(answers, 8, nil)
	if !reflect.DeepEqual(first, second) {
		t.Error("BuildSheet is not deterministic for identical input")
	}
}

func TestBuildSheet_CustomLetters(t *testing.T) {
	rows := BuildSheet([]Answer{{SelectedAnswer: "E", IsCorrect: true}}, 1, []string{"A", "B", "C", "D", "E"})
	if len(rows[0].Bubbles) != 5 {
		t.Fatalf("expected 5 bubbles, got %d", len(rows[0].Bubbles))
	}
	if !rows[0].Bubbles[4].Selected {
		t.Error("letter E should be selected")
	}
}
