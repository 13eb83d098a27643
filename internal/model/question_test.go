package model

import (
	"errors"
	"testing"
)

func draft() QuestionDraft {
	return QuestionDraft{
		Question:      "Capital of Italy?",
		Options:       []string{"Paris", "London", "Rome", "Berlin"},
		CorrectAnswer: "Rome",
		Section:       "Geography",
	}
}

func TestQuestionDraftValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*QuestionDraft)
		require bool
		wantErr error
	}{
		{"valid draft", func(d *QuestionDraft) {}, false, nil},
		{"blank question", func(d *QuestionDraft) { d.Question = "   " }, false, ErrBlankQuestion},
		{"blank option", func(d *QuestionDraft) { d.Options[1] = "" }, false, ErrBlankOption},
		{"whitespace option", func(d *QuestionDraft) { d.Options[3] = "  " }, false, ErrBlankOption},
		{"empty correct answer", func(d *QuestionDraft) { d.CorrectAnswer = "" }, false, ErrOrphanedAnswer},
		{"correct answer not an option", func(d *QuestionDraft) { d.CorrectAnswer = "Madrid" }, false, ErrOrphanedAnswer},
		{
			// Renaming the currently-correct option orphans the answer
			// because correctness is matched by value, not index.
			"option rename orphans correct answer",
			func(d *QuestionDraft) { d.Options[2] = "Madrid" },
			false, ErrOrphanedAnswer,
		},
		{"case differs from option", func(d *QuestionDraft) { d.CorrectAnswer = "rome" }, false, ErrOrphanedAnswer},
		{"missing section when required", func(d *QuestionDraft) { d.Section = "" }, true, ErrSectionRequired},
		{"missing section when optional", func(d *QuestionDraft) { d.Section = "" }, false, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := draft()
			tc.mutate(&d)
			err := d.Validate(tc.require)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}
