package pdf

import (
	"testing"

	"github.com/bilimtest/quizadmin-backend/internal/grading"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name     string
		surname  string
		expected string
	}{
		{"Aziz", "Karimov", "Aziz_Karimov_answersheet.pdf"},
		{"Ali Akbar", "Rahim  ov", "Ali_Akbar_Rahim__ov_answersheet.pdf"},
		{"a/b:c", "d*e?f", "abc_def_answersheet.pdf"},
		{"  Dil ", "Nur", "Dil_Nur_answersheet.pdf"},
		{"", "", "student_student_answersheet.pdf"},
	}
	for _, tt := range tests {
		if got := Filename(tt.name, tt.surname); got != tt.expected {
			t.Errorf("Filename(%q, %q) = %q, want %q", tt.name, tt.surname, got, tt.expected)
		}
	}
}

func TestGridTotal(t *testing.T) {
	tests := []struct {
		totalQuestions int
		examSize       int
		want           int
	}{
		{40, 100, 40},  // record's own total wins
		{0, 60, 60},    // missing total falls back to the configured size
		{-3, 60, 60},   // negative treated as missing
		{100, 60, 100}, // total larger than the configured size is kept
	}
	for _, tt := range tests {
		if got := gridTotal(tt.totalQuestions, tt.examSize); got != tt.want {
			t.Errorf("gridTotal(%d, %d) = %d, want %d",
				tt.totalQuestions, tt.examSize, got, tt.want)
		}
	}
}

func TestNewAnswerSheetRendererDefaultSize(t *testing.T) {
	r := NewAnswerSheetRenderer("font.ttf", 0)
	if r.examSize != grading.DefaultExamSize {
		t.Errorf("examSize = %d, want %d", r.examSize, grading.DefaultExamSize)
	}
}

func TestRenderMissingFont(t *testing.T) {
	r := NewAnswerSheetRenderer("/nonexistent/font.ttf", 100)
	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected error for missing font file")
	}
}
