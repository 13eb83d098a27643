package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// QuestionOptionCount is the fixed number of options per question.
const QuestionOptionCount = 4

// Question represents a single quiz question. CorrectAnswer is matched
// against the option values by string equality, so editing an option's
// text can orphan a previously valid correct answer — Validate is re-run
// on every update to catch exactly that.
type Question struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer"`
	Section       string    `json:"section,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// QuestionDraft is the payload for creating or replacing a question.
type QuestionDraft struct {
	Question      string   `json:"question" binding:"required,min=1,max=2000"`
	Options       []string `json:"options" binding:"required,len=4"`
	CorrectAnswer string   `json:"correctAnswer" binding:"required,max=2000"`
	Section       string   `json:"section" binding:"omitempty,max=100"`
}

// Validation errors returned by QuestionDraft.Validate.
var (
	ErrBlankQuestion   = errors.New("question text is blank")
	ErrBlankOption     = errors.New("an option is blank")
	ErrOrphanedAnswer  = errors.New("correct answer does not match any option")
	ErrSectionRequired = errors.New("section is required")
)

// IsQuestionValidationError reports whether err is one of the draft
// validation failures, so the API layer can return 400 instead of 500.
func IsQuestionValidationError(err error) bool {
	return errors.Is(err, ErrBlankQuestion) ||
		errors.Is(err, ErrBlankOption) ||
		errors.Is(err, ErrOrphanedAnswer) ||
		errors.Is(err, ErrSectionRequired)
}

// Validate checks the semantic rules binding tags cannot express: no
// blank prompt or options, and the correct answer must be byte-equal to
// one of the options. requireSection enforces the section tag when the
// deployment is configured that way.
func (d *QuestionDraft) Validate(requireSection bool) error {
	if strings.TrimSpace(d.Question) == "" {
		return ErrBlankQuestion
	}
	match := false
	for _, opt := range d.Options {
		if strings.TrimSpace(opt) == "" {
			return ErrBlankOption
		}
		if opt == d.CorrectAnswer {
			match = true
		}
	}
	if d.CorrectAnswer == "" || !match {
		return ErrOrphanedAnswer
	}
	if requireSection && strings.TrimSpace(d.Section) == "" {
		return ErrSectionRequired
	}
	return nil
}
