package model

import (
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/grading"
	"github.com/google/uuid"
)

// Result is one student's completed exam record. Group and GroupID are
// stored independently (display name cached alongside the id); transfers
// must update both together so they do not drift.
//
// TotalQuestions is the expected exam length and may exceed len(Answers)
// when the student abandoned the exam early — the missing tail positions
// are unanswered, not corrupt.
type Result struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Surname        string           `json:"surname"`
	Group          string           `json:"group"`
	GroupID        uuid.UUID        `json:"group_id"`
	Date           time.Time        `json:"date"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Grade          int              `json:"grade"`
	CorrectCount   int              `json:"correctCount"`
	IncorrectCount int              `json:"incorrectCount"`
	Answers        []grading.Answer `json:"answers"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// Recalculate regrades the result from its answer list and writes the
// derived fields back. Every mutation path that touches Answers must call
// this so score and grade are never left stale.
func (r *Result) Recalculate() grading.Score {
	s := grading.CalculateScore(r.Answers, r.TotalQuestions)
	r.Score = s.Correct
	r.Grade = s.Grade
	r.CorrectCount = s.Correct
	r.IncorrectCount = s.Incorrect
	return s
}

// SubmitResultRequest is the payload the quiz client posts when a
// student finishes an exam. Any client-supplied score or grade is
// discarded; the server regrades from the answer list.
type SubmitResultRequest struct {
	Name           string           `json:"name" binding:"required,min=1,max=100"`
	Surname        string           `json:"surname" binding:"required,min=1,max=100"`
	GroupID        uuid.UUID        `json:"group_id" binding:"required"`
	TotalQuestions int              `json:"totalQuestions" binding:"omitempty,min=0"`
	Answers        []grading.Answer `json:"answers" binding:"required"`
}

// UpdateResultIdentityRequest edits the student-facing identity fields of
// a result without touching answers or grading.
type UpdateResultIdentityRequest struct {
	Name    string    `json:"name" binding:"required,min=1,max=100"`
	Surname string    `json:"surname" binding:"required,min=1,max=100"`
	GroupID uuid.UUID `json:"group_id" binding:"required"`
}

// TransferResultRequest moves a result to another group.
type TransferResultRequest struct {
	GroupID uuid.UUID `json:"group_id" binding:"required"`
}

// AnswerToggle flips the correctness flag of one positional answer.
type AnswerToggle struct {
	Index int `json:"index" binding:"min=0"`
}

// UpdateAnswersRequest rewrites a result's answer list. MarkAll applies
// the bulk mark-all-correct / mark-all-incorrect console actions before
// any individual toggles. Score and grade in the stored record are always
// recomputed server-side; clients cannot submit them.
type UpdateAnswersRequest struct {
	MarkAll *bool          `json:"mark_all,omitempty"`
	Toggles []AnswerToggle `json:"toggles" binding:"omitempty,dive"`
}

// ResultListQuery carries the list endpoint's filter and sort parameters.
type ResultListQuery struct {
	NameSubstring string `form:"q"`
	Grade         string `form:"grade"`     // "2".."5" or "all"
	GroupID       string `form:"group_id"`  // optional exact match
	SortKey       string `form:"sort"`      // name | grade | date
	SortDirection string `form:"direction"` // asc | desc
}
