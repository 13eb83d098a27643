package service

import (
	"context"

	"github.com/bilimtest/quizadmin-backend/internal/config"
	"github.com/bilimtest/quizadmin-backend/internal/events"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// QuestionService handles question business logic. Drafts are validated
// on create AND on every update: correctness is matched by option value,
// so an option edit can orphan the correct answer and must be caught at
// save time rather than silently persisted.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	cfg          *config.Config
	feed         *events.Changefeed
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository, cfg *config.Config, feed *events.Changefeed, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		cfg:          cfg,
		feed:         feed,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// List retrieves questions filtered by section name and search term.
func (s *QuestionService) List(ctx context.Context, section, search string) ([]model.Question, error) {
	return s.questionRepo.List(ctx, section, search)
}

// GetByID retrieves a single question.
func (s *QuestionService) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// Create validates and persists a new question.
func (s *QuestionService) Create(ctx context.Context, draft *model.QuestionDraft) (*model.Question, error) {
	if err := draft.Validate(s.cfg.RequireQuestionSection); err != nil {
		return nil, err
	}

	q := &model.Question{
		Question:      draft.Question,
		Options:       draft.Options,
		CorrectAnswer: draft.CorrectAnswer,
		Section:       draft.Section,
	}
	if err := s.questionRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	s.feed.Publish(ctx, "questions", events.ActionAdded, q.ID.String())
	return q, nil
}

// Update re-validates and overwrites a question in place.
func (s *QuestionService) Update(ctx context.Context, id uuid.UUID, draft *model.QuestionDraft) (*model.Question, error) {
	if err := draft.Validate(s.cfg.RequireQuestionSection); err != nil {
		return nil, err
	}

	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	q.Question = draft.Question
	q.Options = draft.Options
	q.CorrectAnswer = draft.CorrectAnswer
	q.Section = draft.Section

	if err := s.questionRepo.Update(ctx, q); err != nil {
		return nil, err
	}
	s.feed.Publish(ctx, "questions", events.ActionUpdated, q.ID.String())
	return q, nil
}

// Delete removes a question.
func (s *QuestionService) Delete(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.feed.Publish(ctx, "questions", events.ActionDeleted, id.String())
	return q, nil
}

// CountBySection returns per-section question counts.
func (s *QuestionService) CountBySection(ctx context.Context) (map[string]int, error) {
	return s.questionRepo.CountBySection(ctx)
}
