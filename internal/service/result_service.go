package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/events"
	"github.com/bilimtest/quizadmin-backend/internal/grading"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrAnswerIndexOutOfRange is returned when a toggle addresses a
// position past the recorded answer list.
var ErrAnswerIndexOutOfRange = errors.New("answer index out of range")

// ResultService handles exam result business logic. Score and grade are
// derived fields: every path that touches the answer list recomputes
// them through grading.CalculateScore, so a stored record can never
// carry a grade that disagrees with its own answers.
type ResultService struct {
	resultRepo *repository.ResultRepository
	groupRepo  *repository.GroupRepository
	audit      *AuditService
	feed       *events.Changefeed
	log        zerolog.Logger
}

func NewResultService(
	resultRepo *repository.ResultRepository,
	groupRepo *repository.GroupRepository,
	audit *AuditService,
	feed *events.Changefeed,
	log zerolog.Logger,
) *ResultService {
	return &ResultService{
		resultRepo: resultRepo,
		groupRepo:  groupRepo,
		audit:      audit,
		feed:       feed,
		log:        log.With().Str("component", "result_service").Logger(),
	}
}

// List retrieves all results and applies the console's filter and sort
// parameters in memory.
func (s *ResultService) List(ctx context.Context, q model.ResultListQuery) ([]model.Result, error) {
	results, err := s.resultRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSortResults(results, q), nil
}

// ListByGroup retrieves the results of one group (the group detail view).
func (s *ResultService) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Result, error) {
	return s.resultRepo.GetByGroup(ctx, groupID)
}

// GetByID retrieves a single result.
func (s *ResultService) GetByID(ctx context.Context, id uuid.UUID) (*model.Result, error) {
	res, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.warnOnInconsistency(res)
	return res, nil
}

// Submit records a new result posted by the quiz client. The submitted
// score and grade are ignored; grading is recomputed server-side.
func (s *ResultService) Submit(ctx context.Context, req *model.SubmitResultRequest) (*model.Result, error) {
	group, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	res := &model.Result{
		Name:           req.Name,
		Surname:        req.Surname,
		Group:          group.Name,
		GroupID:        group.ID,
		Date:           time.Now().UTC(),
		TotalQuestions: req.TotalQuestions,
		Answers:        req.Answers,
	}
	if res.TotalQuestions <= 0 {
		res.TotalQuestions = len(req.Answers)
	}
	res.Recalculate()

	if err := s.resultRepo.Create(ctx, res); err != nil {
		return nil, err
	}
	s.feed.Publish(ctx, "results", events.ActionAdded, res.ID.String())
	return res, nil
}

// UpdateIdentity edits the student-facing fields of a result. Group name
// and id are resolved together from the referenced group so the
// denormalized pair stays in sync.
func (s *ResultService) UpdateIdentity(ctx context.Context, id uuid.UUID, req *model.UpdateResultIdentityRequest, adminEmail string) (*model.Result, error) {
	res, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	group, err := s.groupRepo.GetByID(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Name: %s → %s, Surname: %s → %s, Group: %s → %s",
		res.Name, req.Name, res.Surname, req.Surname, res.Group, group.Name)

	res.Name = req.Name
	res.Surname = req.Surname
	res.Group = group.Name
	res.GroupID = group.ID

	if err := s.resultRepo.UpdateIdentity(ctx, res); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditStudentUpdated, res.ID.String(),
		res.Name+" "+res.Surname, details, adminEmail)
	s.feed.Publish(ctx, "results", events.ActionUpdated, res.ID.String())
	return res, nil
}

// Transfer moves a result to another group, updating display name and id
// together.
func (s *ResultService) Transfer(ctx context.Context, id, groupID uuid.UUID, adminEmail string) (*model.Result, error) {
	res, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	details := fmt.Sprintf("Group changed: %s → %s", res.Group, group.Name)
	res.Group = group.Name
	res.GroupID = group.ID

	if err := s.resultRepo.UpdateIdentity(ctx, res); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, model.AuditGroupTransfer, res.ID.String(),
		res.Name+" "+res.Surname, details, adminEmail)
	s.feed.Publish(ctx, "results", events.ActionUpdated, res.ID.String())
	return res, nil
}

// UpdateAnswers applies the console's answer-editing actions: an
// optional bulk mark-all pass followed by individual toggles. Score and
// grade are recomputed from the resulting list, never taken from the
// client.
func (s *ResultService) UpdateAnswers(ctx context.Context, id uuid.UUID, req *model.UpdateAnswersRequest, adminEmail string) (*model.Result, error) {
	res, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := fmt.Sprintf("Score: %d, Grade: %d, Correct: %d", res.Score, res.Grade, res.CorrectCount)

	if req.MarkAll != nil {
		for i := range res.Answers {
			res.Answers[i].IsCorrect = *req.MarkAll
		}
	}
	for _, t := range req.Toggles {
		if t.Index < 0 || t.Index >= len(res.Answers) {
			return nil, ErrAnswerIndexOutOfRange
		}
		res.Answers[t.Index].IsCorrect = !res.Answers[t.Index].IsCorrect
	}

	res.Recalculate()

	if err := s.resultRepo.UpdateGrading(ctx, res); err != nil {
		return nil, err
	}

	details := fmt.Sprintf("%s → Score: %d, Grade: %d, Correct: %d",
		before, res.Score, res.Grade, res.CorrectCount)
	s.audit.Record(ctx, model.AuditResultUpdated, res.ID.String(),
		res.Name+" "+res.Surname, details, adminEmail)
	s.feed.Publish(ctx, "results", events.ActionUpdated, res.ID.String())
	return res, nil
}

// Delete removes a result and records the deletion in the audit trail.
func (s *ResultService) Delete(ctx context.Context, id uuid.UUID, adminEmail string) error {
	res, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.resultRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Record(ctx, model.AuditResultDeleted, id.String(),
		res.Name+" "+res.Surname,
		fmt.Sprintf("Deleted result dated %s with grade %d", res.Date.Format("2006-01-02"), res.Grade),
		adminEmail)
	s.feed.Publish(ctx, "results", events.ActionDeleted, id.String())
	return nil
}

// warnOnInconsistency logs historical records whose stored fields
// disagree with their own answer list. The record is served as-is; these
// views must stay usable over imperfect data.
func (s *ResultService) warnOnInconsistency(res *model.Result) {
	if len(res.Answers) > res.TotalQuestions && res.TotalQuestions > 0 {
		s.log.Warn().
			Str("result_id", res.ID.String()).
			Int("answers", len(res.Answers)).
			Int("total_questions", res.TotalQuestions).
			Msg("answer list longer than expected total")
	}
	if recomputed := grading.GradeFor(res.CorrectCount, res.TotalQuestions); recomputed != res.Grade {
		s.log.Warn().
			Str("result_id", res.ID.String()).
			Int("stored_grade", res.Grade).
			Int("recomputed_grade", recomputed).
			Msg("stored grade disagrees with recomputed grade")
	}
}
