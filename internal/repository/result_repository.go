package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bilimtest/quizadmin-backend/internal/grading"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository handles exam result data access. The positional answer
// list is stored as JSONB so the stored shape matches the original
// document records one-to-one.
type ResultRepository struct {
	pool *pgxpool.Pool
}

func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

const resultColumns = `id, name, surname, group_name, group_id, date, score,
	total_questions, grade, correct_count, incorrect_count, answers,
	created_at, updated_at`

func scanResult(row interface{ Scan(...any) error }) (*model.Result, error) {
	res := &model.Result{}
	var answersJSON []byte
	err := row.Scan(&res.ID, &res.Name, &res.Surname, &res.Group, &res.GroupID,
		&res.Date, &res.Score, &res.TotalQuestions, &res.Grade,
		&res.CorrectCount, &res.IncorrectCount, &answersJSON,
		&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &res.Answers); err != nil {
			return nil, fmt.Errorf("decode answers: %w", err)
		}
	}
	return res, nil
}

// GetAll retrieves every result. Filtering and sorting happen in memory
// in the service layer so the list logic matches the console exactly.
func (r *ResultRepository) GetAll(ctx context.Context) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resultColumns+` FROM results ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, rows.Err()
}

// GetByGroup retrieves results belonging to one group.
func (r *ResultRepository) GetByGroup(ctx context.Context, groupID uuid.UUID) ([]model.Result, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resultColumns+` FROM results WHERE group_id = $1 ORDER BY created_at ASC`,
		groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, rows.Err()
}

// GetByID retrieves a single result.
func (r *ResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Result, error) {
	return scanResult(r.pool.QueryRow(ctx,
		`SELECT `+resultColumns+` FROM results WHERE id = $1`, id))
}

// Create inserts a new result record (exam submission).
func (r *ResultRepository) Create(ctx context.Context, res *model.Result) error {
	answersJSON, err := json.Marshal(answersOrEmpty(res.Answers))
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO results (name, surname, group_name, group_id, date, score,
		     total_questions, grade, correct_count, incorrect_count, answers)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at, updated_at`,
		res.Name, res.Surname, res.Group, res.GroupID, res.Date, res.Score,
		res.TotalQuestions, res.Grade, res.CorrectCount, res.IncorrectCount,
		answersJSON,
	).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt)
}

// UpdateIdentity rewrites the student-facing fields. Group name and id
// are written together so the denormalized pair cannot drift.
func (r *ResultRepository) UpdateIdentity(ctx context.Context, res *model.Result) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE results
		 SET name = $1, surname = $2, group_name = $3, group_id = $4, updated_at = NOW()
		 WHERE id = $5`,
		res.Name, res.Surname, res.Group, res.GroupID, res.ID)
	return err
}

// UpdateGrading rewrites the answer list and all derived grading fields.
func (r *ResultRepository) UpdateGrading(ctx context.Context, res *model.Result) error {
	answersJSON, err := json.Marshal(answersOrEmpty(res.Answers))
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE results
		 SET score = $1, grade = $2, correct_count = $3, incorrect_count = $4,
		     answers = $5, updated_at = NOW()
		 WHERE id = $6`,
		res.Score, res.Grade, res.CorrectCount, res.IncorrectCount,
		answersJSON, res.ID)
	return err
}

// Delete removes a result.
func (r *ResultRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM results WHERE id = $1`, id)
	return err
}

// answersOrEmpty keeps stored JSON as [] rather than null for results
// with no recorded answers.
func answersOrEmpty(answers []grading.Answer) []grading.Answer {
	if answers == nil {
		return []grading.Answer{}
	}
	return answers
}
