package repository

import (
	"context"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionRepository handles question data access.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// List retrieves questions, optionally restricted to a section name and a
// case-insensitive search term matched against the prompt and options.
func (r *QuestionRepository) List(ctx context.Context, section, search string) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, options, correct_answer, section, created_at, updated_at
		 FROM questions
		 WHERE ($1 = '' OR section = $1)
		   AND ($2 = '' OR question ILIKE '%' || $2 || '%'
		        OR EXISTS (SELECT 1 FROM unnest(options) o WHERE o ILIKE '%' || $2 || '%'))
		 ORDER BY created_at ASC`, section, search,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Options, &q.CorrectAnswer, &q.Section, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// GetByID retrieves a single question.
func (r *QuestionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Question, error) {
	q := &model.Question{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, question, options, correct_answer, section, created_at, updated_at
		 FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.Question, &q.Options, &q.CorrectAnswer, &q.Section, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// Create inserts a new question.
func (r *QuestionRepository) Create(ctx context.Context, q *model.Question) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO questions (question, options, correct_answer, section)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		q.Question, q.Options, q.CorrectAnswer, q.Section,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
}

// Update overwrites a question in place. Edits are not versioned.
func (r *QuestionRepository) Update(ctx context.Context, q *model.Question) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE questions
		 SET question = $1, options = $2, correct_answer = $3, section = $4, updated_at = NOW()
		 WHERE id = $5`,
		q.Question, q.Options, q.CorrectAnswer, q.Section, q.ID)
	return err
}

// Delete removes a question outright.
func (r *QuestionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM questions WHERE id = $1`, id)
	return err
}

// CountBySection returns per-section question counts for the console's
// section overview, keyed by section name.
func (r *QuestionRepository) CountBySection(ctx context.Context) (map[string]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT section, COUNT(*) FROM questions GROUP BY section`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var section string
		var n int
		if err := rows.Scan(&section, &n); err != nil {
			return nil, err
		}
		counts[section] = n
	}
	return counts, rows.Err()
}
