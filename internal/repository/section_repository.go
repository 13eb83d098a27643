package repository

import (
	"context"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SectionRepository struct {
	pool *pgxpool.Pool
}

func NewSectionRepository(pool *pgxpool.Pool) *SectionRepository {
	return &SectionRepository{pool: pool}
}

func (r *SectionRepository) Create(ctx context.Context, s *model.Section) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO sections (name) VALUES ($1) RETURNING id, created_at`,
		s.Name).Scan(&s.ID, &s.CreatedAt)
}

func (r *SectionRepository) GetAll(ctx context.Context) ([]model.Section, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, created_at FROM sections ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []model.Section
	for rows.Next() {
		var s model.Section
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}
	return sections, rows.Err()
}

func (r *SectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Section, error) {
	s := &model.Section{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, created_at FROM sections WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sections WHERE id = $1`, id)
	return err
}
