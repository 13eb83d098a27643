package repository

import (
	"context"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GroupRepository handles group data access. Subject names are stored as
// a text array on the group row, mirroring the denormalized multi-select
// shape of the original records.
type GroupRepository struct {
	pool *pgxpool.Pool
}

func NewGroupRepository(pool *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{pool: pool}
}

func (r *GroupRepository) Create(ctx context.Context, g *model.Group) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO groups (name, subjects) VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		g.Name, g.Subjects).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (r *GroupRepository) GetAll(ctx context.Context) ([]model.Group, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, subjects, created_at, updated_at FROM groups ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []model.Group
	for rows.Next() {
		var g model.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Subjects, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *GroupRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	g := &model.Group{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, subjects, created_at, updated_at FROM groups WHERE id = $1`, id,
	).Scan(&g.ID, &g.Name, &g.Subjects, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *GroupRepository) Update(ctx context.Context, g *model.Group) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE groups SET name = $1, subjects = $2, updated_at = NOW() WHERE id = $3`,
		g.Name, g.Subjects, g.ID)
	return err
}

func (r *GroupRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	return err
}
