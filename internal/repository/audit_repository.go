package repository

import (
	"context"
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository handles the append-only audit trail. There is no update
// or delete path on purpose.
type AuditRepository struct {
	pool *pgxpool.Pool
}

func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Append inserts one audit entry.
func (r *AuditRepository) Append(ctx context.Context, e *model.AuditLog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO audit_logs (action, target_id, target_name, details, admin_email, timestamp)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		e.Action, e.TargetID, e.TargetName, e.Details, e.AdminEmail, e.Timestamp,
	).Scan(&e.ID)
}

// AppendBatch inserts a batch of audit entries with a single UNNEST
// statement. Used by the audit worker when draining its queue.
func (r *AuditRepository) AppendBatch(ctx context.Context, entries []*model.AuditLog) error {
	n := len(entries)
	if n == 0 {
		return nil
	}

	actions := make([]string, n)
	targetIDs := make([]string, n)
	targetNames := make([]string, n)
	details := make([]string, n)
	admins := make([]string, n)
	timestamps := make([]time.Time, n)

	for i, e := range entries {
		actions[i] = string(e.Action)
		targetIDs[i] = e.TargetID
		targetNames[i] = e.TargetName
		details[i] = e.Details
		admins[i] = e.AdminEmail
		timestamps[i] = e.Timestamp
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs (action, target_id, target_name, details, admin_email, timestamp)
		 SELECT * FROM UNNEST(
		     $1::text[], $2::text[], $3::text[], $4::text[], $5::text[], $6::timestamptz[]
		 )`,
		actions, targetIDs, targetNames, details, admins, timestamps)
	return err
}

// List retrieves audit entries newest first, capped by limit.
func (r *AuditRepository) List(ctx context.Context, limit int) ([]model.AuditLog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, action, target_id, target_name, details, admin_email, timestamp
		 FROM audit_logs ORDER BY timestamp DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []model.AuditLog
	for rows.Next() {
		var e model.AuditLog
		if err := rows.Scan(&e.ID, &e.Action, &e.TargetID, &e.TargetName, &e.Details, &e.AdminEmail, &e.Timestamp); err != nil {
			return nil, err
		}
		logs = append(logs, e)
	}
	return logs, rows.Err()
}
