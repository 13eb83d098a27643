package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/config"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const auditListLimit = 500

// AuditService records accountability entries for every admin mutation.
// Entries are queued in Redis and persisted by the audit worker; the
// trail itself is append-only and is never edited or deleted.
type AuditService struct {
	auditRepo *repository.AuditRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

func NewAuditService(auditRepo *repository.AuditRepository, rdb *redis.Client, log zerolog.Logger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "audit_service").Logger(),
	}
}

// Record enqueues one audit entry. A failed enqueue is logged and
// swallowed: losing a trail entry must not fail the mutation it records.
func (s *AuditService) Record(ctx context.Context, action model.AuditAction, targetID, targetName, details, adminEmail string) {
	entry := model.AuditLog{
		Action:     action,
		TargetID:   targetID,
		TargetName: targetName,
		Details:    details,
		AdminEmail: adminEmail,
		Timestamp:  time.Now().UTC(),
	}

	raw, err := json.Marshal(entry)
	if err != nil {
		s.log.Error().Err(err).Msg("encode audit entry")
		return
	}
	if err := s.rdb.RPush(ctx, config.WorkerKey.AuditQueue, raw).Err(); err != nil {
		s.log.Error().Err(err).Str("action", string(action)).Msg("enqueue audit entry failed")
	}
}

// List returns the newest audit entries.
func (s *AuditService) List(ctx context.Context) ([]model.AuditLog, error) {
	return s.auditRepo.List(ctx, auditListLimit)
}
