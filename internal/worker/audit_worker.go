package worker

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

const (
	AuditBatchSize    = 50
	AuditBatchTimeout = 2 * time.Second
	AuditPollTimeout  = 1 * time.Second
)

// AuditWorker drains queued audit entries from Redis into PostgreSQL in
// batches. Mutation handlers enqueue and move on; the trail is written a
// moment later, so a slow insert never delays an admin action.
type AuditWorker struct {
	auditRepo *repository.AuditRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

func NewAuditWorker(auditRepo *repository.AuditRepository, rdb *redis.Client, log zerolog.Logger) *AuditWorker {
	return &AuditWorker{
		auditRepo: auditRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "audit_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *AuditWorker) Start(ctx context.Context) {
	w.log.Info().Msg("AuditWorker started")

	batch := make([]*model.AuditLog, 0, AuditBatchSize)
	lastFlush := time.Now()

	for {
		if len(batch) > 0 &&
			(len(batch) >= AuditBatchSize || time.Since(lastFlush) >= AuditBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, AuditPollTimeout, config.WorkerKey.AuditQueue).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var e model.AuditLog
			if err := json.Unmarshal([]byte(item[1]), &e); err != nil {
				w.log.Error().Err(err).Msg("Invalid audit payload")
				continue
			}

			batch = append(batch, &e)
		}
	}
}

// ----------------------------------------------------------------
// Batch insert with per-entry fallback
// ----------------------------------------------------------------

func (w *AuditWorker) flushSafe(ctx context.Context, batch []*model.AuditLog) {
	if len(batch) == 0 {
		return
	}

	if err := w.auditRepo.AppendBatch(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("bulk audit insert failed, using fallback")

		for _, e := range batch {
			if err := w.auditRepo.Append(ctx, e); err != nil {
				w.log.Error().Err(err).Msg("single audit insert failed, requeueing")
				raw, _ := json.Marshal(e)
				w.rdb.RPush(ctx, config.WorkerKey.AuditQueue, raw)
			}
		}
	}
}
