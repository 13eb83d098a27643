package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/config"
	"github.com/bilimtest/quizadmin-backend/internal/database"
	"github.com/bilimtest/quizadmin-backend/internal/events"
	"github.com/bilimtest/quizadmin-backend/internal/handler"
	"github.com/bilimtest/quizadmin-backend/internal/logger"
	"github.com/bilimtest/quizadmin-backend/internal/pdf"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/bilimtest/quizadmin-backend/internal/router"
	"github.com/bilimtest/quizadmin-backend/internal/service"
	"github.com/bilimtest/quizadmin-backend/internal/validator"
	"github.com/bilimtest/quizadmin-backend/internal/worker"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting QuizAdmin Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	sectionRepo := repository.NewSectionRepository(pool)
	groupRepo := repository.NewGroupRepository(pool)
	questionRepo := repository.NewQuestionRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	auditRepo := repository.NewAuditRepository(pool)

	// ─── Initialize Changefeed ─────────────────────────────────────────
	feed := events.NewChangefeed(rdb, log)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	auditService := service.NewAuditService(auditRepo, rdb, log)
	sectionService := service.NewSectionService(sectionRepo, feed, log)
	groupService := service.NewGroupService(groupRepo, feed, log)
	questionService := service.NewQuestionService(questionRepo, cfg, feed, log)
	resultService := service.NewResultService(resultRepo, groupRepo, auditService, feed, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	renderer := pdf.NewAnswerSheetRenderer(cfg.AnswerSheetFontPath, cfg.ExamSize)
	handlers := &router.Handlers{
		Auth:     handler.NewAuthHandler(authService, adminRepo, log),
		Section:  handler.NewSectionHandler(sectionService, auditService),
		Group:    handler.NewGroupHandler(groupService, resultService, auditService),
		Question: handler.NewQuestionHandler(questionService, auditService),
		Result:   handler.NewResultHandler(resultService, renderer, log),
		Audit:    handler.NewAuditHandler(auditService),
		WS:       handler.NewWSHandler(feed, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	auditWorker := worker.NewAuditWorker(auditRepo, rdb, log)
	go auditWorker.Start(workerCtx)
	go feed.Run(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop background workers and wait for the audit queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow workers to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
