package router

import (
	"net/http"
	"time"

	"github.com/bilimtest/quizadmin-backend/internal/config"
	"github.com/bilimtest/quizadmin-backend/internal/handler"
	"github.com/bilimtest/quizadmin-backend/internal/middleware"
	"github.com/bilimtest/quizadmin-backend/internal/response"
	"github.com/bilimtest/quizadmin-backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth     *handler.AuthHandler
	Section  *handler.SectionHandler
	Group    *handler.GroupHandler
	Question *handler.QuestionHandler
	Result   *handler.ResultHandler
	Audit    *handler.AuditHandler
	WS       *handler.WSHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for unauthenticated routes (30 requests per minute per IP).
	publicLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Auth Group (Public, Rate Limited) ──────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(publicLimiter.Middleware())
	{
		auth.POST("/login", handlers.Auth.Login)

		// Authenticated profile routes
		auth.GET("/me", middleware.RequireAdminJWT(authService), handlers.Auth.Me)
		auth.POST("/logout", middleware.RequireAdminJWT(authService), handlers.Auth.Logout)
	}

	// ─── 2. Submission Group (Public, Rate Limited) ────────────────────
	// The quiz client posts finished exams here; everything else is
	// behind admin auth.
	public := router.Group("/api/v1")
	public.Use(publicLimiter.Middleware())
	{
		public.POST("/submissions", handlers.Result.Submit)
	}

	// ─── 3. WebSocket Group (Admin WS Auth) ────────────────────────────
	ws := router.Group("/ws/v1")
	ws.Use(middleware.RequireAdminWSAuth(authService))
	{
		ws.GET("/admin/stream", handlers.WS.AdminStream)
	}

	// ─── 4. Admin Group (JWT) ──────────────────────────────────────────
	adminAPI := router.Group("/api/v1/admin")
	adminAPI.Use(middleware.RequireAdminJWT(authService))
	{
		sectionsGroup := adminAPI.Group("/sections")
		{
			sectionsGroup.GET("", handlers.Section.GetAll)
			sectionsGroup.POST("", handlers.Section.Create)
			sectionsGroup.DELETE("/:id", handlers.Section.Delete)
		}

		groupsGroup := adminAPI.Group("/groups")
		{
			groupsGroup.GET("", handlers.Group.GetAll)
			groupsGroup.GET("/:id", handlers.Group.Get)
			groupsGroup.POST("", handlers.Group.Create)
			groupsGroup.PUT("/:id", handlers.Group.Update)
			groupsGroup.DELETE("/:id", handlers.Group.Delete)
			groupsGroup.GET("/:id/results", handlers.Group.GetResults)
		}

		questionsGroup := adminAPI.Group("/questions")
		{
			questionsGroup.GET("", handlers.Question.List)
			questionsGroup.GET("/counts", handlers.Question.Counts)
			questionsGroup.POST("", handlers.Question.Create)
			questionsGroup.PUT("/:id", handlers.Question.Update)
			questionsGroup.DELETE("/:id", handlers.Question.Delete)
		}

		resultsGroup := adminAPI.Group("/results")
		{
			resultsGroup.GET("", handlers.Result.List)
			resultsGroup.GET("/:id", handlers.Result.Get)
			resultsGroup.PUT("/:id", handlers.Result.UpdateIdentity)
			resultsGroup.POST("/:id/transfer", handlers.Result.Transfer)
			resultsGroup.PATCH("/:id/answers", handlers.Result.UpdateAnswers)
			resultsGroup.DELETE("/:id", handlers.Result.Delete)
			resultsGroup.GET("/:id/answer-sheet", handlers.Result.AnswerSheet)
		}

		adminAPI.GET("/audit-logs", handlers.Audit.List)
	}

	return router
}
