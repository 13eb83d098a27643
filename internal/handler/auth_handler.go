package handler

import (
	"net/http"

	"github.com/bilimtest/quizadmin-backend/internal/middleware"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/bilimtest/quizadmin-backend/internal/response"
	"github.com/bilimtest/quizadmin-backend/internal/service"
	"github.com/bilimtest/quizadmin-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	authService *service.AuthService
	adminRepo   *repository.AdminRepository
	log         zerolog.Logger
}

func NewAuthHandler(authService *service.AuthService, adminRepo *repository.AdminRepository, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		adminRepo:   adminRepo,
		log:         log.With().Str("component", "auth_handler").Logger(),
	}
}

// Login godoc
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.AdminLoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	admin, err := h.adminRepo.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if err := h.authService.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		h.log.Warn().Str("email", req.Email).Msg("failed login attempt")
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	token, err := h.authService.GenerateAdminToken(c.Request.Context(), admin.ID, admin.Email)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, model.AdminLoginResponse{Token: token, Admin: *admin})
}

// Logout godoc
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	if err := h.authService.RevokeAdminSession(c.Request.Context(), claims.AdminID); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me godoc
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	admin, err := h.adminRepo.GetByID(c.Request.Context(), claims.AdminID)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"admin": admin})
}
