package handler

import (
	"net/http"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/response"
	"github.com/bilimtest/quizadmin-backend/internal/service"
	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	audit *service.AuditService
}

func NewAuditHandler(audit *service.AuditService) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// List godoc
// GET /api/v1/admin/audit-logs
func (h *AuditHandler) List(c *gin.Context) {
	entries, err := h.audit.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if entries == nil {
		entries = []model.AuditLog{}
	}
	response.Success(c, http.StatusOK, gin.H{"logs": entries})
}
