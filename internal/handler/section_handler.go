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
	"github.com/google/uuid"
)

type SectionHandler struct {
	sectionService *service.SectionService
	audit          *service.AuditService
}

func NewSectionHandler(sectionService *service.SectionService, audit *service.AuditService) *SectionHandler {
	return &SectionHandler{sectionService: sectionService, audit: audit}
}

// GetAll godoc
// GET /api/v1/admin/sections
func (h *SectionHandler) GetAll(c *gin.Context) {
	sections, err := h.sectionService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if sections == nil {
		sections = []model.Section{}
	}
	response.Success(c, http.StatusOK, gin.H{"sections": sections})
}

// Create godoc
// POST /api/v1/admin/sections
func (h *SectionHandler) Create(c *gin.Context) {
	var req model.CreateSectionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sec := &model.Section{Name: req.Name}
	if err := h.sectionService.Create(c.Request.Context(), sec); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.audit.Record(c.Request.Context(), model.AuditSectionCreated,
		sec.ID.String(), sec.Name, "Section created: "+sec.Name, adminEmail(c))
	response.Success(c, http.StatusCreated, gin.H{"section": sec})
}

// Delete godoc
// DELETE /api/v1/admin/sections/:id
func (h *SectionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	sec, err := h.sectionService.Delete(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.audit.Record(c.Request.Context(), model.AuditSectionDeleted,
		id.String(), sec.Name, "Section deleted: "+sec.Name, adminEmail(c))
	response.Success(c, http.StatusOK, gin.H{"message": "section deleted successfully"})
}

// adminEmail extracts the acting admin's email for audit attribution.
func adminEmail(c *gin.Context) string {
	if claims := middleware.GetClaims(c); claims != nil {
		return claims.Email
	}
	return ""
}
