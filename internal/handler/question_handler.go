package handler

import (
	"net/http"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/bilimtest/quizadmin-backend/internal/response"
	"github.com/bilimtest/quizadmin-backend/internal/service"
	"github.com/bilimtest/quizadmin-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QuestionHandler struct {
	questionService *service.QuestionService
	audit           *service.AuditService
}

func NewQuestionHandler(questionService *service.QuestionService, audit *service.AuditService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, audit: audit}
}

// List godoc
// GET /api/v1/admin/questions?section=...&search=...
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context(), c.Query("section"), c.Query("search"))
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if questions == nil {
		questions = []model.Question{}
	}
	response.Success(c, http.StatusOK, gin.H{"questions": questions})
}

// Counts godoc
// GET /api/v1/admin/questions/counts
func (h *QuestionHandler) Counts(c *gin.Context) {
	counts, err := h.questionService.CountBySection(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"counts": counts})
}

// Create godoc
// POST /api/v1/admin/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	var draft model.QuestionDraft
	if fields := validator.Bind(c, &draft); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	q, err := h.questionService.Create(c.Request.Context(), &draft)
	if err != nil {
		if model.IsQuestionValidationError(err) {
			response.FailWithDetail(c, http.StatusBadRequest, response.ErrQuestionInvalid, err.Error())
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.audit.Record(c.Request.Context(), model.AuditQuestionCreated,
		q.ID.String(), truncate(q.Question, 80), "Question created", adminEmail(c))
	response.Success(c, http.StatusCreated, gin.H{"question": q})
}

// Update godoc
// PUT /api/v1/admin/questions/:id
func (h *QuestionHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var draft model.QuestionDraft
	if fields := validator.Bind(c, &draft); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	q, err := h.questionService.Update(c.Request.Context(), id, &draft)
	if err != nil {
		switch {
		case model.IsQuestionValidationError(err):
			response.FailWithDetail(c, http.StatusBadRequest, response.ErrQuestionInvalid, err.Error())
		case repository.IsNotFound(err):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	h.audit.Record(c.Request.Context(), model.AuditQuestionUpdated,
		q.ID.String(), truncate(q.Question, 80), "Question updated", adminEmail(c))
	response.Success(c, http.StatusOK, gin.H{"question": q})
}

// Delete godoc
// DELETE /api/v1/admin/questions/:id
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	q, err := h.questionService.Delete(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.audit.Record(c.Request.Context(), model.AuditQuestionDeleted,
		id.String(), truncate(q.Question, 80), "Question deleted", adminEmail(c))
	response.Success(c, http.StatusOK, gin.H{"message": "question deleted successfully"})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
