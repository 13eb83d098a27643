package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/bilimtest/quizadmin-backend/internal/response"
	"github.com/bilimtest/quizadmin-backend/internal/service"
	"github.com/bilimtest/quizadmin-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GroupHandler struct {
	groupService  *service.GroupService
	resultService *service.ResultService
	audit         *service.AuditService
}

func NewGroupHandler(groupService *service.GroupService, resultService *service.ResultService, audit *service.AuditService) *GroupHandler {
	return &GroupHandler{groupService: groupService, resultService: resultService, audit: audit}
}

// GetAll godoc
// GET /api/v1/admin/groups
func (h *GroupHandler) GetAll(c *gin.Context) {
	groups, err := h.groupService.GetAll(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if groups == nil {
		groups = []model.Group{}
	}
	response.Success(c, http.StatusOK, gin.H{"groups": groups})
}

// Get godoc
// GET /api/v1/admin/groups/:id
func (h *GroupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	g, err := h.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"group": g})
}

// Create godoc
// POST /api/v1/admin/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req model.CreateGroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	g := &model.Group{Name: req.Name, Subjects: req.Subjects}
	if err := h.groupService.Create(c.Request.Context(), g); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.audit.Record(c.Request.Context(), model.AuditGroupCreated,
		g.ID.String(), g.Name, "Group created: "+g.Name, adminEmail(c))
	response.Success(c, http.StatusCreated, gin.H{"group": g})
}

// Update godoc
// PUT /api/v1/admin/groups/:id
func (h *GroupHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateGroupRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	before, err := h.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	g := &model.Group{ID: id, Name: req.Name, Subjects: req.Subjects}
	if err := h.groupService.Update(c.Request.Context(), g); err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	details := fmt.Sprintf("Name: %s → %s, Subjects: [%s] → [%s]",
		before.Name, g.Name, strings.Join(before.Subjects, ", "), strings.Join(g.Subjects, ", "))
	h.audit.Record(c.Request.Context(), model.AuditGroupUpdated,
		id.String(), g.Name, details, adminEmail(c))
	response.Success(c, http.StatusOK, gin.H{"group": g})
}

// Delete godoc
// DELETE /api/v1/admin/groups/:id
func (h *GroupHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	g, err := h.groupService.Delete(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	h.audit.Record(c.Request.Context(), model.AuditGroupDeleted,
		id.String(), g.Name, "Group deleted: "+g.Name, adminEmail(c))
	response.Success(c, http.StatusOK, gin.H{"message": "group deleted successfully"})
}

// GetResults godoc
// GET /api/v1/admin/groups/:id/results
func (h *GroupHandler) GetResults(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	results, err := h.resultService.ListByGroup(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if results == nil {
		results = []model.Result{}
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}
