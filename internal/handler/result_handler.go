package handler

import (
	"errors"
	"net/http"

	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/pdf"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/bilimtest/quizadmin-backend/internal/response"
	"github.com/bilimtest/quizadmin-backend/internal/service"
	"github.com/bilimtest/quizadmin-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ResultHandler struct {
	resultService *service.ResultService
	renderer      *pdf.AnswerSheetRenderer
	log           zerolog.Logger
}

func NewResultHandler(resultService *service.ResultService, renderer *pdf.AnswerSheetRenderer, log zerolog.Logger) *ResultHandler {
	return &ResultHandler{
		resultService: resultService,
		renderer:      renderer,
		log:           log.With().Str("component", "result_handler").Logger(),
	}
}

// List godoc
// GET /api/v1/admin/results?q=...&grade=...&group_id=...&sort=...&direction=...
func (h *ResultHandler) List(c *gin.Context) {
	var q model.ResultListQuery
	if fields := validator.BindQuery(c, &q); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	results, err := h.resultService.List(c.Request.Context(), q)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if results == nil {
		results = []model.Result{}
	}
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// Get godoc
// GET /api/v1/admin/results/:id
func (h *ResultHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	res, err := h.resultService.GetByID(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": res})
}

// Submit godoc
// POST /api/v1/submissions
//
// Public endpoint used by the quiz client when a student finishes an
// exam. Grading is recomputed server-side.
func (h *ResultHandler) Submit(c *gin.Context) {
	var req model.SubmitResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.resultService.Submit(c.Request.Context(), &req)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusBadRequest, response.ErrGroupUnknown)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"result": res})
}

// UpdateIdentity godoc
// PUT /api/v1/admin/results/:id
func (h *ResultHandler) UpdateIdentity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateResultIdentityRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.resultService.UpdateIdentity(c.Request.Context(), id, &req, adminEmail(c))
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": res})
}

// Transfer godoc
// POST /api/v1/admin/results/:id/transfer
func (h *ResultHandler) Transfer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.TransferResultRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.resultService.Transfer(c.Request.Context(), id, req.GroupID, adminEmail(c))
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": res})
}

// UpdateAnswers godoc
// PATCH /api/v1/admin/results/:id/answers
func (h *ResultHandler) UpdateAnswers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateAnswersRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	res, err := h.resultService.UpdateAnswers(c.Request.Context(), id, &req, adminEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAnswerIndexOutOfRange):
			response.Fail(c, http.StatusBadRequest, response.ErrAnswerOutOfRange)
		case repository.IsNotFound(err):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"result": res})
}

// Delete godoc
// DELETE /api/v1/admin/results/:id
func (h *ResultHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.resultService.Delete(c.Request.Context(), id, adminEmail(c)); err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "result deleted successfully"})
}

// AnswerSheet godoc
// GET /api/v1/admin/results/:id/answer-sheet
//
// Streams the printable answer-sheet PDF for one result.
func (h *ResultHandler) AnswerSheet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	res, err := h.resultService.GetByID(c.Request.Context(), id)
	if err != nil {
		if repository.IsNotFound(err) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	raw, err := h.renderer.Render(res)
	if err != nil {
		h.log.Error().Err(err).Str("result_id", id.String()).Msg("answer sheet render failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+pdf.Filename(res.Name, res.Surname)+`"`)
	c.Data(http.StatusOK, "application/pdf", raw)
}
