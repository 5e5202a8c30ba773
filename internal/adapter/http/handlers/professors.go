package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"
)

type ProfessorHandler struct {
	professorService ports.ProfessorService
}

func NewProfessorHandler(professorService ports.ProfessorService) *ProfessorHandler {
	return &ProfessorHandler{professorService: professorService}
}

func (h *ProfessorHandler) ListProfessors(c *gin.Context) {
	professors, err := h.professorService.ListProfessors(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListProfessors, "failed to list professors")
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfessorItems(professors))
}

func (h *ProfessorHandler) CreateProfessor(c *gin.Context) {
	var req dto.CreateProfessorRequest
	if _, err := bindJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, professorPayloadMsg(err))
		return
	}

	input, err := validation.BuildCreateProfessorInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidProfessorPayload)
		return
	}

	professor, err := h.professorService.CreateProfessor(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateProfessor, "failed to create professor")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToProfessorItem(professor))
}

func (h *ProfessorHandler) UpdateProfessor(c *gin.Context) {
	professorID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, professorPayloadMsg(err))
		return
	}

	input, err := validation.BuildUpdateProfessorInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidProfessorPayload)
		return
	}

	professor, err := h.professorService.UpdateProfessor(c.Request.Context(), middleware.GetUserID(c), professorID, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateProfessor, "failed to update professor", zap.String("professor_id", professorID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToProfessorItem(professor))
}

func (h *ProfessorHandler) DeleteProfessor(c *gin.Context) {
	professorID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.professorService.DeleteProfessor(c.Request.Context(), middleware.GetUserID(c), professorID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteProfessor, "failed to delete professor", zap.String("professor_id", professorID))
		return
	}

	c.Status(http.StatusNoContent)
}

func professorPayloadMsg(err error) string {
	if validation.FailedOn(err, validation.TagTaxCode) {
		return apierrors.MsgInvalidTaxCode
	}
	return apierrors.MsgInvalidProfessorPayload
}
