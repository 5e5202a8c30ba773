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

type SubjectHandler struct {
	subjectService ports.SubjectService
}

func NewSubjectHandler(subjectService ports.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService}
}

func (h *SubjectHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.subjectService.ListSubjects(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListSubjects, "failed to list subjects")
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubjectItems(subjects))
}

func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if _, err := bindJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload)
		return
	}

	input, err := validation.BuildCreateSubjectInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload)
		return
	}

	subject, err := h.subjectService.CreateSubject(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateSubject, "failed to create subject")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToSubjectItem(subject))
}

func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	subjectID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload)
		return
	}

	input, err := validation.BuildUpdateSubjectInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload)
		return
	}

	subject, err := h.subjectService.UpdateSubject(c.Request.Context(), middleware.GetUserID(c), subjectID, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateSubject, "failed to update subject", zap.String("subject_id", subjectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubjectItem(subject))
}

func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	subjectID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.subjectService.DeleteSubject(c.Request.Context(), middleware.GetUserID(c), subjectID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteSubject, "failed to delete subject", zap.String("subject_id", subjectID))
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignProfessor sets the subject's professor, or clears it when
// professor_id is null.
func (h *SubjectHandler) AssignProfessor(c *gin.Context) {
	subjectID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.AssignProfessorRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload)
		return
	}

	professorID, err := validation.BuildProfessorAssignment(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSubjectPayload)
		return
	}

	subject, err := h.subjectService.AssignProfessor(c.Request.Context(), middleware.GetUserID(c), subjectID, professorID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailAssignProfessor, "failed to assign professor", zap.String("subject_id", subjectID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToSubjectItem(subject))
}
