package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/core/domain"
	"taskhub/pkg/apierrors"
)

type domainError struct {
	err    error
	status int
	msgKey string
}

var domainErrors = []domainError{
	{domain.ErrTaskNotFound, http.StatusNotFound, apierrors.MsgTaskNotFound},
	{domain.ErrSubjectNotFound, http.StatusNotFound, apierrors.MsgSubjectNotFound},
	{domain.ErrProfessorNotFound, http.StatusNotFound, apierrors.MsgProfessorNotFound},
	{domain.ErrScheduleEntryNotFound, http.StatusNotFound, apierrors.MsgScheduleEntryNotFound},
	{domain.ErrNoteNotFound, http.StatusNotFound, apierrors.MsgNoteNotFound},
	{domain.ErrProfileNotFound, http.StatusNotFound, apierrors.MsgProfileNotFound},
	{domain.ErrDuplicateSubject, http.StatusConflict, apierrors.MsgDuplicateSubject},
	{domain.ErrDuplicateProfessor, http.StatusConflict, apierrors.MsgDuplicateProfessor},
	{domain.ErrScheduleConflict, http.StatusConflict, apierrors.MsgScheduleConflict},
	{domain.ErrInvalidTaxCode, http.StatusBadRequest, apierrors.MsgInvalidTaxCode},
	{domain.ErrInvalidTimeRange, http.StatusBadRequest, apierrors.MsgInvalidTimeRange},
}

func writeError(c *gin.Context, status int, msgKey string) {
	lang := middleware.GetLang(c)
	c.JSON(status, apierrors.CreateError(status, msgKey, lang))
}

// respondServiceError maps domain errors to their status and message. Any
// other error is logged and reported as a 500 with failKey.
func respondServiceError(c *gin.Context, err error, failKey, logMsg string, fields ...zap.Field) {
	for _, de := range domainErrors {
		if errors.Is(err, de.err) {
			writeError(c, de.status, de.msgKey)
			return
		}
	}

	fields = append(fields, zap.String("user_id", middleware.GetUserID(c)), zap.Error(err))
	zap.L().Error(logMsg, fields...)
	writeError(c, http.StatusInternalServerError, failKey)
}

// pathID returns the :id path parameter when it is a UUID, otherwise it
// writes a 400 and returns false.
func pathID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidID)
		return "", false
	}
	return id, true
}

// bindJSON validates the body into req and also returns its top-level keys,
// so partial updates can tell an explicit null from an absent field.
func bindJSON(c *gin.Context, req any) (map[string]json.RawMessage, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.New("request body must be a JSON object")
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		return nil, err
	}
	return raw, nil
}
