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

type ScheduleHandler struct {
	scheduleService ports.ScheduleService
}

func NewScheduleHandler(scheduleService ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

// WeeklySchedule returns seven days, Monday first.
func (h *ScheduleHandler) WeeklySchedule(c *gin.Context) {
	days, err := h.scheduleService.WeeklySchedule(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListSchedule, "failed to list schedule")
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleDays(days))
}

func (h *ScheduleHandler) CreateEntry(c *gin.Context) {
	var req dto.CreateScheduleEntryRequest
	if _, err := bindJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	input, err := validation.BuildCreateScheduleEntryInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	entry, err := h.scheduleService.CreateEntry(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateSchedule, "failed to create schedule entry")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToScheduleEntryItem(entry))
}

func (h *ScheduleHandler) UpdateEntry(c *gin.Context) {
	entryID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateScheduleEntryRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	input, err := validation.BuildUpdateScheduleEntryInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload)
		return
	}

	entry, err := h.scheduleService.UpdateEntry(c.Request.Context(), middleware.GetUserID(c), entryID, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateSchedule, "failed to update schedule entry", zap.String("entry_id", entryID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleEntryItem(entry))
}

func (h *ScheduleHandler) DeleteEntry(c *gin.Context) {
	entryID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.scheduleService.DeleteEntry(c.Request.Context(), middleware.GetUserID(c), entryID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteSchedule, "failed to delete schedule entry", zap.String("entry_id", entryID))
		return
	}

	c.Status(http.StatusNoContent)
}
