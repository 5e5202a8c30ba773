package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/mapper"
	"taskhub/internal/adapter/http/middleware"
	"taskhub/internal/adapter/http/validation"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
	clock       ports.Clock
}

func NewTaskHandler(taskService ports.TaskService, clock ports.Clock) *TaskHandler {
	return &TaskHandler{taskService: taskService, clock: clock}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	view := domain.TaskView(c.DefaultQuery("view", string(domain.TaskViewAll)))
	if !view.Valid() {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskView)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), middleware.GetUserID(c), view)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailListTasks, "failed to list tasks", zap.String("view", string(view)))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.clock()))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailGetTask, "failed to get task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.clock()))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if _, err := bindJSON(c, &req); err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), middleware.GetUserID(c), input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailCreateTask, "failed to create task")
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task, h.clock()))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	raw, err := bindJSON(c, &req)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		writeError(c, http.StatusBadRequest, apierrors.MsgInvalidTaskPayload)
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), middleware.GetUserID(c), taskID, input)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailUpdateTask, "failed to update task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.clock()))
}

func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTask(c.Request.Context(), middleware.GetUserID(c), taskID)
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailToggleTask, "failed to toggle task", zap.String("task_id", taskID))
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task, h.clock()))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), middleware.GetUserID(c), taskID); err != nil {
		respondServiceError(c, err, apierrors.MsgFailDeleteTask, "failed to delete task", zap.String("task_id", taskID))
		return
	}

	c.Status(http.StatusNoContent)
}

// RefreshTasks reloads the caller's tasks from the database.
func (h *TaskHandler) RefreshTasks(c *gin.Context) {
	tasks, err := h.taskService.RefreshTasks(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailRefreshTasks, "failed to refresh tasks")
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, h.clock()))
}

func (h *TaskHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.taskService.Dashboard(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err, apierrors.MsgFailDashboard, "failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, mapper.ToDashboardResponse(dashboard, h.clock()))
}
