package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/adapter/http/handlers"
	"taskhub/internal/core/domain"
)

const testTaskID = "3f1c9a7e-2b4d-4c6e-8f10-1a2b3c4d5e6f"

func newTaskRouter(service *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(service, fixedClock)
	router := newRouter()
	router.GET("/api/tasks", handler.ListTasks)
	router.POST("/api/tasks", handler.CreateTask)
	router.POST("/api/tasks/refresh", handler.RefreshTasks)
	router.GET("/api/tasks/:id", handler.GetTask)
	router.PATCH("/api/tasks/:id", handler.UpdateTask)
	router.DELETE("/api/tasks/:id", handler.DeleteTask)
	router.POST("/api/tasks/:id/toggle", handler.ToggleTask)
	router.GET("/api/dashboard", handler.Dashboard)
	return router
}

func sampleTask() domain.Task {
	description := "chapters 3 and 4"
	subjectID := "5d2a1f3e-7c8b-4a9d-b0e1-f2a3b4c5d6e7"
	return domain.Task{
		ID:          testTaskID,
		UserID:      testUserID,
		Title:       "Read analysis notes",
		Description: &description,
		DueDate:     "2026-03-09",
		Difficulty:  domain.DifficultyHard,
		Priority:    domain.PriorityHigh,
		SubjectID:   &subjectID,
		CreatedAt:   time.Date(2026, 3, 1, 10, 20, 30, 0, time.UTC),
		UpdatedAt:   time.Date(2026, 3, 2, 11, 20, 30, 0, time.UTC),
	}
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	service := new(taskServiceMock)
	service.On("ListTasks", mock.Anything, testUserID, domain.TaskViewAll).Return([]domain.Task{sampleTask()}, nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodGet, "/api/tasks", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, testTaskID, got[0].ID)
	require.Equal(t, "Read analysis notes", got[0].Title)
	require.Equal(t, "chapters 3 and 4", *got[0].Description)
	require.Equal(t, "2026-03-09", got[0].DueDate)
	require.Equal(t, domain.DefaultDueTime, got[0].DueTime)
	require.Equal(t, "hard", got[0].Difficulty)
	require.Equal(t, 1, got[0].Priority)
	require.True(t, got[0].Overdue)
	require.False(t, got[0].Completed)
	require.Nil(t, got[0].ProfessorID)
	require.Equal(t, "2026-03-01T10:20:30Z", got[0].CreatedAt)
	require.Equal(t, "2026-03-02T11:20:30Z", got[0].UpdatedAt)
	service.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_PassesView(t *testing.T) {
	service := new(taskServiceMock)
	service.On("ListTasks", mock.Anything, testUserID, domain.TaskViewOverdue).Return([]domain.Task{}, nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodGet, "/api/tasks?view=overdue", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
	service.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_InvalidView(t *testing.T) {
	service := new(taskServiceMock)

	rec := doRequest(newTaskRouter(service), http.MethodGet, "/api/tasks?view=late", nil)

	requireAPIError(t, rec, http.StatusBadRequest, "Invalid task view")
	service.AssertNotCalled(t, "ListTasks", mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	service := new(taskServiceMock)
	service.On("ListTasks", mock.Anything, testUserID, domain.TaskViewAll).Return(nil, errors.New("db is down")).Once()

	rec := doRequest(newTaskRouter(service), http.MethodGet, "/api/tasks", nil)

	requireAPIError(t, rec, http.StatusInternalServerError, "Error fetching the tasks")
	service.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	service := new(taskServiceMock)

	rec := doRequest(newTaskRouter(service), http.MethodGet, "/api/tasks/42", nil)

	requireAPIError(t, rec, http.StatusBadRequest, "Invalid id")
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	service := new(taskServiceMock)
	service.On("GetTask", mock.Anything, testUserID, testTaskID).Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	rec := doRequest(newTaskRouter(service), http.MethodGet, "/api/tasks/"+testTaskID, nil)

	requireAPIError(t, rec, http.StatusNotFound, "Task not found")
	service.AssertExpectations(t)
}

func TestTaskHandler_GetTask_Italian(t *testing.T) {
	service := new(taskServiceMock)
	service.On("GetTask", mock.Anything, testUserID, testTaskID).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	router := newTaskRouter(service)

	req := newJSONRequest(http.MethodGet, "/api/tasks/"+testTaskID, nil)
	req.Header.Set("Accept-Language", "it-IT,it;q=0.9")
	rec := serve(router, req)

	requireAPIError(t, rec, http.StatusNotFound, "Attività non trovata")
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	dueTime := "10:00"
	expected := domain.CreateTaskInput{
		Title:      "Lab report",
		DueDate:    "2026-03-12",
		DueTime:    &dueTime,
		Difficulty: domain.DifficultyHard,
	}
	created := domain.Task{
		ID:         testTaskID,
		Title:      "Lab report",
		DueDate:    "2026-03-12",
		DueTime:    &dueTime,
		Difficulty: domain.DifficultyHard,
		Priority:   domain.PriorityHigh,
		CreatedAt:  fixedNow,
		UpdatedAt:  fixedNow,
	}
	service := new(taskServiceMock)
	service.On("CreateTask", mock.Anything, testUserID, expected).Return(created, nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodPost, "/api/tasks", map[string]any{
		"title":      "  Lab report ",
		"due_date":   "2026-03-12",
		"due_time":   "10:00",
		"difficulty": "hard",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.Priority)
	require.Equal(t, "10:00", got.DueTime)
	require.False(t, got.Overdue)
	service.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_InvalidPayloads(t *testing.T) {
	cases := map[string]any{
		"not json":           "{",
		"missing title":      map[string]any{"due_date": "2026-03-12", "difficulty": "easy"},
		"blank title":        map[string]any{"title": "   ", "due_date": "2026-03-12", "difficulty": "easy"},
		"missing due date":   map[string]any{"title": "x", "difficulty": "easy"},
		"malformed due date": map[string]any{"title": "x", "due_date": "12/03/2026", "difficulty": "easy"},
		"impossible date":    map[string]any{"title": "x", "due_date": "2026-02-30", "difficulty": "easy"},
		"bad due time":       map[string]any{"title": "x", "due_date": "2026-03-12", "due_time": "25:00", "difficulty": "easy"},
		"bad difficulty":     map[string]any{"title": "x", "due_date": "2026-03-12", "difficulty": "extreme"},
		"bad subject id":     map[string]any{"title": "x", "due_date": "2026-03-12", "difficulty": "easy", "subject_id": "7"},
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			service := new(taskServiceMock)

			rec := doRequest(newTaskRouter(service), http.MethodPost, "/api/tasks", body)

			requireAPIError(t, rec, http.StatusBadRequest, "Invalid task payload")
			service.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTaskHandler_CreateTask_UnknownSubject(t *testing.T) {
	service := new(taskServiceMock)
	service.On("CreateTask", mock.Anything, testUserID, mock.Anything).Return(domain.Task{}, domain.ErrSubjectNotFound).Once()

	rec := doRequest(newTaskRouter(service), http.MethodPost, "/api/tasks", map[string]any{
		"title":      "Essay",
		"due_date":   "2026-03-20",
		"difficulty": "medium",
		"subject_id": "5d2a1f3e-7c8b-4a9d-b0e1-f2a3b4c5d6e7",
	})

	requireAPIError(t, rec, http.StatusNotFound, "Subject not found")
	service.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_TracksExplicitNulls(t *testing.T) {
	easy := domain.DifficultyEasy
	expected := domain.UpdateTaskInput{
		DescriptionSet: true,
		Difficulty:     &easy,
		DueTimeSet:     true,
	}
	service := new(taskServiceMock)
	service.On("UpdateTask", mock.Anything, testUserID, testTaskID, expected).Return(sampleTask(), nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodPatch, "/api/tasks/"+testTaskID, `{"description":null,"due_time":null,"difficulty":"easy"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	service.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_InvalidPayloads(t *testing.T) {
	cases := map[string]string{
		"empty object":    `{}`,
		"unknown only":    `{"priority":1}`,
		"null title":      `{"title":null}`,
		"null due date":   `{"due_date":null}`,
		"null completed":  `{"completed":null}`,
		"blank title":     `{"title":"  "}`,
		"bad due time":    `{"due_time":"7pm"}`,
		"bad difficulty":  `{"difficulty":"trivial"}`,
		"array body":      `[]`,
		"wrong type date": `{"due_date":20260312}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			service := new(taskServiceMock)

			rec := doRequest(newTaskRouter(service), http.MethodPatch, "/api/tasks/"+testTaskID, body)

			requireAPIError(t, rec, http.StatusBadRequest, "Invalid task payload")
			service.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestTaskHandler_ToggleTask(t *testing.T) {
	toggled := sampleTask()
	toggled.Completed = true
	service := new(taskServiceMock)
	service.On("ToggleTask", mock.Anything, testUserID, testTaskID).Return(toggled, nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodPost, "/api/tasks/"+testTaskID+"/toggle", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Completed)
	require.False(t, got.Overdue)
	service.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask(t *testing.T) {
	service := new(taskServiceMock)
	service.On("DeleteTask", mock.Anything, testUserID, testTaskID).Return(nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodDelete, "/api/tasks/"+testTaskID, nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
	service.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Error(t *testing.T) {
	service := new(taskServiceMock)
	service.On("DeleteTask", mock.Anything, testUserID, testTaskID).Return(errors.New("deadlock")).Once()

	rec := doRequest(newTaskRouter(service), http.MethodDelete, "/api/tasks/"+testTaskID, nil)

	requireAPIError(t, rec, http.StatusInternalServerError, "Error deleting the task")
	service.AssertExpectations(t)
}

func TestTaskHandler_RefreshTasks(t *testing.T) {
	service := new(taskServiceMock)
	service.On("RefreshTasks", mock.Anything, testUserID).Return([]domain.Task{sampleTask()}, nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodPost, "/api/tasks/refresh", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	service.AssertExpectations(t)
}

func TestTaskHandler_Dashboard(t *testing.T) {
	dashboard := domain.BuildDashboard([]domain.Task{sampleTask()}, fixedNow)
	service := new(taskServiceMock)
	service.On("Dashboard", mock.Anything, testUserID).Return(dashboard, nil).Once()

	rec := doRequest(newTaskRouter(service), http.MethodGet, "/api/dashboard", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got dto.DashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 1, got.Total)
	require.Equal(t, 1, got.Pending)
	require.Equal(t, 1, got.Overdue)
	require.Len(t, got.ByDifficulty, 3)
	require.Len(t, got.ByPriority, 3)
	require.Equal(t, dto.PriorityCount{Priority: 1, Count: 1}, got.ByPriority[0])
	require.Len(t, got.Daily, domain.DailyCompletionDays)
	require.Len(t, got.Weekly, domain.WeeklyCompletionWeeks)
	require.Equal(t, "2026-03-10", got.Daily[len(got.Daily)-1].Start)
	require.Empty(t, got.Upcoming)
	service.AssertExpectations(t)
}
