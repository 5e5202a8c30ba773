package ports

import (
	"context"
	"time"

	"taskhub/internal/core/domain"
)

// Clock returns the current instant. Services fall back to time.Now when nil.
type Clock func() time.Time

type TaskRepository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Task, error)
	Get(ctx context.Context, userID, taskID string) (domain.Task, error)
	Create(ctx context.Context, task domain.Task) error
	Update(ctx context.Context, task domain.Task) error
	Delete(ctx context.Context, userID, taskID string) error
	ListPending(ctx context.Context) ([]domain.Task, error)
	UpdatePriority(ctx context.Context, taskID string, priority domain.Priority) error
}

// TaskStore is the per-user, in-memory view of tasks kept for active
// sessions.
type TaskStore interface {
	Tasks(ctx context.Context, userID string) ([]domain.Task, error)
	Refresh(ctx context.Context, userID string) ([]domain.Task, error)
	Put(userID string, task domain.Task)
	Remove(userID, taskID string)
	// Invalidate marks the user's tasks stale so the next read reloads them.
	Invalidate(userID string)
	Evict(userID string)
}

type TaskService interface {
	ListTasks(ctx context.Context, userID string, view domain.TaskView) ([]domain.Task, error)
	GetTask(ctx context.Context, userID, taskID string) (domain.Task, error)
	CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error)
	ToggleTask(ctx context.Context, userID, taskID string) (domain.Task, error)
	DeleteTask(ctx context.Context, userID, taskID string) error
	RefreshTasks(ctx context.Context, userID string) ([]domain.Task, error)
	Dashboard(ctx context.Context, userID string) (domain.Dashboard, error)
	RefreshPriorities(ctx context.Context) (int, error)
}
