package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const taskColumns = `id, user_id, title, description, completed, due_date, due_time,
  difficulty, priority, subject_id, professor_id, created_at, updated_at`

const listTasksByUserQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = ?
ORDER BY due_date, due_time, created_at, id;
`

const getTaskQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE user_id = ? AND id = ?;
`

const listPendingTasksQuery = `
SELECT ` + taskColumns + `
FROM tasks
WHERE completed = ?
ORDER BY user_id, id;
`

const insertTaskQuery = `
INSERT INTO tasks (` + taskColumns + `)
VALUES (:id, :user_id, :title, :description, :completed, :due_date, :due_time,
  :difficulty, :priority, :subject_id, :professor_id, :created_at, :updated_at);
`

const updateTaskQuery = `
UPDATE tasks SET
  title = :title,
  description = :description,
  completed = :completed,
  due_date = :due_date,
  due_time = :due_time,
  difficulty = :difficulty,
  priority = :priority,
  subject_id = :subject_id,
  professor_id = :professor_id,
  updated_at = :updated_at
WHERE user_id = :user_id AND id = :id;
`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Description sql.NullString `db:"description"`
	Completed   bool           `db:"completed"`
	DueDate     string         `db:"due_date"`
	DueTime     sql.NullString `db:"due_time"`
	Difficulty  string         `db:"difficulty"`
	Priority    int            `db:"priority"`
	SubjectID   sql.NullString `db:"subject_id"`
	ProfessorID sql.NullString `db:"professor_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByUserQuery, userID); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) Get(ctx context.Context, userID, taskID string) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, getTaskQuery, userID, taskID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Create(ctx context.Context, task domain.Task) error {
	_, err := r.db.NamedExecContext(ctx, insertTaskQuery, toTaskRow(task))
	return err
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) error {
	return expectOne(domain.ErrTaskNotFound)(r.db.NamedExecContext(ctx, updateTaskQuery, toTaskRow(task)))
}

func (r *TaskRepository) Delete(ctx context.Context, userID, taskID string) error {
	return deleteOne(ctx, r.db, domain.ErrTaskNotFound,
		"DELETE FROM tasks WHERE user_id = ? AND id = ?", userID, taskID)
}

func (r *TaskRepository) ListPending(ctx context.Context) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listPendingTasksQuery, false); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) UpdatePriority(ctx context.Context, taskID string, priority domain.Priority) error {
	_, err := r.db.ExecContext(ctx, "UPDATE tasks SET priority = ? WHERE id = ?", int(priority), taskID)
	return err
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}
	return tasks
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	return domain.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: stringPtr(row.Description),
		Completed:   row.Completed,
		DueDate:     row.DueDate,
		DueTime:     stringPtr(row.DueTime),
		Difficulty:  domain.Difficulty(row.Difficulty),
		Priority:    domain.Priority(row.Priority),
		SubjectID:   stringPtr(row.SubjectID),
		ProfessorID: stringPtr(row.ProfessorID),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

func toTaskRow(task domain.Task) taskRow {
	return taskRow{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: nullString(task.Description),
		Completed:   task.Completed,
		DueDate:     task.DueDate,
		DueTime:     nullString(task.DueTime),
		Difficulty:  string(task.Difficulty),
		Priority:    int(task.Priority),
		SubjectID:   nullString(task.SubjectID),
		ProfessorID: nullString(task.ProfessorID),
		CreatedAt:   task.CreatedAt.UTC(),
		UpdatedAt:   task.UpdatedAt.UTC(),
	}
}
