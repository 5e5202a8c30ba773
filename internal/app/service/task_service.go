package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/internal/metrics"
)

type TaskService struct {
	taskRepository      ports.TaskRepository
	subjectRepository   ports.SubjectRepository
	professorRepository ports.ProfessorRepository
	store               ports.TaskStore
	events              ports.EventPublisher
	clock               ports.Clock
}

func NewTaskService(
	taskRepository ports.TaskRepository,
	subjectRepository ports.SubjectRepository,
	professorRepository ports.ProfessorRepository,
	store ports.TaskStore,
	events ports.EventPublisher,
	clock ports.Clock,
) *TaskService {
	return &TaskService{
		taskRepository:      taskRepository,
		subjectRepository:   subjectRepository,
		professorRepository: professorRepository,
		store:               store,
		events:              events,
		clock:               nowFunc(clock),
	}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListTasks(ctx context.Context, userID string, view domain.TaskView) ([]domain.Task, error) {
	tasks, err := s.store.Tasks(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	reclassify(tasks, now)
	return domain.FilterTasks(tasks, view, now), nil
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := s.taskRepository.Get(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}
	task.Reclassify(s.clock())
	return task, nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID string, input domain.CreateTaskInput) (domain.Task, error) {
	if err := s.checkReferences(ctx, userID, input.SubjectID, input.ProfessorID); err != nil {
		return domain.Task{}, err
	}

	now := s.clock()
	task := domain.Task{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		Difficulty:  input.Difficulty,
		SubjectID:   input.SubjectID,
		ProfessorID: input.ProfessorID,
		CreatedAt:   stamp(now),
		UpdatedAt:   stamp(now),
	}
	task.Reclassify(now)

	if err := s.taskRepository.Create(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	s.store.Put(userID, task)
	publish(ctx, s.events, domain.ChangeCreated, domain.EntityTask, task.ID, userID, now)

	return task, nil
}

// UpdateTask applies a partial edit. The priority is recomputed only when
// the due date, due time or difficulty changed.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID string, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.Get(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	var subjectID, professorID *string
	if input.SubjectIDSet {
		subjectID = input.SubjectID
	}
	if input.ProfessorIDSet {
		professorID = input.ProfessorID
	}
	if err := s.checkReferences(ctx, userID, subjectID, professorID); err != nil {
		return domain.Task{}, err
	}

	before := task
	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.DescriptionSet {
		task.Description = input.Description
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.DueTimeSet {
		task.DueTime = input.DueTime
	}
	if input.Difficulty != nil {
		task.Difficulty = *input.Difficulty
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	if input.SubjectIDSet {
		task.SubjectID = input.SubjectID
	}
	if input.ProfessorIDSet {
		task.ProfessorID = input.ProfessorID
	}

	now := s.clock()
	if classificationChanged(before, task) {
		task.Reclassify(now)
	}
	task.UpdatedAt = stamp(now)

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("update task: %w", err)
	}
	s.store.Put(userID, task)
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntityTask, task.ID, userID, now)

	return task, nil
}

// ToggleTask flips the completion flag without touching the priority.
func (s *TaskService) ToggleTask(ctx context.Context, userID, taskID string) (domain.Task, error) {
	task, err := s.taskRepository.Get(ctx, userID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	now := s.clock()
	task.Completed = !task.Completed
	task.UpdatedAt = stamp(now)

	if err := s.taskRepository.Update(ctx, task); err != nil {
		return domain.Task{}, fmt.Errorf("toggle task: %w", err)
	}
	s.store.Put(userID, task)
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntityTask, task.ID, userID, now)

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID string) error {
	if err := s.taskRepository.Delete(ctx, userID, taskID); err != nil {
		return err
	}
	s.store.Remove(userID, taskID)
	publish(ctx, s.events, domain.ChangeDeleted, domain.EntityTask, taskID, userID, s.clock())
	return nil
}

func (s *TaskService) RefreshTasks(ctx context.Context, userID string) ([]domain.Task, error) {
	return s.store.Refresh(ctx, userID)
}

func (s *TaskService) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	tasks, err := s.store.Tasks(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	now := s.clock()
	reclassify(tasks, now)
	return domain.BuildDashboard(tasks, now), nil
}

// RefreshPriorities reclassifies every pending task and persists the tiers
// that changed. It returns the number of updated tasks.
func (s *TaskService) RefreshPriorities(ctx context.Context) (int, error) {
	tasks, err := s.taskRepository.ListPending(ctx)
	if err != nil {
		return 0, fmt.Errorf("list pending tasks: %w", err)
	}

	now := s.clock()
	changed := 0
	for _, task := range tasks {
		priority := domain.ClassifyPriority(task.DueDate, task.DueTime, task.Difficulty, now)
		if priority == task.Priority {
			continue
		}
		if err := s.taskRepository.UpdatePriority(ctx, task.ID, priority); err != nil {
			zap.L().Warn("failed to refresh task priority", zap.String("task_id", task.ID), zap.Error(err))
			continue
		}
		task.Priority = priority
		s.store.Put(task.UserID, task)
		changed++
	}
	metrics.PrioritiesRefreshed.Add(float64(changed))

	return changed, nil
}

func (s *TaskService) checkReferences(ctx context.Context, userID string, subjectID, professorID *string) error {
	if subjectID != nil {
		if _, err := s.subjectRepository.Get(ctx, userID, *subjectID); err != nil {
			return err
		}
	}
	if professorID != nil {
		if _, err := s.professorRepository.Get(ctx, userID, *professorID); err != nil {
			return err
		}
	}
	return nil
}

// reclassify refreshes the priorities of a store snapshot. Cached tiers were
// computed at load time and drift as due dates approach.
func reclassify(tasks []domain.Task, now time.Time) {
	for i := range tasks {
		tasks[i].Reclassify(now)
	}
}

func classificationChanged(before, after domain.Task) bool {
	return before.DueDate != after.DueDate ||
		before.EffectiveDueTime() != after.EffectiveDueTime() ||
		before.Difficulty != after.Difficulty
}
