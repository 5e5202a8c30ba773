package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task, now time.Time) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task, now))
	}
	return items
}

// ToTaskItem renders task with its due status evaluated at now.
func ToTaskItem(task domain.Task, now time.Time) dto.TaskItem {
	item := dto.TaskItem{
		ID:         task.ID,
		Title:      task.Title,
		Completed:  task.Completed,
		Overdue:    task.IsOverdue(now),
		DueDate:    task.DueDate,
		DueTime:    task.EffectiveDueTime(),
		Difficulty: string(task.Difficulty),
		Priority:   int(task.Priority),
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.SubjectID != nil {
		value := *task.SubjectID
		item.SubjectID = &value
	}
	if task.ProfessorID != nil {
		value := *task.ProfessorID
		item.ProfessorID = &value
	}

	return item
}
