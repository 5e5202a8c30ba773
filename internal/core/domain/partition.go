package domain

import "time"

// Partition holds the three views of a task set at one instant. Pending and
// Completed are disjoint and cover the whole set; Overdue is a subset of
// Pending.
type Partition struct {
	Pending   []Task
	Completed []Task
	Overdue   []Task
}

func PartitionTasks(tasks []Task, now time.Time) Partition {
	p := Partition{
		Pending:   make([]Task, 0),
		Completed: make([]Task, 0),
		Overdue:   make([]Task, 0),
	}
	for _, task := range tasks {
		if task.Completed {
			p.Completed = append(p.Completed, task)
			continue
		}
		p.Pending = append(p.Pending, task)
		if task.IsOverdue(now) {
			p.Overdue = append(p.Overdue, task)
		}
	}
	return p
}

// FilterTasks returns the tasks belonging to view.
func FilterTasks(tasks []Task, view TaskView, now time.Time) []Task {
	if view == TaskViewAll || view == "" {
		return tasks
	}
	p := PartitionTasks(tasks, now)
	switch view {
	case TaskViewPending:
		return p.Pending
	case TaskViewCompleted:
		return p.Completed
	case TaskViewOverdue:
		return p.Overdue
	}
	return tasks
}
