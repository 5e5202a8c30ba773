package domain

import "time"

const (
	DateLayout     = "2006-01-02"
	ClockLayout    = "15:04"
	DefaultDueTime = "23:59"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists every difficulty in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Priorities lists every tier from most to least urgent.
var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	Completed   bool
	DueDate     string
	DueTime     *string
	Difficulty  Difficulty
	Priority    Priority
	SubjectID   *string
	ProfessorID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveDueTime returns the stored due time or the end-of-day default.
func (t Task) EffectiveDueTime() string {
	if t.DueTime == nil || *t.DueTime == "" {
		return DefaultDueTime
	}
	return *t.DueTime
}

// DueAt combines the due date and time in loc. ok is false when the stored
// values cannot be parsed.
func (t Task) DueAt(loc *time.Location) (time.Time, bool) {
	due, err := DueInstant(t.DueDate, t.DueTime, loc)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// IsOverdue reports whether a pending task's due instant is before now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Completed {
		return false
	}
	due, ok := t.DueAt(now.Location())
	return ok && due.Before(now)
}

// Reclassify recomputes the derived priority for now.
func (t *Task) Reclassify(now time.Time) {
	t.Priority = ClassifyPriority(t.DueDate, t.DueTime, t.Difficulty, now)
}

type CreateTaskInput struct {
	Title       string
	Description *string
	DueDate     string
	DueTime     *string
	Difficulty  Difficulty
	SubjectID   *string
	ProfessorID *string
}

// UpdateTaskInput carries a partial edit. The *Set flags distinguish an
// explicit null from an absent field for clearable columns.
type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	DueDate        *string
	DueTime        *string
	DueTimeSet     bool
	Difficulty     *Difficulty
	Completed      *bool
	SubjectID      *string
	SubjectIDSet   bool
	ProfessorID    *string
	ProfessorIDSet bool
}

// TaskView selects one of the partitions when listing tasks.
type TaskView string

const (
	TaskViewAll       TaskView = "all"
	TaskViewPending   TaskView = "pending"
	TaskViewCompleted TaskView = "completed"
	TaskViewOverdue   TaskView = "overdue"
)

func (v TaskView) Valid() bool {
	switch v {
	case TaskViewAll, TaskViewPending, TaskViewCompleted, TaskViewOverdue:
		return true
	}
	return false
}
