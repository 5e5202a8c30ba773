package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Completed   bool    `json:"completed"`
	Overdue     bool    `json:"overdue"`
	DueDate     string  `json:"due_date"`
	DueTime     string  `json:"due_time"`
	Difficulty  string  `json:"difficulty"`
	Priority    int     `json:"priority"`
	SubjectID   *string `json:"subject_id,omitempty"`
	ProfessorID *string `json:"professor_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     string  `json:"due_date" binding:"required,datetime=2006-01-02"`
	DueTime     *string `json:"due_time" binding:"omitempty,hhmm"`
	Difficulty  string  `json:"difficulty" binding:"required,oneof=easy medium hard"`
	SubjectID   *string `json:"subject_id" binding:"omitempty,uuid"`
	ProfessorID *string `json:"professor_id" binding:"omitempty,uuid"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DueTime     *string `json:"due_time" binding:"omitempty,hhmm"`
	Difficulty  *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Completed   *bool   `json:"completed"`
	SubjectID   *string `json:"subject_id" binding:"omitempty,uuid"`
	ProfessorID *string `json:"professor_id" binding:"omitempty,uuid"`
}
