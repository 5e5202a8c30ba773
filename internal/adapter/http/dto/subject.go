package dto

type SubjectItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Color       *string `json:"color,omitempty"`
	ProfessorID *string `json:"professor_id,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateSubjectRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Color       *string `json:"color" binding:"omitempty,max=32"`
	ProfessorID *string `json:"professor_id" binding:"omitempty,uuid"`
}

type UpdateSubjectRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=255"`
	Color *string `json:"color" binding:"omitempty,max=32"`
}

type AssignProfessorRequest struct {
	ProfessorID *string `json:"professor_id" binding:"omitempty,uuid"`
}
