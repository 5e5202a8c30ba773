package dto

type NoteItem struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	SubjectID *string `json:"subject_id,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type CreateNoteRequest struct {
	Title     string  `json:"title" binding:"required,max=255"`
	Content   string  `json:"content" binding:"max=65535"`
	SubjectID *string `json:"subject_id" binding:"omitempty,uuid"`
}

type UpdateNoteRequest struct {
	Title     *string `json:"title" binding:"omitempty,max=255"`
	Content   *string `json:"content" binding:"omitempty,max=65535"`
	SubjectID *string `json:"subject_id" binding:"omitempty,uuid"`
}
