package domain

import "time"

type Note struct {
	ID        string
	UserID    string
	Title     string
	Content   string
	SubjectID *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateNoteInput struct {
	Title     string
	Content   string
	SubjectID *string
}

type UpdateNoteInput struct {
	Title        *string
	Content      *string
	SubjectID    *string
	SubjectIDSet bool
}
