package domain

import "time"

type Subject struct {
	ID          string
	UserID      string
	Name        string
	Color       *string
	ProfessorID *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateSubjectInput struct {
	Name        string
	Color       *string
	ProfessorID *string
}

type UpdateSubjectInput struct {
	Name     *string
	Color    *string
	ColorSet bool
}
