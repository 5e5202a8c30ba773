package domain

import "errors"

var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrSubjectNotFound       = errors.New("subject not found")
	ErrProfessorNotFound     = errors.New("professor not found")
	ErrScheduleEntryNotFound = errors.New("schedule entry not found")
	ErrNoteNotFound          = errors.New("note not found")
	ErrProfileNotFound       = errors.New("profile not found")

	ErrDuplicateSubject   = errors.New("subject already exists")
	ErrDuplicateProfessor = errors.New("professor already exists")
	ErrInvalidTaxCode     = errors.New("invalid tax code")
	ErrInvalidTimeRange   = errors.New("invalid time range")
	ErrScheduleConflict   = errors.New("schedule entry overlaps another entry")
)
