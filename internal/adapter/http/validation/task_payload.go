package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

var ErrInvalidPayload = errors.New("invalid payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	difficulty := domain.Difficulty(req.Difficulty)
	if !difficulty.Valid() {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	if _, err := domain.DueInstant(req.DueDate, req.DueTime, nil); err != nil {
		return domain.CreateTaskInput{}, ErrInvalidPayload
	}

	return domain.CreateTaskInput{
		Title:       title,
		Description: req.Description,
		DueDate:     req.DueDate,
		DueTime:     req.DueTime,
		Difficulty:  difficulty,
		SubjectID:   req.SubjectID,
		ProfessorID: req.ProfessorID,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasAnyField(raw, "title", "description", "due_date", "due_time", "difficulty", "completed", "subject_id", "professor_id") {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	// Columns that cannot be cleared reject an explicit null.
	if sentNull(raw, "title", "due_date", "difficulty", "completed") {
		return domain.UpdateTaskInput{}, ErrInvalidPayload
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		title = &value
	}

	var difficulty *domain.Difficulty
	if req.Difficulty != nil {
		value := domain.Difficulty(*req.Difficulty)
		if !value.Valid() {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
		difficulty = &value
	}

	if req.DueDate != nil {
		if _, err := domain.DueInstant(*req.DueDate, nil, nil); err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidPayload
		}
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: hasJSONField(raw, "description"),
		DueDate:        req.DueDate,
		DueTime:        req.DueTime,
		DueTimeSet:     hasJSONField(raw, "due_time"),
		Difficulty:     difficulty,
		Completed:      req.Completed,
		SubjectID:      req.SubjectID,
		SubjectIDSet:   hasJSONField(raw, "subject_id"),
		ProfessorID:    req.ProfessorID,
		ProfessorIDSet: hasJSONField(raw, "professor_id"),
	}, nil
}

// sentNull reports whether any of fields was sent as an explicit null.
func sentNull(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if value, ok := raw[field]; ok && isJSONNull(value) {
			return true
		}
	}
	return false
}

func hasAnyField(raw map[string]json.RawMessage, fields ...string) bool {
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
