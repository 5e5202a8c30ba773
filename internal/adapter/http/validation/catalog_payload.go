package validation

import (
	"encoding/json"
	"strings"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func BuildCreateSubjectInput(req dto.CreateSubjectRequest) (domain.CreateSubjectInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateSubjectInput{}, ErrInvalidPayload
	}
	return domain.CreateSubjectInput{
		Name:        name,
		Color:       req.Color,
		ProfessorID: req.ProfessorID,
	}, nil
}

func BuildUpdateSubjectInput(req dto.UpdateSubjectRequest, raw map[string]json.RawMessage) (domain.UpdateSubjectInput, error) {
	if !hasAnyField(raw, "name", "color") || sentNull(raw, "name") {
		return domain.UpdateSubjectInput{}, ErrInvalidPayload
	}

	var name *string
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateSubjectInput{}, ErrInvalidPayload
		}
		name = &value
	}

	return domain.UpdateSubjectInput{
		Name:     name,
		Color:    req.Color,
		ColorSet: hasJSONField(raw, "color"),
	}, nil
}

// BuildProfessorAssignment returns the professor to assign, or nil to clear.
// The field must be present, even if null.
func BuildProfessorAssignment(req dto.AssignProfessorRequest, raw map[string]json.RawMessage) (*string, error) {
	if !hasJSONField(raw, "professor_id") {
		return nil, ErrInvalidPayload
	}
	return req.ProfessorID, nil
}

func BuildCreateProfessorInput(req dto.CreateProfessorRequest) (domain.CreateProfessorInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateProfessorInput{}, ErrInvalidPayload
	}
	return domain.CreateProfessorInput{
		Name:    name,
		Email:   req.Email,
		TaxCode: req.TaxCode,
	}, nil
}

func BuildUpdateProfessorInput(req dto.UpdateProfessorRequest, raw map[string]json.RawMessage) (domain.UpdateProfessorInput, error) {
	if !hasAnyField(raw, "name", "email", "tax_code") || sentNull(raw, "name") {
		return domain.UpdateProfessorInput{}, ErrInvalidPayload
	}

	var name *string
	if req.Name != nil {
		value := strings.TrimSpace(*req.Name)
		if value == "" {
			return domain.UpdateProfessorInput{}, ErrInvalidPayload
		}
		name = &value
	}

	return domain.UpdateProfessorInput{
		Name:       name,
		Email:      req.Email,
		EmailSet:   hasJSONField(raw, "email"),
		TaxCode:    req.TaxCode,
		TaxCodeSet: hasJSONField(raw, "tax_code"),
	}, nil
}
