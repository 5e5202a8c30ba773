package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToSubjectItems(subjects []domain.Subject) []dto.SubjectItem {
	items := make([]dto.SubjectItem, 0, len(subjects))
	for _, subject := range subjects {
		items = append(items, ToSubjectItem(subject))
	}
	return items
}

func ToSubjectItem(subject domain.Subject) dto.SubjectItem {
	return dto.SubjectItem{
		ID:          subject.ID,
		Name:        subject.Name,
		Color:       subject.Color,
		ProfessorID: subject.ProfessorID,
		CreatedAt:   subject.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   subject.UpdatedAt.Format(time.RFC3339),
	}
}

func ToProfessorItems(professors []domain.Professor) []dto.ProfessorItem {
	items := make([]dto.ProfessorItem, 0, len(professors))
	for _, professor := range professors {
		items = append(items, ToProfessorItem(professor))
	}
	return items
}

func ToProfessorItem(professor domain.Professor) dto.ProfessorItem {
	return dto.ProfessorItem{
		ID:        professor.ID,
		Name:      professor.Name,
		Email:     professor.Email,
		TaxCode:   professor.TaxCode,
		CreatedAt: professor.CreatedAt.Format(time.RFC3339),
		UpdatedAt: professor.UpdatedAt.Format(time.RFC3339),
	}
}
