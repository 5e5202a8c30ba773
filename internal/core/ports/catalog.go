package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

type SubjectRepository interface {
	List(ctx context.Context, userID string) ([]domain.Subject, error)
	Get(ctx context.Context, userID, subjectID string) (domain.Subject, error)
	Create(ctx context.Context, subject domain.Subject) error
	Update(ctx context.Context, subject domain.Subject) error
	Delete(ctx context.Context, userID, subjectID string) error
	NameExists(ctx context.Context, userID, name, excludeID string) (bool, error)
	// AssignProfessor sets subjects.professor_id and the professor_subjects
	// link atomically. A nil professorID clears the assignment.
	AssignProfessor(ctx context.Context, userID, subjectID string, professorID *string) error
}

type ProfessorRepository interface {
	List(ctx context.Context, userID string) ([]domain.Professor, error)
	Get(ctx context.Context, userID, professorID string) (domain.Professor, error)
	Create(ctx context.Context, professor domain.Professor) error
	Update(ctx context.Context, professor domain.Professor) error
	// Delete removes the professor and clears every subject and task
	// reference to it in one transaction.
	Delete(ctx context.Context, userID, professorID string) error
	TaxCodeExists(ctx context.Context, userID, taxCode, excludeID string) (bool, error)
}

type SubjectService interface {
	ListSubjects(ctx context.Context, userID string) ([]domain.Subject, error)
	CreateSubject(ctx context.Context, userID string, input domain.CreateSubjectInput) (domain.Subject, error)
	UpdateSubject(ctx context.Context, userID, subjectID string, input domain.UpdateSubjectInput) (domain.Subject, error)
	DeleteSubject(ctx context.Context, userID, subjectID string) error
	AssignProfessor(ctx context.Context, userID, subjectID string, professorID *string) (domain.Subject, error)
}

type ProfessorService interface {
	ListProfessors(ctx context.Context, userID string) ([]domain.Professor, error)
	CreateProfessor(ctx context.Context, userID string, input domain.CreateProfessorInput) (domain.Professor, error)
	UpdateProfessor(ctx context.Context, userID, professorID string, input domain.UpdateProfessorInput) (domain.Professor, error)
	DeleteProfessor(ctx context.Context, userID, professorID string) error
}
