package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type SubjectService struct {
	subjectRepository   ports.SubjectRepository
	professorRepository ports.ProfessorRepository
	store               ports.TaskStore
	events              ports.EventPublisher
	clock               ports.Clock
}

func NewSubjectService(
	subjectRepository ports.SubjectRepository,
	professorRepository ports.ProfessorRepository,
	store ports.TaskStore,
	events ports.EventPublisher,
	clock ports.Clock,
) *SubjectService {
	return &SubjectService{
		subjectRepository:   subjectRepository,
		professorRepository: professorRepository,
		store:               store,
		events:              events,
		clock:               nowFunc(clock),
	}
}

var _ ports.SubjectService = (*SubjectService)(nil)

func (s *SubjectService) ListSubjects(ctx context.Context, userID string) ([]domain.Subject, error) {
	return s.subjectRepository.List(ctx, userID)
}

func (s *SubjectService) CreateSubject(ctx context.Context, userID string, input domain.CreateSubjectInput) (domain.Subject, error) {
	exists, err := s.subjectRepository.NameExists(ctx, userID, input.Name, "")
	if err != nil {
		return domain.Subject{}, fmt.Errorf("check subject name: %w", err)
	}
	if exists {
		return domain.Subject{}, domain.ErrDuplicateSubject
	}
	if input.ProfessorID != nil {
		if _, err := s.professorRepository.Get(ctx, userID, *input.ProfessorID); err != nil {
			return domain.Subject{}, err
		}
	}

	now := s.clock()
	subject := domain.Subject{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        input.Name,
		Color:       input.Color,
		ProfessorID: input.ProfessorID,
		CreatedAt:   stamp(now),
		UpdatedAt:   stamp(now),
	}
	if err := s.subjectRepository.Create(ctx, subject); err != nil {
		return domain.Subject{}, fmt.Errorf("create subject: %w", err)
	}
	publish(ctx, s.events, domain.ChangeCreated, domain.EntitySubject, subject.ID, userID, now)

	return subject, nil
}

func (s *SubjectService) UpdateSubject(ctx context.Context, userID, subjectID string, input domain.UpdateSubjectInput) (domain.Subject, error) {
	subject, err := s.subjectRepository.Get(ctx, userID, subjectID)
	if err != nil {
		return domain.Subject{}, err
	}

	if input.Name != nil && *input.Name != subject.Name {
		exists, err := s.subjectRepository.NameExists(ctx, userID, *input.Name, subjectID)
		if err != nil {
			return domain.Subject{}, fmt.Errorf("check subject name: %w", err)
		}
		if exists {
			return domain.Subject{}, domain.ErrDuplicateSubject
		}
		subject.Name = *input.Name
	}
	if input.ColorSet {
		subject.Color = input.Color
	}

	now := s.clock()
	subject.UpdatedAt = stamp(now)
	if err := s.subjectRepository.Update(ctx, subject); err != nil {
		return domain.Subject{}, fmt.Errorf("update subject: %w", err)
	}
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntitySubject, subject.ID, userID, now)

	return subject, nil
}

// DeleteSubject removes the subject; tasks and notes referencing it lose the
// reference and its schedule entries are removed.
func (s *SubjectService) DeleteSubject(ctx context.Context, userID, subjectID string) error {
	if err := s.subjectRepository.Delete(ctx, userID, subjectID); err != nil {
		return err
	}
	s.store.Invalidate(userID)
	publish(ctx, s.events, domain.ChangeDeleted, domain.EntitySubject, subjectID, userID, s.clock())
	return nil
}

// AssignProfessor links a professor to the subject, or clears the link when
// professorID is nil. Both tables change in one transaction.
func (s *SubjectService) AssignProfessor(ctx context.Context, userID, subjectID string, professorID *string) (domain.Subject, error) {
	if _, err := s.subjectRepository.Get(ctx, userID, subjectID); err != nil {
		return domain.Subject{}, err
	}
	if professorID != nil {
		if _, err := s.professorRepository.Get(ctx, userID, *professorID); err != nil {
			return domain.Subject{}, err
		}
	}

	if err := s.subjectRepository.AssignProfessor(ctx, userID, subjectID, professorID); err != nil {
		return domain.Subject{}, fmt.Errorf("assign professor: %w", err)
	}

	subject, err := s.subjectRepository.Get(ctx, userID, subjectID)
	if err != nil {
		return domain.Subject{}, err
	}
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntitySubject, subject.ID, userID, s.clock())

	return subject, nil
}
