package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type ProfessorService struct {
	professorRepository ports.ProfessorRepository
	store               ports.TaskStore
	events              ports.EventPublisher
	clock               ports.Clock
}

func NewProfessorService(
	professorRepository ports.ProfessorRepository,
	store ports.TaskStore,
	events ports.EventPublisher,
	clock ports.Clock,
) *ProfessorService {
	return &ProfessorService{
		professorRepository: professorRepository,
		store:               store,
		events:              events,
		clock:               nowFunc(clock),
	}
}

var _ ports.ProfessorService = (*ProfessorService)(nil)

func (s *ProfessorService) ListProfessors(ctx context.Context, userID string) ([]domain.Professor, error) {
	return s.professorRepository.List(ctx, userID)
}

func (s *ProfessorService) CreateProfessor(ctx context.Context, userID string, input domain.CreateProfessorInput) (domain.Professor, error) {
	taxCode, err := s.checkTaxCode(ctx, userID, input.TaxCode, "")
	if err != nil {
		return domain.Professor{}, err
	}

	now := s.clock()
	professor := domain.Professor{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      input.Name,
		Email:     input.Email,
		TaxCode:   taxCode,
		CreatedAt: stamp(now),
		UpdatedAt: stamp(now),
	}
	if err := s.professorRepository.Create(ctx, professor); err != nil {
		return domain.Professor{}, fmt.Errorf("create professor: %w", err)
	}
	publish(ctx, s.events, domain.ChangeCreated, domain.EntityProfessor, professor.ID, userID, now)

	return professor, nil
}

func (s *ProfessorService) UpdateProfessor(ctx context.Context, userID, professorID string, input domain.UpdateProfessorInput) (domain.Professor, error) {
	professor, err := s.professorRepository.Get(ctx, userID, professorID)
	if err != nil {
		return domain.Professor{}, err
	}

	if input.Name != nil {
		professor.Name = *input.Name
	}
	if input.EmailSet {
		professor.Email = input.Email
	}
	if input.TaxCodeSet {
		taxCode, err := s.checkTaxCode(ctx, userID, input.TaxCode, professorID)
		if err != nil {
			return domain.Professor{}, err
		}
		professor.TaxCode = taxCode
	}

	now := s.clock()
	professor.UpdatedAt = stamp(now)
	if err := s.professorRepository.Update(ctx, professor); err != nil {
		return domain.Professor{}, fmt.Errorf("update professor: %w", err)
	}
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntityProfessor, professor.ID, userID, now)

	return professor, nil
}

func (s *ProfessorService) DeleteProfessor(ctx context.Context, userID, professorID string) error {
	if err := s.professorRepository.Delete(ctx, userID, professorID); err != nil {
		return err
	}
	s.store.Invalidate(userID)
	publish(ctx, s.events, domain.ChangeDeleted, domain.EntityProfessor, professorID, userID, s.clock())
	return nil
}

// checkTaxCode normalizes an optional fiscal code and rejects malformed or
// already used ones.
func (s *ProfessorService) checkTaxCode(ctx context.Context, userID string, taxCode *string, excludeID string) (*string, error) {
	if taxCode == nil {
		return nil, nil
	}
	normalized := domain.NormalizeTaxCode(*taxCode)
	if normalized == "" {
		return nil, nil
	}
	if !domain.ValidTaxCode(normalized) {
		return nil, domain.ErrInvalidTaxCode
	}

	exists, err := s.professorRepository.TaxCodeExists(ctx, userID, normalized, excludeID)
	if err != nil {
		return nil, fmt.Errorf("check tax code: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateProfessor
	}
	return &normalized, nil
}
