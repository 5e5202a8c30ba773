package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type NoteService struct {
	noteRepository    ports.NoteRepository
	subjectRepository ports.SubjectRepository
	events            ports.EventPublisher
	clock             ports.Clock
}

func NewNoteService(
	noteRepository ports.NoteRepository,
	subjectRepository ports.SubjectRepository,
	events ports.EventPublisher,
	clock ports.Clock,
) *NoteService {
	return &NoteService{
		noteRepository:    noteRepository,
		subjectRepository: subjectRepository,
		events:            events,
		clock:             nowFunc(clock),
	}
}

var _ ports.NoteService = (*NoteService)(nil)

func (s *NoteService) ListNotes(ctx context.Context, userID string, subjectID *string) ([]domain.Note, error) {
	return s.noteRepository.List(ctx, userID, subjectID)
}

func (s *NoteService) GetNote(ctx context.Context, userID, noteID string) (domain.Note, error) {
	return s.noteRepository.Get(ctx, userID, noteID)
}

func (s *NoteService) CreateNote(ctx context.Context, userID string, input domain.CreateNoteInput) (domain.Note, error) {
	if input.SubjectID != nil {
		if _, err := s.subjectRepository.Get(ctx, userID, *input.SubjectID); err != nil {
			return domain.Note{}, err
		}
	}

	now := s.clock()
	note := domain.Note{
		ID:        uuid.NewString(),
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		SubjectID: input.SubjectID,
		CreatedAt: stamp(now),
		UpdatedAt: stamp(now),
	}
	if err := s.noteRepository.Create(ctx, note); err != nil {
		return domain.Note{}, fmt.Errorf("create note: %w", err)
	}
	publish(ctx, s.events, domain.ChangeCreated, domain.EntityNote, note.ID, userID, now)

	return note, nil
}

func (s *NoteService) UpdateNote(ctx context.Context, userID, noteID string, input domain.UpdateNoteInput) (domain.Note, error) {
	note, err := s.noteRepository.Get(ctx, userID, noteID)
	if err != nil {
		return domain.Note{}, err
	}

	if input.Title != nil {
		note.Title = *input.Title
	}
	if input.Content != nil {
		note.Content = *input.Content
	}
	if input.SubjectIDSet {
		if input.SubjectID != nil {
			if _, err := s.subjectRepository.Get(ctx, userID, *input.SubjectID); err != nil {
				return domain.Note{}, err
			}
		}
		note.SubjectID = input.SubjectID
	}

	now := s.clock()
	note.UpdatedAt = stamp(now)
	if err := s.noteRepository.Update(ctx, note); err != nil {
		return domain.Note{}, fmt.Errorf("update note: %w", err)
	}
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntityNote, note.ID, userID, now)

	return note, nil
}

func (s *NoteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := s.noteRepository.Delete(ctx, userID, noteID); err != nil {
		return err
	}
	publish(ctx, s.events, domain.ChangeDeleted, domain.EntityNote, noteID, userID, s.clock())
	return nil
}
