package ports

import (
	"context"

	"taskhub/internal/core/domain"
)

type ScheduleRepository interface {
	List(ctx context.Context, userID string) ([]domain.ScheduleEntry, error)
	Get(ctx context.Context, userID, entryID string) (domain.ScheduleEntry, error)
	Create(ctx context.Context, entry domain.ScheduleEntry) error
	Update(ctx context.Context, entry domain.ScheduleEntry) error
	Delete(ctx context.Context, userID, entryID string) error
}

type NoteRepository interface {
	List(ctx context.Context, userID string, subjectID *string) ([]domain.Note, error)
	Get(ctx context.Context, userID, noteID string) (domain.Note, error)
	Create(ctx context.Context, note domain.Note) error
	Update(ctx context.Context, note domain.Note) error
	Delete(ctx context.Context, userID, noteID string) error
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (domain.Profile, error)
	Upsert(ctx context.Context, profile domain.Profile) error
}

type ScheduleService interface {
	WeeklySchedule(ctx context.Context, userID string) ([]domain.ScheduleDay, error)
	CreateEntry(ctx context.Context, userID string, input domain.CreateScheduleEntryInput) (domain.ScheduleEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, input domain.UpdateScheduleEntryInput) (domain.ScheduleEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

type NoteService interface {
	ListNotes(ctx context.Context, userID string, subjectID *string) ([]domain.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (domain.Note, error)
	CreateNote(ctx context.Context, userID string, input domain.CreateNoteInput) (domain.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, input domain.UpdateNoteInput) (domain.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

type ProfileService interface {
	Session(ctx context.Context, userID string) (domain.Session, error)
	EndSession(ctx context.Context, userID string) error
	GetProfile(ctx context.Context, userID string) (domain.Profile, error)
	UpsertProfile(ctx context.Context, userID string, input domain.UpsertProfileInput) (domain.Profile, error)
}
