package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

type ScheduleService struct {
	scheduleRepository ports.ScheduleRepository
	subjectRepository  ports.SubjectRepository
	events             ports.EventPublisher
	clock              ports.Clock
}

func NewScheduleService(
	scheduleRepository ports.ScheduleRepository,
	subjectRepository ports.SubjectRepository,
	events ports.EventPublisher,
	clock ports.Clock,
) *ScheduleService {
	return &ScheduleService{
		scheduleRepository: scheduleRepository,
		subjectRepository:  subjectRepository,
		events:             events,
		clock:              nowFunc(clock),
	}
}

var _ ports.ScheduleService = (*ScheduleService)(nil)

func (s *ScheduleService) WeeklySchedule(ctx context.Context, userID string) ([]domain.ScheduleDay, error) {
	entries, err := s.scheduleRepository.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return domain.GroupByDay(entries), nil
}

func (s *ScheduleService) CreateEntry(ctx context.Context, userID string, input domain.CreateScheduleEntryInput) (domain.ScheduleEntry, error) {
	now := s.clock()
	entry := domain.ScheduleEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		SubjectID: input.SubjectID,
		DayOfWeek: input.DayOfWeek,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Room:      input.Room,
		CreatedAt: stamp(now),
		UpdatedAt: stamp(now),
	}
	if err := s.check(ctx, entry); err != nil {
		return domain.ScheduleEntry{}, err
	}

	if err := s.scheduleRepository.Create(ctx, entry); err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("create schedule entry: %w", err)
	}
	publish(ctx, s.events, domain.ChangeCreated, domain.EntitySchedule, entry.ID, userID, now)

	return entry, nil
}

func (s *ScheduleService) UpdateEntry(ctx context.Context, userID, entryID string, input domain.UpdateScheduleEntryInput) (domain.ScheduleEntry, error) {
	entry, err := s.scheduleRepository.Get(ctx, userID, entryID)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}

	if input.SubjectID != nil {
		entry.SubjectID = *input.SubjectID
	}
	if input.DayOfWeek != nil {
		entry.DayOfWeek = *input.DayOfWeek
	}
	if input.StartTime != nil {
		entry.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		entry.EndTime = *input.EndTime
	}
	if input.RoomSet {
		entry.Room = input.Room
	}
	if err := s.check(ctx, entry); err != nil {
		return domain.ScheduleEntry{}, err
	}

	now := s.clock()
	entry.UpdatedAt = stamp(now)
	if err := s.scheduleRepository.Update(ctx, entry); err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("update schedule entry: %w", err)
	}
	publish(ctx, s.events, domain.ChangeUpdated, domain.EntitySchedule, entry.ID, userID, now)

	return entry, nil
}

func (s *ScheduleService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := s.scheduleRepository.Delete(ctx, userID, entryID); err != nil {
		return err
	}
	publish(ctx, s.events, domain.ChangeDeleted, domain.EntitySchedule, entryID, userID, s.clock())
	return nil
}

// check validates the time window, the subject reference and that the entry
// does not overlap another entry of the same user.
func (s *ScheduleService) check(ctx context.Context, entry domain.ScheduleEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if _, err := s.subjectRepository.Get(ctx, entry.UserID, entry.SubjectID); err != nil {
		return err
	}

	existing, err := s.scheduleRepository.List(ctx, entry.UserID)
	if err != nil {
		return fmt.Errorf("list schedule entries: %w", err)
	}
	for _, other := range existing {
		if other.ID == entry.ID {
			continue
		}
		if entry.Overlaps(other) {
			return domain.ErrScheduleConflict
		}
	}
	return nil
}
