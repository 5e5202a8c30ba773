package domain

import (
	"fmt"
	"sort"
	"time"
)

type ScheduleEntry struct {
	ID        string
	UserID    string
	SubjectID string
	DayOfWeek int
	StartTime string
	EndTime   string
	Room      *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateScheduleEntryInput struct {
	SubjectID string
	DayOfWeek int
	StartTime string
	EndTime   string
	Room      *string
}

type UpdateScheduleEntryInput struct {
	SubjectID *string
	DayOfWeek *int
	StartTime *string
	EndTime   *string
	Room      *string
	RoomSet   bool
}

// ScheduleDay is the ordered list of entries of one weekday.
type ScheduleDay struct {
	DayOfWeek int
	Entries   []ScheduleEntry
}

const (
	Monday = 1
	Sunday = 7
)

// ParseClock converts HH:MM into minutes after midnight. Both fields must be
// exactly two digits.
func ParseClock(value string) (int, error) {
	if len(value) != len(ClockLayout) {
		return 0, fmt.Errorf("invalid clock %q, expected HH:MM", value)
	}
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q, expected HH:MM: %w", value, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Validate checks the weekday and that the entry ends after it starts.
func (e ScheduleEntry) Validate() error {
	if e.DayOfWeek < Monday || e.DayOfWeek > Sunday {
		return ErrInvalidTimeRange
	}
	start, err := ParseClock(e.StartTime)
	if err != nil {
		return ErrInvalidTimeRange
	}
	end, err := ParseClock(e.EndTime)
	if err != nil {
		return ErrInvalidTimeRange
	}
	if end <= start {
		return ErrInvalidTimeRange
	}
	return nil
}

// Overlaps reports whether two entries share any minute of the same day.
// Touching intervals (one ends when the other starts) do not overlap.
func (e ScheduleEntry) Overlaps(other ScheduleEntry) bool {
	if e.DayOfWeek != other.DayOfWeek {
		return false
	}
	aStart, errA1 := ParseClock(e.StartTime)
	aEnd, errA2 := ParseClock(e.EndTime)
	bStart, errB1 := ParseClock(other.StartTime)
	bEnd, errB2 := ParseClock(other.EndTime)
	if errA1 != nil || errA2 != nil || errB1 != nil || errB2 != nil {
		return false
	}
	return aStart < bEnd && bStart < aEnd
}

// GroupByDay returns seven days, Monday first, each sorted by start time.
func GroupByDay(entries []ScheduleEntry) []ScheduleDay {
	days := make([]ScheduleDay, 0, Sunday)
	for day := Monday; day <= Sunday; day++ {
		days = append(days, ScheduleDay{DayOfWeek: day, Entries: make([]ScheduleEntry, 0)})
	}
	for _, entry := range entries {
		if entry.DayOfWeek < Monday || entry.DayOfWeek > Sunday {
			continue
		}
		idx := entry.DayOfWeek - Monday
		days[idx].Entries = append(days[idx].Entries, entry)
	}
	for i := range days {
		entries := days[i].Entries
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].StartTime < entries[b].StartTime
		})
	}
	return days
}
