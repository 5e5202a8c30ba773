package domain

import (
	"fmt"
	"time"
)

const (
	highPriorityWindowDays   = 3
	mediumPriorityWindowDays = 7
	secondsPerDay            = 86400
)

// DueInstant combines an ISO date and an optional HH:MM time in loc. A
// missing time means end of day (23:59).
func DueInstant(dueDate string, dueTime *string, loc *time.Location) (time.Time, error) {
	clock := DefaultDueTime
	if dueTime != nil && *dueTime != "" {
		clock = *dueTime
	}
	if loc == nil {
		loc = time.UTC
	}
	due, err := time.ParseInLocation(DateLayout+" "+ClockLayout, dueDate+" "+clock, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse due instant %q %q: %w", dueDate, clock, err)
	}
	return due, nil
}

// DaysRemaining is the signed, fractional number of days from now to due.
func DaysRemaining(due, now time.Time) float64 {
	return due.Sub(now).Seconds() / secondsPerDay
}

// ClassifyPriority assigns the priority tier of a task. The first matching
// rule wins: under 3 days and hard is high, under 7 days is medium, anything
// else is low. Overdue tasks are not a separate tier. An unparsable due
// instant is classified low.
func ClassifyPriority(dueDate string, dueTime *string, difficulty Difficulty, now time.Time) Priority {
	due, err := DueInstant(dueDate, dueTime, now.Location())
	if err != nil {
		return PriorityLow
	}

	days := DaysRemaining(due, now)
	switch {
	case days < highPriorityWindowDays && difficulty == DifficultyHard:
		return PriorityHigh
	case days < mediumPriorityWindowDays:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

func (p Priority) Valid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}
