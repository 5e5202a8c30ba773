package domain

import "time"

type ChangeType string

const (
	ChangeCreated ChangeType = "created"
	ChangeUpdated ChangeType = "updated"
	ChangeDeleted ChangeType = "deleted"
)

type Entity string

const (
	EntityTask      Entity = "task"
	EntitySubject   Entity = "subject"
	EntityProfessor Entity = "professor"
	EntitySchedule  Entity = "schedule"
	EntityNote      Entity = "note"
	EntityProfile   Entity = "profile"
)

// ChangeEvent notifies subscribers that a row owned by UserID changed.
// Origin identifies the process that performed the write.
type ChangeEvent struct {
	Type     ChangeType `json:"type"`
	Entity   Entity     `json:"entity"`
	EntityID string     `json:"id"`
	UserID   string     `json:"user_id"`
	Origin   string     `json:"origin"`
	At       time.Time  `json:"at"`
}
