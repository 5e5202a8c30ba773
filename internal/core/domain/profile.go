package domain

import "time"

type Profile struct {
	UserID     string
	FullName   string
	University *string
	AvatarURL  *string
	UpdatedAt  time.Time
}

type UpsertProfileInput struct {
	FullName   string
	University *string
	AvatarURL  *string
}

// Session describes the authenticated caller. Profile is nil when it does
// not exist yet or could not be fetched in time.
type Session struct {
	UserID  string
	Profile *Profile
}
