package dto

type ProfileItem struct {
	FullName   string  `json:"full_name"`
	University *string `json:"university,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	UpdatedAt  string  `json:"updated_at"`
}

type SessionResponse struct {
	UserID  string       `json:"user_id"`
	Profile *ProfileItem `json:"profile"`
}

type UpsertProfileRequest struct {
	FullName   string  `json:"full_name" binding:"required,max=255"`
	University *string `json:"university" binding:"omitempty,max=255"`
	AvatarURL  *string `json:"avatar_url" binding:"omitempty,url,max=1024"`
}
