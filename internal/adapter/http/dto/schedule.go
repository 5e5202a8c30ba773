package dto

type ScheduleEntryItem struct {
	ID        string  `json:"id"`
	SubjectID string  `json:"subject_id"`
	DayOfWeek int     `json:"day_of_week"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Room      *string `json:"room,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type ScheduleDay struct {
	DayOfWeek int                 `json:"day_of_week"`
	Entries   []ScheduleEntryItem `json:"entries"`
}

type CreateScheduleEntryRequest struct {
	SubjectID string  `json:"subject_id" binding:"required,uuid"`
	DayOfWeek int     `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime string  `json:"start_time" binding:"required,hhmm"`
	EndTime   string  `json:"end_time" binding:"required,hhmm"`
	Room      *string `json:"room" binding:"omitempty,max=255"`
}

type UpdateScheduleEntryRequest struct {
	SubjectID *string `json:"subject_id" binding:"omitempty,uuid"`
	DayOfWeek *int    `json:"day_of_week" binding:"omitempty,min=1,max=7"`
	StartTime *string `json:"start_time" binding:"omitempty,hhmm"`
	EndTime   *string `json:"end_time" binding:"omitempty,hhmm"`
	Room      *string `json:"room" binding:"omitempty,max=255"`
}
