package validation

import (
	"encoding/json"
	"strings"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func BuildCreateScheduleEntryInput(req dto.CreateScheduleEntryRequest) (domain.CreateScheduleEntryInput, error) {
	return domain.CreateScheduleEntryInput{
		SubjectID: req.SubjectID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      blankToNil(req.Room),
	}, nil
}

func BuildUpdateScheduleEntryInput(req dto.UpdateScheduleEntryRequest, raw map[string]json.RawMessage) (domain.UpdateScheduleEntryInput, error) {
	if !hasAnyField(raw, "subject_id", "day_of_week", "start_time", "end_time", "room") ||
		sentNull(raw, "subject_id", "day_of_week", "start_time", "end_time") {
		return domain.UpdateScheduleEntryInput{}, ErrInvalidPayload
	}

	return domain.UpdateScheduleEntryInput{
		SubjectID: req.SubjectID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Room:      blankToNil(req.Room),
		RoomSet:   hasJSONField(raw, "room"),
	}, nil
}

func BuildCreateNoteInput(req dto.CreateNoteRequest) (domain.CreateNoteInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateNoteInput{}, ErrInvalidPayload
	}
	return domain.CreateNoteInput{
		Title:     title,
		Content:   req.Content,
		SubjectID: req.SubjectID,
	}, nil
}

func BuildUpdateNoteInput(req dto.UpdateNoteRequest, raw map[string]json.RawMessage) (domain.UpdateNoteInput, error) {
	if !hasAnyField(raw, "title", "content", "subject_id") || sentNull(raw, "title", "content") {
		return domain.UpdateNoteInput{}, ErrInvalidPayload
	}

	var title *string
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateNoteInput{}, ErrInvalidPayload
		}
		title = &value
	}

	return domain.UpdateNoteInput{
		Title:        title,
		Content:      req.Content,
		SubjectID:    req.SubjectID,
		SubjectIDSet: hasJSONField(raw, "subject_id"),
	}, nil
}

func BuildUpsertProfileInput(req dto.UpsertProfileRequest) (domain.UpsertProfileInput, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return domain.UpsertProfileInput{}, ErrInvalidPayload
	}
	return domain.UpsertProfileInput{
		FullName:   fullName,
		University: req.University,
		AvatarURL:  req.AvatarURL,
	}, nil
}

// blankToNil trims value and treats an empty result as absent.
func blankToNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
