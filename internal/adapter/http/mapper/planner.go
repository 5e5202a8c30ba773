package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToScheduleDays(days []domain.ScheduleDay) []dto.ScheduleDay {
	out := make([]dto.ScheduleDay, 0, len(days))
	for _, day := range days {
		entries := make([]dto.ScheduleEntryItem, 0, len(day.Entries))
		for _, entry := range day.Entries {
			entries = append(entries, ToScheduleEntryItem(entry))
		}
		out = append(out, dto.ScheduleDay{DayOfWeek: day.DayOfWeek, Entries: entries})
	}
	return out
}

func ToScheduleEntryItem(entry domain.ScheduleEntry) dto.ScheduleEntryItem {
	return dto.ScheduleEntryItem{
		ID:        entry.ID,
		SubjectID: entry.SubjectID,
		DayOfWeek: entry.DayOfWeek,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Room:      entry.Room,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt: entry.UpdatedAt.Format(time.RFC3339),
	}
}

func ToNoteItems(notes []domain.Note) []dto.NoteItem {
	items := make([]dto.NoteItem, 0, len(notes))
	for _, note := range notes {
		items = append(items, ToNoteItem(note))
	}
	return items
}

func ToNoteItem(note domain.Note) dto.NoteItem {
	return dto.NoteItem{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		SubjectID: note.SubjectID,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

func ToProfileItem(profile domain.Profile) dto.ProfileItem {
	return dto.ProfileItem{
		FullName:   profile.FullName,
		University: profile.University,
		AvatarURL:  profile.AvatarURL,
		UpdatedAt:  profile.UpdatedAt.Format(time.RFC3339),
	}
}

func ToSessionResponse(session domain.Session) dto.SessionResponse {
	resp := dto.SessionResponse{UserID: session.UserID}
	if session.Profile != nil {
		item := ToProfileItem(*session.Profile)
		resp.Profile = &item
	}
	return resp
}
