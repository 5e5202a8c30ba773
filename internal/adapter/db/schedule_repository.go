package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const scheduleColumns = `id, user_id, subject_id, day_of_week, start_time, end_time, room, created_at, updated_at`

type ScheduleRepository struct {
	db *sqlx.DB
}

type scheduleRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	SubjectID string         `db:"subject_id"`
	DayOfWeek int            `db:"day_of_week"`
	StartTime string         `db:"start_time"`
	EndTime   string         `db:"end_time"`
	Room      sql.NullString `db:"room"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.ScheduleRepository = (*ScheduleRepository)(nil)

func NewScheduleRepository(db *sqlx.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

func (r *ScheduleRepository) List(ctx context.Context, userID string) ([]domain.ScheduleEntry, error) {
	var rows []scheduleRow
	query := `SELECT ` + scheduleColumns + ` FROM schedule WHERE user_id = ? ORDER BY day_of_week, start_time, id`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	entries := make([]domain.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapScheduleRow(row))
	}
	return entries, nil
}

func (r *ScheduleRepository) Get(ctx context.Context, userID, entryID string) (domain.ScheduleEntry, error) {
	var row scheduleRow
	query := `SELECT ` + scheduleColumns + ` FROM schedule WHERE user_id = ? AND id = ?`
	if err := r.db.GetContext(ctx, &row, query, userID, entryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ScheduleEntry{}, domain.ErrScheduleEntryNotFound
		}
		return domain.ScheduleEntry{}, err
	}
	return mapScheduleRow(row), nil
}

func (r *ScheduleRepository) Create(ctx context.Context, entry domain.ScheduleEntry) error {
	query := `INSERT INTO schedule (` + scheduleColumns + `)
VALUES (:id, :user_id, :subject_id, :day_of_week, :start_time, :end_time, :room, :created_at, :updated_at)`
	return expectOne(domain.ErrScheduleEntryNotFound)(r.db.NamedExecContext(ctx, query, toScheduleRow(entry)))
}

func (r *ScheduleRepository) Update(ctx context.Context, entry domain.ScheduleEntry) error {
	query := `UPDATE schedule SET
  subject_id = :subject_id,
  day_of_week = :day_of_week,
  start_time = :start_time,
  end_time = :end_time,
  room = :room,
  updated_at = :updated_at
WHERE user_id = :user_id AND id = :id`
	_, err := r.db.NamedExecContext(ctx, query, toScheduleRow(entry))
	return err
}

func (r *ScheduleRepository) Delete(ctx context.Context, userID, entryID string) error {
	return deleteOne(ctx, r.db, domain.ErrScheduleEntryNotFound,
		"DELETE FROM schedule WHERE user_id = ? AND id = ?", userID, entryID)
}

func mapScheduleRow(row scheduleRow) domain.ScheduleEntry {
	return domain.ScheduleEntry{
		ID:        row.ID,
		UserID:    row.UserID,
		SubjectID: row.SubjectID,
		DayOfWeek: row.DayOfWeek,
		StartTime: row.StartTime,
		EndTime:   row.EndTime,
		Room:      stringPtr(row.Room),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func toScheduleRow(entry domain.ScheduleEntry) scheduleRow {
	return scheduleRow{
		ID:        entry.ID,
		UserID:    entry.UserID,
		SubjectID: entry.SubjectID,
		DayOfWeek: entry.DayOfWeek,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Room:      nullString(entry.Room),
		CreatedAt: entry.CreatedAt.UTC(),
		UpdatedAt: entry.UpdatedAt.UTC(),
	}
}
