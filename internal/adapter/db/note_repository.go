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

const noteColumns = `id, user_id, title, content, subject_id, created_at, updated_at`

type NoteRepository struct {
	db *sqlx.DB
}

type noteRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Title     string         `db:"title"`
	Content   string         `db:"content"`
	SubjectID sql.NullString `db:"subject_id"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.NoteRepository = (*NoteRepository)(nil)

func NewNoteRepository(db *sqlx.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// List returns the user's notes, most recently updated first, optionally
// restricted to one subject.
func (r *NoteRepository) List(ctx context.Context, userID string, subjectID *string) ([]domain.Note, error) {
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ?`
	args := []any{userID}
	if subjectID != nil {
		query += ` AND subject_id = ?`
		args = append(args, *subjectID)
	}
	query += ` ORDER BY updated_at DESC, id`

	var rows []noteRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	notes := make([]domain.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, mapNoteRow(row))
	}
	return notes, nil
}

func (r *NoteRepository) Get(ctx context.Context, userID, noteID string) (domain.Note, error) {
	var row noteRow
	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = ? AND id = ?`
	if err := r.db.GetContext(ctx, &row, query, userID, noteID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Note{}, domain.ErrNoteNotFound
		}
		return domain.Note{}, err
	}
	return mapNoteRow(row), nil
}

func (r *NoteRepository) Create(ctx context.Context, note domain.Note) error {
	query := `INSERT INTO notes (` + noteColumns + `)
VALUES (:id, :user_id, :title, :content, :subject_id, :created_at, :updated_at)`
	return expectOne(domain.ErrNoteNotFound)(r.db.NamedExecContext(ctx, query, toNoteRow(note)))
}

func (r *NoteRepository) Update(ctx context.Context, note domain.Note) error {
	query := `UPDATE notes SET title = :title, content = :content, subject_id = :subject_id, updated_at = :updated_at
WHERE user_id = :user_id AND id = :id`
	_, err := r.db.NamedExecContext(ctx, query, toNoteRow(note))
	return err
}

func (r *NoteRepository) Delete(ctx context.Context, userID, noteID string) error {
	return deleteOne(ctx, r.db, domain.ErrNoteNotFound,
		"DELETE FROM notes WHERE user_id = ? AND id = ?", userID, noteID)
}

func mapNoteRow(row noteRow) domain.Note {
	return domain.Note{
		ID:        row.ID,
		UserID:    row.UserID,
		Title:     row.Title,
		Content:   row.Content,
		SubjectID: stringPtr(row.SubjectID),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func toNoteRow(note domain.Note) noteRow {
	return noteRow{
		ID:        note.ID,
		UserID:    note.UserID,
		Title:     note.Title,
		Content:   note.Content,
		SubjectID: nullString(note.SubjectID),
		CreatedAt: note.CreatedAt.UTC(),
		UpdatedAt: note.UpdatedAt.UTC(),
	}
}
