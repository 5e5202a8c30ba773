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

const subjectColumns = `id, user_id, name, color, professor_id, created_at, updated_at`

type SubjectRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

type subjectRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Name        string         `db:"name"`
	Color       sql.NullString `db:"color"`
	ProfessorID sql.NullString `db:"professor_id"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

var _ ports.SubjectRepository = (*SubjectRepository)(nil)

func NewSubjectRepository(db *sqlx.DB) *SubjectRepository {
	return &SubjectRepository{db: db, now: time.Now}
}

func (r *SubjectRepository) List(ctx context.Context, userID string) ([]domain.Subject, error) {
	var rows []subjectRow
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE user_id = ? ORDER BY name, id`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	subjects := make([]domain.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, mapSubjectRow(row))
	}
	return subjects, nil
}

func (r *SubjectRepository) Get(ctx context.Context, userID, subjectID string) (domain.Subject, error) {
	var row subjectRow
	query := `SELECT ` + subjectColumns + ` FROM subjects WHERE user_id = ? AND id = ?`
	if err := r.db.GetContext(ctx, &row, query, userID, subjectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Subject{}, domain.ErrSubjectNotFound
		}
		return domain.Subject{}, err
	}
	return mapSubjectRow(row), nil
}

// Create inserts the subject and, when it has a professor, the matching
// professor_subjects link.
func (r *SubjectRepository) Create(ctx context.Context, subject domain.Subject) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		query := `INSERT INTO subjects (` + subjectColumns + `)
VALUES (:id, :user_id, :name, :color, :professor_id, :created_at, :updated_at)`
		if _, err := tx.NamedExecContext(ctx, query, toSubjectRow(subject)); err != nil {
			return err
		}
		if subject.ProfessorID == nil {
			return nil
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO professor_subjects (professor_id, subject_id) VALUES (?, ?)",
			*subject.ProfessorID, subject.ID)
		return err
	})
}

func (r *SubjectRepository) Update(ctx context.Context, subject domain.Subject) error {
	return expectOne(domain.ErrSubjectNotFound)(r.db.ExecContext(ctx,
		"UPDATE subjects SET name = ?, color = ?, updated_at = ? WHERE user_id = ? AND id = ?",
		subject.Name, nullString(subject.Color), subject.UpdatedAt.UTC(), subject.UserID, subject.ID))
}

// Delete removes the subject, its professor link and schedule entries, and
// clears task and note references, atomically.
func (r *SubjectRepository) Delete(ctx context.Context, userID, subjectID string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := deleteOne(ctx, tx, domain.ErrSubjectNotFound,
			"DELETE FROM subjects WHERE user_id = ? AND id = ?", userID, subjectID); err != nil {
			return err
		}
		statements := []string{
			"DELETE FROM professor_subjects WHERE subject_id = ?",
			"DELETE FROM schedule WHERE subject_id = ?",
			"UPDATE tasks SET subject_id = NULL WHERE subject_id = ?",
			"UPDATE notes SET subject_id = NULL WHERE subject_id = ?",
		}
		for _, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement, subjectID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SubjectRepository) NameExists(ctx context.Context, userID, name, excludeID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM subjects WHERE user_id = ? AND LOWER(name) = LOWER(?) AND id <> ?",
		userID, name, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AssignProfessor rewrites subjects.professor_id and the professor_subjects
// link in one transaction; a failure in either leaves both untouched.
func (r *SubjectRepository) AssignProfessor(ctx context.Context, userID, subjectID string, professorID *string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count,
			"SELECT COUNT(*) FROM subjects WHERE user_id = ? AND id = ?", userID, subjectID); err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrSubjectNotFound
		}

		if _, err := tx.ExecContext(ctx,
			"UPDATE subjects SET professor_id = ?, updated_at = ? WHERE user_id = ? AND id = ?",
			nullString(professorID), r.now().UTC().Truncate(time.Second), userID, subjectID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM professor_subjects WHERE subject_id = ?", subjectID); err != nil {
			return err
		}
		if professorID == nil {
			return nil
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO professor_subjects (professor_id, subject_id) VALUES (?, ?)",
			*professorID, subjectID)
		return err
	})
}

// ProfessorSubjectIDs lists the subjects linked to a professor.
func (r *SubjectRepository) ProfessorSubjectIDs(ctx context.Context, professorID string) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		"SELECT subject_id FROM professor_subjects WHERE professor_id = ? ORDER BY subject_id", professorID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func mapSubjectRow(row subjectRow) domain.Subject {
	return domain.Subject{
		ID:          row.ID,
		UserID:      row.UserID,
		Name:        row.Name,
		Color:       stringPtr(row.Color),
		ProfessorID: stringPtr(row.ProfessorID),
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

func toSubjectRow(subject domain.Subject) subjectRow {
	return subjectRow{
		ID:          subject.ID,
		UserID:      subject.UserID,
		Name:        subject.Name,
		Color:       nullString(subject.Color),
		ProfessorID: nullString(subject.ProfessorID),
		CreatedAt:   subject.CreatedAt.UTC(),
		UpdatedAt:   subject.UpdatedAt.UTC(),
	}
}
