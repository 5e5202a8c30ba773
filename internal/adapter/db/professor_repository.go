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

const professorColumns = `id, user_id, name, email, tax_code, created_at, updated_at`

type ProfessorRepository struct {
	db *sqlx.DB
}

type professorRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Name      string         `db:"name"`
	Email     sql.NullString `db:"email"`
	TaxCode   sql.NullString `db:"tax_code"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

var _ ports.ProfessorRepository = (*ProfessorRepository)(nil)

func NewProfessorRepository(db *sqlx.DB) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

func (r *ProfessorRepository) List(ctx context.Context, userID string) ([]domain.Professor, error) {
	var rows []professorRow
	query := `SELECT ` + professorColumns + ` FROM professors WHERE user_id = ? ORDER BY name, id`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	professors := make([]domain.Professor, 0, len(rows))
	for _, row := range rows {
		professors = append(professors, mapProfessorRow(row))
	}
	return professors, nil
}

func (r *ProfessorRepository) Get(ctx context.Context, userID, professorID string) (domain.Professor, error) {
	var row professorRow
	query := `SELECT ` + professorColumns + ` FROM professors WHERE user_id = ? AND id = ?`
	if err := r.db.GetContext(ctx, &row, query, userID, professorID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Professor{}, domain.ErrProfessorNotFound
		}
		return domain.Professor{}, err
	}
	return mapProfessorRow(row), nil
}

func (r *ProfessorRepository) Create(ctx context.Context, professor domain.Professor) error {
	query := `INSERT INTO professors (` + professorColumns + `)
VALUES (:id, :user_id, :name, :email, :tax_code, :created_at, :updated_at)`
	return expectOne(domain.ErrProfessorNotFound)(r.db.NamedExecContext(ctx, query, toProfessorRow(professor)))
}

func (r *ProfessorRepository) Update(ctx context.Context, professor domain.Professor) error {
	query := `UPDATE professors SET name = :name, email = :email, tax_code = :tax_code, updated_at = :updated_at
WHERE user_id = :user_id AND id = :id`
	_, err := r.db.NamedExecContext(ctx, query, toProfessorRow(professor))
	return err
}

func (r *ProfessorRepository) Delete(ctx context.Context, userID, professorID string) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := deleteOne(ctx, tx, domain.ErrProfessorNotFound,
			"DELETE FROM professors WHERE user_id = ? AND id = ?", userID, professorID); err != nil {
			return err
		}
		statements := []string{
			"DELETE FROM professor_subjects WHERE professor_id = ?",
			"UPDATE subjects SET professor_id = NULL WHERE professor_id = ?",
			"UPDATE tasks SET professor_id = NULL WHERE professor_id = ?",
		}
		for _, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement, professorID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProfessorRepository) TaxCodeExists(ctx context.Context, userID, taxCode, excludeID string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM professors WHERE user_id = ? AND tax_code = ? AND id <> ?",
		userID, taxCode, excludeID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func mapProfessorRow(row professorRow) domain.Professor {
	return domain.Professor{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Email:     stringPtr(row.Email),
		TaxCode:   stringPtr(row.TaxCode),
		CreatedAt: row.CreatedAt.UTC(),
		UpdatedAt: row.UpdatedAt.UTC(),
	}
}

func toProfessorRow(professor domain.Professor) professorRow {
	return professorRow{
		ID:        professor.ID,
		UserID:    professor.UserID,
		Name:      professor.Name,
		Email:     nullString(professor.Email),
		TaxCode:   nullString(professor.TaxCode),
		CreatedAt: professor.CreatedAt.UTC(),
		UpdatedAt: professor.UpdatedAt.UTC(),
	}
}
