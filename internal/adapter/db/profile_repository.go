package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"taskhub/internal/config"
	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
)

const upsertProfileMySQL = `
INSERT INTO profiles (user_id, full_name, university, avatar_url, updated_at)
VALUES (:user_id, :full_name, :university, :avatar_url, :updated_at)
ON DUPLICATE KEY UPDATE
  full_name = VALUES(full_name),
  university = VALUES(university),
  avatar_url = VALUES(avatar_url),
  updated_at = VALUES(updated_at)
`

const upsertProfileSQLite = `
INSERT INTO profiles (user_id, full_name, university, avatar_url, updated_at)
VALUES (:user_id, :full_name, :university, :avatar_url, :updated_at)
ON CONFLICT (user_id) DO UPDATE SET
  full_name = excluded.full_name,
  university = excluded.university,
  avatar_url = excluded.avatar_url,
  updated_at = excluded.updated_at
`

type ProfileRepository struct {
	db *sqlx.DB
}

type profileRow struct {
	UserID     string         `db:"user_id"`
	FullName   string         `db:"full_name"`
	University sql.NullString `db:"university"`
	AvatarURL  sql.NullString `db:"avatar_url"`
	UpdatedAt  time.Time      `db:"updated_at"`
}

var _ ports.ProfileRepository = (*ProfileRepository)(nil)

func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (domain.Profile, error) {
	var row profileRow
	err := r.db.GetContext(ctx, &row,
		"SELECT user_id, full_name, university, avatar_url, updated_at FROM profiles WHERE user_id = ?", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Profile{}, domain.ErrProfileNotFound
		}
		return domain.Profile{}, err
	}
	return domain.Profile{
		UserID:     row.UserID,
		FullName:   row.FullName,
		University: stringPtr(row.University),
		AvatarURL:  stringPtr(row.AvatarURL),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}, nil
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile domain.Profile) error {
	query := upsertProfileMySQL
	if r.db.DriverName() == config.DriverSQLite {
		query = upsertProfileSQLite
	}
	_, err := r.db.NamedExecContext(ctx, query, profileRow{
		UserID:     profile.UserID,
		FullName:   profile.FullName,
		University: nullString(profile.University),
		AvatarURL:  nullString(profile.AvatarURL),
		UpdatedAt:  profile.UpdatedAt.UTC(),
	})
	return err
}
