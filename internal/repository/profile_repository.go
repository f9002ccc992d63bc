package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/creatordash/internal/models"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, bool, error)
	Create(ctx context.Context, tx *sql.Tx, profile *models.Profile) (int64, error)
	UpdateTimezone(ctx context.Context, userID int64, timezone string) error
}

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, bool, error) {
	query := `SELECT id, user_id, timezone, created_at, updated_at FROM profiles WHERE user_id = $1`
	row := r.db.QueryRowContext(ctx, query, userID)

	var profile models.Profile
	err := row.Scan(&profile.ID, &profile.UserID, &profile.Timezone, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return &profile, true, nil
}

func (r *profileRepository) Create(ctx context.Context, tx *sql.Tx, profile *models.Profile) (int64, error) {
	query := `
		INSERT INTO profiles (user_id, timezone)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, profile.UserID, profile.Timezone).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, profile.UserID, profile.Timezone).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *profileRepository) UpdateTimezone(ctx context.Context, userID int64, timezone string) error {
	query := `
		UPDATE profiles
		SET timezone = $1,
			updated_at = $2
		WHERE user_id = $3
	`
	_, err := r.db.ExecContext(ctx, query, timezone, time.Now(), userID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
