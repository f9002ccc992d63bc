package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/transfer"
)

type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Content, error)
	ListByUserID(ctx context.Context, userID int64) ([]*models.Content, error)
	Update(ctx context.Context, id int64, patch *transfer.ContentPatch) error
	UpdateStatus(ctx context.Context, status string, contentID int64) error
	CheckByUserID(ctx context.Context, contentID, userID int64) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type contentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) ContentRepository {
	return &contentRepository{db: db}
}

const contentColumns = "id, user_id, title, description, type, platform, scheduled_at, image_url, status, created_at, updated_at"

func (r *contentRepository) Create(ctx context.Context, content *models.Content) (int64, error) {
	query := `
		INSERT INTO content (user_id, title, description, type, platform, scheduled_at, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		content.UserID,
		content.Title,
		content.Description,
		content.Type,
		content.Platform,
		content.ScheduledAt,
		nullableString(content.ImageURL),
		content.Status,
	).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

func (r *contentRepository) GetByID(ctx context.Context, id int64) (*models.Content, error) {
	query := fmt.Sprintf("SELECT %s FROM content WHERE id = $1", contentColumns)
	row := r.db.QueryRowContext(ctx, query, id)

	content, err := scanContent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return content, nil
}

func (r *contentRepository) ListByUserID(ctx context.Context, userID int64) ([]*models.Content, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM content
		WHERE user_id = $1
		ORDER BY scheduled_at ASC NULLS LAST, id ASC
	`, contentColumns)

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var contents []*models.Content
	for rows.Next() {
		content, err := scanContent(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		contents = append(contents, content)
	}
	return contents, rows.Err()
}

// Update writes only the fields the patch carries. A patch with no fields set
// still bumps updated_at.
func (r *contentRepository) Update(ctx context.Context, id int64, patch *transfer.ContentPatch) error {
	var sets []string
	var args []interface{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Platform != nil {
		add("platform", *patch.Platform)
	}
	if patch.ImageURL != nil {
		add("image_url", nullableString(*patch.ImageURL))
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.SetScheduledAt {
		add("scheduled_at", patch.ScheduledAt)
	}
	add("updated_at", time.Now())

	args = append(args, id)
	query := fmt.Sprintf("UPDATE content SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) UpdateStatus(ctx context.Context, status string, contentID int64) error {
	query := `
		UPDATE content
		SET status = $1,
			updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.ExecContext(ctx, query, status, time.Now(), contentID)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *contentRepository) CheckByUserID(ctx context.Context, contentID, userID int64) (bool, error) {
	query := "SELECT 1 FROM content WHERE id = $1 AND user_id = $2"

	var result int
	err := r.db.QueryRowContext(ctx, query, contentID, userID).Scan(&result)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		slog.Info(err.Error())
		return false, err
	}

	return result == 1, nil
}

func (r *contentRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM content WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanContent(row rowScanner) (*models.Content, error) {
	var content models.Content
	var scheduledAt sql.NullTime
	var imageURL sql.NullString

	err := row.Scan(
		&content.ID,
		&content.UserID,
		&content.Title,
		&content.Description,
		&content.Type,
		&content.Platform,
		&scheduledAt,
		&imageURL,
		&content.Status,
		&content.CreatedAt,
		&content.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if scheduledAt.Valid {
		t := scheduledAt.Time
		content.ScheduledAt = &t
	}
	content.ImageURL = imageURL.String

	return &content, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
