package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/maheshrc27/creatordash/internal/models"
)

type AssetRepository interface {
	Create(ctx context.Context, asset *models.Asset) (int64, error)
	ListOrphanedBefore(ctx context.Context, cutoff time.Time) ([]*models.Asset, error)
	Remove(ctx context.Context, id int64) error
}

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(ctx context.Context, asset *models.Asset) (int64, error) {
	query := `
		INSERT INTO assets (user_id, file_key, file_type, file_size, file_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, asset.UserID, asset.FileKey, asset.FileType, asset.FileSize, asset.FileURL).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, err
	}

	return id, nil
}

// ListOrphanedBefore returns assets uploaded before cutoff that no content row
// references. Uploads happen before the content row is created, so an
// abandoned form leaves such a row behind.
func (r *assetRepository) ListOrphanedBefore(ctx context.Context, cutoff time.Time) ([]*models.Asset, error) {
	query := `
		SELECT a.id, a.user_id, a.file_key, a.file_type, a.file_size, a.file_url, a.created_at
		FROM assets a
		WHERE a.created_at < $1
		  AND NOT EXISTS (SELECT 1 FROM content c WHERE c.image_url = a.file_url)
	`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var assets []*models.Asset
	for rows.Next() {
		var asset models.Asset
		err := rows.Scan(&asset.ID, &asset.UserID, &asset.FileKey, &asset.FileType, &asset.FileSize, &asset.FileURL, &asset.CreatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		assets = append(assets, &asset)
	}
	return assets, rows.Err()
}

func (r *assetRepository) Remove(ctx context.Context, id int64) error {
	query := `DELETE FROM assets WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
