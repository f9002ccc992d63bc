package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/repository"
	"github.com/maheshrc27/creatordash/internal/service"
)

const orphanAge = 24 * time.Hour

type AssetCleanupJob struct {
	ar      repository.AssetRepository
	storage *service.StorageService
}

func NewAssetCleanupJob(ar repository.AssetRepository, storage *service.StorageService) *AssetCleanupJob {
	return &AssetCleanupJob{
		ar:      ar,
		storage: storage,
	}
}

// CleanupOrphans deletes uploaded images that were never attached to a
// content item. Uploads complete before the content row exists, so anything
// unreferenced after a day is an abandoned form.
func (c *AssetCleanupJob) CleanupOrphans() {
	ctx := context.Background()

	cutoff := time.Now().Add(-orphanAge)
	assets, err := c.ar.ListOrphanedBefore(ctx, cutoff)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, asset := range assets {

		wg.Add(1)
		semaphore <- struct{}{}

		go func(asset *models.Asset) {
			defer wg.Done()
			defer func() { <-semaphore }()

			if err := c.storage.RemoveObject(ctx, asset.FileKey); err != nil {
				slog.Info("Unable to remove orphaned object", "key", asset.FileKey)
				return
			}
			if err := c.ar.Remove(ctx, asset.ID); err != nil {
				slog.Info("Unable to remove asset record", "id", asset.ID)
			}
		}(asset)
	}

	wg.Wait()
}
