package repositories

import (
	"context"
	"time"

	"melodex/internal/database"
	. "melodex/internal/models"
	"melodex/pkg/logger"
)

type TrackRepository interface {
	Create(ctx context.Context, track *Track) (*Track, error)
	AbandonStalePendingUploads(ctx context.Context, olderThan time.Time) (int64, error)
}

type trackRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTrackRepository(db database.DB) TrackRepository {
	return &trackRepository{
		db:  db,
		log: logger.New("trackRepository"),
	}
}

func (r *trackRepository) Create(ctx context.Context, track *Track) (*Track, error) {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(track).Error; err != nil {
		return nil, log.Err("failed to create track", err, "title", track.Title)
	}

	return track, nil
}

// AbandonStalePendingUploads marks tracks whose deferred audio upload never
// completed within the retention window.
func (r *trackRepository) AbandonStalePendingUploads(
	ctx context.Context,
	olderThan time.Time,
) (int64, error) {
	log := r.log.Function("AbandonStalePendingUploads")

	result := r.db.SQLWithContext(ctx).
		Model(&Track{}).
		Where("upload_status = ? AND created_at < ?", UploadStatusPending, olderThan).
		Update("upload_status", UploadStatusAbandoned)
	if result.Error != nil {
		return 0, log.Err("failed to abandon stale pending uploads", result.Error)
	}

	if result.RowsAffected > 0 {
		log.Info("Abandoned stale pending uploads", "count", result.RowsAffected)
	}
	return result.RowsAffected, nil
}
