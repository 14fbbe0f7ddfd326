package services

import (
	"context"
	"time"

	"melodex/internal/repositories"
	"melodex/pkg/logger"
)

// UploadCleanupService abandons tracks whose deferred audio upload never
// arrived within the retention window.
type UploadCleanupService struct {
	tracks        repositories.TrackRepository
	retentionDays int
	log           logger.Logger
}

func NewUploadCleanupService(
	tracks repositories.TrackRepository,
	retentionDays int,
) *UploadCleanupService {
	return &UploadCleanupService{
		tracks:        tracks,
		retentionDays: retentionDays,
		log:           logger.New("UploadCleanupService"),
	}
}

func (s *UploadCleanupService) CleanupStaleUploads(ctx context.Context) error {
	log := s.log.Function("CleanupStaleUploads")

	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)
	abandoned, err := s.tracks.AbandonStalePendingUploads(ctx, cutoff)
	if err != nil {
		return log.Err("failed to clean up stale uploads", err)
	}

	if abandoned > 0 {
		log.Info("Cleaned up stale pending uploads", "count", abandoned, "cutoff", cutoff)
	}
	return nil
}
