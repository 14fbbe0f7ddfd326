package jobs

import (
	"context"

	"melodex/internal/services"
	"melodex/pkg/logger"
)

type UploadCleanupJob struct {
	cleanup  *services.UploadCleanupService
	log      logger.Logger
	schedule services.Schedule
}

func NewUploadCleanupJob(
	cleanup *services.UploadCleanupService,
	schedule services.Schedule,
) *UploadCleanupJob {
	log := logger.New("uploadCleanupJob")
	log.Info("Creating new upload cleanup job", "schedule", schedule)

	return &UploadCleanupJob{
		cleanup:  cleanup,
		log:      log,
		schedule: schedule,
	}
}

func (j *UploadCleanupJob) Name() string {
	return "DeferredUploadCleanup"
}

func (j *UploadCleanupJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	log.Info("Starting stale upload cleanup check")

	if err := j.cleanup.CleanupStaleUploads(ctx); err != nil {
		return log.Err("stale upload cleanup failed", err)
	}

	log.Info("Stale upload cleanup check completed")
	return nil
}

func (j *UploadCleanupJob) Schedule() services.Schedule {
	return j.schedule
}
