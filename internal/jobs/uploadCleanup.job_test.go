package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	. "melodex/internal/models"
	"melodex/internal/services"

	"github.com/stretchr/testify/assert"
)

type stubTrackRepo struct {
	cutoff time.Time
	count  int64
	err    error
}

func (s *stubTrackRepo) Create(_ context.Context, track *Track) (*Track, error) {
	return track, nil
}

func (s *stubTrackRepo) AbandonStalePendingUploads(_ context.Context, olderThan time.Time) (int64, error) {
	s.cutoff = olderThan
	if s.err != nil {
		return 0, s.err
	}
	return s.count, nil
}

func TestUploadCleanupJob_Name(t *testing.T) {
	job := NewUploadCleanupJob(nil, services.Daily)
	assert.Equal(t, "DeferredUploadCleanup", job.Name())
	assert.Equal(t, services.Daily, job.Schedule())
}

func TestUploadCleanupJob_Execute(t *testing.T) {
	repo := &stubTrackRepo{count: 2}
	cleanup := services.NewUploadCleanupService(repo, 14)
	job := NewUploadCleanupJob(cleanup, services.Daily)

	err := job.Execute(context.Background())

	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -14), repo.cutoff, time.Minute)
}

func TestUploadCleanupJob_ExecutePropagatesError(t *testing.T) {
	repo := &stubTrackRepo{err: errors.New("connection refused")}
	cleanup := services.NewUploadCleanupService(repo, 14)
	job := NewUploadCleanupJob(cleanup, services.Daily)

	err := job.Execute(context.Background())

	assert.Error(t, err)
}
