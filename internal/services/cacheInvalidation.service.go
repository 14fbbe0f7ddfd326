package services

import (
	"context"
	"time"

	"melodex/internal/database"
	"melodex/internal/events"
	"melodex/pkg/logger"
)

// CacheInvalidationService tells the read-side caches which logical resource
// paths a batch touched. Fire-and-forget; emitted regardless of partial
// failure.
type CacheInvalidationService struct {
	db       database.DB
	eventBus *events.EventBus
	log      logger.Logger
}

func NewCacheInvalidationService(
	db database.DB,
	eventBus *events.EventBus,
) *CacheInvalidationService {
	return &CacheInvalidationService{
		db:       db,
		eventBus: eventBus,
		log:      logger.New("CacheInvalidationService"),
	}
}

func (s *CacheInvalidationService) Invalidate(paths []string) {
	if len(paths) == 0 {
		return
	}

	go func() {
		log := s.log.Function("Invalidate")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		for _, path := range paths {
			if err := s.db.FlushCachePrefix(ctx, path); err != nil {
				log.Er("failed to flush cache prefix", err, "path", path)
			}
		}

		err := s.eventBus.Publish(events.INVALIDATION_CHANNEL, events.Event{
			Type: events.CACHE_INVALIDATE,
			Data: map[string]any{
				"paths": paths,
			},
		})
		if err != nil {
			log.Er("failed to publish invalidation event", err, "paths", paths)
		}
	}()
}
