package services

import (
	"melodex/internal/events"
	"melodex/internal/types"
	"melodex/pkg/logger"
)

// AuditService records entity resolutions and batch summaries on the audit
// channel. Fire-and-forget: ingestion never blocks on or retries audit
// delivery.
type AuditService struct {
	eventBus *events.EventBus
	log      logger.Logger
}

func NewAuditService(eventBus *events.EventBus) *AuditService {
	return &AuditService{
		eventBus: eventBus,
		log:      logger.New("AuditService"),
	}
}

func (s *AuditService) EntityResolved(kind string, entity ResolvedEntity) {
	go func() {
		err := s.eventBus.Publish(events.AUDIT_CHANNEL, events.Event{
			Type: events.ENTITY_RESOLVED,
			Data: map[string]any{
				"kind":        kind,
				"entityId":    entity.ID.String(),
				"displayName": entity.DisplayName,
				"created":     entity.WasCreated,
			},
		})
		if err != nil {
			s.log.Er("failed to publish entity audit event", err, "kind", kind)
		}
	}()
}

func (s *AuditService) BatchCompleted(result types.BatchResult) {
	go func() {
		err := s.eventBus.Publish(events.AUDIT_CHANNEL, events.Event{
			Type: events.BATCH_COMPLETED,
			Data: map[string]any{
				"success":      result.Success,
				"successCount": result.SuccessCount,
				"failedCount":  result.FailedCount,
			},
		})
		if err != nil {
			s.log.Er("failed to publish batch audit event", err)
		}
	}()
}
