package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"melodex/config"
	"melodex/pkg/logger"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

type Channel string

func (c Channel) String() string {
	return string(c)
}

const (
	AUDIT_CHANNEL        Channel = "audit"
	INVALIDATION_CHANNEL Channel = "cache-invalidation"
)

type MessageType string

const (
	ENTITY_RESOLVED  MessageType = "entity_resolved"
	BATCH_COMPLETED  MessageType = "batch_completed"
	CACHE_INVALIDATE MessageType = "cache_invalidate"
)

type Event struct {
	ID        string         `json:"id"`
	Type      MessageType    `json:"type"`
	Channel   Channel        `json:"channel"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

type EventHandler func(event Event) error

// EventBus publishes JSON events over Valkey pub/sub. Consumers (audit
// collectors, edge caches) subscribe out of process; publishing never blocks
// ingestion.
type EventBus struct {
	client   valkey.Client
	logger   logger.Logger
	config   config.Config
	handlers map[Channel][]EventHandler
	mutex    sync.RWMutex
	ctx      context.Context
	cancel   context.CancelFunc
}

func New(client valkey.Client, config config.Config) *EventBus {
	ctx, cancel := context.WithCancel(context.Background())

	return &EventBus{
		client:   client,
		logger:   logger.New("EventBus"),
		config:   config,
		handlers: make(map[Channel][]EventHandler),
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (eb *EventBus) Publish(channel Channel, event Event) error {
	log := eb.logger.Function("Publish")

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Channel == "" {
		event.Channel = channel
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to marshal event", err, "eventID", event.ID)
	}

	if err := eb.client.Do(
		eb.ctx,
		eb.client.B().Publish().Channel(channel.String()).Message(string(eventData)).Build(),
	).Error(); err != nil {
		return log.Err("failed to publish event", err, "eventID", event.ID, "channel", channel)
	}

	eb.notifyLocal(channel, event)

	return nil
}

// Subscribe registers an in-process handler for a channel. Handlers run
// synchronously on the publishing goroutine; keep them cheap.
func (eb *EventBus) Subscribe(channel Channel, handler EventHandler) {
	eb.mutex.Lock()
	defer eb.mutex.Unlock()

	eb.handlers[channel] = append(eb.handlers[channel], handler)
}

func (eb *EventBus) notifyLocal(channel Channel, event Event) {
	eb.mutex.RLock()
	handlers := eb.handlers[channel]
	eb.mutex.RUnlock()

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			eb.logger.Er("event handler failed", err, "channel", channel, "eventID", event.ID)
		}
	}
}

func (eb *EventBus) Close() {
	eb.cancel()
}
