package events

import (
	"context"
	"github.com/google/uuid"
	"time"
)

const (
	CartCreated = "cart.created"
	CartDeleted = "cart.deleted"
	ItemCreated = "item.created"
	ItemUpdated = "item.updated"
	ItemDeleted = "item.deleted"
)

// Event is a lifecycle notification emitted after a successful write.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   uint      `json:"entityId"`
	CartID     uint      `json:"cartId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

func New(eventType string, entityID, cartID uint) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		EntityID:   entityID,
		CartID:     cartID,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
