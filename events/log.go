package events

import (
	"context"
	"log"
)

// LogPublisher writes every event to the standard logger.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, event Event) error {
	log.Printf("event %s %s entity=%d cart=%d", event.ID, event.Type, event.EntityID, event.CartID)
	return nil
}

func (LogPublisher) Close() error { return nil }
