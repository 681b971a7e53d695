package service

import (
	"Market/events"
	"Market/models"
	"context"
	"fmt"
	"log"
	"unicode/utf8"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	maxSerialLength = 20
)

type CartRepository interface {
	GetCart(ctx context.Context, id uint) (*models.Cart, error)
	ListCarts(ctx context.Context) ([]models.Cart, error)
	ListCartsPage(ctx context.Context, page, size int) (models.Page[models.Cart], error)
	CreateCartWithItems(ctx context.Context, cart *models.Cart) error
	DeleteCartCascade(ctx context.Context, id uint) (bool, error)
}

type ItemRepository interface {
	GetItem(ctx context.Context, id uint) (*models.Item, error)
	ListItems(ctx context.Context) ([]models.Item, error)
	SaveItem(ctx context.Context, item *models.Item) error
	DeleteItem(ctx context.Context, id uint) error
}

// publish is best effort: a failed notification never fails the write that
// triggered it.
func publish(ctx context.Context, publisher events.Publisher, event events.Event) {
	if err := publisher.Publish(ctx, event); err != nil {
		log.Printf("failed to publish event %s (%s): %v", event.Type, event.ID, err)
	}
}

func validateSerialNumber(serial string) error {
	if serial == "" {
		return fmt.Errorf("%w: serialNumber must not be empty", ErrValidation)
	}
	if utf8.RuneCountInString(serial) > maxSerialLength {
		return fmt.Errorf("%w: serialNumber must be at most %d characters", ErrValidation, maxSerialLength)
	}
	return nil
}
