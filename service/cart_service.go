package service

import (
	"Market/events"
	"Market/models"
	"Market/store"
	"context"
	"errors"
	"fmt"
)

type CartService struct {
	carts     CartRepository
	publisher events.Publisher
}

func NewCartService(carts CartRepository, publisher events.Publisher) *CartService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &CartService{carts: carts, publisher: publisher}
}

// CreateCartWithItems persists the cart and then each of its items with the
// new cart id attached. The returned cart carries every generated id.
func (s *CartService) CreateCartWithItems(ctx context.Context, cart *models.Cart) (*models.Cart, error) {
	if cart == nil || cart.Name == "" {
		return nil, fmt.Errorf("%w: cart name must not be empty", ErrValidation)
	}
	for _, item := range cart.Items {
		if err := validateSerialNumber(item.SerialNumber); err != nil {
			return nil, err
		}
	}

	if err := s.carts.CreateCartWithItems(ctx, cart); err != nil {
		return nil, fmt.Errorf("create cart: %w", err)
	}

	publish(ctx, s.publisher, events.New(events.CartCreated, cart.ID, cart.ID))
	return cart, nil
}

func (s *CartService) FindCartByID(ctx context.Context, id uint) (*models.Cart, error) {
	cart, err := s.carts.GetCart(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cartNotFound(id)
		}
		return nil, err
	}
	return cart, nil
}

// GetCarts returns one page of carts ordered by ascending id. A negative
// page is treated as the first page and size is clamped to [1, MaxPageSize].
func (s *CartService) GetCarts(ctx context.Context, page, size int) (models.Page[models.Cart], error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return s.carts.ListCartsPage(ctx, page, size)
}

func (s *CartService) GetAllCarts(ctx context.Context) ([]models.Cart, error) {
	return s.carts.ListCarts(ctx)
}

// DeleteCart removes the cart together with all of its items. Deleting an
// absent cart succeeds without publishing anything.
func (s *CartService) DeleteCart(ctx context.Context, id uint) error {
	deleted, err := s.carts.DeleteCartCascade(ctx, id)
	if err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	if deleted {
		publish(ctx, s.publisher, events.New(events.CartDeleted, id, id))
	}
	return nil
}
