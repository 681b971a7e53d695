package service

import (
	"Market/events"
	"Market/models"
	"Market/store"
	"context"
	"errors"
	"fmt"
)

type ItemService struct {
	items     ItemRepository
	carts     CartRepository
	publisher events.Publisher
}

func NewItemService(items ItemRepository, carts CartRepository, publisher events.Publisher) *ItemService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ItemService{items: items, carts: carts, publisher: publisher}
}

func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	return s.items.ListItems(ctx)
}

func (s *ItemService) FindItemByID(ctx context.Context, id uint) (*models.Item, error) {
	item, err := s.items.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, itemNotFound(id)
		}
		return nil, err
	}
	return item, nil
}

// resolveCart checks that the cart exists before an item is pointed at it.
func (s *ItemService) resolveCart(ctx context.Context, cartID uint) (*models.Cart, error) {
	cart, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, cartNotFound(cartID)
		}
		return nil, err
	}
	return cart, nil
}

// CreateItem persists item under the cart referenced by item.Cart.ID. Nothing
// is written when that cart does not exist.
func (s *ItemService) CreateItem(ctx context.Context, item *models.Item) (*models.Item, error) {
	if item == nil {
		return nil, fmt.Errorf("%w: item must not be empty", ErrValidation)
	}
	if err := validateSerialNumber(item.SerialNumber); err != nil {
		return nil, err
	}

	cart, err := s.resolveCart(ctx, item.Cart.ID)
	if err != nil {
		return nil, err
	}

	item.ID = 0
	item.CartID = cart.ID
	if err := s.items.SaveItem(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	publish(ctx, s.publisher, events.New(events.ItemCreated, item.ID, item.CartID))
	return item, nil
}

// UpdateItem overwrites both the serial number and the cart of an existing
// item with the values in patch.
func (s *ItemService) UpdateItem(ctx context.Context, id uint, patch *models.Item) (*models.Item, error) {
	if patch == nil {
		return nil, fmt.Errorf("%w: item must not be empty", ErrValidation)
	}

	existing, err := s.FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateSerialNumber(patch.SerialNumber); err != nil {
		return nil, err
	}
	cart, err := s.resolveCart(ctx, patch.Cart.ID)
	if err != nil {
		return nil, err
	}

	existing.SerialNumber = patch.SerialNumber
	existing.CartID = cart.ID
	if err := s.items.SaveItem(ctx, existing); err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}

	publish(ctx, s.publisher, events.New(events.ItemUpdated, existing.ID, existing.CartID))
	return existing, nil
}

func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	existing, err := s.FindItemByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.items.DeleteItem(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return itemNotFound(id)
		}
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	publish(ctx, s.publisher, events.New(events.ItemDeleted, id, existing.CartID))
	return nil
}
