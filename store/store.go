package store

import (
	"Market/models"
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"math"
)

// ErrNotFound is returned when no row matches the requested id.
var ErrNotFound = errors.New("record not found")

// Store persists carts and items through gorm.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// WithTx runs fn against a store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func itemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("items.id ASC")
}

func (s *Store) GetCart(ctx context.Context, id uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items", itemsByID).
		First(&cart, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get cart %d: %w", id, err)
	}
	cart.LinkItems()
	return &cart, nil
}

func (s *Store) ListCarts(ctx context.Context) ([]models.Cart, error) {
	carts := []models.Cart{}
	err := s.db.WithContext(ctx).
		Preload("Items", itemsByID).
		Order("id ASC").
		Find(&carts).
		Error
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	for i := range carts {
		carts[i].LinkItems()
	}
	return carts, nil
}

// ListCartsPage returns page number page (zero-indexed) of size carts in
// ascending id order.
func (s *Store) ListCartsPage(ctx context.Context, page, size int) (models.Page[models.Cart], error) {
	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.Cart{}).
		Count(&total).
		Error
	if err != nil {
		return models.Page[models.Cart]{}, fmt.Errorf("count carts: %w", err)
	}

	carts := []models.Cart{}
	// pages past the last row, including offsets that overflow int, are empty
	if size <= 0 || page > math.MaxInt/size || int64(page*size) >= total {
		return models.NewPage(carts, page, size, total), nil
	}
	err = s.db.WithContext(ctx).
		Preload("Items", itemsByID).
		Order("id ASC").
		Offset(page * size).
		Limit(size).
		Find(&carts).
		Error
	if err != nil {
		return models.Page[models.Cart]{}, fmt.Errorf("list carts page %d: %w", page, err)
	}
	for i := range carts {
		carts[i].LinkItems()
	}
	return models.NewPage(carts, page, size, total), nil
}

// SaveCart inserts the cart when it has no id and updates its name otherwise.
// Items are not touched; use CreateCartWithItems or SaveItem for those.
func (s *Store) SaveCart(ctx context.Context, cart *models.Cart) error {
	err := s.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(cart).
		Error
	if err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// CreateCartWithItems saves the cart first to obtain its id, then every
// supplied item with that id attached. Everything happens in one transaction.
func (s *Store) CreateCartWithItems(ctx context.Context, cart *models.Cart) error {
	items := cart.Items
	cart.ID = 0
	cart.Items = nil

	err := s.WithTx(ctx, func(tx *Store) error {
		if err := tx.SaveCart(ctx, cart); err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].CartID = cart.ID
			if err := tx.SaveItem(ctx, &items[i]); err != nil {
				return err
			}
		}
		return nil
	})
	cart.Items = items
	if err != nil {
		return err
	}
	cart.LinkItems()
	return nil
}

// DeleteCartCascade removes the cart and all of its items and reports whether
// the cart existed. Deleting a cart that does not exist is not an error.
func (s *Store) DeleteCartCascade(ctx context.Context, id uint) (bool, error) {
	var deleted bool
	err := s.WithTx(ctx, func(tx *Store) error {
		err := tx.db.
			Where("cart_id = ?", id).
			Delete(&models.Item{}).
			Error
		if err != nil {
			return fmt.Errorf("delete items of cart %d: %w", id, err)
		}
		result := tx.db.Delete(&models.Cart{}, id)
		if result.Error != nil {
			return fmt.Errorf("delete cart %d: %w", id, result.Error)
		}
		deleted = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func (s *Store) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	err := s.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}
	return &item, nil
}

func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Find(&items).
		Error
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// SaveItem inserts the item when it has no id and overwrites every column
// otherwise.
func (s *Store) SaveItem(ctx context.Context, item *models.Item) error {
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("save item: %w", err)
	}
	return nil
}

// DeleteItem returns ErrNotFound when no row was removed.
func (s *Store) DeleteItem(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Item{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete item %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping checks that the underlying connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
