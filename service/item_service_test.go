package service_test

import (
	"context"
	"fmt"
	"testing"

	"Market/events"
	"Market/models"
	"Market/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItem(t *testing.T) {
	t.Parallel()
	carts, items, recorder := newServices(t)
	ctx := context.Background()

	cart, err := carts.CreateCartWithItems(ctx, &models.Cart{Name: "Cart 1"})
	require.NoError(t, err)

	created, err := items.CreateItem(ctx, &models.Item{
		SerialNumber: "SN1",
		Cart:         models.CartRef{ID: cart.ID},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, cart.ID, created.Cart.ID)

	found, err := items.FindItemByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	reloaded, err := carts.FindCartByID(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, created.ID, reloaded.Items[0].ID)

	assert.Equal(t, []string{events.CartCreated, events.ItemCreated}, recorder.Types())
}

func TestCreateItem_CartNotFound(t *testing.T) {
	t.Parallel()
	_, items, recorder := newServices(t)
	ctx := context.Background()

	_, err := items.CreateItem(ctx, &models.Item{
		SerialNumber: "SN1",
		Cart:         models.CartRef{ID: 404},
	})
	require.Error(t, err)
	assert.True(t, service.IsNotFound(err))
	assert.EqualError(t, err, "Cart not found with id 404")

	all, err := items.GetAllItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, recorder.Types())
}

func TestCreateItem_Validation(t *testing.T) {
	t.Parallel()
	carts, items, _ := newServices(t)
	ctx := context.Background()

	cart, err := carts.CreateCartWithItems(ctx, &models.Cart{Name: "c"})
	require.NoError(t, err)

	_, err = items.CreateItem(ctx, nil)
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = items.CreateItem(ctx, &models.Item{Cart: models.CartRef{ID: cart.ID}})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = items.CreateItem(ctx, &models.Item{
		SerialNumber: "this-serial-is-too-long",
		Cart:         models.CartRef{ID: cart.ID},
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateItem_OverwritesSerialAndCart(t *testing.T) {
	t.Parallel()
	carts, items, recorder := newServices(t)
	ctx := context.Background()

	from, err := carts.CreateCartWithItems(ctx, &models.Cart{Name: "from", Items: []models.Item{{SerialNumber: "OLD"}}})
	require.NoError(t, err)
	to, err := carts.CreateCartWithItems(ctx, &models.Cart{Name: "to"})
	require.NoError(t, err)
	itemID := from.Items[0].ID

	updated, err := items.UpdateItem(ctx, itemID, &models.Item{
		SerialNumber: "NEW",
		Cart:         models.CartRef{ID: to.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, itemID, updated.ID)
	assert.Equal(t, "NEW", updated.SerialNumber)
	assert.Equal(t, to.ID, updated.Cart.ID)

	reloadedFrom, err := carts.FindCartByID(ctx, from.ID)
	require.NoError(t, err)
	assert.Empty(t, reloadedFrom.Items)

	reloadedTo, err := carts.FindCartByID(ctx, to.ID)
	require.NoError(t, err)
	require.Len(t, reloadedTo.Items, 1)
	assert.Equal(t, "NEW", reloadedTo.Items[0].SerialNumber)

	assert.Equal(t, events.ItemUpdated, recorder.Types()[len(recorder.Types())-1])
}

func TestUpdateItem_NotFoundLeavesStoreUnchanged(t *testing.T) {
	t.Parallel()
	carts, items, _ := newServices(t)
	ctx := context.Background()

	cart, err := carts.CreateCartWithItems(ctx, &models.Cart{Name: "c", Items: []models.Item{{SerialNumber: "SN1"}}})
	require.NoError(t, err)

	_, err = items.UpdateItem(ctx, 999, &models.Item{SerialNumber: "SN2", Cart: models.CartRef{ID: cart.ID}})
	require.Error(t, err)
	assert.EqualError(t, err, "Item not found with id 999")

	all, err := items.GetAllItems(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "SN1", all[0].SerialNumber)
}

func TestUpdateItem_UnknownTargetCart(t *testing.T) {
	t.Parallel()
	carts, items, _ := newServices(t)
	ctx := context.Background()

	cart, err := carts.CreateCartWithItems(ctx, &models.Cart{Name: "c", Items: []models.Item{{SerialNumber: "SN1"}}})
	require.NoError(t, err)

	_, err = items.UpdateItem(ctx, cart.Items[0].ID, &models.Item{SerialNumber: "SN2", Cart: models.CartRef{ID: 555}})
	assert.EqualError(t, err, "Cart not found with id 555")

	found, err := items.FindItemByID(ctx, cart.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "SN1", found.SerialNumber)
}

func TestDeleteItem(t *testing.T) {
	t.Parallel()
	carts, items, recorder := newServices(t)
	ctx := context.Background()

	cart, err := carts.CreateCartWithItems(ctx, &models.Cart{Name: "c", Items: []models.Item{{SerialNumber: "SN1"}}})
	require.NoError(t, err)
	itemID := cart.Items[0].ID

	require.NoError(t, items.DeleteItem(ctx, itemID))
	_, err = items.FindItemByID(ctx, itemID)
	assert.True(t, service.IsNotFound(err))

	err = items.DeleteItem(ctx, itemID)
	assert.EqualError(t, err, fmt.Sprintf("Item not found with id %d", itemID))

	last := recorder.Events()[len(recorder.Events())-1]
	assert.Equal(t, events.ItemDeleted, last.Type)
	assert.Equal(t, cart.ID, last.CartID)
}
