package handlers

import (
	"Market/models"
	"Market/service"
	"github.com/gin-gonic/gin"
	"net/http"
)

type cartReference struct {
	ID uint `json:"id" binding:"required"`
}

type itemRequest struct {
	SerialNumber string         `json:"serialNumber" binding:"required,max=20"`
	Cart         *cartReference `json:"cart" binding:"required"`
}

func (r itemRequest) toItem() *models.Item {
	return &models.Item{
		SerialNumber: r.SerialNumber,
		Cart:         models.CartRef{ID: r.Cart.ID},
	}
}

func GetAllItemsHandler(c *gin.Context, items *service.ItemService) {
	all, err := items.GetAllItems(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, all)
}

func GetItemHandler(c *gin.Context, items *service.ItemService) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := items.FindItemByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateItemHandler adds an item to the cart named by cart.id; 404 when that
// cart does not exist.
func CreateItemHandler(c *gin.Context, items *service.ItemService) {
	var itemReq itemRequest
	if err := c.ShouldBindJSON(&itemReq); err != nil {
		badRequest(c, "invalid item", err)
		return
	}

	created, err := items.CreateItem(c, itemReq.toItem())
	if err != nil {
		respondError(c, err)
		return
	}
	if created == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "item was not created",
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateItemHandler overwrites both serialNumber and cart of an existing item.
func UpdateItemHandler(c *gin.Context, items *service.ItemService) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var itemReq itemRequest
	if err := c.ShouldBindJSON(&itemReq); err != nil {
		badRequest(c, "invalid item", err)
		return
	}

	updated, err := items.UpdateItem(c, id, itemReq.toItem())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func DeleteItemHandler(c *gin.Context, items *service.ItemService) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := items.DeleteItem(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
