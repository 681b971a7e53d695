package handlers

import (
	"Market/models"
	"Market/service"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

type itemPayload struct {
	SerialNumber string `json:"serialNumber" binding:"required,max=20"`
}

type cartRequest struct {
	Name  string        `json:"name" binding:"required"`
	Items []itemPayload `json:"items" binding:"dive"`
}

// CreateCartHandler creates a cart together with the items in the body.
func CreateCartHandler(c *gin.Context, carts *service.CartService) {
	var cartReq cartRequest
	if err := c.ShouldBindJSON(&cartReq); err != nil {
		badRequest(c, "invalid cart", err)
		return
	}

	cart := models.Cart{
		Name:  cartReq.Name,
		Items: make([]models.Item, len(cartReq.Items)),
	}
	for i, item := range cartReq.Items {
		cart.Items[i].SerialNumber = item.SerialNumber
	}

	created, err := carts.CreateCartWithItems(c, &cart)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func GetCartHandler(c *gin.Context, carts *service.CartService) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cart, err := carts.FindCartByID(c, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cart)
}

// GetCartPageHandler lists carts one page at a time (?page=0&size=10).
func GetCartPageHandler(c *gin.Context, carts *service.CartService) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil {
		badRequest(c, "invalid page", err)
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(service.DefaultPageSize)))
	if err != nil {
		badRequest(c, "invalid size", err)
		return
	}

	cartPage, err := carts.GetCarts(c, page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, cartPage)
}

func GetAllCartsHandler(c *gin.Context, carts *service.CartService) {
	all, err := carts.GetAllCarts(c)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, all)
}

// DeleteCartHandler deletes the cart and every item in it.
func DeleteCartHandler(c *gin.Context, carts *service.CartService) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := carts.DeleteCart(c, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
