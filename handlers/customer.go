package handlers

import (
	"net/http"

	"bistro-api/apperr"
	"bistro-api/middleware"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
)

// ListCart returns the cart of ?email=, which must be the caller's own.
// Without an email the cart is empty.
func (h *Handler) ListCart(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, []models.CartItem{})
		return
	}
	if email != middleware.GetEmail(c) {
		h.errorHandler(c, apperr.New(apperr.Forbidden, "forbidden access"))
		return
	}

	items, err := h.Store.ListCartByEmail(c.Request.Context(), email)
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddToCart inserts a cart item as posted.
func (h *Handler) AddToCart(c *gin.Context) {
	var item models.CartItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.errorHandler(c, badRequest("invalid cart item", err))
		return
	}
	res, err := h.Store.CreateCartItem(c.Request.Context(), &item)
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// RemoveFromCart deletes a cart item by id. Ownership is not checked.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	res, err := h.Store.DeleteCartItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
