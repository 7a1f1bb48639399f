package handlers

import (
	"net/http"

	"bistro-api/models"

	"github.com/gin-gonic/gin"
)

// CreateMenuItem inserts a menu item (admin only).
func (h *Handler) CreateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := c.ShouldBindJSON(&item); err != nil {
		h.errorHandler(c, badRequest("invalid menu item", err))
		return
	}
	res, err := h.Store.CreateMenuItem(c.Request.Context(), &item)
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteMenuItem removes a menu item by id (admin only).
func (h *Handler) DeleteMenuItem(c *gin.Context) {
	res, err := h.Store.DeleteMenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListUsers returns all users (admin only).
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, users)
}
