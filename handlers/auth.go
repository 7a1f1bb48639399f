package handlers

import (
	"errors"
	"net/http"

	"bistro-api/apperr"
	"bistro-api/middleware"
	"bistro-api/models"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
)

type TokenRequest struct {
	Email string `json:"email" binding:"required"`
}

// IssueToken signs an access token for the posted email.
func (h *Handler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorHandler(c, badRequest("email is required", err))
		return
	}
	token, err := middleware.GenerateToken(h.TokenSecret, req.Email)
	if err != nil {
		h.errorHandler(c, apperr.Wrap(apperr.Internal, "failed to sign token", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// CreateUser registers a user once per email. A repeat registration is a
// soft success carrying a message instead of an insert acknowledgement.
func (h *Handler) CreateUser(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		h.errorHandler(c, badRequest("invalid user", err))
		return
	}
	if user.Email == "" {
		h.errorHandler(c, badRequest("email is required", nil))
		return
	}
	// The role only changes through promotion.
	user.Role = models.RoleRegular

	ctx := c.Request.Context()
	_, err := h.Store.FindUserByEmail(ctx, user.Email)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.errorHandler(c, storeError(err))
		return
	}

	res, err := h.Store.CreateUser(ctx, &user)
	if errors.Is(err, store.ErrDuplicate) {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	}
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// IsAdmin reports whether the caller is an admin. Asking about any other
// email answers false instead of failing.
func (h *Handler) IsAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.GetEmail(c) {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}

	user, err := h.Store.FindUserByEmail(c.Request.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"isAdmin": false})
		return
	}
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": user.IsAdmin()})
}

// PromoteToAdmin sets the admin role on the user with the given id.
func (h *Handler) PromoteToAdmin(c *gin.Context) {
	res, err := h.Store.PromoteToAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
