package handlers

import (
	"net/http"

	"bistro-api/policy"

	"github.com/gin-gonic/gin"
)

// Root answers the banner route.
func (h *Handler) Root(c *gin.Context) {
	c.String(http.StatusOK, "Bistro Boss Server is up and running")
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Bistro Boss API",
		"version": "1.0.0",
	})
}

// ListMenu returns every menu item (public).
func (h *Handler) ListMenu(c *gin.Context) {
	items, err := h.Store.ListMenu(c.Request.Context())
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListReviews returns every review (public).
func (h *Handler) ListReviews(c *gin.Context) {
	reviews, err := h.Store.ListReviews(c.Request.Context())
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// AccessRules describes which gate guards each route.
func (h *Handler) AccessRules(c *gin.Context) {
	rules := policy.Rules()
	out := make([]gin.H, 0, len(rules))
	for _, r := range rules {
		out = append(out, gin.H{
			"method": r.Method,
			"path":   r.Path,
			"gate":   r.Gate(),
			"note":   r.Note,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"rules":       out,
		"description": "Access rules: public routes need nothing, token routes need a bearer token, admin routes also need the admin role",
	})
}
