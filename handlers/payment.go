package handlers

import (
	"net/http"

	"bistro-api/apperr"
	"bistro-api/models"
	"bistro-api/payment"

	"github.com/gin-gonic/gin"
)

// PaymentIntentRequest accepts the order total as either "price" or "totalPrice".
type PaymentIntentRequest struct {
	Price      *float64 `json:"price"`
	TotalPrice *float64 `json:"totalPrice"`
}

func (r PaymentIntentRequest) amount() (float64, bool) {
	switch {
	case r.Price != nil:
		return *r.Price, true
	case r.TotalPrice != nil:
		return *r.TotalPrice, true
	default:
		return 0, false
	}
}

// CreatePaymentIntent asks the gateway for a card payment intent of the
// posted total and returns its client secret.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorHandler(c, badRequest("invalid payment request", err))
		return
	}
	price, ok := req.amount()
	if !ok {
		h.errorHandler(c, badRequest("price is required", nil))
		return
	}
	amount := payment.ToMinorUnits(price)
	if amount <= 0 {
		h.errorHandler(c, badRequest("price must be positive", nil))
		return
	}

	intent, err := h.Payments.CreateIntent(c.Request.Context(), amount, h.Currency)
	if err != nil {
		h.errorHandler(c, apperr.Wrap(apperr.UpstreamFailure, "payment gateway request failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}

// RecordPayment appends a completed payment.
func (h *Handler) RecordPayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		h.errorHandler(c, badRequest("invalid payment", err))
		return
	}
	res, err := h.Store.CreatePayment(c.Request.Context(), &p)
	if err != nil {
		h.errorHandler(c, storeError(err))
		return
	}
	c.JSON(http.StatusOK, res)
}
