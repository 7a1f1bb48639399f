package handlers

import (
	"errors"

	"bistro-api/apperr"
	"bistro-api/payment"
	"bistro-api/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler holds the collaborators every route needs. Each route performs one
// store or gateway call and returns its result unmodified.
type Handler struct {
	Store       store.Store
	Payments    payment.Gateway
	TokenSecret string
	Currency    string
}

func NewHandler(s store.Store, gw payment.Gateway, tokenSecret, currency string) *Handler {
	return &Handler{
		Store:       s,
		Payments:    gw,
		TokenSecret: tokenSecret,
		Currency:    currency,
	}
}

// errorHandler logs err and writes {"error": message} with the mapped status.
func (h *Handler) errorHandler(c *gin.Context, err error) {
	entry := logrus.WithError(err).WithFields(logrus.Fields{
		"method": c.Request.Method,
		"path":   c.FullPath(),
		"kind":   apperr.KindOf(err).String(),
	})
	switch apperr.KindOf(err) {
	case apperr.UpstreamFailure, apperr.Internal:
		entry.Error("request failed")
	default:
		entry.Debug("request refused")
	}
	c.JSON(apperr.Status(err), gin.H{"error": apperr.Message(err)})
}

// storeError classifies an error returned by the store.
func storeError(err error) error {
	if errors.Is(err, store.ErrInvalidID) {
		return apperr.Wrap(apperr.InvalidInput, "invalid id", err)
	}
	return apperr.Wrap(apperr.UpstreamFailure, "datastore request failed", err)
}

func badRequest(msg string, err error) error {
	if err == nil {
		return apperr.New(apperr.InvalidInput, msg)
	}
	return apperr.Wrap(apperr.InvalidInput, msg, err)
}
