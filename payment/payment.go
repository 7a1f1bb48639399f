// Package payment turns an order total into a gateway payment intent.
package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// Intent is the part of a gateway payment intent the client needs.
type Intent struct {
	ID           string
	ClientSecret string
	Amount       int64
	Currency     string
}

// Gateway creates payment intents.
type Gateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

// ToMinorUnits converts a decimal price into the integer amount of the
// currency's minor unit, rounding half away from zero (12.50 -> 1250).
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// StripeGateway creates card payment intents through the Stripe API.
type StripeGateway struct {
	intents paymentintent.Client
}

// NewStripeGateway returns a gateway using secretKey. apiURL overrides the
// Stripe API base URL when non-empty. Network retries are disabled.
func NewStripeGateway(secretKey, apiURL string) *StripeGateway {
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelWarn},
	}
	if apiURL != "" {
		cfg.URL = stripe.String(apiURL)
	}
	return &StripeGateway{
		intents: paymentintent.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Key: secretKey,
		},
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("creating payment intent: %w", err)
	}
	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
