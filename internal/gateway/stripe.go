package gateway

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// PaymentGateway creates a payment intent for an amount and returns the
// client secret the frontend completes the charge with.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error)
}

// StripeGateway is the Stripe-backed gateway.
type StripeGateway struct{}

// NewStripeGateway configures the Stripe client with the account secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

// CreateIntent creates a card payment intent. Stripe amounts are integral
// cents, so the decimal is scaled before the call.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount decimal.Decimal) (string, error) {
	cents := amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(cents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	return intent.ClientSecret, nil
}
