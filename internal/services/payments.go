package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const CurrencyUSD = "usd"

// MaxPrice is the largest single charge Stripe accepts in USD.
const MaxPrice = 999999.99

// PaymentGateway creates card payment intents and hands back the secret the
// browser needs to confirm them.
type PaymentGateway interface {
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error)
}

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) *StripeGateway {
	return &StripeGateway{api: client.New(secretKey, nil)}
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("create payment intent: %w", err)
	}
	if intent.ClientSecret == "" {
		return "", errors.New("payment intent has no client secret")
	}
	return intent.ClientSecret, nil
}

// ToMinorUnits converts a major-unit price (dollars) to cents. Callers keep
// price within (0, MaxPrice].
func ToMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
