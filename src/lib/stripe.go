package lib

import (
	"context"
	"math"
	"os"

	"github.com/stripe/stripe-go/v82"
)

var stripeClient *stripe.Client

func GetStripeClient() *stripe.Client {
	if stripeClient != nil {
		return stripeClient
	}
	apiKey := os.Getenv("STRIPE_SECRET_KEY")
	sc := stripe.NewClient(apiKey)
	stripeClient = sc

	return sc
}

func NewStripeClient(c *stripe.Client) {
	stripeClient = c
}

// CardCharger charges a card for the given amount in dollars using an
// opaque payment token and returns the gateway charge id.
type CardCharger interface {
	Charge(amount float64, token string) (string, error)
}

type stripeCharger struct{}

func (stripeCharger) Charge(amount float64, token string) (string, error) {
	sc := GetStripeClient()
	// Stripe expects the amount in cents.
	amountCents := int64(math.Round(amount * 100))
	params := &stripe.ChargeCreateParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String("Movie reservation payment"),
	}
	if err := params.SetSource(token); err != nil {
		return "", err
	}
	charge, err := sc.V1Charges.Create(context.Background(), params)
	if err != nil {
		return "", err
	}
	return charge.ID, nil
}

var cardCharger CardCharger = stripeCharger{}

func GetCardCharger() CardCharger {
	return cardCharger
}

// NewCardCharger replaces the gateway implementation; tests use this to
// stub out the network call.
func NewCardCharger(c CardCharger) {
	cardCharger = c
}
