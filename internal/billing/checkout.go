package billing

import (
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// SessionCreator defines the checkout contract with Stripe.
// Service depends ONLY on this interface.
type SessionCreator interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

// StripeSessions is the live implementation backed by the Stripe API.
// It reads the package-level stripe.Key set at startup.
type StripeSessions struct{}

func (StripeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

type Service struct {
	sessions SessionCreator
	baseURL  string
}

func NewService(sessions SessionCreator, baseURL string) *Service {
	return &Service{sessions: sessions, baseURL: baseURL}
}

// CreateSession starts a one-time USD payment for a credit pack and
// returns the hosted checkout URL. The buyer identity and credit count
// ride along as metadata so the webhook can reconcile the purchase.
func (s *Service) CreateSession(credits int64, price float64, email string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(fmt.Sprintf("%d MenuGenV2 Credits", credits)),
						Description: stripe.String(fmt.Sprintf("Purchase %d credits for menu processing", credits)),
					},
					// Stripe wants the smallest currency unit.
					UnitAmount: stripe.Int64(int64(math.Round(price * 100))),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/?success=true&credits=%d", s.baseURL, credits)),
		CancelURL:  stripe.String(s.baseURL + "/?canceled=true"),
	}

	params.AddMetadata("userId", email)
	params.AddMetadata("credits", strconv.FormatInt(credits, 10))

	sess, err := s.sessions.Create(params)
	if err != nil {
		return "", fmt.Errorf("stripe session create failed: %w", err)
	}

	return sess.URL, nil
}
