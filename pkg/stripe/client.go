package stripe

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/customer"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"github.com/stripe/stripe-go/v81/paymentmethod"
	"github.com/stripe/stripe-go/v81/refund"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Event = stripe.Event

// ErrPaymentMethodAlreadyAttached is returned by AttachPaymentMethod when the
// method is already bound to a customer. Callers treat it as success.
var ErrPaymentMethodAlreadyAttached = errors.New("payment method already attached")

// ChargeParams describes one confirmed, off-session charge. Amount is in minor units.
type ChargeParams struct {
	Amount          int64
	Currency        string
	CustomerID      string
	PaymentMethodID string
	Description     string
	Metadata        map[string]string
}

// defines the methods that any of payment client must implement.
type Client interface {
	CreateCustomer(ctx context.Context, email, name, userID string) (*stripe.Customer, error)
	AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error
	CreatePaymentIntent(ctx context.Context, p ChargeParams) (*stripe.PaymentIntent, error)
	RefundPayment(ctx context.Context, paymentIntentID string, amount int64) (*stripe.Refund, error)
	VerifyWebhookSignature(payload []byte, signature string) (Event, error)
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(apiKey string, webhookSecret string) Client {
	stripe.Key = apiKey

	return &stripeClient{webhookSecret: webhookSecret}
}

func (s *stripeClient) CreateCustomer(ctx context.Context, email, name, userID string) (*stripe.Customer, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
		Name:  stripe.String(name),
	}
	params.Context = ctx
	params.AddMetadata("user_id", userID)
	// one customer per user even if two requests race the first checkout
	params.SetIdempotencyKey("customer-" + userID)

	c, err := customer.New(params)
	if err != nil {
		return nil, err
	}

	return c, nil
}

func (s *stripeClient) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error {
	params := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}
	params.Context = ctx

	_, err := paymentmethod.Attach(paymentMethodID, params)
	if err != nil && strings.Contains(Message(err), "already attached") {
		return ErrPaymentMethodAlreadyAttached
	}

	return err
}

// CreatePaymentIntent creates and confirms the intent in one call. Redirect-based
// methods are disabled so the result is final when the call returns.
func (s *stripeClient) CreatePaymentIntent(ctx context.Context, p ChargeParams) (*stripe.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(p.Amount),
		Currency:      stripe.String(p.Currency),
		Customer:      stripe.String(p.CustomerID),
		PaymentMethod: stripe.String(p.PaymentMethodID),
		Description:   stripe.String(p.Description),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return pi, nil
}

// RefundPayment refunds amount minor units; zero refunds the whole intent.
func (s *stripeClient) RefundPayment(ctx context.Context, paymentIntentID string, amount int64) (*stripe.Refund, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(paymentIntentID),
	}
	params.Context = ctx

	if amount > 0 {
		params.Amount = stripe.Int64(amount)
	}

	r, err := refund.New(params)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (s *stripeClient) VerifyWebhookSignature(payload []byte, signature string) (Event, error) {
	if s.webhookSecret == "" {
		return Event{}, errors.New("webhook secret not configured")
	}

	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}

// Message extracts the human readable part of a gateway error.
func Message(err error) string {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return stripeErr.Msg
	}

	return err.Error()
}
