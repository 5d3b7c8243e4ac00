package mocks

import (
	"context"

	stripeClient "github.com/aaravmahajanofficial/marketplace-checkout/pkg/stripe"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v81"
)

type Client struct {
	mock.Mock
}

func (_m *Client) CreateCustomer(ctx context.Context, email, name, userID string) (*stripe.Customer, error) {
	ret := _m.Called(ctx, email, name, userID)

	var r0 *stripe.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stripe.Customer)
	}

	return r0, ret.Error(1)
}

func (_m *Client) AttachPaymentMethod(ctx context.Context, paymentMethodID, customerID string) error {
	ret := _m.Called(ctx, paymentMethodID, customerID)

	return ret.Error(0)
}

func (_m *Client) CreatePaymentIntent(ctx context.Context, p stripeClient.ChargeParams) (*stripe.PaymentIntent, error) {
	ret := _m.Called(ctx, p)

	var r0 *stripe.PaymentIntent
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stripe.PaymentIntent)
	}

	return r0, ret.Error(1)
}

func (_m *Client) RefundPayment(ctx context.Context, paymentIntentID string, amount int64) (*stripe.Refund, error) {
	ret := _m.Called(ctx, paymentIntentID, amount)

	var r0 *stripe.Refund
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*stripe.Refund)
	}

	return r0, ret.Error(1)
}

func (_m *Client) VerifyWebhookSignature(payload []byte, signature string) (stripeClient.Event, error) {
	ret := _m.Called(payload, signature)

	return ret.Get(0).(stripeClient.Event), ret.Error(1)
}

// NewMockClient creates a Client mock that asserts its expectations on cleanup.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *Client {
	m := &Client{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
