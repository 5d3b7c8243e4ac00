package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/stretchr/testify/mock"
)

type PaymentGateway struct {
	mock.Mock
}

func (_m *PaymentGateway) AttachPaymentMethod(ctx context.Context, customerID string, paymentMethodID string) error {
	ret := _m.Called(ctx, customerID, paymentMethodID)

	r0 := ret.Error(0)

	return r0
}

func (_m *PaymentGateway) Charge(ctx context.Context, req *models.ChargeRequest) (*models.Charge, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.Charge
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Charge)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PaymentGateway) EnsureCustomer(ctx context.Context, user *models.User) (string, error) {
	ret := _m.Called(ctx, user)

	r0 := ret.Get(0).(string)
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PaymentGateway) Prepare(ctx context.Context, user *models.User, paymentMethodID string) error {
	ret := _m.Called(ctx, user, paymentMethodID)

	r0 := ret.Error(0)

	return r0
}

func (_m *PaymentGateway) Refund(ctx context.Context, charge *models.Charge) error {
	ret := _m.Called(ctx, charge)

	r0 := ret.Error(0)

	return r0
}

// NewPaymentGateway creates a PaymentGateway mock that asserts its expectations on cleanup.
func NewPaymentGateway(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentGateway {
	m := &PaymentGateway{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

