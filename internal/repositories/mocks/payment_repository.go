package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PaymentRepository struct {
	mock.Mock
}

func (_m *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {
	ret := _m.Called(ctx, payment)

	r0 := ret.Error(0)

	return r0
}

func (_m *PaymentRepository) GetPaymentByStripeID(ctx context.Context, stripeID string) (*models.Payment, error) {
	ret := _m.Called(ctx, stripeID)

	var r0 *models.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Payment)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PaymentRepository) ListPaymentsOfUser(ctx context.Context, userID uuid.UUID, page int, size int) ([]*models.Payment, int, error) {
	ret := _m.Called(ctx, userID, page, size)

	var r0 []*models.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Payment)
	}
	r1 := ret.Get(1).(int)
	r2 := ret.Error(2)

	return r0, r1, r2
}

func (_m *PaymentRepository) UpdatePaymentStatus(ctx context.Context, stripeID string, status models.PaymentStatus) error {
	ret := _m.Called(ctx, stripeID, status)

	r0 := ret.Error(0)

	return r0
}

// NewPaymentRepository creates a PaymentRepository mock that asserts its expectations on cleanup.
func NewPaymentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentRepository {
	m := &PaymentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

