package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/pkg/stripe"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PaymentService struct {
	mock.Mock
}

func (_m *PaymentService) ListPayments(ctx context.Context, userID uuid.UUID, page int, size int) ([]*models.Payment, int, error) {
	ret := _m.Called(ctx, userID, page, size)

	var r0 []*models.Payment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Payment)
	}
	r1 := ret.Get(1).(int)
	r2 := ret.Error(2)

	return r0, r1, r2
}

func (_m *PaymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {
	ret := _m.Called(ctx, payload, signature)

	r0 := ret.Get(0).(stripe.Event)
	r1 := ret.Error(1)

	return r0, r1
}

// NewPaymentService creates a PaymentService mock that asserts its expectations on cleanup.
func NewPaymentService(t interface {
	mock.TestingT
	Cleanup(func())
}) *PaymentService {
	m := &PaymentService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

