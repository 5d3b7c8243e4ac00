package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/stretchr/testify/mock"
)

type RateLimitRepository struct {
	mock.Mock
}

func (_m *RateLimitRepository) CheckPaymentRateLimit(ctx context.Context, userID string) (bool, int, int, error) {
	ret := _m.Called(ctx, userID)

	r0 := ret.Get(0).(bool)
	r1 := ret.Get(1).(int)
	r2 := ret.Get(2).(int)
	r3 := ret.Error(3)

	return r0, r1, r2, r3
}

// NewRateLimitRepository creates a RateLimitRepository mock that asserts its expectations on cleanup.
func NewRateLimitRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RateLimitRepository {
	m := &RateLimitRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

type IdempotencyRepository struct {
	mock.Mock
}

func (_m *IdempotencyRepository) Acquire(ctx context.Context, key string) (bool, *models.IdempotentResponse, error) {
	ret := _m.Called(ctx, key)

	r0 := ret.Get(0).(bool)
	var r1 *models.IdempotentResponse
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*models.IdempotentResponse)
	}
	r2 := ret.Error(2)

	return r0, r1, r2
}

func (_m *IdempotencyRepository) Complete(ctx context.Context, key string, resp *models.IdempotentResponse) error {
	ret := _m.Called(ctx, key, resp)

	r0 := ret.Error(0)

	return r0
}

func (_m *IdempotencyRepository) Release(ctx context.Context, key string) error {
	ret := _m.Called(ctx, key)

	r0 := ret.Error(0)

	return r0
}

// NewIdempotencyRepository creates a IdempotencyRepository mock that asserts its expectations on cleanup.
func NewIdempotencyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdempotencyRepository {
	m := &IdempotencyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

