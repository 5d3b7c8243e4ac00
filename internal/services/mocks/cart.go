package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func (_m *CartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.CartView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartView)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, error) {
	ret := _m.Called(ctx, userID)

	var r0 *models.CartView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartView)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartService) Invalidate(ctx context.Context, userID uuid.UUID) {
	_m.Called(ctx, userID)
}

func (_m *CartService) RemoveItem(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	ret := _m.Called(ctx, userID, productID)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.CartView, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.CartView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CartView)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewCartService creates a CartService mock that asserts its expectations on cleanup.
func NewCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartService {
	m := &CartService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

