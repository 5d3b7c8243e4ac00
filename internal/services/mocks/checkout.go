package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func (_m *CheckoutService) CheckoutCart(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.CheckoutResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CheckoutResult)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CheckoutService) CheckoutStore(ctx context.Context, userID uuid.UUID, storeID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	ret := _m.Called(ctx, userID, storeID, req)

	var r0 *models.CheckoutResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CheckoutResult)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CheckoutService) MarkPurchasePickedUp(ctx context.Context, principal models.Principal, purchaseID uuid.UUID) (*models.PurchaseFull, error) {
	ret := _m.Called(ctx, principal, purchaseID)

	var r0 *models.PurchaseFull
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PurchaseFull)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CheckoutService) PurchaseProduct(ctx context.Context, userID uuid.UUID, req *models.PurchaseProductRequest) (*models.CheckoutResult, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.CheckoutResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.CheckoutResult)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewCheckoutService creates a CheckoutService mock that asserts its expectations on cleanup.
func NewCheckoutService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutService {
	m := &CheckoutService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

