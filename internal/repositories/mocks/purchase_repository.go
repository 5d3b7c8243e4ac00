package mocks

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type PurchaseRepository struct {
	mock.Mock
}

func (_m *PurchaseRepository) CreatePurchase(ctx context.Context, purchase *models.PurchaseFull) error {
	ret := _m.Called(ctx, purchase)

	r0 := ret.Error(0)

	return r0
}

func (_m *PurchaseRepository) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchaseFull, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.PurchaseFull
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PurchaseFull)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PurchaseRepository) GetPurchaseForUpdate(ctx context.Context, id uuid.UUID) (*models.PurchaseFull, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.PurchaseFull
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.PurchaseFull)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PurchaseRepository) ListPurchasesByUser(ctx context.Context, userID uuid.UUID, status string) ([]*models.PurchaseFull, error) {
	ret := _m.Called(ctx, userID, status)

	var r0 []*models.PurchaseFull
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.PurchaseFull)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *PurchaseRepository) MarkPickedUp(ctx context.Context, id uuid.UUID, at time.Time) error {
	ret := _m.Called(ctx, id, at)

	r0 := ret.Error(0)

	return r0
}

// NewPurchaseRepository creates a PurchaseRepository mock that asserts its expectations on cleanup.
func NewPurchaseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *PurchaseRepository {
	m := &PurchaseRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

