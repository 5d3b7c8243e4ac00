package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func (_m *CartRepository) AddLine(ctx context.Context, line *models.CartLine) error {
	ret := _m.Called(ctx, line)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	ret := _m.Called(ctx, userID)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) DeleteLine(ctx context.Context, userID uuid.UUID, productID uuid.UUID) error {
	ret := _m.Called(ctx, userID, productID)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) DeleteStoreLines(ctx context.Context, userID uuid.UUID, storeID uuid.UUID) error {
	ret := _m.Called(ctx, userID, storeID)

	r0 := ret.Error(0)

	return r0
}

func (_m *CartRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]models.CartLineDetail, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.CartLineDetail
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.CartLineDetail)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *CartRepository) UpdateQuantity(ctx context.Context, userID uuid.UUID, productID uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, userID, productID, quantity)

	r0 := ret.Error(0)

	return r0
}

// NewCartRepository creates a CartRepository mock that asserts its expectations on cleanup.
func NewCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartRepository {
	m := &CartRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

