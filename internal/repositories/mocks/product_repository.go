package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ProductRepository struct {
	mock.Mock
}

func (_m *ProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Product)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ProductRepository) ReserveStock(ctx context.Context, id uuid.UUID, quantity int) error {
	ret := _m.Called(ctx, id, quantity)

	r0 := ret.Error(0)

	return r0
}

// NewProductRepository creates a ProductRepository mock that asserts its expectations on cleanup.
func NewProductRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductRepository {
	m := &ProductRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

