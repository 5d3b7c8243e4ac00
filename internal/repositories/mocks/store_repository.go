package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type StoreRepository struct {
	mock.Mock
}

func (_m *StoreRepository) GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Store
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Store)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewStoreRepository creates a StoreRepository mock that asserts its expectations on cleanup.
func NewStoreRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreRepository {
	m := &StoreRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

