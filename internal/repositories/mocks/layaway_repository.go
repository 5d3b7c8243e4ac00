package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type LayawayRepository struct {
	mock.Mock
}

func (_m *LayawayRepository) CreateLayaway(ctx context.Context, layaway *models.Layaway) error {
	ret := _m.Called(ctx, layaway)

	r0 := ret.Error(0)

	return r0
}

func (_m *LayawayRepository) GetLayawayByID(ctx context.Context, id uuid.UUID) (*models.Layaway, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Layaway
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Layaway)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *LayawayRepository) GetLayawayForUpdate(ctx context.Context, id uuid.UUID) (*models.Layaway, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Layaway
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Layaway)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *LayawayRepository) ListLayawaysByUser(ctx context.Context, userID uuid.UUID, status string) ([]*models.Layaway, error) {
	ret := _m.Called(ctx, userID, status)

	var r0 []*models.Layaway
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Layaway)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *LayawayRepository) UpdateLayaway(ctx context.Context, layaway *models.Layaway) error {
	ret := _m.Called(ctx, layaway)

	r0 := ret.Error(0)

	return r0
}

// NewLayawayRepository creates a LayawayRepository mock that asserts its expectations on cleanup.
func NewLayawayRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *LayawayRepository {
	m := &LayawayRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

