package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type LayawayService struct {
	mock.Mock
}

func (_m *LayawayService) CreateLayaway(ctx context.Context, userID uuid.UUID, req *models.CreateLayawayRequest) (*models.LayawayPaymentResult, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 *models.LayawayPaymentResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LayawayPaymentResult)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *LayawayService) GetLayaway(ctx context.Context, userID uuid.UUID, layawayID uuid.UUID) (*models.Layaway, error) {
	ret := _m.Called(ctx, userID, layawayID)

	var r0 *models.Layaway
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Layaway)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *LayawayService) ListLayaways(ctx context.Context, userID uuid.UUID, status string) ([]*models.Layaway, error) {
	ret := _m.Called(ctx, userID, status)

	var r0 []*models.Layaway
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Layaway)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *LayawayService) MarkPickedUp(ctx context.Context, principal models.Principal, layawayID uuid.UUID) (*models.Layaway, error) {
	ret := _m.Called(ctx, principal, layawayID)

	var r0 *models.Layaway
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Layaway)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *LayawayService) Pay(ctx context.Context, userID uuid.UUID, layawayID uuid.UUID, req *models.LayawayPaymentRequest) (*models.LayawayPaymentResult, error) {
	ret := _m.Called(ctx, userID, layawayID, req)

	var r0 *models.LayawayPaymentResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.LayawayPaymentResult)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewLayawayService creates a LayawayService mock that asserts its expectations on cleanup.
func NewLayawayService(t interface {
	mock.TestingT
	Cleanup(func())
}) *LayawayService {
	m := &LayawayService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

