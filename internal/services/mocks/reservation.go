package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReservationService struct {
	mock.Mock
}

func (_m *ReservationService) GetReservation(ctx context.Context, userID uuid.UUID, reservationID uuid.UUID) (*models.Reservation, error) {
	ret := _m.Called(ctx, userID, reservationID)

	var r0 *models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationService) ListReservations(ctx context.Context, userID uuid.UUID, status string) ([]*models.Reservation, error) {
	ret := _m.Called(ctx, userID, status)

	var r0 []*models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationService) MarkPickedUp(ctx context.Context, principal models.Principal, reservationID uuid.UUID) (*models.Reservation, error) {
	ret := _m.Called(ctx, principal, reservationID)

	var r0 *models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationService) ReserveCart(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationService) ReserveProduct(ctx context.Context, userID uuid.UUID, req *models.ReserveProductRequest) ([]*models.Reservation, error) {
	ret := _m.Called(ctx, userID, req)

	var r0 []*models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationService) ReserveStore(ctx context.Context, userID uuid.UUID, storeID uuid.UUID) ([]*models.Reservation, error) {
	ret := _m.Called(ctx, userID, storeID)

	var r0 []*models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewReservationService creates a ReservationService mock that asserts its expectations on cleanup.
func NewReservationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReservationService {
	m := &ReservationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

