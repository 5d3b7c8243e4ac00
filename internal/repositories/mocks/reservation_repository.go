package mocks

import (
	"context"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ReservationRepository struct {
	mock.Mock
}

func (_m *ReservationRepository) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	ret := _m.Called(ctx, reservation)

	r0 := ret.Error(0)

	return r0
}

func (_m *ReservationRepository) GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationRepository) GetReservationForUpdate(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationRepository) ListReservationsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error) {
	ret := _m.Called(ctx, userID)

	var r0 []*models.Reservation
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*models.Reservation)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *ReservationRepository) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus, pickedUpAt *time.Time) error {
	ret := _m.Called(ctx, id, status, pickedUpAt)

	r0 := ret.Error(0)

	return r0
}

// NewReservationRepository creates a ReservationRepository mock that asserts its expectations on cleanup.
func NewReservationRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReservationRepository {
	m := &ReservationRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

