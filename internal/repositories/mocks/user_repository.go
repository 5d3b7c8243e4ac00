package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *UserRepository) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) (bool, error) {
	ret := _m.Called(ctx, id, customerID)

	r0 := ret.Get(0).(bool)
	r1 := ret.Error(1)

	return r0, r1
}

// NewUserRepository creates a UserRepository mock that asserts its expectations on cleanup.
func NewUserRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *UserRepository {
	m := &UserRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

