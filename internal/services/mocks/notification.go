package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/stretchr/testify/mock"
)

type NotificationService struct {
	mock.Mock
}

func (_m *NotificationService) SendLayawayReceipt(ctx context.Context, user *models.User, layaway *models.Layaway, productName string, charge models.ChargeSummary) {
	_m.Called(ctx, user, layaway, productName, charge)
}

func (_m *NotificationService) SendPurchaseReceipt(ctx context.Context, user *models.User, result *models.StoreCheckoutResult) {
	_m.Called(ctx, user, result)
}

func (_m *NotificationService) SendReservationNotice(ctx context.Context, user *models.User, reservations []*models.Reservation) {
	_m.Called(ctx, user, reservations)
}

// NewNotificationService creates a NotificationService mock that asserts its expectations on cleanup.
func NewNotificationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *NotificationService {
	m := &NotificationService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

