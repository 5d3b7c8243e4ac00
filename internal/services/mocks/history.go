package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type HistoryService struct {
	mock.Mock
}

func (_m *HistoryService) GetEntry(ctx context.Context, userID uuid.UUID, kind models.PurchaseKind, id uuid.UUID) (*models.HistoryEntry, error) {
	ret := _m.Called(ctx, userID, kind, id)

	var r0 *models.HistoryEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.HistoryEntry)
	}
	r1 := ret.Error(1)

	return r0, r1
}

func (_m *HistoryService) ListHistory(ctx context.Context, userID uuid.UUID, status string) ([]models.HistoryEntry, error) {
	ret := _m.Called(ctx, userID, status)

	var r0 []models.HistoryEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.HistoryEntry)
	}
	r1 := ret.Error(1)

	return r0, r1
}

// NewHistoryService creates a HistoryService mock that asserts its expectations on cleanup.
func NewHistoryService(t interface {
	mock.TestingT
	Cleanup(func())
}) *HistoryService {
	m := &HistoryService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

