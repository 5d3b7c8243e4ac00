package service_test

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repoMocks "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/marketplace-checkout/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListHistory(t *testing.T) {
	ctx := t.Context()
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	now := base.Add(100 * time.Hour)
	clock := func() time.Time { return now }
	userID := uuid.New()

	full := &models.PurchaseFull{ID: uuid.New(), UserID: userID, Status: models.PurchaseStatusPending, CreatedAt: base.Add(time.Hour)}
	layaway := &models.Layaway{ID: uuid.New(), UserID: userID, Status: models.LayawayStatusReserved, CreatedAt: base.Add(3 * time.Hour)}
	reservation := &models.Reservation{
		ID: uuid.New(), UserID: userID, Status: models.ReservationStatusPending,
		ExpiresAt: base.Add(74 * time.Hour), CreatedAt: base.Add(2 * time.Hour),
	}

	t.Run("Success - Merged Newest First", func(t *testing.T) {
		// Arrange
		purchases := repoMocks.NewPurchaseRepository(t)
		layaways := repoMocks.NewLayawayRepository(t)
		reservations := repoMocks.NewReservationRepository(t)

		purchases.On("ListPurchasesByUser", mock.Anything, userID, "").Return([]*models.PurchaseFull{full}, nil).Once()
		layaways.On("ListLayawaysByUser", mock.Anything, userID, "").Return([]*models.Layaway{layaway}, nil).Once()
		reservations.On("ListReservationsByUser", mock.Anything, userID).Return([]*models.Reservation{reservation}, nil).Once()

		svc := service.NewHistoryService(purchases, layaways, reservations, clock)

		// Act
		entries, err := svc.ListHistory(ctx, userID, "")

		// Assert
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, models.KindLayaway, entries[0].Kind)
		assert.Equal(t, models.KindPhysical, entries[1].Kind)
		assert.Equal(t, "expired", entries[1].Status)
		assert.Equal(t, models.KindFull, entries[2].Kind)
		assert.NotNil(t, entries[2].Full)
	})

	t.Run("Success - Status Filter Applies To Reservations", func(t *testing.T) {
		// Arrange
		purchases := repoMocks.NewPurchaseRepository(t)
		layaways := repoMocks.NewLayawayRepository(t)
		reservations := repoMocks.NewReservationRepository(t)

		purchases.On("ListPurchasesByUser", mock.Anything, userID, "pending").Return([]*models.PurchaseFull{full}, nil).Once()
		layaways.On("ListLayawaysByUser", mock.Anything, userID, "pending").Return(nil, nil).Once()
		reservations.On("ListReservationsByUser", mock.Anything, userID).Return([]*models.Reservation{reservation}, nil).Once()

		svc := service.NewHistoryService(purchases, layaways, reservations, clock)

		// Act
		entries, err := svc.ListHistory(ctx, userID, "pending")

		// Assert
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, full.ID, entries[0].ID)
	})

	t.Run("Failure - Invalid Status", func(t *testing.T) {
		// Arrange
		svc := service.NewHistoryService(repoMocks.NewPurchaseRepository(t), repoMocks.NewLayawayRepository(t), repoMocks.NewReservationRepository(t), clock)

		// Act
		entries, err := svc.ListHistory(ctx, userID, "shipped")

		// Assert
		assert.Nil(t, entries)
		requireAppError(t, err, appErrors.ErrCodeValidation)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		purchases := repoMocks.NewPurchaseRepository(t)
		purchases.On("ListPurchasesByUser", mock.Anything, userID, "").Return(nil, errors.New("db down")).Once()

		svc := service.NewHistoryService(purchases, repoMocks.NewLayawayRepository(t), repoMocks.NewReservationRepository(t), clock)

		// Act
		entries, err := svc.ListHistory(ctx, userID, "")

		// Assert
		assert.Nil(t, entries)
		requireAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestGetHistoryEntry(t *testing.T) {
	ctx := t.Context()
	userID := uuid.New()
	clock := func() time.Time { return time.Now() }

	t.Run("Success - Layaway", func(t *testing.T) {
		// Arrange
		layaways := repoMocks.NewLayawayRepository(t)
		l := &models.Layaway{ID: uuid.New(), UserID: userID, Status: models.LayawayStatusSettled}
		layaways.On("GetLayawayByID", mock.Anything, l.ID).Return(l, nil).Once()

		svc := service.NewHistoryService(repoMocks.NewPurchaseRepository(t), layaways, repoMocks.NewReservationRepository(t), clock)

		// Act
		entry, err := svc.GetEntry(ctx, userID, models.KindLayaway, l.ID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, "settled", entry.Status)
		assert.Same(t, l, entry.Layaway)
	})

	t.Run("Failure - Someone Else's Purchase", func(t *testing.T) {
		// Arrange
		purchases := repoMocks.NewPurchaseRepository(t)
		p := &models.PurchaseFull{ID: uuid.New(), UserID: uuid.New()}
		purchases.On("GetPurchaseByID", mock.Anything, p.ID).Return(p, nil).Once()

		svc := service.NewHistoryService(purchases, repoMocks.NewLayawayRepository(t), repoMocks.NewReservationRepository(t), clock)

		// Act
		entry, err := svc.GetEntry(ctx, userID, models.KindFull, p.ID)

		// Assert
		assert.Nil(t, entry)
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Missing Reservation", func(t *testing.T) {
		// Arrange
		reservations := repoMocks.NewReservationRepository(t)
		id := uuid.New()
		reservations.On("GetReservationByID", mock.Anything, id).Return(nil, sql.ErrNoRows).Once()

		svc := service.NewHistoryService(repoMocks.NewPurchaseRepository(t), repoMocks.NewLayawayRepository(t), reservations, clock)

		// Act
		entry, err := svc.GetEntry(ctx, userID, models.KindPhysical, id)

		// Assert
		assert.Nil(t, entry)
		requireAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Unknown Kind", func(t *testing.T) {
		// Arrange
		svc := service.NewHistoryService(repoMocks.NewPurchaseRepository(t), repoMocks.NewLayawayRepository(t), repoMocks.NewReservationRepository(t), clock)

		// Act
		entry, err := svc.GetEntry(ctx, userID, models.PurchaseKind("gift"), uuid.New())

		// Assert
		assert.Nil(t, entry)
		requireAppError(t, err, appErrors.ErrCodeBadRequest)
	})
}
