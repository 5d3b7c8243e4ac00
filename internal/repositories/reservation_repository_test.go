package repository_test

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var reservationRowColumns = []string{"id", "user_id", "store_id", "product_id", "quantity", "unit_price", "total_price", "status", "expires_at", "picked_up_at", "created_at", "updated_at"}

func TestReservationRepository(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewReservationRepo(db)
	ctx := t.Context()
	now := time.Now().UTC()

	reservation := &models.Reservation{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		StoreID:    uuid.New(),
		ProductID:  uuid.New(),
		Quantity:   3,
		UnitPrice:  decimal.RequireFromString("45.50"),
		TotalPrice: decimal.RequireFromString("136.50"),
		Status:     models.ReservationStatusPending,
		ExpiresAt:  now.Add(72 * time.Hour),
		CreatedAt:  now,
	}

	t.Run("CreateReservation", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO physical_reservations (id, user_id, store_id, product_id, quantity, unit_price, total_price, status, expires_at, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`)).
			WithArgs(reservation.ID, reservation.UserID, reservation.StoreID, reservation.ProductID, 3,
				reservation.UnitPrice, reservation.TotalPrice, models.ReservationStatusPending, reservation.ExpiresAt, reservation.CreatedAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateReservation(ctx, reservation))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetReservationForUpdate", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM physical_reservations WHERE id = $1 FOR UPDATE`)).
			WithArgs(reservation.ID).
			WillReturnRows(sqlmock.NewRows(reservationRowColumns).AddRow(
				reservation.ID.String(), reservation.UserID.String(), reservation.StoreID.String(), reservation.ProductID.String(),
				3, "45.50", "136.50", "pending", reservation.ExpiresAt, nil, now, now))

		got, err := repo.GetReservationForUpdate(ctx, reservation.ID)

		require.NoError(t, err)
		assert.Equal(t, models.ReservationStatusPending, got.Status)
		assert.WithinDuration(t, reservation.ExpiresAt, got.ExpiresAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetReservationByID - Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM physical_reservations WHERE id = $1`)).
			WithArgs(reservation.ID).WillReturnError(sql.ErrNoRows)

		got, err := repo.GetReservationByID(ctx, reservation.ID)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateReservationStatus to expired", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE physical_reservations SET status = $1, picked_up_at = $2, updated_at = NOW() WHERE id = $3`)).
			WithArgs(models.ReservationStatusExpired, nil, reservation.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateReservationStatus(ctx, reservation.ID, models.ReservationStatusExpired, nil))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ListReservationsByUser", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM physical_reservations WHERE user_id = $1 ORDER BY created_at DESC`)).
			WithArgs(reservation.UserID).
			WillReturnRows(sqlmock.NewRows(reservationRowColumns).AddRow(
				reservation.ID.String(), reservation.UserID.String(), reservation.StoreID.String(), reservation.ProductID.String(),
				3, "45.50", "136.50", "picked_up", reservation.ExpiresAt, now, now, now))

		got, err := repo.ListReservationsByUser(ctx, reservation.UserID)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, models.ReservationStatusPickedUp, got[0].Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
