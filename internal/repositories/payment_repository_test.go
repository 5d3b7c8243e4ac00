package repository_test

import (
	"database/sql"
	"errors"
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

func TestNewPaymentRepository(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewPaymentRepository(db)
	assert.NotNil(t, repo, "Expected a non-nil repository instance")
}

func TestPaymentRepository(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewPaymentRepository(db)
	ctx := t.Context()
	now := time.Now()
	userID := uuid.New()

	payment := &models.Payment{
		ID:            uuid.New(),
		UserID:        userID,
		StripeID:      "pi_123",
		Amount:        decimal.RequireFromString("300.00"),
		Currency:      "mxn",
		Description:   "Store checkout",
		Status:        models.PaymentStatusSucceeded,
		PaymentMethod: "pm_card_visa",
	}

	columns := []string{"id", "user_id", "stripe_id", "amount", "currency", "description", "status", "payment_method", "created_at", "updated_at"}

	t.Run("CreatePayment", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payments (id, user_id, stripe_id, amount, currency, description, status, payment_method, created_at, updated_at)`)).
			WithArgs(payment.ID, userID, "pi_123", payment.Amount, "mxn", "Store checkout", models.PaymentStatusSucceeded, "pm_card_visa").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		require.NoError(t, repo.CreatePayment(ctx, payment))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("GetPaymentByStripeID", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM payments WHERE stripe_id = $1`)).
			WithArgs("pi_123").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(payment.ID.String(), userID.String(), "pi_123", "300.00", "mxn", "Store checkout", "succeeded", "pm_card_visa", now, now))

		got, err := repo.GetPaymentByStripeID(ctx, "pi_123")

		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusSucceeded, got.Status)
		assert.True(t, payment.Amount.Equal(got.Amount))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdatePaymentStatus", func(t *testing.T) {
		expectedSQL := regexp.QuoteMeta(`UPDATE payments SET status = $1, updated_at = NOW() WHERE stripe_id = $2`)

		t.Run("Success", func(t *testing.T) {
			mock.ExpectExec(expectedSQL).WithArgs(models.PaymentStatusRefunded, "pi_123").WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.UpdatePaymentStatus(ctx, "pi_123", models.PaymentStatusRefunded))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Unknown Charge", func(t *testing.T) {
			mock.ExpectExec(expectedSQL).WithArgs(models.PaymentStatusRefunded, "pi_missing").WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.UpdatePaymentStatus(ctx, "pi_missing", models.PaymentStatusRefunded)

			assert.ErrorIs(t, err, sql.ErrNoRows)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("ListPaymentsOfUser", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payments WHERE user_id = $1`)).
				WithArgs(userID).
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
			mock.ExpectQuery(regexp.QuoteMeta(`FROM payments WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`)).
				WithArgs(userID, 10, 10).
				WillReturnRows(sqlmock.NewRows(columns).AddRow(payment.ID.String(), userID.String(), "pi_123", "300.00", "mxn", "Store checkout", "succeeded", "pm_card_visa", now, now))

			payments, total, err := repo.ListPaymentsOfUser(ctx, userID, 2, 10)

			require.NoError(t, err)
			assert.Equal(t, 11, total)
			assert.Len(t, payments, 1)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - Count Error", func(t *testing.T) {
			dbErr := errors.New("count failed")
			mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payments`)).WillReturnError(dbErr)

			payments, total, err := repo.ListPaymentsOfUser(ctx, userID, 1, 10)

			assert.Nil(t, payments)
			assert.Zero(t, total)
			assert.ErrorIs(t, err, dbErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})
}

func TestNotificationRepository(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewNotificationRepo(db)
	ctx := t.Context()

	notification := &models.Notification{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Type:      models.NotificationTypePurchaseReceipt,
		Recipient: "ana@example.com",
		Subject:   "Your purchase",
		Content:   "Thanks",
		Status:    models.StatusPending,
	}

	t.Run("CreateNotification", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO notifications (id, user_id, type, recipient, subject, content, status, error_message, created_at, updated_at)`)).
			WithArgs(notification.ID, notification.UserID, models.NotificationTypePurchaseReceipt, "ana@example.com", "Your purchase", "Thanks", models.StatusPending, "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.CreateNotification(ctx, notification))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateNotificationStatus - Not Found", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications SET status = $1, error_message = $2, updated_at = NOW() WHERE id = $3`)).
			WithArgs(models.StatusFailed, "bounced", notification.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, "bounced")

		assert.ErrorContains(t, err, "notification not found")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
