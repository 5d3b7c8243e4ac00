package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repoMocks "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/marketplace-checkout/internal/services"
	sendgridMocks "github.com/aaravmahajanofficial/marketplace-checkout/pkg/sendgrid/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func TestSendPurchaseReceipt(t *testing.T) {
	ctx := t.Context()
	user := &models.User{ID: uuid.New(), Email: "buyer@example.com", Name: "Buyer"}
	result := &models.StoreCheckoutResult{
		StoreID:   uuid.New(),
		StoreName: "<b>Alpha</b>",
		Subtotal:  dec("24.00"),
		Charge:    models.ChargeSummary{ID: "pi_1", Amount: dec("24.00"), Status: "succeeded"},
		Purchases: []*models.PurchaseFull{{Quantity: 2, UnitPrice: dec("12"), TotalPrice: dec("24")}},
	}

	t.Run("Success - Sent And Recorded", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)

		var created *models.Notification
		repo.On("CreateNotification", ctx, mock.MatchedBy(func(n *models.Notification) bool {
			return n.UserID == user.ID && n.Type == models.NotificationTypePurchaseReceipt &&
				n.Recipient == user.Email && n.Status == models.StatusPending
		})).Run(func(args mock.Arguments) {
			created = args.Get(1).(*models.Notification)
		}).Return(nil).Once()
		email.On("Send", ctx, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
			return r.To == user.Email && r.Subject == "Your purchase at <b>Alpha</b>" &&
				strings.Contains(r.Content, "24.00") && !strings.Contains(r.HTMLContent, "<b>")
		})).Return(nil).Once()
		repo.On("UpdateNotificationStatus", ctx, mock.AnythingOfType("uuid.UUID"), models.StatusSent, "").
			Run(func(args mock.Arguments) {
				if created == nil || args.Get(1).(uuid.UUID) != created.ID {
					t.Errorf("status updated for an unknown notification")
				}
			}).Return(nil).Once()

		svc := service.NewNotificationService(repo, email)

		// Act
		svc.SendPurchaseReceipt(ctx, user, result)
	})

	t.Run("Failure - Send Error Is Recorded", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)

		repo.On("CreateNotification", ctx, mock.Anything).Return(nil).Once()
		email.On("Send", ctx, mock.Anything).Return(errors.New("sendgrid rejected")).Once()
		repo.On("UpdateNotificationStatus", ctx, mock.Anything, models.StatusFailed, "sendgrid rejected").Return(nil).Once()

		svc := service.NewNotificationService(repo, email)

		// Act
		svc.SendPurchaseReceipt(ctx, user, result)
	})

	t.Run("Failure - Record Error Skips Delivery", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)

		repo.On("CreateNotification", ctx, mock.Anything).Return(errors.New("db down")).Once()

		svc := service.NewNotificationService(repo, email)

		// Act
		svc.SendPurchaseReceipt(ctx, user, result)

		// Assert
		email.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Success - User Without Email Is Skipped", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)

		svc := service.NewNotificationService(repo, email)

		// Act
		svc.SendPurchaseReceipt(ctx, &models.User{ID: uuid.New()}, result)

		// Assert
		repo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	})
}

func TestSendLayawayReceipt(t *testing.T) {
	ctx := t.Context()
	user := &models.User{ID: uuid.New(), Email: "buyer@example.com"}
	layaway := &models.Layaway{
		TotalPrice: dec("1000"),
		AmountPaid: dec("300"),
		Balance:    dec("700"),
		Status:     models.LayawayStatusReserved,
	}

	// Arrange
	repo := repoMocks.NewNotificationRepository(t)
	email := sendgridMocks.NewEmailService(t)

	repo.On("CreateNotification", ctx, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == models.NotificationTypeLayawayReceipt
	})).Return(nil).Once()
	email.On("Send", ctx, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
		return r.Subject == "Layaway payment received for Sofa" &&
			strings.Contains(r.Content, "Balance due: 700.00") && strings.Contains(r.Content, "Paid so far: 300.00 of 1000.00")
	})).Return(nil).Once()
	repo.On("UpdateNotificationStatus", ctx, mock.Anything, models.StatusSent, "").Return(nil).Once()

	svc := service.NewNotificationService(repo, email)

	// Act
	svc.SendLayawayReceipt(ctx, user, layaway, "Sofa", models.ChargeSummary{ID: "pi_1", Amount: dec("300")})
}

func TestSendReservationNotice(t *testing.T) {
	ctx := t.Context()
	user := &models.User{ID: uuid.New(), Email: "buyer@example.com"}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)
		expires := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

		repo.On("CreateNotification", ctx, mock.Anything).Return(nil).Once()
		email.On("Send", ctx, mock.MatchedBy(func(r *models.EmailNotificationRequest) bool {
			return r.Subject == "Your items are reserved for pickup" &&
				strings.Contains(r.Content, "2 item(s)") && strings.Contains(r.Content, "2026-03-04 10:00 UTC")
		})).Return(nil).Once()
		repo.On("UpdateNotificationStatus", ctx, mock.Anything, models.StatusSent, "").Return(nil).Once()

		svc := service.NewNotificationService(repo, email)

		// Act
		svc.SendReservationNotice(ctx, user, []*models.Reservation{{ExpiresAt: expires}, {ExpiresAt: expires}})
	})

	t.Run("Success - Nothing Reserved", func(t *testing.T) {
		// Arrange
		repo := repoMocks.NewNotificationRepository(t)
		email := sendgridMocks.NewEmailService(t)

		svc := service.NewNotificationService(repo, email)

		// Act
		svc.SendReservationNotice(ctx, user, nil)

		// Assert
		repo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	})
}
