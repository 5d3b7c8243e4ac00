package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/aaravmahajanofficial/marketplace-checkout/pkg/sendgrid"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// NotificationService sends receipts after committed purchases. Delivery is
// best effort: failures are logged and recorded, never returned.
type NotificationService interface {
	SendPurchaseReceipt(ctx context.Context, user *models.User, result *models.StoreCheckoutResult)
	SendLayawayReceipt(ctx context.Context, user *models.User, layaway *models.Layaway, productName string, charge models.ChargeSummary)
	SendReservationNotice(ctx context.Context, user *models.User, reservations []*models.Reservation)
}

type notificationService struct {
	repo         repository.NotificationRepository
	emailService sendgrid.EmailService
	policy       *bluemonday.Policy
}

func NewNotificationService(repo repository.NotificationRepository, emailService sendgrid.EmailService) NotificationService {
	return &notificationService{repo: repo, emailService: emailService, policy: bluemonday.StrictPolicy()}
}

func (n *notificationService) SendPurchaseReceipt(ctx context.Context, user *models.User, result *models.StoreCheckoutResult) {
	subject := fmt.Sprintf("Your purchase at %s", result.StoreName)

	var text, html strings.Builder

	fmt.Fprintf(&text, "Thank you for your purchase at %s.\n", result.StoreName)
	fmt.Fprintf(&html, "<p>Thank you for your purchase at <strong>%s</strong>.</p><ul>", n.policy.Sanitize(result.StoreName))

	for _, p := range result.Purchases {
		fmt.Fprintf(&text, "- %d x %s = %s\n", p.Quantity, p.UnitPrice.StringFixed(2), p.TotalPrice.StringFixed(2))
		fmt.Fprintf(&html, "<li>%d &times; %s = %s</li>", p.Quantity, p.UnitPrice.StringFixed(2), p.TotalPrice.StringFixed(2))
	}

	fmt.Fprintf(&text, "Total charged: %s (reference %s)\n", result.Subtotal.StringFixed(2), result.Charge.ID)
	fmt.Fprintf(&html, "</ul><p>Total charged: %s</p><p>Reference: %s</p>",
		result.Subtotal.StringFixed(2), n.policy.Sanitize(result.Charge.ID))

	n.deliver(ctx, user, models.NotificationTypePurchaseReceipt, subject, text.String(), html.String())
}

func (n *notificationService) SendLayawayReceipt(ctx context.Context, user *models.User, layaway *models.Layaway, productName string, charge models.ChargeSummary) {
	subject := fmt.Sprintf("Layaway payment received for %s", productName)

	text := fmt.Sprintf("We received %s for %s.\nPaid so far: %s of %s. Balance due: %s.\nStatus: %s\n",
		charge.Amount.StringFixed(2), productName, layaway.AmountPaid.StringFixed(2),
		layaway.TotalPrice.StringFixed(2), layaway.Balance.StringFixed(2), layaway.Status)

	html := fmt.Sprintf("<p>We received <strong>%s</strong> for %s.</p><p>Paid so far: %s of %s. Balance due: %s.</p><p>Status: %s</p>",
		charge.Amount.StringFixed(2), n.policy.Sanitize(productName), layaway.AmountPaid.StringFixed(2),
		layaway.TotalPrice.StringFixed(2), layaway.Balance.StringFixed(2), layaway.Status)

	n.deliver(ctx, user, models.NotificationTypeLayawayReceipt, subject, text, html)
}

func (n *notificationService) SendReservationNotice(ctx context.Context, user *models.User, reservations []*models.Reservation) {
	if len(reservations) == 0 {
		return
	}

	expiresAt := reservations[0].ExpiresAt.UTC().Format("2006-01-02 15:04 MST")

	subject := "Your items are reserved for pickup"
	text := fmt.Sprintf("%d item(s) are reserved for you. Pick them up before %s or the reservation expires.\n",
		len(reservations), expiresAt)
	html := fmt.Sprintf("<p>%d item(s) are reserved for you.</p><p>Pick them up before <strong>%s</strong> or the reservation expires.</p>",
		len(reservations), expiresAt)

	n.deliver(ctx, user, models.NotificationTypeReservationNotice, subject, text, html)
}

func (n *notificationService) deliver(ctx context.Context, user *models.User, kind models.NotificationType, subject, text, html string) {
	logger := middleware.LoggerFromContext(ctx)

	if user == nil || user.Email == "" {
		return
	}

	notification := &models.Notification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Type:      kind,
		Recipient: user.Email,
		Subject:   subject,
		Content:   text,
		Status:    models.StatusPending,
	}

	if err := n.repo.CreateNotification(ctx, notification); err != nil {
		logger.Error("Failed to create notification record", slog.Any("error", err))
		return
	}

	err := n.emailService.Send(ctx, &models.EmailNotificationRequest{
		To:          user.Email,
		Subject:     subject,
		Content:     text,
		HTMLContent: html,
	})
	if err != nil {
		logger.Error("Failed to send notification", slog.String("type", string(kind)), slog.Any("error", err))

		if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusFailed, err.Error()); err != nil {
			logger.Error("Failed to update notification status", slog.Any("error", err))
		}

		return
	}

	if err := n.repo.UpdateNotificationStatus(ctx, notification.ID, models.StatusSent, ""); err != nil {
		logger.Error("Failed to update notification status", slog.Any("error", err))
	}
}
