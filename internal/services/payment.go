package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/aaravmahajanofficial/marketplace-checkout/pkg/stripe"
	"github.com/google/uuid"
)

type PaymentService interface {
	ListPayments(ctx context.Context, userID uuid.UUID, page, size int) ([]*models.Payment, int, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error)
}

type paymentService struct {
	repo         repository.PaymentRepository
	stripeClient stripe.Client
}

func NewPaymentService(repo repository.PaymentRepository, stripeClient stripe.Client) PaymentService {
	return &paymentService{repo: repo, stripeClient: stripeClient}
}

// ListPayments implements PaymentService.
func (s *paymentService) ListPayments(ctx context.Context, userID uuid.UUID, page, size int) ([]*models.Payment, int, error) {
	payments, total, err := s.repo.ListPaymentsOfUser(ctx, userID, page, size)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to fetch payments").WithError(err)
	}

	return payments, total, nil
}

// ProcessWebhook keeps the payments ledger in step with the processor. Events
// for charges the ledger never recorded are acknowledged and ignored.
func (s *paymentService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (stripe.Event, error) {
	event, err := s.stripeClient.VerifyWebhookSignature(payload, signature)
	if err != nil {
		return stripe.Event{}, appErrors.BadRequestError("Webhook signature verification failed").WithError(err)
	}

	var (
		field  string
		status models.PaymentStatus
	)

	switch event.Type {
	case "payment_intent.succeeded":
		field, status = "id", models.PaymentStatusSucceeded
	case "payment_intent.payment_failed":
		field, status = "id", models.PaymentStatusFailed
	case "charge.refunded":
		field, status = "payment_intent", models.PaymentStatusRefunded
	default:
		return event, nil
	}

	if event.Data == nil {
		return event, appErrors.BadRequestError("Missing event data in webhook")
	}

	stripeID, ok := event.Data.Object[field].(string)
	if !ok || stripeID == "" {
		return event, appErrors.BadRequestError("Missing payment intent ID in webhook")
	}

	if err := s.repo.UpdatePaymentStatus(ctx, stripeID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			middleware.LoggerFromContext(ctx).Warn("Webhook for unknown payment",
				slog.String("stripeId", stripeID), slog.String("eventType", string(event.Type)))
			return event, nil
		}

		return event, appErrors.DatabaseError("Failed to update payment status").WithError(err)
	}

	return event, nil
}
