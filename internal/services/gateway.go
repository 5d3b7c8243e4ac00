package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/money"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	stripeClient "github.com/aaravmahajanofficial/marketplace-checkout/pkg/stripe"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"go.opentelemetry.io/otel/attribute"
)

// PaymentGateway is the checkout-facing view of the card processor. Amounts
// cross it in major units; conversion to minor units happens inside.
type PaymentGateway interface {
	// EnsureCustomer returns the user's processor customer id, creating and
	// persisting one on first use. The id is also stored on user.
	EnsureCustomer(ctx context.Context, user *models.User) (string, error)
	AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error
	// Prepare runs EnsureCustomer and AttachPaymentMethod.
	Prepare(ctx context.Context, user *models.User, paymentMethodID string) error
	Charge(ctx context.Context, req *models.ChargeRequest) (*models.Charge, error)
	Refund(ctx context.Context, charge *models.Charge) error
}

type paymentGateway struct {
	client   stripeClient.Client
	users    repository.UserRepository
	payments repository.PaymentRepository
	currency string
}

func NewPaymentGateway(client stripeClient.Client, users repository.UserRepository, payments repository.PaymentRepository, currency string) PaymentGateway {
	return &paymentGateway{client: client, users: users, payments: payments, currency: currency}
}

func (g *paymentGateway) EnsureCustomer(ctx context.Context, user *models.User) (string, error) {
	if user.StripeCustomerID != nil && *user.StripeCustomerID != "" {
		return *user.StripeCustomerID, nil
	}

	ctx, span := tracer.Start(ctx, "PaymentGateway.EnsureCustomer")
	defer span.End()

	customer, err := g.client.CreateCustomer(ctx, user.Email, user.Name, user.ID.String())
	if err != nil {
		recordError(span, err)
		return "", appErrors.ThirdPartyError("Failed to create payment customer").WithError(err)
	}

	stored, err := g.users.SetStripeCustomerID(ctx, user.ID, customer.ID)
	if err != nil {
		recordError(span, err)
		return "", appErrors.DatabaseError("Failed to store payment customer").WithError(err)
	}

	customerID := customer.ID

	// a concurrent request got there first; keep its mapping
	if !stored {
		current, err := g.users.GetUserById(ctx, user.ID)
		if err != nil {
			return "", notFoundOr(err, "User not found", "Failed to fetch user")
		}

		if current.StripeCustomerID != nil {
			customerID = *current.StripeCustomerID
		}
	}

	user.StripeCustomerID = &customerID

	return customerID, nil
}

func (g *paymentGateway) AttachPaymentMethod(ctx context.Context, customerID, paymentMethodID string) error {
	ctx, span := tracer.Start(ctx, "PaymentGateway.AttachPaymentMethod")
	defer span.End()

	err := g.client.AttachPaymentMethod(ctx, paymentMethodID, customerID)
	if err == nil || errors.Is(err, stripeClient.ErrPaymentMethodAlreadyAttached) {
		return nil
	}

	recordError(span, err)

	return appErrors.PaymentFailedError(stripeClient.Message(err)).WithError(err)
}

func (g *paymentGateway) Prepare(ctx context.Context, user *models.User, paymentMethodID string) error {
	customerID, err := g.EnsureCustomer(ctx, user)
	if err != nil {
		return err
	}

	return g.AttachPaymentMethod(ctx, customerID, paymentMethodID)
}

// Charge creates a confirmed charge and returns it only when the processor
// reports it succeeded. Every attempt that reaches the processor is written
// to the payments ledger; a ledger failure does not fail the charge.
func (g *paymentGateway) Charge(ctx context.Context, req *models.ChargeRequest) (*models.Charge, error) {
	ctx, span := tracer.Start(ctx, "PaymentGateway.Charge")
	defer span.End()

	if req.User == nil || req.User.StripeCustomerID == nil {
		return nil, appErrors.InternalError("Payment customer is not set up")
	}

	amount := money.ToMinorUnits(req.Amount)
	if amount <= 0 {
		return nil, appErrors.PreconditionError("Charge amount must be positive")
	}

	span.SetAttributes(attribute.Int64("charge.amount_minor", amount), attribute.String("charge.currency", g.currency))

	pi, err := g.client.CreatePaymentIntent(ctx, stripeClient.ChargeParams{
		Amount:          amount,
		Currency:        g.currency,
		CustomerID:      *req.User.StripeCustomerID,
		PaymentMethodID: req.PaymentMethodID,
		Description:     req.Description,
		Metadata:        map[string]string{"user_id": req.User.ID.String()},
	})
	if err != nil {
		metrics.Charges.WithLabelValues("error").Inc()
		recordError(span, err)

		return nil, appErrors.PaymentFailedError(stripeClient.Message(err)).WithError(err)
	}

	metrics.Charges.WithLabelValues(string(pi.Status)).Inc()

	status := models.PaymentStatusPending
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		status = models.PaymentStatusSucceeded
	case stripe.PaymentIntentStatusCanceled, stripe.PaymentIntentStatusRequiresPaymentMethod:
		status = models.PaymentStatusFailed
	}

	g.record(ctx, &models.Payment{
		ID:            uuid.New(),
		UserID:        req.User.ID,
		StripeID:      pi.ID,
		Amount:        money.Round2(req.Amount),
		Currency:      g.currency,
		Description:   req.Description,
		Status:        status,
		PaymentMethod: req.PaymentMethodID,
	})

	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, appErrors.PaymentFailedError("payment status is " + string(pi.Status))
	}

	return &models.Charge{ID: pi.ID, Amount: money.FromMinorUnits(pi.Amount), Status: string(pi.Status)}, nil
}

// Refund returns the full amount of charge.
func (g *paymentGateway) Refund(ctx context.Context, charge *models.Charge) error {
	ctx, span := tracer.Start(ctx, "PaymentGateway.Refund")
	defer span.End()

	if _, err := g.client.RefundPayment(ctx, charge.ID, 0); err != nil {
		recordError(span, err)
		return appErrors.ThirdPartyError("Failed to refund payment").WithError(err)
	}

	metrics.Refunds.Inc()

	if err := g.payments.UpdatePaymentStatus(ctx, charge.ID, models.PaymentStatusRefunded); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to mark payment refunded",
			slog.String("chargeId", charge.ID), slog.Any("error", err))
	}

	return nil
}

func (g *paymentGateway) record(ctx context.Context, payment *models.Payment) {
	if err := g.payments.CreatePayment(ctx, payment); err != nil {
		middleware.LoggerFromContext(ctx).Error("Failed to record payment",
			slog.String("chargeId", payment.StripeID), slog.Any("error", err))
	}
}
