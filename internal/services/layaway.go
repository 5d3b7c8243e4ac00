package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/money"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
)

var layawayStatuses = map[string]struct{}{
	string(models.LayawayStatusReserved): {},
	string(models.LayawayStatusSettled):  {},
	string(models.LayawayStatusPickedUp): {},
}

var (
	minDepositPercent = decimal.NewFromInt(1)
	maxDepositPercent = decimal.NewFromInt(100)
)

// LayawayService runs the apartado lifecycle: reserved -> settled -> picked_up.
type LayawayService interface {
	CreateLayaway(ctx context.Context, userID uuid.UUID, req *models.CreateLayawayRequest) (*models.LayawayPaymentResult, error)
	Pay(ctx context.Context, userID, layawayID uuid.UUID, req *models.LayawayPaymentRequest) (*models.LayawayPaymentResult, error)
	MarkPickedUp(ctx context.Context, principal models.Principal, layawayID uuid.UUID) (*models.Layaway, error)
	ListLayaways(ctx context.Context, userID uuid.UUID, status string) ([]*models.Layaway, error)
	GetLayaway(ctx context.Context, userID, layawayID uuid.UUID) (*models.Layaway, error)
}

type layawayService struct {
	tx       repository.Transactor
	repos    *repository.Repositories
	gateway  PaymentGateway
	notifier NotificationService
	now      Clock
}

func NewLayawayService(tx repository.Transactor, repos *repository.Repositories, gateway PaymentGateway, notifier NotificationService, now Clock) LayawayService {
	return &layawayService{tx: tx, repos: repos, gateway: gateway, notifier: notifier, now: now}
}

// CreateLayaway charges the deposit, takes the stock and records the layaway
// in one transaction. Nothing is persisted unless the deposit charge succeeds.
func (s *layawayService) CreateLayaway(ctx context.Context, userID uuid.UUID, req *models.CreateLayawayRequest) (*models.LayawayPaymentResult, error) {
	ctx, span := tracer.Start(ctx, "LayawayService.CreateLayaway")
	defer span.End()

	if req.DepositPercent.LessThan(minDepositPercent) || req.DepositPercent.GreaterThan(maxDepositPercent) {
		return nil, appErrors.PreconditionError("Deposit percentage must be between 1 and 100")
	}

	if req.Quantity <= 0 {
		return nil, appErrors.PreconditionError("Quantity must be at least 1")
	}

	product, err := s.repos.Product.GetProductByID(ctx, req.ProductID)
	if err != nil {
		recordError(span, err)
		return nil, notFoundOr(err, "Product not found", "Failed to fetch product")
	}

	if product.StoreID != req.StoreID {
		return nil, appErrors.NotFoundError("Product not found in this store")
	}

	line := models.CartLineDetail{
		CartLine:    models.CartLine{StoreID: product.StoreID, ProductID: product.ID, Quantity: req.Quantity},
		ProductName: product.Name,
		Price:       product.Price,
		Stock:       product.Stock,
		StoreName:   product.StoreName,
	}

	if err := checkStock([]models.CartLineDetail{line}, "layaway"); err != nil {
		return nil, err
	}

	total := money.Round2(product.LineTotal(req.Quantity))
	deposit := money.PercentOf(total, req.DepositPercent)
	balance := total.Sub(deposit)

	user, err := s.repos.User.GetUserById(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found", "Failed to fetch user")
	}

	if err := s.gateway.Prepare(ctx, user, req.PaymentMethodID); err != nil {
		return nil, err
	}

	layaway := &models.Layaway{
		ID:             uuid.New(),
		UserID:         userID,
		StoreID:        product.StoreID,
		ProductID:      product.ID,
		Quantity:       req.Quantity,
		UnitPrice:      product.Price,
		TotalPrice:     total,
		DepositPercent: money.Round2(req.DepositPercent),
		AmountPaid:     deposit,
		Balance:        balance,
		Status:         models.LayawayStatusReserved,
	}

	// a full deposit leaves nothing to pay, so the layaway is settled at once
	if !balance.IsPositive() {
		layaway.Balance = decimal.Zero
		layaway.DepositPercent = maxDepositPercent
		layaway.Status = models.LayawayStatusSettled
	}

	var charge *models.Charge

	err = s.tx.WithTx(ctx, func(repos *repository.Repositories) error {
		if err := reserveStock(ctx, repos, line, "layaway"); err != nil {
			return err
		}

		c, err := s.gateway.Charge(ctx, &models.ChargeRequest{
			User:            user,
			PaymentMethodID: req.PaymentMethodID,
			Amount:          deposit,
			Description:     fmt.Sprintf("Layaway deposit at %s - %s", product.StoreName, product.Name),
		})
		if err != nil {
			return err
		}

		charge = c

		if err := repos.Layaway.CreateLayaway(ctx, layaway); err != nil {
			return appErrors.DatabaseError("Failed to record layaway").WithError(err)
		}

		return nil
	})
	if err != nil {
		recordError(span, err)

		if charge != nil {
			refundCharge(ctx, s.gateway, charge, err)
		}

		return nil, asAppError(err, "Failed to create layaway")
	}

	metrics.LayawayTransitions.WithLabelValues(string(layaway.Status)).Inc()
	middleware.LoggerFromContext(ctx).Info("Layaway created",
		slog.String("layawayId", layaway.ID.String()), slog.String("chargeId", charge.ID))

	s.notifier.SendLayawayReceipt(ctx, user, layaway, product.Name, charge.Summary())

	return &models.LayawayPaymentResult{Layaway: layaway, Charge: charge.Summary()}, nil
}

// Pay applies a partial payment. The row is locked for the whole operation so
// concurrent payments against the same layaway are serialized.
func (s *layawayService) Pay(ctx context.Context, userID, layawayID uuid.UUID, req *models.LayawayPaymentRequest) (*models.LayawayPaymentResult, error) {
	ctx, span := tracer.Start(ctx, "LayawayService.Pay")
	defer span.End()

	span.SetAttributes(attribute.String("layaway.id", layawayID.String()))

	amount := money.Round2(req.Amount)
	if !amount.IsPositive() {
		return nil, appErrors.PreconditionError("Amount must be greater than 0")
	}

	current, err := s.GetLayaway(ctx, userID, layawayID)
	if err != nil {
		return nil, err
	}

	if err := validatePayment(current, amount); err != nil {
		return nil, err
	}

	user, err := s.repos.User.GetUserById(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found", "Failed to fetch user")
	}

	if err := s.gateway.Prepare(ctx, user, req.PaymentMethodID); err != nil {
		return nil, err
	}

	productName := ""
	if product, err := s.repos.Product.GetProductByID(ctx, current.ProductID); err == nil {
		productName = product.Name
	}

	var (
		charge  *models.Charge
		layaway *models.Layaway
	)

	err = s.tx.WithTx(ctx, func(repos *repository.Repositories) error {
		l, err := repos.Layaway.GetLayawayForUpdate(ctx, layawayID)
		if err != nil {
			return notFoundOr(err, "Layaway not found", "Failed to fetch layaway")
		}

		if err := validatePayment(l, amount); err != nil {
			return err
		}

		c, err := s.gateway.Charge(ctx, &models.ChargeRequest{
			User:            user,
			PaymentMethodID: req.PaymentMethodID,
			Amount:          amount,
			Description:     "Layaway payment - " + productName,
		})
		if err != nil {
			return err
		}

		charge = c
		applyPayment(l, amount)

		if err := repos.Layaway.UpdateLayaway(ctx, l); err != nil {
			return appErrors.DatabaseError("Failed to update layaway").WithError(err)
		}

		layaway = l

		return nil
	})
	if err != nil {
		recordError(span, err)

		if charge != nil {
			refundCharge(ctx, s.gateway, charge, err)
		}

		return nil, asAppError(err, "Failed to apply layaway payment")
	}

	if layaway.Status == models.LayawayStatusSettled {
		metrics.LayawayTransitions.WithLabelValues(string(models.LayawayStatusSettled)).Inc()
	}

	middleware.LoggerFromContext(ctx).Info("Layaway payment applied",
		slog.String("layawayId", layaway.ID.String()),
		slog.String("balance", layaway.Balance.StringFixed(2)),
		slog.String("status", string(layaway.Status)))

	s.notifier.SendLayawayReceipt(ctx, user, layaway, productName, charge.Summary())

	return &models.LayawayPaymentResult{Layaway: layaway, Charge: charge.Summary()}, nil
}

// MarkPickedUp hands over a settled layaway. The owner or the store's staff may do it.
func (s *layawayService) MarkPickedUp(ctx context.Context, principal models.Principal, layawayID uuid.UUID) (*models.Layaway, error) {
	ctx, span := tracer.Start(ctx, "LayawayService.MarkPickedUp")
	defer span.End()

	var layaway *models.Layaway

	err := s.tx.WithTx(ctx, func(repos *repository.Repositories) error {
		l, err := repos.Layaway.GetLayawayForUpdate(ctx, layawayID)
		if err != nil {
			return notFoundOr(err, "Layaway not found", "Failed to fetch layaway")
		}

		if l.UserID != principal.UserID && !principal.CanManageStore(l.StoreID) {
			return appErrors.NotFoundError("Layaway not found")
		}

		switch l.Status {
		case models.LayawayStatusReserved:
			return appErrors.InvalidTransitionError("Layaway is not fully paid")
		case models.LayawayStatusPickedUp:
			return appErrors.InvalidTransitionError("Layaway was already picked up")
		}

		now := s.now.now()
		l.Status = models.LayawayStatusPickedUp
		l.PickedUpAt = &now

		if err := repos.Layaway.UpdateLayaway(ctx, l); err != nil {
			return appErrors.DatabaseError("Failed to update layaway").WithError(err)
		}

		layaway = l

		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, asAppError(err, "Failed to update layaway")
	}

	metrics.LayawayTransitions.WithLabelValues(string(models.LayawayStatusPickedUp)).Inc()

	return layaway, nil
}

func (s *layawayService) ListLayaways(ctx context.Context, userID uuid.UUID, status string) ([]*models.Layaway, error) {
	if status != "" {
		if _, ok := layawayStatuses[status]; !ok {
			return nil, appErrors.ValidationError("Invalid status filter")
		}
	}

	layaways, err := s.repos.Layaway.ListLayawaysByUser(ctx, userID, status)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch layaways").WithError(err)
	}

	if layaways == nil {
		layaways = []*models.Layaway{}
	}

	return layaways, nil
}

// GetLayaway returns the layaway only to its owner; others get NOT_FOUND.
func (s *layawayService) GetLayaway(ctx context.Context, userID, layawayID uuid.UUID) (*models.Layaway, error) {
	layaway, err := s.repos.Layaway.GetLayawayByID(ctx, layawayID)
	if err != nil {
		return nil, notFoundOr(err, "Layaway not found", "Failed to fetch layaway")
	}

	if layaway.UserID != userID {
		return nil, appErrors.NotFoundError("Layaway not found")
	}

	return layaway, nil
}

func validatePayment(l *models.Layaway, amount decimal.Decimal) error {
	switch {
	case l.Status == models.LayawayStatusSettled:
		return appErrors.InvalidTransitionError("Layaway is already settled")
	case l.Status == models.LayawayStatusPickedUp:
		return appErrors.InvalidTransitionError("Layaway was already picked up")
	case !l.Balance.IsPositive():
		return appErrors.InvalidTransitionError("Layaway has no outstanding balance")
	case amount.GreaterThan(l.Balance):
		return appErrors.InvalidTransitionError(fmt.Sprintf("Amount exceeds the outstanding balance of %s", l.Balance.StringFixed(2)))
	}

	return nil
}

// applyPayment adds amount to the paid total and recomputes balance and
// percentage from it. A zero balance settles the layaway.
func applyPayment(l *models.Layaway, amount decimal.Decimal) {
	l.AmountPaid = money.Round2(l.AmountPaid.Add(amount))
	l.Balance = money.ClampZero(money.Round2(l.TotalPrice.Sub(l.AmountPaid)))
	l.DepositPercent = money.Ratio(l.AmountPaid, l.TotalPrice)

	if !l.Balance.IsPositive() {
		l.Balance = decimal.Zero
		l.DepositPercent = maxDepositPercent
		l.Status = models.LayawayStatusSettled
	}
}
