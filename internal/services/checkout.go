package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/money"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

type CheckoutService interface {
	CheckoutCart(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error)
	CheckoutStore(ctx context.Context, userID, storeID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error)
	PurchaseProduct(ctx context.Context, userID uuid.UUID, req *models.PurchaseProductRequest) (*models.CheckoutResult, error)
	MarkPurchasePickedUp(ctx context.Context, principal models.Principal, purchaseID uuid.UUID) (*models.PurchaseFull, error)
}

type checkoutService struct {
	tx       repository.Transactor
	repos    *repository.Repositories
	gateway  PaymentGateway
	carts    CartService
	notifier NotificationService
	now      Clock
}

func NewCheckoutService(tx repository.Transactor, repos *repository.Repositories, gateway PaymentGateway, carts CartService, notifier NotificationService, now Clock) CheckoutService {
	return &checkoutService{tx: tx, repos: repos, gateway: gateway, carts: carts, notifier: notifier, now: now}
}

// storeBatch is one store group together with the cart lines it was built from.
type storeBatch struct {
	group       models.StoreGroup
	lines       []models.CartLineDetail
	consumeCart bool
}

// CheckoutCart charges every store in the cart, one charge per store.
//
// Stock of every line in every store is checked before the first charge.
// Each store is then committed in its own transaction. A failure stops the
// loop; stores committed before it stay charged and fulfilled, and are listed
// in the error detail and in the returned result.
func (s *checkoutService) CheckoutCart(ctx context.Context, userID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "CheckoutService.CheckoutCart")
	defer span.End()

	lines, err := s.repos.Cart.ListLines(ctx, userID)
	if err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(lines) == 0 {
		return nil, appErrors.PreconditionError("Cart is empty")
	}

	result, err := s.run(ctx, userID, req.PaymentMethodID, s.batches(userID, lines))
	if err != nil {
		recordError(span, err)
	}

	return result, err
}

func (s *checkoutService) CheckoutStore(ctx context.Context, userID, storeID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "CheckoutService.CheckoutStore")
	defer span.End()

	span.SetAttributes(attribute.String("store.id", storeID.String()))

	lines, err := s.repos.Cart.ListLines(ctx, userID)
	if err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(lines) == 0 {
		return nil, appErrors.PreconditionError("Cart is empty")
	}

	storeLines := linesOfStore(lines, storeID)
	if len(storeLines) == 0 {
		if _, err := s.repos.Store.GetStoreByID(ctx, storeID); err != nil {
			return nil, notFoundOr(err, "Store not found", "Failed to fetch store")
		}

		return nil, appErrors.NotFoundError("No cart items for this store")
	}

	result, err := s.run(ctx, userID, req.PaymentMethodID, s.batches(userID, storeLines))
	if err != nil {
		recordError(span, err)
	}

	return result, err
}

// PurchaseProduct buys one product directly, without going through the cart.
func (s *checkoutService) PurchaseProduct(ctx context.Context, userID uuid.UUID, req *models.PurchaseProductRequest) (*models.CheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "CheckoutService.PurchaseProduct")
	defer span.End()

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
		CartLine: models.CartLine{
			UserID:    userID,
			StoreID:   product.StoreID,
			ProductID: product.ID,
			Quantity:  req.Quantity,
		},
		ProductName: product.Name,
		Price:       product.Price,
		Stock:       product.Stock,
		StoreName:   product.StoreName,
	}

	batches := s.batches(userID, []models.CartLineDetail{line})
	batches[0].consumeCart = false

	result, err := s.run(ctx, userID, req.PaymentMethodID, batches)
	if err != nil {
		recordError(span, err)
	}

	return result, err
}

// MarkPurchasePickedUp confirms delivery of a prepaid purchase. Only the
// owning store's staff or a superadmin may do it.
func (s *checkoutService) MarkPurchasePickedUp(ctx context.Context, principal models.Principal, purchaseID uuid.UUID) (*models.PurchaseFull, error) {
	ctx, span := tracer.Start(ctx, "CheckoutService.MarkPurchasePickedUp")
	defer span.End()

	var purchase *models.PurchaseFull

	err := s.tx.WithTx(ctx, func(repos *repository.Repositories) error {
		p, err := repos.Purchase.GetPurchaseForUpdate(ctx, purchaseID)
		if err != nil {
			return notFoundOr(err, "Purchase not found", "Failed to fetch purchase")
		}

		if !principal.CanManageStore(p.StoreID) {
			return appErrors.ForbiddenError("Only the store's staff can confirm a pickup")
		}

		if p.Status == models.PurchaseStatusPickedUp {
			return appErrors.InvalidTransitionError("Purchase was already picked up")
		}

		now := s.now.now()
		if err := repos.Purchase.MarkPickedUp(ctx, p.ID, now); err != nil {
			return appErrors.DatabaseError("Failed to update purchase").WithError(err)
		}

		p.Status = models.PurchaseStatusPickedUp
		p.PickedUpAt = &now
		purchase = p

		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, asAppError(err, "Failed to update purchase")
	}

	return purchase, nil
}

func (s *checkoutService) batches(userID uuid.UUID, lines []models.CartLineDetail) []storeBatch {
	view := GroupByStore(userID, lines)
	out := make([]storeBatch, 0, len(view.Stores))

	for _, group := range view.Stores {
		out = append(out, storeBatch{group: group, lines: linesOfStore(lines, group.StoreID), consumeCart: true})
	}

	return out
}

func (s *checkoutService) run(ctx context.Context, userID uuid.UUID, paymentMethodID string, batches []storeBatch) (*models.CheckoutResult, error) {
	logger := middleware.LoggerFromContext(ctx)

	for _, b := range batches {
		if err := checkStock(b.lines, "full"); err != nil {
			return nil, err
		}
	}

	user, err := s.repos.User.GetUserById(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "User not found", "Failed to fetch user")
	}

	if err := s.gateway.Prepare(ctx, user, paymentMethodID); err != nil {
		return nil, err
	}

	result := &models.CheckoutResult{Results: []models.StoreCheckoutResult{}}
	consumed := false

	defer func() {
		if consumed {
			s.carts.Invalidate(ctx, userID)
		}
	}()

	for _, b := range batches {
		storeResult, err := s.checkoutStore(ctx, user, paymentMethodID, b)
		if err != nil {
			metrics.CheckoutStores.WithLabelValues("failed").Inc()
			logger.Error("Store checkout failed",
				slog.String("storeId", b.group.StoreID.String()),
				slog.Int("storesCompleted", len(result.Results)),
				slog.Any("error", err))

			if len(result.Results) == 0 {
				return nil, err
			}

			return result, withChargedStores(err, result)
		}

		metrics.CheckoutStores.WithLabelValues("committed").Inc()
		consumed = consumed || b.consumeCart
		result.Results = append(result.Results, *storeResult)

		logger.Info("Store checkout committed",
			slog.String("storeId", b.group.StoreID.String()),
			slog.String("chargeId", storeResult.Charge.ID))

		s.notifier.SendPurchaseReceipt(ctx, user, storeResult)
	}

	return result, nil
}

// checkoutStore reserves stock, charges and records purchases for one store
// inside a single transaction. If anything fails after the charge went
// through, the charge is refunded.
func (s *checkoutService) checkoutStore(ctx context.Context, user *models.User, paymentMethodID string, b storeBatch) (*models.StoreCheckoutResult, error) {
	ctx, span := tracer.Start(ctx, "CheckoutService.checkoutStore")
	defer span.End()

	span.SetAttributes(attribute.String("store.id", b.group.StoreID.String()), attribute.Int("store.lines", len(b.lines)))

	var (
		charge    *models.Charge
		purchases []*models.PurchaseFull
	)

	err := s.tx.WithTx(ctx, func(repos *repository.Repositories) error {
		for _, line := range b.lines {
			if err := reserveStock(ctx, repos, line, "full"); err != nil {
				return err
			}
		}

		c, err := s.gateway.Charge(ctx, &models.ChargeRequest{
			User:            user,
			PaymentMethodID: paymentMethodID,
			Amount:          b.group.Subtotal,
			Description:     "Purchase at " + b.group.StoreName,
		})
		if err != nil {
			return err
		}

		charge = c
		purchases = make([]*models.PurchaseFull, 0, len(b.lines))

		for _, line := range b.lines {
			purchase := &models.PurchaseFull{
				ID:         uuid.New(),
				UserID:     user.ID,
				StoreID:    b.group.StoreID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitPrice:  line.Price,
				TotalPrice: money.Round2(line.Price.Mul(decimalOf(line.Quantity))),
				Status:     models.PurchaseStatusPending,
				ChargeID:   c.ID,
			}

			if err := repos.Purchase.CreatePurchase(ctx, purchase); err != nil {
				return appErrors.DatabaseError("Failed to record purchase").WithError(err)
			}

			purchases = append(purchases, purchase)
		}

		if b.consumeCart {
			if err := repos.Cart.DeleteStoreLines(ctx, user.ID, b.group.StoreID); err != nil {
				return appErrors.DatabaseError("Failed to clear cart lines").WithError(err)
			}
		}

		return nil
	})
	if err != nil {
		recordError(span, err)

		if charge != nil {
			refundCharge(ctx, s.gateway, charge, err)
		}

		return nil, asAppError(err, "Failed to commit purchase")
	}

	return &models.StoreCheckoutResult{
		StoreID:   b.group.StoreID,
		StoreName: b.group.StoreName,
		Subtotal:  b.group.Subtotal,
		Charge:    charge.Summary(),
		Purchases: purchases,
	}, nil
}

// refundCharge refunds a charge whose purchase records were rolled back.
// The refund runs even if the request context was cancelled.
func refundCharge(ctx context.Context, gateway PaymentGateway, charge *models.Charge, cause error) {
	logger := middleware.LoggerFromContext(ctx)

	if err := gateway.Refund(context.WithoutCancel(ctx), charge); err != nil {
		logger.Error("Compensating refund failed, manual reconciliation required",
			slog.String("chargeId", charge.ID), slog.Any("cause", cause), slog.Any("error", err))
		return
	}

	logger.Warn("Charge refunded after failed commit", slog.String("chargeId", charge.ID), slog.Any("cause", cause))
}

// checkStock verifies every line against the stock read with the cart.
func checkStock(lines []models.CartLineDetail, kind string) error {
	for _, line := range lines {
		if line.Stock < line.Quantity {
			metrics.StockConflicts.WithLabelValues(kind).Inc()
			return appErrors.InsufficientStockError(line.ProductName)
		}
	}

	return nil
}

// reserveStock decrements stock atomically inside the caller's transaction.
func reserveStock(ctx context.Context, repos *repository.Repositories, line models.CartLineDetail, kind string) error {
	err := repos.Product.ReserveStock(ctx, line.ProductID, line.Quantity)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrInsufficientStock):
		metrics.StockConflicts.WithLabelValues(kind).Inc()
		return appErrors.InsufficientStockError(line.ProductName)
	case errors.Is(err, repository.ErrInvalidQuantity):
		return appErrors.PreconditionError("Quantity must be at least 1")
	default:
		return appErrors.DatabaseError("Failed to reserve stock").WithError(err)
	}
}

// withChargedStores annotates a checkout error with the stores that were
// already committed before it happened.
func withChargedStores(err error, result *models.CheckoutResult) error {
	ids := make([]string, 0, len(result.Results))
	for _, r := range result.Results {
		ids = append(ids, r.StoreID.String())
	}

	detail := fmt.Sprintf("stores already charged: %s", strings.Join(ids, ", "))

	if appErr, ok := appErrors.IsAppError(err); ok {
		appErr.WithDetail(detail)
		return err
	}

	return appErrors.InternalError("Checkout partially completed").WithDetail(detail).WithError(err)
}
