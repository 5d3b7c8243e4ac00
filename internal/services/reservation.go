package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/metrics"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/money"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/google/uuid"
)

const DefaultReservationWindow = 72 * time.Hour

var reservationStatuses = map[string]struct{}{
	string(models.ReservationStatusPending):  {},
	string(models.ReservationStatusPickedUp): {},
	string(models.ReservationStatusExpired):  {},
}

// ReservationService holds stock for in-store pickup without charging.
//
// Expiry is lazy: a pending reservation past its window is only written as
// expired when someone tries to pick it up. Reads report the effective status.
type ReservationService interface {
	ReserveCart(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error)
	ReserveStore(ctx context.Context, userID, storeID uuid.UUID) ([]*models.Reservation, error)
	ReserveProduct(ctx context.Context, userID uuid.UUID, req *models.ReserveProductRequest) ([]*models.Reservation, error)
	MarkPickedUp(ctx context.Context, principal models.Principal, reservationID uuid.UUID) (*models.Reservation, error)
	ListReservations(ctx context.Context, userID uuid.UUID, status string) ([]*models.Reservation, error)
	GetReservation(ctx context.Context, userID, reservationID uuid.UUID) (*models.Reservation, error)
}

type reservationService struct {
	tx       repository.Transactor
	repos    *repository.Repositories
	carts    CartService
	notifier NotificationService
	window   time.Duration
	now      Clock
}

// NewReservationService builds the service. A non-positive window falls back
// to DefaultReservationWindow.
func NewReservationService(tx repository.Transactor, repos *repository.Repositories, carts CartService, notifier NotificationService, window time.Duration, now Clock) ReservationService {
	if window <= 0 {
		window = DefaultReservationWindow
	}

	return &reservationService{tx: tx, repos: repos, carts: carts, notifier: notifier, window: window, now: now}
}

type cartScope int

const (
	scopeNone cartScope = iota
	scopeStore
	scopeAll
)

func (s *reservationService) ReserveCart(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error) {
	ctx, span := tracer.Start(ctx, "ReservationService.ReserveCart")
	defer span.End()

	lines, err := s.repos.Cart.ListLines(ctx, userID)
	if err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(lines) == 0 {
		return nil, appErrors.PreconditionError("Cart is empty")
	}

	return s.reserve(ctx, userID, lines, scopeAll, uuid.Nil)
}

func (s *reservationService) ReserveStore(ctx context.Context, userID, storeID uuid.UUID) ([]*models.Reservation, error) {
	ctx, span := tracer.Start(ctx, "ReservationService.ReserveStore")
	defer span.End()

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
		return nil, appErrors.NotFoundError("No cart items for this store")
	}

	return s.reserve(ctx, userID, storeLines, scopeStore, storeID)
}

// ReserveProduct reserves a single product without touching the cart.
func (s *reservationService) ReserveProduct(ctx context.Context, userID uuid.UUID, req *models.ReserveProductRequest) ([]*models.Reservation, error) {
	ctx, span := tracer.Start(ctx, "ReservationService.ReserveProduct")
	defer span.End()

	if req.Quantity <= 0 {
		return nil, appErrors.PreconditionError("Quantity must be at least 1")
	}

	product, err := s.repos.Product.GetProductByID(ctx, req.ProductID)
	if err != nil {
		recordError(span, err)
		return nil, notFoundOr(err, "Product not found", "Failed to fetch product")
	}

	line := models.CartLineDetail{
		CartLine:    models.CartLine{UserID: userID, StoreID: product.StoreID, ProductID: product.ID, Quantity: req.Quantity},
		ProductName: product.Name,
		Price:       product.Price,
		Stock:       product.Stock,
		StoreName:   product.StoreName,
	}

	return s.reserve(ctx, userID, []models.CartLineDetail{line}, scopeNone, uuid.Nil)
}

// reserve takes stock and writes one reservation per line in a single
// transaction, then removes the consumed cart lines in the same transaction.
func (s *reservationService) reserve(ctx context.Context, userID uuid.UUID, lines []models.CartLineDetail, scope cartScope, storeID uuid.UUID) ([]*models.Reservation, error) {
	if err := checkStock(lines, "physical"); err != nil {
		return nil, err
	}

	expiresAt := s.now.now().Add(s.window)
	reservations := make([]*models.Reservation, 0, len(lines))

	err := s.tx.WithTx(ctx, func(repos *repository.Repositories) error {
		for _, line := range lines {
			if err := reserveStock(ctx, repos, line, "physical"); err != nil {
				return err
			}

			reservation := &models.Reservation{
				ID:         uuid.New(),
				UserID:     userID,
				StoreID:    line.StoreID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitPrice:  line.Price,
				TotalPrice: money.Round2(line.Price.Mul(decimalOf(line.Quantity))),
				Status:     models.ReservationStatusPending,
				ExpiresAt:  expiresAt,
			}

			if err := repos.Reservation.CreateReservation(ctx, reservation); err != nil {
				return appErrors.DatabaseError("Failed to record reservation").WithError(err)
			}

			reservations = append(reservations, reservation)
		}

		var err error
		switch scope {
		case scopeAll:
			err = repos.Cart.Clear(ctx, userID)
		case scopeStore:
			err = repos.Cart.DeleteStoreLines(ctx, userID, storeID)
		}

		if err != nil {
			return appErrors.DatabaseError("Failed to clear cart lines").WithError(err)
		}

		return nil
	})
	if err != nil {
		return nil, asAppError(err, "Failed to create reservation")
	}

	if scope != scopeNone {
		s.carts.Invalidate(ctx, userID)
	}

	metrics.ReservationTransitions.WithLabelValues(string(models.ReservationStatusPending)).Add(float64(len(reservations)))
	middleware.LoggerFromContext(ctx).Info("Reservations created",
		slog.Int("count", len(reservations)), slog.Time("expiresAt", expiresAt))

	if user, err := s.repos.User.GetUserById(ctx, userID); err == nil {
		s.notifier.SendReservationNotice(ctx, user, reservations)
	}

	return reservations, nil
}

// MarkPickedUp completes a pending reservation. Past its window the
// reservation is persisted as expired and the pickup is rejected.
func (s *reservationService) MarkPickedUp(ctx context.Context, principal models.Principal, reservationID uuid.UUID) (*models.Reservation, error) {
	ctx, span := tracer.Start(ctx, "ReservationService.MarkPickedUp")
	defer span.End()

	var (
		reservation *models.Reservation
		expired     bool
	)

	err := s.tx.WithTx(ctx, func(repos *repository.Repositories) error {
		r, err := repos.Reservation.GetReservationForUpdate(ctx, reservationID)
		if err != nil {
			return notFoundOr(err, "Reservation not found", "Failed to fetch reservation")
		}

		if r.UserID != principal.UserID && !principal.CanManageStore(r.StoreID) {
			return appErrors.NotFoundError("Reservation not found")
		}

		switch r.Status {
		case models.ReservationStatusPickedUp:
			return appErrors.InvalidTransitionError("Reservation was already picked up")
		case models.ReservationStatusExpired:
			return appErrors.ReservationExpiredError("Reservation has expired")
		}

		now := s.now.now()

		// the expired status must commit even though the pickup is refused
		if now.After(r.ExpiresAt) {
			if err := repos.Reservation.UpdateReservationStatus(ctx, r.ID, models.ReservationStatusExpired, nil); err != nil {
				return appErrors.DatabaseError("Failed to update reservation").WithError(err)
			}

			r.Status = models.ReservationStatusExpired
			expired = true
			reservation = r

			return nil
		}

		if err := repos.Reservation.UpdateReservationStatus(ctx, r.ID, models.ReservationStatusPickedUp, &now); err != nil {
			return appErrors.DatabaseError("Failed to update reservation").WithError(err)
		}

		r.Status = models.ReservationStatusPickedUp
		r.PickedUpAt = &now
		reservation = r

		return nil
	})
	if err != nil {
		recordError(span, err)
		return nil, asAppError(err, "Failed to update reservation")
	}

	metrics.ReservationTransitions.WithLabelValues(string(reservation.Status)).Inc()

	if expired {
		middleware.LoggerFromContext(ctx).Info("Reservation expired at pickup",
			slog.String("reservationId", reservation.ID.String()), slog.Time("expiresAt", reservation.ExpiresAt))

		return nil, appErrors.ReservationExpiredError("Reservation has expired")
	}

	return reservation, nil
}

// ListReservations reports each reservation with its effective status and
// filters on that status.
func (s *reservationService) ListReservations(ctx context.Context, userID uuid.UUID, status string) ([]*models.Reservation, error) {
	if status != "" {
		if _, ok := reservationStatuses[status]; !ok {
			return nil, appErrors.ValidationError("Invalid status filter")
		}
	}

	all, err := s.repos.Reservation.ListReservationsByUser(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch reservations").WithError(err)
	}

	now := s.now.now()
	out := make([]*models.Reservation, 0, len(all))

	for _, r := range all {
		r.Status = r.EffectiveStatus(now)

		if status == "" || string(r.Status) == status {
			out = append(out, r)
		}
	}

	return out, nil
}

func (s *reservationService) GetReservation(ctx context.Context, userID, reservationID uuid.UUID) (*models.Reservation, error) {
	r, err := s.repos.Reservation.GetReservationByID(ctx, reservationID)
	if err != nil {
		return nil, notFoundOr(err, "Reservation not found", "Failed to fetch reservation")
	}

	if r.UserID != userID {
		return nil, appErrors.NotFoundError("Reservation not found")
	}

	r.Status = r.EffectiveStatus(s.now.now())

	return r, nil
}
