package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/cache"
	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, error)
	AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.CartView, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	ClearCart(ctx context.Context, userID uuid.UUID) error
	// Invalidate drops the cached view after lines were consumed elsewhere.
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type cartService struct {
	repo     repository.CartRepository
	products repository.ProductRepository
	cache    cache.Cache
}

// NewCartService builds the cart service. cache may be nil, in which case
// every read goes to the database.
func NewCartService(repo repository.CartRepository, products repository.ProductRepository, cache cache.Cache) CartService {
	return &cartService{repo: repo, products: products, cache: cache}
}

// GroupByStore groups lines by owning store, in order of first appearance,
// and computes line totals, store subtotals and the cart total.
func GroupByStore(userID uuid.UUID, lines []models.CartLineDetail) *models.CartView {
	view := &models.CartView{UserID: userID, Stores: []models.StoreGroup{}, Total: decimal.Zero}
	index := make(map[uuid.UUID]int)

	for _, line := range lines {
		i, ok := index[line.StoreID]
		if !ok {
			view.Stores = append(view.Stores, models.StoreGroup{
				StoreID:   line.StoreID,
				StoreName: line.StoreName,
				Subtotal:  decimal.Zero,
				Lines:     []models.CartLineView{},
			})
			i = len(view.Stores) - 1
			index[line.StoreID] = i
		}

		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))).Round(2)

		group := &view.Stores[i]
		group.Lines = append(group.Lines, models.CartLineView{
			ProductID: line.ProductID,
			Name:      line.ProductName,
			Price:     line.Price,
			Quantity:  line.Quantity,
			LineTotal: lineTotal,
		})
		group.Subtotal = group.Subtotal.Add(lineTotal)
		view.Total = view.Total.Add(lineTotal)
	}

	return view
}

// GetCart reads the cart version before the database, so a view built from
// lines that change meanwhile lands under a version nobody reads anymore.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*models.CartView, error) {
	ctx, span := tracer.Start(ctx, "CartService.GetCart", trace.WithAttributes(attribute.String("user.id", userID.String())))
	defer span.End()

	logger := middleware.LoggerFromContext(ctx)

	var key string

	if s.cache != nil {
		var version int64

		if _, err := s.cache.Get(ctx, cache.CartVersionKey(userID), &version); err != nil {
			logger.Warn("Cart version read failed", slog.Any("error", err))
		} else {
			key = cache.CartKey(userID, version)

			var cached models.CartView

			found, err := s.cache.Get(ctx, key, &cached)
			if err != nil {
				logger.Warn("Cart cache read failed", slog.Any("error", err))
			} else if found {
				span.SetAttributes(attribute.Bool("cache.hit", true))
				return &cached, nil
			}
		}
	}

	lines, err := s.repo.ListLines(ctx, userID)
	if err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	view := GroupByStore(userID, lines)

	if key != "" {
		if err := s.cache.Set(ctx, key, view, 0); err != nil {
			logger.Warn("Cart cache write failed", slog.Any("error", err))
		}
	}

	return view, nil
}

func (s *cartService) AddItem(ctx context.Context, userID uuid.UUID, req *models.AddItemRequest) (*models.CartView, error) {
	ctx, span := tracer.Start(ctx, "CartService.AddItem")
	defer span.End()

	if req.Quantity <= 0 {
		return nil, appErrors.PreconditionError("Quantity must be at least 1")
	}

	product, err := s.products.GetProductByID(ctx, req.ProductID)
	if err != nil {
		recordError(span, err)
		return nil, notFoundOr(err, "Product not found", "Failed to fetch product")
	}

	line := &models.CartLine{
		ID:        uuid.New(),
		UserID:    userID,
		StoreID:   product.StoreID,
		ProductID: product.ID,
		Quantity:  req.Quantity,
	}

	if err := s.repo.AddLine(ctx, line); err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	s.Invalidate(ctx, userID)

	return s.GetCart(ctx, userID)
}

// UpdateQuantity sets the quantity of an existing line; zero or less removes it.
func (s *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, req *models.UpdateQuantityRequest) (*models.CartView, error) {
	ctx, span := tracer.Start(ctx, "CartService.UpdateQuantity")
	defer span.End()

	var err error
	if req.Quantity <= 0 {
		err = s.repo.DeleteLine(ctx, userID, req.ProductID)
	} else {
		err = s.repo.UpdateQuantity(ctx, userID, req.ProductID, req.Quantity)
	}

	if err != nil {
		recordError(span, err)
		return nil, notFoundOr(err, "Item not found in the cart", "Failed to update cart")
	}

	s.Invalidate(ctx, userID)

	return s.GetCart(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "CartService.RemoveItem")
	defer span.End()

	if err := s.repo.DeleteLine(ctx, userID, productID); err != nil {
		recordError(span, err)
		return notFoundOr(err, "Item not found in the cart", "Failed to remove item from cart")
	}

	s.Invalidate(ctx, userID)

	return nil
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "CartService.ClearCart")
	defer span.End()

	if err := s.repo.Clear(ctx, userID); err != nil {
		recordError(span, err)
		return appErrors.DatabaseError("Failed to clear cart").WithError(err)
	}

	s.Invalidate(ctx, userID)

	return nil
}

func (s *cartService) Invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}

	logger := middleware.LoggerFromContext(ctx)

	version, err := s.cache.Incr(ctx, cache.CartVersionKey(userID))
	if err != nil {
		logger.Warn("Cart cache invalidation failed",
			slog.String("userId", userID.String()), slog.Any("error", err))
		return
	}

	// the previous view is unreachable now
	if err := s.cache.Delete(ctx, cache.CartKey(userID, version-1)); err != nil {
		logger.Debug("Dropping outdated cart view failed",
			slog.String("userId", userID.String()), slog.Any("error", err))
	}
}

// linesOfStore filters lines to one store.
func linesOfStore(lines []models.CartLineDetail, storeID uuid.UUID) []models.CartLineDetail {
	var out []models.CartLineDetail

	for _, line := range lines {
		if line.StoreID == storeID {
			out = append(out, line)
		}
	}

	return out
}
