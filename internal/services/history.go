package service

import (
	"context"
	"slices"

	appErrors "github.com/aaravmahajanofficial/marketplace-checkout/internal/errors"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/google/uuid"
)

// HistoryService is a read-only view over the three purchase kinds.
type HistoryService interface {
	ListHistory(ctx context.Context, userID uuid.UUID, status string) ([]models.HistoryEntry, error)
	GetEntry(ctx context.Context, userID uuid.UUID, kind models.PurchaseKind, id uuid.UUID) (*models.HistoryEntry, error)
}

type historyService struct {
	purchases    repository.PurchaseRepository
	layaways     repository.LayawayRepository
	reservations repository.ReservationRepository
	now          Clock
}

func NewHistoryService(purchases repository.PurchaseRepository, layaways repository.LayawayRepository, reservations repository.ReservationRepository, now Clock) HistoryService {
	return &historyService{purchases: purchases, layaways: layaways, reservations: reservations, now: now}
}

// ListHistory merges all purchases of the user, newest first. status, when
// set, must be one of models.HistoryStatuses; physical reservations are
// matched on their effective status.
func (s *historyService) ListHistory(ctx context.Context, userID uuid.UUID, status string) ([]models.HistoryEntry, error) {
	ctx, span := tracer.Start(ctx, "HistoryService.ListHistory")
	defer span.End()

	if status != "" {
		if _, ok := models.HistoryStatuses[status]; !ok {
			return nil, appErrors.ValidationError("Invalid status filter")
		}
	}

	full, err := s.purchases.ListPurchasesByUser(ctx, userID, status)
	if err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to fetch purchases").WithError(err)
	}

	layaways, err := s.layaways.ListLayawaysByUser(ctx, userID, status)
	if err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to fetch layaways").WithError(err)
	}

	reservations, err := s.reservations.ListReservationsByUser(ctx, userID)
	if err != nil {
		recordError(span, err)
		return nil, appErrors.DatabaseError("Failed to fetch reservations").WithError(err)
	}

	now := s.now.now()
	entries := make([]models.HistoryEntry, 0, len(full)+len(layaways)+len(reservations))

	for _, p := range full {
		entries = append(entries, models.HistoryFromFull(p))
	}

	for _, l := range layaways {
		entries = append(entries, models.HistoryFromLayaway(l))
	}

	for _, r := range reservations {
		entry := models.HistoryFromReservation(r, now)
		if status == "" || entry.Status == status {
			entries = append(entries, entry)
		}
	}

	slices.SortStableFunc(entries, func(a, b models.HistoryEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return entries, nil
}

func (s *historyService) GetEntry(ctx context.Context, userID uuid.UUID, kind models.PurchaseKind, id uuid.UUID) (*models.HistoryEntry, error) {
	var (
		entry models.HistoryEntry
		owner uuid.UUID
	)

	switch kind {
	case models.KindFull:
		p, err := s.purchases.GetPurchaseByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err, "Purchase not found", "Failed to fetch purchase")
		}
		entry, owner = models.HistoryFromFull(p), p.UserID

	case models.KindLayaway:
		l, err := s.layaways.GetLayawayByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err, "Purchase not found", "Failed to fetch purchase")
		}
		entry, owner = models.HistoryFromLayaway(l), l.UserID

	case models.KindPhysical:
		r, err := s.reservations.GetReservationByID(ctx, id)
		if err != nil {
			return nil, notFoundOr(err, "Purchase not found", "Failed to fetch purchase")
		}
		entry, owner = models.HistoryFromReservation(r, s.now.now()), r.UserID

	default:
		return nil, appErrors.BadRequestError("Unknown purchase kind")
	}

	if owner != userID {
		return nil, appErrors.NotFoundError("Purchase not found")
	}

	return &entry, nil
}
