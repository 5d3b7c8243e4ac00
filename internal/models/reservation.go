package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	ReservationStatusPending  ReservationStatus = "pending"
	ReservationStatusPickedUp ReservationStatus = "picked_up"
	ReservationStatusExpired  ReservationStatus = "expired"
)

// Reservation is a physical pickup hold with no prepayment.
type Reservation struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	StoreID    uuid.UUID         `json:"store_id"`
	ProductID  uuid.UUID         `json:"product_id"`
	Quantity   int               `json:"quantity"`
	UnitPrice  decimal.Decimal   `json:"unit_price"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	Status     ReservationStatus `json:"status"`
	ExpiresAt  time.Time         `json:"expires_at"`
	PickedUpAt *time.Time        `json:"picked_up_at,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// EffectiveStatus reports pending reservations past their window as expired
// without touching the stored row.
func (r *Reservation) EffectiveStatus(now time.Time) ReservationStatus {
	if r.Status == ReservationStatusPending && now.After(r.ExpiresAt) {
		return ReservationStatusExpired
	}

	return r.Status
}

type ReserveProductRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,min=1"`
}
