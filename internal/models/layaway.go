package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LayawayStatus string

const (
	LayawayStatusReserved LayawayStatus = "reserved"
	LayawayStatusSettled  LayawayStatus = "settled"
	LayawayStatusPickedUp LayawayStatus = "picked_up"
)

// Layaway (apartado) is a purchase paid as a deposit plus partial payments.
// AmountPaid + Balance == TotalPrice holds after every transition.
type Layaway struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	StoreID        uuid.UUID       `json:"store_id"`
	ProductID      uuid.UUID       `json:"product_id"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	DepositPercent decimal.Decimal `json:"deposit_percent"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	Balance        decimal.Decimal `json:"balance"`
	Status         LayawayStatus   `json:"status"`
	PickedUpAt     *time.Time      `json:"picked_up_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

type CreateLayawayRequest struct {
	StoreID         uuid.UUID       `json:"store_id" validate:"required"`
	ProductID       uuid.UUID       `json:"product_id" validate:"required"`
	Quantity        int             `json:"quantity" validate:"required,min=1"`
	DepositPercent  decimal.Decimal `json:"deposit_percent"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required"`
}

type LayawayPaymentRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	PaymentMethodID string          `json:"payment_method_id" validate:"required"`
}

type LayawayPaymentResult struct {
	Layaway *Layaway      `json:"layaway"`
	Charge  ChargeSummary `json:"charge"`
}
