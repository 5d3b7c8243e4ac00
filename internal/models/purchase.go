package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusPickedUp PurchaseStatus = "picked_up"
)

// PurchaseFull is a fully prepaid purchase line.
type PurchaseFull struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	StoreID    uuid.UUID       `json:"store_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     PurchaseStatus  `json:"status"`
	ChargeID   string          `json:"charge_id"`
	PickedUpAt *time.Time      `json:"picked_up_at,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type ChargeSummary struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
}

type StoreCheckoutResult struct {
	StoreID   uuid.UUID       `json:"store_id"`
	StoreName string          `json:"store_name"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Charge    ChargeSummary   `json:"charge"`
	Purchases []*PurchaseFull `json:"purchases"`
}

type CheckoutResult struct {
	Results []StoreCheckoutResult `json:"results"`
}

type CheckoutRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
}

type PurchaseProductRequest struct {
	StoreID         uuid.UUID `json:"store_id" validate:"required"`
	ProductID       uuid.UUID `json:"product_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,min=1"`
	PaymentMethodID string    `json:"payment_method_id" validate:"required"`
}
