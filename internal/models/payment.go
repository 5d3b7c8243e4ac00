package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusSucceeded PaymentStatus = "succeeded"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

// Payment is one gateway charge as recorded in the local ledger.
type Payment struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	StripeID      string          `json:"stripe_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Description   string          `json:"description"`
	Status        PaymentStatus   `json:"payment_status"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ChargeRequest is what the checkout paths hand to the gateway. Amount is in major units.
type ChargeRequest struct {
	User            *User
	PaymentMethodID string
	Amount          decimal.Decimal
	Description     string
}

type Charge struct {
	ID     string
	Amount decimal.Decimal
	Status string
}

func (c *Charge) Summary() ChargeSummary {
	return ChargeSummary{ID: c.ID, Amount: c.Amount, Status: c.Status}
}
