package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLine struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	StoreID   uuid.UUID `json:"store_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartLineDetail is a cart line joined with its product and store.
type CartLineDetail struct {
	CartLine
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	StoreName   string          `json:"store_name"`
}

type CartLineView struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type StoreGroup struct {
	StoreID   uuid.UUID       `json:"store_id"`
	StoreName string          `json:"store_name"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Lines     []CartLineView  `json:"lines"`
}

type CartView struct {
	UserID uuid.UUID       `json:"user_id"`
	Stores []StoreGroup    `json:"stores"`
	Total  decimal.Decimal `json:"total"`
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"   validate:"required,min=1"`
}

type UpdateQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"   validate:"min=0"`
}
