package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseKind string

const (
	KindFull     PurchaseKind = "full"
	KindLayaway  PurchaseKind = "layaway"
	KindPhysical PurchaseKind = "physical"
)

func (k PurchaseKind) Valid() bool {
	switch k {
	case KindFull, KindLayaway, KindPhysical:
		return true
	}

	return false
}

// HistoryStatuses is the allow-list of filter values across all purchase kinds.
var HistoryStatuses = map[string]struct{}{
	"pending":   {},
	"picked_up": {},
	"reserved":  {},
	"settled":   {},
	"expired":   {},
}

// HistoryEntry is the common projection of the three purchase kinds.
// Exactly one of Full, Layaway or Physical is set, matching Kind.
type HistoryEntry struct {
	Kind       PurchaseKind    `json:"kind"`
	ID         uuid.UUID       `json:"id"`
	StoreID    uuid.UUID       `json:"store_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`

	Full     *PurchaseFull `json:"full,omitempty"`
	Layaway  *Layaway      `json:"layaway,omitempty"`
	Physical *Reservation  `json:"physical,omitempty"`
}

func HistoryFromFull(p *PurchaseFull) HistoryEntry {
	return HistoryEntry{
		Kind: KindFull, ID: p.ID, StoreID: p.StoreID, ProductID: p.ProductID, Quantity: p.Quantity,
		UnitPrice: p.UnitPrice, TotalPrice: p.TotalPrice, Status: string(p.Status), CreatedAt: p.CreatedAt,
		Full: p,
	}
}

func HistoryFromLayaway(l *Layaway) HistoryEntry {
	return HistoryEntry{
		Kind: KindLayaway, ID: l.ID, StoreID: l.StoreID, ProductID: l.ProductID, Quantity: l.Quantity,
		UnitPrice: l.UnitPrice, TotalPrice: l.TotalPrice, Status: string(l.Status), CreatedAt: l.CreatedAt,
		Layaway: l,
	}
}

func HistoryFromReservation(r *Reservation, now time.Time) HistoryEntry {
	return HistoryEntry{
		Kind: KindPhysical, ID: r.ID, StoreID: r.StoreID, ProductID: r.ProductID, Quantity: r.Quantity,
		UnitPrice: r.UnitPrice, TotalPrice: r.TotalPrice, Status: string(r.EffectiveStatus(now)), CreatedAt: r.CreatedAt,
		Physical: r,
	}
}
