package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/google/uuid"
)

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *models.PurchaseFull) error
	GetPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchaseFull, error)
	GetPurchaseForUpdate(ctx context.Context, id uuid.UUID) (*models.PurchaseFull, error)
	MarkPickedUp(ctx context.Context, id uuid.UUID, at time.Time) error
	ListPurchasesByUser(ctx context.Context, userID uuid.UUID, status string) ([]*models.PurchaseFull, error)
}

type purchaseRepository struct {
	DB DBTX
}

func NewPurchaseRepo(db DBTX) PurchaseRepository {
	return &purchaseRepository{DB: db}
}

const purchaseColumns = `id, user_id, store_id, product_id, quantity, unit_price, total_price, status, charge_id, picked_up_at, created_at, updated_at`

func scanPurchase(row interface{ Scan(dest ...any) error }) (*models.PurchaseFull, error) {
	p := &models.PurchaseFull{}

	err := row.Scan(&p.ID, &p.UserID, &p.StoreID, &p.ProductID, &p.Quantity, &p.UnitPrice, &p.TotalPrice, &p.Status, &p.ChargeID, &p.PickedUpAt, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return p, nil
}

func (r *purchaseRepository) CreatePurchase(ctx context.Context, purchase *models.PurchaseFull) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO purchases (id, user_id, store_id, product_id, quantity, unit_price, total_price, status, charge_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, purchase.ID, purchase.UserID, purchase.StoreID, purchase.ProductID, purchase.Quantity,
		purchase.UnitPrice, purchase.TotalPrice, purchase.Status, purchase.ChargeID).Scan(&purchase.CreatedAt, &purchase.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	return nil
}

func (r *purchaseRepository) GetPurchaseByID(ctx context.Context, id uuid.UUID) (*models.PurchaseFull, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1`

	purchase, err := scanPurchase(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get the purchase: %w", err)
	}

	return purchase, nil
}

func (r *purchaseRepository) GetPurchaseForUpdate(ctx context.Context, id uuid.UUID) (*models.PurchaseFull, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE id = $1 FOR UPDATE`

	purchase, err := scanPurchase(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock the purchase: %w", err)
	}

	return purchase, nil
}

func (r *purchaseRepository) MarkPickedUp(ctx context.Context, id uuid.UUID, at time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE purchases SET status = $1, picked_up_at = $2, updated_at = NOW()
		WHERE id = $3`

	if _, err := r.DB.ExecContext(dbCtx, query, models.PurchaseStatusPickedUp, at, id); err != nil {
		return fmt.Errorf("failed to update the purchase status: %w", err)
	}

	return nil
}

// ListPurchasesByUser returns the user's purchases, newest first. An empty status means no filter.
func (r *purchaseRepository) ListPurchasesByUser(ctx context.Context, userID uuid.UUID, status string) ([]*models.PurchaseFull, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list the purchases: %w", err)
	}
	defer rows.Close()

	var purchases []*models.PurchaseFull

	for rows.Next() {
		purchase, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the purchases: %w", err)
		}

		purchases = append(purchases, purchase)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return purchases, nil
}
