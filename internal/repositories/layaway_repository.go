package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/google/uuid"
)

type LayawayRepository interface {
	CreateLayaway(ctx context.Context, layaway *models.Layaway) error
	GetLayawayByID(ctx context.Context, id uuid.UUID) (*models.Layaway, error)
	GetLayawayForUpdate(ctx context.Context, id uuid.UUID) (*models.Layaway, error)
	UpdateLayaway(ctx context.Context, layaway *models.Layaway) error
	ListLayawaysByUser(ctx context.Context, userID uuid.UUID, status string) ([]*models.Layaway, error)
}

type layawayRepository struct {
	DB DBTX
}

func NewLayawayRepo(db DBTX) LayawayRepository {
	return &layawayRepository{DB: db}
}

const layawayColumns = `id, user_id, store_id, product_id, quantity, unit_price, total_price, deposit_percent, amount_paid, balance, status, picked_up_at, created_at, updated_at`

func scanLayaway(row interface{ Scan(dest ...any) error }) (*models.Layaway, error) {
	l := &models.Layaway{}

	err := row.Scan(&l.ID, &l.UserID, &l.StoreID, &l.ProductID, &l.Quantity, &l.UnitPrice, &l.TotalPrice,
		&l.DepositPercent, &l.AmountPaid, &l.Balance, &l.Status, &l.PickedUpAt, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return l, nil
}

func (r *layawayRepository) CreateLayaway(ctx context.Context, layaway *models.Layaway) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO layaways (id, user_id, store_id, product_id, quantity, unit_price, total_price, deposit_percent, amount_paid, balance, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, layaway.ID, layaway.UserID, layaway.StoreID, layaway.ProductID, layaway.Quantity,
		layaway.UnitPrice, layaway.TotalPrice, layaway.DepositPercent, layaway.AmountPaid, layaway.Balance, layaway.Status).
		Scan(&layaway.CreatedAt, &layaway.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert layaway: %w", err)
	}

	return nil
}

func (r *layawayRepository) GetLayawayByID(ctx context.Context, id uuid.UUID) (*models.Layaway, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + layawayColumns + ` FROM layaways WHERE id = $1`

	layaway, err := scanLayaway(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get the layaway: %w", err)
	}

	return layaway, nil
}

// GetLayawayForUpdate locks the row until the surrounding transaction ends.
func (r *layawayRepository) GetLayawayForUpdate(ctx context.Context, id uuid.UUID) (*models.Layaway, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + layawayColumns + ` FROM layaways WHERE id = $1 FOR UPDATE`

	layaway, err := scanLayaway(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock the layaway: %w", err)
	}

	return layaway, nil
}

func (r *layawayRepository) UpdateLayaway(ctx context.Context, layaway *models.Layaway) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE layaways
		SET deposit_percent = $1, amount_paid = $2, balance = $3, status = $4, picked_up_at = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, layaway.DepositPercent, layaway.AmountPaid, layaway.Balance, layaway.Status, layaway.PickedUpAt, layaway.ID).
		Scan(&layaway.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update the layaway: %w", err)
	}

	return nil
}

func (r *layawayRepository) ListLayawaysByUser(ctx context.Context, userID uuid.UUID, status string) ([]*models.Layaway, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + layawayColumns + `
		FROM layaways
		WHERE user_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list the layaways: %w", err)
	}
	defer rows.Close()

	var layaways []*models.Layaway

	for rows.Next() {
		layaway, err := scanLayaway(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the layaways: %w", err)
		}

		layaways = append(layaways, layaway)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return layaways, nil
}
