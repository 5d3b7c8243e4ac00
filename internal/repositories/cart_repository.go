package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/google/uuid"
)

type CartRepository interface {
	ListLines(ctx context.Context, userID uuid.UUID) ([]models.CartLineDetail, error)
	AddLine(ctx context.Context, line *models.CartLine) error
	UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	DeleteLine(ctx context.Context, userID, productID uuid.UUID) error
	DeleteStoreLines(ctx context.Context, userID, storeID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	DB DBTX
}

func NewCartRepo(db DBTX) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]models.CartLineDetail, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT c.id, c.user_id, c.store_id, c.product_id, c.quantity, c.created_at, c.updated_at,
		       p.name, p.price, p.stock, s.name
		FROM cart_items c
		JOIN products p ON p.id = c.product_id
		JOIN stores s ON s.id = c.store_id
		WHERE c.user_id = $1
		ORDER BY s.name, c.created_at`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	defer rows.Close()

	var lines []models.CartLineDetail

	for rows.Next() {
		var line models.CartLineDetail

		if err := rows.Scan(&line.ID, &line.UserID, &line.StoreID, &line.ProductID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt,
			&line.ProductName, &line.Price, &line.Stock, &line.StoreName); err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// AddLine inserts the (user, product) row or accumulates its quantity.
func (r *cartRepository) AddLine(ctx context.Context, line *models.CartLine) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (id, user_id, store_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
		RETURNING id, quantity, created_at, updated_at`

	return r.DB.QueryRowContext(dbCtx, query, line.ID, line.UserID, line.StoreID, line.ProductID, line.Quantity).
		Scan(&line.ID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt)
}

func (r *cartRepository) UpdateQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE cart_items SET quantity = $1, updated_at = NOW()
		WHERE user_id = $2 AND product_id = $3`

	return r.execAffectingOne(dbCtx, query, quantity, userID, productID)
}

func (r *cartRepository) DeleteLine(ctx context.Context, userID, productID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	return r.execAffectingOne(dbCtx, query, userID, productID)
}

func (r *cartRepository) DeleteStoreLines(ctx context.Context, userID, storeID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_id = $1 AND store_id = $2`

	if _, err := r.DB.ExecContext(dbCtx, query, userID, storeID); err != nil {
		return fmt.Errorf("failed to delete store cart lines: %w", err)
	}

	return nil
}

func (r *cartRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_id = $1`

	if _, err := r.DB.ExecContext(dbCtx, query, userID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (r *cartRepository) execAffectingOne(ctx context.Context, query string, args ...any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update the cart: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updatedRows == 0 {
		return sql.ErrNoRows
	}

	return nil
}
