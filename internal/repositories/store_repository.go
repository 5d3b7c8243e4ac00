package repository

import (
	"context"
	"fmt"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/google/uuid"
)

type StoreRepository interface {
	GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
}

type storeRepository struct {
	DB DBTX
}

func NewStoreRepo(db DBTX) StoreRepository {
	return &storeRepository{DB: db}
}

func (r *storeRepository) GetStoreByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	store := &models.Store{}

	query := `SELECT id, name, email, created_at, updated_at FROM stores WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&store.ID, &store.Name, &store.Email, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	return store, nil
}
