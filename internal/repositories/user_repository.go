package repository

import (
	"context"
	"fmt"

	models "github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/google/uuid"
)

type UserRepository interface {
	GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error)
	SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) (bool, error)
}

type userRepository struct {
	DB DBTX
}

func NewUserRepo(db DBTX) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) GetUserById(ctx context.Context, id uuid.UUID) (*models.User, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	user := &models.User{}
	query := `SELECT id, email, name, stripe_customer_id, created_at, updated_at
			  FROM users
			  WHERE id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, id).Scan(&user.ID, &user.Email, &user.Name, &user.StripeCustomerID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		return nil, err
	}

	return user, nil
}

// SetStripeCustomerID stores the mapping only if none exists yet. It reports
// false when another request already persisted a customer id.
func (r *userRepository) SetStripeCustomerID(ctx context.Context, id uuid.UUID, customerID string) (bool, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE users SET stripe_customer_id = $1, updated_at = NOW()
		WHERE id = $2 AND stripe_customer_id IS NULL`

	result, err := r.DB.ExecContext(dbCtx, query, customerID, id)
	if err != nil {
		return false, fmt.Errorf("failed to store stripe customer: %w", err)
	}

	updatedRows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get updated rows: %w", err)
	}

	return updatedRows == 1, nil
}
