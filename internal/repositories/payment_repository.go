package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/google/uuid"
)

// PaymentRepository is the local ledger of gateway charges.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) error
	GetPaymentByStripeID(ctx context.Context, stripeID string) (*models.Payment, error)
	UpdatePaymentStatus(ctx context.Context, stripeID string, status models.PaymentStatus) error
	ListPaymentsOfUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*models.Payment, int, error)
}

type paymentRepository struct {
	DB DBTX
}

func NewPaymentRepository(db DBTX) PaymentRepository {
	return &paymentRepository{DB: db}
}

func (r *paymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO payments (id, user_id, stripe_id, amount, currency, description, status, payment_method, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query, payment.ID, payment.UserID, payment.StripeID, payment.Amount, payment.Currency,
		payment.Description, payment.Status, payment.PaymentMethod).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

func (r *paymentRepository) GetPaymentByStripeID(ctx context.Context, stripeID string) (*models.Payment, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	payment := &models.Payment{}

	query := `
		SELECT id, user_id, stripe_id, amount, currency, description, status, payment_method, created_at, updated_at
		FROM payments
		WHERE stripe_id = $1`

	err := r.DB.QueryRowContext(dbCtx, query, stripeID).Scan(&payment.ID, &payment.UserID, &payment.StripeID, &payment.Amount, &payment.Currency,
		&payment.Description, &payment.Status, &payment.PaymentMethod, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get the payment: %w", err)
	}

	return payment, nil
}

func (r *paymentRepository) UpdatePaymentStatus(ctx context.Context, stripeID string, status models.PaymentStatus) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE payments SET status = $1, updated_at = NOW()
		WHERE stripe_id = $2`

	result, err := r.DB.ExecContext(dbCtx, query, status, stripeID)
	if err != nil {
		return fmt.Errorf("failed to update the payment status: %w", err)
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

func (r *paymentRepository) ListPaymentsOfUser(ctx context.Context, userID uuid.UUID, page, size int) ([]*models.Payment, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var total int

	countQuery := `SELECT COUNT(*) FROM payments WHERE user_id = $1`
	if err := r.DB.QueryRowContext(dbCtx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count the payments: %w", err)
	}

	offset := (page - 1) * size

	query := `
		SELECT id, user_id, stripe_id, amount, currency, description, status, payment_method, created_at, updated_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(dbCtx, query, userID, size, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list the payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment

	for rows.Next() {
		payment := &models.Payment{}

		err := rows.Scan(&payment.ID, &payment.UserID, &payment.StripeID, &payment.Amount, &payment.Currency,
			&payment.Description, &payment.Status, &payment.PaymentMethod, &payment.CreatedAt, &payment.UpdatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan the payments: %w", err)
		}

		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return payments, total, nil
}
