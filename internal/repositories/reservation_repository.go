package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/utils"
	"github.com/google/uuid"
)

type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation *models.Reservation) error
	GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	GetReservationForUpdate(ctx context.Context, id uuid.UUID) (*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus, pickedUpAt *time.Time) error
	ListReservationsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error)
}

type reservationRepository struct {
	DB DBTX
}

func NewReservationRepo(db DBTX) ReservationRepository {
	return &reservationRepository{DB: db}
}

const reservationColumns = `id, user_id, store_id, product_id, quantity, unit_price, total_price, status, expires_at, picked_up_at, created_at, updated_at`

func scanReservation(row interface{ Scan(dest ...any) error }) (*models.Reservation, error) {
	res := &models.Reservation{}

	err := row.Scan(&res.ID, &res.UserID, &res.StoreID, &res.ProductID, &res.Quantity, &res.UnitPrice, &res.TotalPrice,
		&res.Status, &res.ExpiresAt, &res.PickedUpAt, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return res, nil
}

func (r *reservationRepository) CreateReservation(ctx context.Context, reservation *models.Reservation) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO physical_reservations (id, user_id, store_id, product_id, quantity, unit_price, total_price, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`

	_, err := r.DB.ExecContext(dbCtx, query, reservation.ID, reservation.UserID, reservation.StoreID, reservation.ProductID, reservation.Quantity,
		reservation.UnitPrice, reservation.TotalPrice, reservation.Status, reservation.ExpiresAt, reservation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}

	return nil
}

func (r *reservationRepository) GetReservationByID(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + reservationColumns + ` FROM physical_reservations WHERE id = $1`

	reservation, err := scanReservation(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get the reservation: %w", err)
	}

	return reservation, nil
}

func (r *reservationRepository) GetReservationForUpdate(ctx context.Context, id uuid.UUID) (*models.Reservation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + reservationColumns + ` FROM physical_reservations WHERE id = $1 FOR UPDATE`

	reservation, err := scanReservation(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to lock the reservation: %w", err)
	}

	return reservation, nil
}

func (r *reservationRepository) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status models.ReservationStatus, pickedUpAt *time.Time) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE physical_reservations SET status = $1, picked_up_at = $2, updated_at = NOW()
		WHERE id = $3`

	if _, err := r.DB.ExecContext(dbCtx, query, status, pickedUpAt, id); err != nil {
		return fmt.Errorf("failed to update the reservation status: %w", err)
	}

	return nil
}

// ListReservationsByUser returns every reservation of the user, newest first.
// Status filtering happens in the service because expiration is derived on read.
func (r *reservationRepository) ListReservationsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Reservation, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + reservationColumns + `
		FROM physical_reservations
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list the reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*models.Reservation

	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan the reservations: %w", err)
		}

		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
