package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/XSAM/otelsql"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/config"
	_ "github.com/lib/pq"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ErrCommitFailed marks a transaction whose work succeeded but whose commit did not.
var ErrCommitFailed = errors.New("transaction commit failed")

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Transactor runs fn against repositories bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type Transactor interface {
	WithTx(ctx context.Context, fn func(repos *Repositories) error) error
}

type Repositories struct {
	DB           *sql.DB
	Product      ProductRepository
	Store        StoreRepository
	User         UserRepository
	Cart         CartRepository
	Purchase     PurchaseRepository
	Layaway      LayawayRepository
	Reservation  ReservationRepository
	Payment      PaymentRepository
	Notification NotificationRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := otelsql.Open("postgres", cfg.Database.GetDSN(),
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return NewFromDB(db), nil
}

// NewFromDB wires every repository onto an open pool.
func NewFromDB(db *sql.DB) *Repositories {
	repos := bind(db)
	repos.DB = db

	return repos
}

func bind(conn DBTX) *Repositories {
	return &Repositories{
		Product:      NewProductRepo(conn),
		Store:        NewStoreRepo(conn),
		User:         NewUserRepo(conn),
		Cart:         NewCartRepo(conn),
		Purchase:     NewPurchaseRepo(conn),
		Layaway:      NewLayawayRepo(conn),
		Reservation:  NewReservationRepo(conn),
		Payment:      NewPaymentRepository(conn),
		Notification: NewNotificationRepo(conn),
	}
}

// WithTx runs fn on repositories bound to one transaction. The transaction
// commits when fn returns nil and rolls back when it fails or panics.
func (r *Repositories) WithTx(ctx context.Context, fn func(repos *Repositories) error) error {

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	txRepos := bind(tx)
	txRepos.DB = r.DB

	if err := fn(txRepos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	return nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
