package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLMock returns a regexp-matching sqlmock closed at test cleanup.
func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	return db, mock
}

func TestNewProductRepo(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)
	assert.NotNil(t, repo, "NewProductRepo should return a non-nil repository")
}

func TestProductRepository_GetProductByID(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	productID := uuid.New()
	storeID := uuid.New()
	now := time.Now()
	expectedSQL := regexp.QuoteMeta(`SELECT p.id, p.store_id, s.name, p.name, p.price, p.stock, p.created_at, p.updated_at FROM products p JOIN stores s ON s.id = p.store_id WHERE p.id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rows := sqlmock.NewRows([]string{"id", "store_id", "store_name", "name", "price", "stock", "created_at", "updated_at"}).
			AddRow(productID.String(), storeID.String(), "Hardware Sur", "Cement 50kg", "189.90", 12, now, now)
		mock.ExpectQuery(expectedSQL).WithArgs(productID).WillReturnRows(rows)

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, storeID, product.StoreID)
		assert.Equal(t, "Hardware Sur", product.StoreName)
		assert.True(t, decimal.RequireFromString("189.90").Equal(product.Price))
		assert.Equal(t, 12, product.Stock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mock.ExpectQuery(expectedSQL).WithArgs(productID).WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		require.Error(t, err)
		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_ReserveStock(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewProductRepo(db)
	ctx := t.Context()

	productID := uuid.New()
	expectedSQL := regexp.QuoteMeta(`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`)

	t.Run("Success - Stock Decremented", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(expectedSQL).WithArgs(3, productID).WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.ReserveStock(ctx, productID, 3)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		mock.ExpectExec(expectedSQL).WithArgs(6, productID).WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.ReserveStock(ctx, productID, 6)

		// Assert
		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Non Positive Quantity", func(t *testing.T) {
		// Act
		err := repo.ReserveStock(ctx, productID, 0)

		// Assert
		assert.ErrorIs(t, err, repository.ErrInvalidQuantity)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbErr := errors.New("connection reset")
		mock.ExpectExec(expectedSQL).WithArgs(1, productID).WillReturnError(dbErr)

		// Act
		err := repo.ReserveStock(ctx, productID, 1)

		// Assert
		assert.ErrorIs(t, err, dbErr)
		assert.ErrorContains(t, err, "failed to reserve stock")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestStoreRepository_GetStoreByID(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := repository.NewStoreRepo(db)
	storeID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, email, created_at, updated_at FROM stores WHERE id = $1`)).
		WithArgs(storeID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "created_at", "updated_at"}).
			AddRow(storeID.String(), "Ferretería Centro", "centro@example.com", now, now))

	store, err := repo.GetStoreByID(t.Context(), storeID)

	require.NoError(t, err)
	assert.Equal(t, "Ferretería Centro", store.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
