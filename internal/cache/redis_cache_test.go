package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/cache"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/config"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock, *config.CacheConfig) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.CacheConfig{DefaultTTL: 10 * time.Minute}

	return cache.NewRedisCache(client, cfg), mock, cfg
}

func sampleCartView() models.CartView {
	storeID := uuid.New()

	return models.CartView{
		UserID: uuid.New(),
		Stores: []models.StoreGroup{{
			StoreID:   storeID,
			StoreName: "Tienda Centro",
			Subtotal:  decimal.RequireFromString("40.00"),
			Lines: []models.CartLineView{{
				ProductID: uuid.New(),
				Name:      "Cafe",
				Price:     decimal.RequireFromString("20.00"),
				Quantity:  2,
				LineTotal: decimal.RequireFromString("40.00"),
			}},
		}},
		Total: decimal.RequireFromString("40.00"),
	}
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	view := sampleCartView()
	key := cache.CartKey(view.UserID, 1)
	data, err := json.Marshal(view)
	require.NoError(t, err)

	t.Run("Success - Cart View Found", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(string(data))

		var got models.CartView

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		require.Len(t, got.Stores, 1)
		assert.Equal(t, "Tienda Centro", got.Stores[0].StoreName)
		assert.True(t, view.Total.Equal(got.Total))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Cache Miss", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetErr(redis.Nil)

		var got models.CartView

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, got.Stores)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("connection reset")
		mock.ExpectGet(key).SetErr(redisErr)

		var got models.CartView

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		assert.False(t, found)
		assert.ErrorIs(t, err, redisErr)
		assert.ErrorContains(t, err, "failed to get key "+key+" from redis")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Entry", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal(`{"stores": "not-a-list"}`)

		var got models.CartView

		// Act
		found, err := redisCache.Get(ctx, key, &got)

		// Assert
		assert.False(t, found)

		var typeErr *json.UnmarshalTypeError
		assert.ErrorAs(t, err, &typeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	view := sampleCartView()
	key := cache.CartKey(view.UserID, 1)
	data, err := json.Marshal(view)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectSet(key, data, time.Minute).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, view, time.Minute))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Default TTL", func(t *testing.T) {
		redisCache, mock, cfg := setup(t)
		mock.ExpectSet(key, data, cfg.DefaultTTL).SetVal("OK")

		require.NoError(t, redisCache.Set(ctx, key, view, 0))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unencodable Value", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		err := redisCache.Set(ctx, key, make(chan int), time.Minute)

		var typeErr *json.UnsupportedTypeError
		assert.ErrorAs(t, err, &typeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("OOM command not allowed")
		mock.ExpectSet(key, data, time.Minute).SetErr(redisErr)

		err := redisCache.Set(ctx, key, view, time.Minute)

		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	first := cache.CartKey(uuid.New(), 1)
	second := cache.CartKey(uuid.New(), 2)

	t.Run("Success - Several Keys", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectDel(first, second).SetVal(2)

		require.NoError(t, redisCache.Delete(ctx, first, second))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - No Keys Is A No-op", func(t *testing.T) {
		redisCache, mock, _ := setup(t)

		require.NoError(t, redisCache.Delete(ctx))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		redisErr := errors.New("READONLY")
		mock.ExpectDel(first).SetErr(redisErr)

		err := redisCache.Delete(ctx, first)

		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncr(t *testing.T) {
	ctx := t.Context()
	key := cache.CartVersionKey(uuid.New())

	t.Run("Success - Counter TTL Outlives Views", func(t *testing.T) {
		// Arrange
		redisCache, mock, _ := setup(t)
		mock.ExpectTxPipeline()
		mock.ExpectIncr(key).SetVal(3)
		mock.ExpectExpire(key, 24*time.Hour).SetVal(true)
		mock.ExpectTxPipelineExec()

		// Act
		version, err := redisCache.Incr(ctx, key)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(3), version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Long View TTL Stretches Counter TTL", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		redisCache := cache.NewRedisCache(client, &config.CacheConfig{DefaultTTL: 20 * time.Hour})
		mock.ExpectTxPipeline()
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, 40*time.Hour).SetVal(true)
		mock.ExpectTxPipelineExec()

		// Act
		version, err := redisCache.Incr(ctx, key)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(1), version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Counter Reads Back Through Get", func(t *testing.T) {
		redisCache, mock, _ := setup(t)
		mock.ExpectGet(key).SetVal("7")

		var version int64
		found, err := redisCache.Get(ctx, key, &version)

		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, int64(7), version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCartKey(t *testing.T) {
	id := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	assert.Equal(t, "cart:123e4567-e89b-12d3-a456-426614174000:v0", cache.CartKey(id, 0))
	assert.Equal(t, "cart:123e4567-e89b-12d3-a456-426614174000:v12", cache.CartKey(id, 12))
	assert.Equal(t, "cart:123e4567-e89b-12d3-a456-426614174000:version", cache.CartVersionKey(id))
	assert.Equal(t, "cart:abc", cache.Key(cache.CartKeyPrefix, "abc"))
}
