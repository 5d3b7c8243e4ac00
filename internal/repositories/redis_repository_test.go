package repository_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/config"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/marketplace-checkout/internal/repositories"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedisConfig() *config.Config {
	return &config.Config{
		RateConfig: config.RateConfig{MaxAttempts: 3, WindowSize: time.Minute},
		Checkout:   config.Checkout{IdempotencyTTL: time.Hour},
	}
}

// anyArgs accepts any arguments for time-dependent commands.
func anyArgs(expected, actual []interface{}) error {
	return nil
}

func TestRateLimitRepository_CheckPaymentRateLimit(t *testing.T) {
	cfg := testRedisConfig()
	key := "payment_attempts:user-1"

	t.Run("Success - Within Limit", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg)

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(key, redis.Z{}).SetVal(1)
		mock.ExpectZCard(key).SetVal(2)
		mock.ExpectExpire(key, time.Minute).SetVal(true)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckPaymentRateLimit(t.Context(), "user-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 1, remaining)
		assert.Zero(t, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Limit Exceeded", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg)
		oldest := time.Now().Add(-20 * time.Second).Unix()

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(key, redis.Z{}).SetVal(1)
		mock.ExpectZCard(key).SetVal(4)
		mock.ExpectExpire(key, time.Minute).SetVal(true)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).
			SetVal([]redis.Z{{Score: float64(oldest), Member: oldest}})

		// Act
		allowed, remaining, retryAfter, err := repo.CheckPaymentRateLimit(t.Context(), "user-1")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		assert.InDelta(t, 40, retryAfter, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Burst Within One Second", func(t *testing.T) {
		// Arrange
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		repo := repository.NewRateLimitRepo(client, cfg)

		allowed := 0
		lastRetryAfter := 0

		// Act
		for range 10 {
			ok, _, retryAfter, err := repo.CheckPaymentRateLimit(t.Context(), "user-burst")
			require.NoError(t, err)
			if ok {
				allowed++
			}
			lastRetryAfter = retryAfter
		}

		// Assert
		assert.Equal(t, int(cfg.RateConfig.MaxAttempts), allowed)
		assert.InDelta(t, 60, lastRetryAfter, 2)

		recorded, err := client.ZCard(t.Context(), "payment_attempts:user-burst").Result()
		require.NoError(t, err)
		assert.Equal(t, int64(10), recorded)
	})

	t.Run("Success - Users Are Limited Separately", func(t *testing.T) {
		// Arrange
		server := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: server.Addr()})
		t.Cleanup(func() { _ = client.Close() })
		repo := repository.NewRateLimitRepo(client, cfg)

		for range 4 {
			_, _, _, err := repo.CheckPaymentRateLimit(t.Context(), "user-a")
			require.NoError(t, err)
		}

		// Act
		allowed, remaining, _, err := repo.CheckPaymentRateLimit(t.Context(), "user-b")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 2, remaining)
	})

	t.Run("Failure - Pipeline Error", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewRateLimitRepo(client, cfg)

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetErr(errors.New("redis down"))

		// Act
		allowed, _, _, err := repo.CheckPaymentRateLimit(t.Context(), "user-1")

		// Assert
		require.Error(t, err)
		assert.False(t, allowed)
		assert.Contains(t, err.Error(), "redis pipeline error for rate limit check")
	})
}

func TestIdempotencyRepository(t *testing.T) {
	cfg := testRedisConfig()
	key := "user-1:abc"
	redisKey := "idempotency:user-1:abc"

	inFlight, err := json.Marshal(models.IdempotentResponse{State: models.IdempotencyInFlight})
	require.NoError(t, err)

	t.Run("Acquire - New Key", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewIdempotencyRepo(client, cfg)
		mock.ExpectSetNX(redisKey, inFlight, time.Hour).SetVal(true)

		// Act
		acquired, stored, err := repo.Acquire(t.Context(), key)

		// Assert
		require.NoError(t, err)
		assert.True(t, acquired)
		assert.Nil(t, stored)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Acquire - Completed Response Replayed", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		repo := repository.NewIdempotencyRepo(client, cfg)
		completed, err := json.Marshal(models.IdempotentResponse{State: models.IdempotencyCompleted, StatusCode: 201, Body: []byte(`{"success":true}`)})
		require.NoError(t, err)

		mock.ExpectSetNX(redisKey, inFlight, time.Hour).SetVal(false)
		mock.ExpectGet(redisKey).SetVal(string(completed))

		// Act
		acquired, stored, err := repo.Acquire(t.Context(), key)

		// Assert
		require.NoError(t, err)
		assert.False(t, acquired)
		require.NotNil(t, stored)
		assert.Equal(t, models.IdempotencyCompleted, stored.State)
		assert.Equal(t, 201, stored.StatusCode)
		assert.JSONEq(t, `{"success":true}`, string(stored.Body))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Acquire - Redis Error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := repository.NewIdempotencyRepo(client, cfg)
		mock.ExpectSetNX(redisKey, inFlight, time.Hour).SetErr(errors.New("redis down"))

		acquired, stored, err := repo.Acquire(t.Context(), key)

		assert.False(t, acquired)
		assert.Nil(t, stored)
		assert.ErrorContains(t, err, "failed to acquire idempotency key")
	})

	t.Run("Complete stores the response", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := repository.NewIdempotencyRepo(client, cfg)
		resp := &models.IdempotentResponse{StatusCode: 200, Body: []byte(`{}`)}
		expected, err := json.Marshal(models.IdempotentResponse{State: models.IdempotencyCompleted, StatusCode: 200, Body: []byte(`{}`)})
		require.NoError(t, err)

		mock.ExpectSet(redisKey, expected, time.Hour).SetVal("OK")

		require.NoError(t, repo.Complete(t.Context(), key, resp))
		assert.Equal(t, models.IdempotencyCompleted, resp.State)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Release deletes the key", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		repo := repository.NewIdempotencyRepo(client, cfg)
		mock.ExpectDel(redisKey).SetVal(1)

		require.NoError(t, repo.Release(t.Context(), key))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
