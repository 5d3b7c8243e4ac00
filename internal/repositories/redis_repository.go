package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/marketplace-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/config"
	"github.com/aaravmahajanofficial/marketplace-checkout/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckPaymentRateLimit(ctx context.Context, userID string) (bool, int, int, error)
}

type IdempotencyRepository interface {
	Acquire(ctx context.Context, key string) (bool, *models.IdempotentResponse, error)
	Complete(ctx context.Context, key string, resp *models.IdempotentResponse) error
	Release(ctx context.Context, key string) error
}

type redisRepository struct {
	client *redis.Client
	cfg    *config.Config
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.RedisConnect.GetDSN()
	slog.Info("Connecting to Redis", slog.String("url", fmt.Sprintf("redis://%s:<password>@%s:%s", cfg.RedisConnect.Username, cfg.RedisConnect.Host, cfg.RedisConnect.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		slog.Error("Failed to parse Redis URL", slog.Any("error", err))
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		slog.Error("Failed to connect to Redis", slog.Any("error", err))
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	slog.Info("✅ Successfully connected to Redis")
	return client, nil
}

func NewRateLimitRepo(client *redis.Client, cfg *config.Config) RateLimitRepository {
	return &redisRepository{client: client, cfg: cfg}
}

func NewIdempotencyRepo(client *redis.Client, cfg *config.Config) IdempotencyRepository {
	return &redisRepository{client: client, cfg: cfg}
}

// Returns isAllowed, attempts left, seconds to wait, error
func (r *redisRepository) CheckPaymentRateLimit(ctx context.Context, userID string) (bool, int, int, error) {

	logger := middleware.LoggerFromContext(ctx)

	key := fmt.Sprintf("payment_attempts:%s", userID)

	now := time.Now().Unix()

	// only attempts after windowStart are counted
	windowStart := now - int64(r.cfg.RateConfig.WindowSize.Seconds())

	pipe := r.client.Pipeline()

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	// one member per attempt, so attempts within the same second all count
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: uuid.NewString()})
	count := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, r.cfg.RateConfig.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		logger.Error("Redis pipeline execution failed for rate limit", slog.String("key", key), slog.Any("error", err))
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.RateConfig.MaxAttempts - attempts

	if attempts > r.cfg.RateConfig.MaxAttempts {

		scores, err := r.client.ZRangeArgsWithScores(ctx, redis.ZRangeArgs{Key: key, Start: 0, Stop: 0}).Result()
		if err != nil || len(scores) == 0 {
			logger.Error("Failed to get oldest attempt time for rate limit", slog.String("key", key), slog.Any("error", err))
			return false, 0, int(r.cfg.RateConfig.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}

		oldestTimestamp := int64(scores[0].Score)
		retryAfter := max((oldestTimestamp+int64(r.cfg.RateConfig.WindowSize.Seconds()))-now, 0)

		logger.Warn("Payment rate limit exceeded", slog.String("userId", userID), slog.Int64("attempts", attempts))
		return false, 0, int(retryAfter), nil
	}

	logger.Debug("Rate limit check passed", slog.String("userId", userID), slog.Int64("attempts", attempts), slog.Int64("remaining", remaining))
	return true, int(remaining), 0, nil
}

func idempotencyKey(key string) string {
	return "idempotency:" + key
}

// Acquire claims the key for a new request. When the key is already taken it
// returns the stored entry, which is either in flight or a completed response.
func (r *redisRepository) Acquire(ctx context.Context, key string) (bool, *models.IdempotentResponse, error) {

	inFlight, err := json.Marshal(models.IdempotentResponse{State: models.IdempotencyInFlight})
	if err != nil {
		return false, nil, fmt.Errorf("failed to marshal idempotency marker: %w", err)
	}

	acquired, err := r.client.SetNX(ctx, idempotencyKey(key), inFlight, r.cfg.Checkout.IdempotencyTTL).Result()
	if err != nil {
		return false, nil, fmt.Errorf("failed to acquire idempotency key: %w", err)
	}

	if acquired {
		return true, nil, nil
	}

	data, err := r.client.Get(ctx, idempotencyKey(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// expired between SETNX and GET; treat as in flight so the client retries
			return false, &models.IdempotentResponse{State: models.IdempotencyInFlight}, nil
		}

		return false, nil, fmt.Errorf("failed to read idempotency key: %w", err)
	}

	var stored models.IdempotentResponse
	if err := json.Unmarshal(data, &stored); err != nil {
		return false, nil, fmt.Errorf("failed to unmarshal idempotency entry: %w", err)
	}

	return false, &stored, nil
}

func (r *redisRepository) Complete(ctx context.Context, key string, resp *models.IdempotentResponse) error {

	resp.State = models.IdempotencyCompleted

	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotent response: %w", err)
	}

	if err := r.client.Set(ctx, idempotencyKey(key), data, r.cfg.Checkout.IdempotencyTTL).Err(); err != nil {
		return fmt.Errorf("failed to store idempotent response: %w", err)
	}

	return nil
}

func (r *redisRepository) Release(ctx context.Context, key string) error {

	if err := r.client.Del(ctx, idempotencyKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to release idempotency key: %w", err)
	}

	return nil
}
