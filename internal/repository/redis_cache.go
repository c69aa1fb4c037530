package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/repforge/repforge/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	leaderboardKey    = "leaderboard:global"
	progressKeyPrefix = "progress:"
)

// RedisCacheRepository implements domain.CacheRepository. The leaderboard and
// progress payloads are derived data, so everything here is disposable; the
// services invalidate on every workout create/delete.
type RedisCacheRepository struct {
	client *redis.Client
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) *RedisCacheRepository {
	return &RedisCacheRepository{
		client: client,
	}
}

func (r *RedisCacheRepository) SetLeaderboard(ctx context.Context, board *domain.Leaderboard, ttl time.Duration) error {
	return r.set(ctx, leaderboardKey, board, ttl)
}

// GetLeaderboard retrieves the cached leaderboard; nil means cache miss
func (r *RedisCacheRepository) GetLeaderboard(ctx context.Context) (*domain.Leaderboard, error) {
	var board domain.Leaderboard
	ok, err := r.get(ctx, leaderboardKey, &board)
	if err != nil || !ok {
		return nil, err
	}
	return &board, nil
}

func (r *RedisCacheRepository) InvalidateLeaderboard(ctx context.Context) error {
	return r.del(ctx, leaderboardKey)
}

func (r *RedisCacheRepository) SetProgress(ctx context.Context, userID string, summary *domain.ProgressSummary, ttl time.Duration) error {
	return r.set(ctx, progressKeyPrefix+userID, summary, ttl)
}

// GetProgress retrieves a cached progress summary; nil means cache miss
func (r *RedisCacheRepository) GetProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	var summary domain.ProgressSummary
	ok, err := r.get(ctx, progressKeyPrefix+userID, &summary)
	if err != nil || !ok {
		return nil, err
	}
	return &summary, nil
}

func (r *RedisCacheRepository) InvalidateProgress(ctx context.Context, userID string) error {
	return r.del(ctx, progressKeyPrefix+userID)
}

// get unmarshals the value at key into dest, reporting whether it was a hit
func (r *RedisCacheRepository) get(ctx context.Context, key string, dest interface{}) (bool, error) {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Get",
		trace.WithAttributes(attribute.String("cache.key", key)),
	)
	defer span.End()

	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			span.SetAttributes(attribute.String("cache.result", "miss"))
			return false, nil
		}
		span.RecordError(err)
		return false, fmt.Errorf("redis get error: %w", err)
	}

	span.SetAttributes(attribute.String("cache.result", "hit"))
	if err := json.Unmarshal(data, dest); err != nil {
		span.RecordError(err)
		return false, fmt.Errorf("unmarshal error: %w", err)
	}
	return true, nil
}

func (r *RedisCacheRepository) set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Set",
		trace.WithAttributes(
			attribute.String("cache.key", key),
			attribute.Int64("cache.ttl_seconds", int64(ttl.Seconds())),
		),
	)
	defer span.End()

	data, err := json.Marshal(value)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("marshal error: %w", err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

func (r *RedisCacheRepository) del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	tracer := otel.Tracer("redis")
	ctx, span := tracer.Start(ctx, "redis.Delete",
		trace.WithAttributes(attribute.Int("cache.key_count", len(keys))),
	)
	defer span.End()

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("redis delete error: %w", err)
	}
	return nil
}
