package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/repforge/repforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*RedisCacheRepository, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisCacheRepository(client), mr
}

func TestLeaderboardCacheRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	board := &domain.Leaderboard{
		Entries: []domain.LeaderboardEntry{
			{Rank: 1, UserID: "u1", Name: "Alice", Total: 10, Last7: 3, Last30: 6, UniqueDays: 8, Score: 61},
			{Rank: 2, UserID: "u2", Name: "Bob", Score: 12},
		},
		TotalUsers: 2,
	}

	require.NoError(t, cache.SetLeaderboard(ctx, board, time.Minute))

	got, err := cache.GetLeaderboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, board.Entries, got.Entries)
	assert.Equal(t, 2, got.TotalUsers)
}

func TestLeaderboardCacheMiss(t *testing.T) {
	cache, _ := setupCache(t)

	got, err := cache.GetLeaderboard(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLeaderboardCacheExpiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLeaderboard(ctx, &domain.Leaderboard{TotalUsers: 1}, time.Minute))
	mr.FastForward(2 * time.Minute)

	got, err := cache.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLeaderboardCacheInvalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLeaderboard(ctx, &domain.Leaderboard{TotalUsers: 1}, time.Minute))
	require.NoError(t, cache.InvalidateLeaderboard(ctx))

	got, err := cache.GetLeaderboard(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProgressCacheIsPerUser(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	summary := &domain.ProgressSummary{
		TotalVolume: 2903,
		PersonalRecords: []domain.PersonalRecord{
			{Exercise: "Squat", MaxWeight: 120, MaxSets: 5},
		},
	}
	require.NoError(t, cache.SetProgress(ctx, "u1", summary, time.Minute))

	got, err := cache.GetProgress(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, summary.TotalVolume, got.TotalVolume)

	other, err := cache.GetProgress(ctx, "u2")
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, cache.InvalidateProgress(ctx, "u1"))
	got, err = cache.GetProgress(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
