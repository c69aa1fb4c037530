package domain

import (
	"context"
	"time"
)

// CacheRepository defines the boundary-layer cache for derived aggregates.
// The scoring engine itself is pure; anything cached here must be invalidated
// whenever the underlying workout snapshot changes.
type CacheRepository interface {
	SetLeaderboard(ctx context.Context, board *Leaderboard, ttl time.Duration) error
	// GetLeaderboard returns nil on a cache miss
	GetLeaderboard(ctx context.Context) (*Leaderboard, error)
	InvalidateLeaderboard(ctx context.Context) error

	SetProgress(ctx context.Context, userID string, summary *ProgressSummary, ttl time.Duration) error
	// GetProgress returns nil on a cache miss
	GetProgress(ctx context.Context, userID string) (*ProgressSummary, error)
	InvalidateProgress(ctx context.Context, userID string) error
}
