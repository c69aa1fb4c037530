package service

import (
	"context"
	"fmt"
	"time"

	"github.com/repforge/repforge/internal/domain"
	"github.com/repforge/repforge/internal/scoring"
	"golang.org/x/sync/errgroup"
)

const leaderboardCacheTTL = 60 * time.Second

// LeaderboardService computes the ranked consistency leaderboard from a full
// snapshot of users and workout records.
type LeaderboardService struct {
	userRepo    domain.UserRepository
	workoutRepo domain.WorkoutRepository
	cache       domain.CacheRepository
	now         func() time.Time
}

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(
	userRepo domain.UserRepository,
	workoutRepo domain.WorkoutRepository,
	cache domain.CacheRepository,
) *LeaderboardService {
	return &LeaderboardService{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		cache:       cache,
		now:         time.Now,
	}
}

// GetLeaderboard returns the full ranked leaderboard. viewerID is optional;
// when set, MyRank carries the viewer's position (0 if they are not ranked).
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, viewerID string) (*domain.Leaderboard, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetLeaderboard(ctx); err == nil && cached != nil {
			cached.MyRank = scoring.RankOf(cached.Entries, viewerID)
			return cached, nil
		}
	}

	var (
		users   []*domain.User
		records []*domain.WorkoutRecord
	)

	// Users and workouts are independent collections; fetch them concurrently
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = s.userRepo.GetAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		records, err = s.workoutRepo.ListAll(gCtx)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := scoring.ValidateSnapshot(records); err != nil {
		return nil, err
	}

	entries := scoring.CalculateScores(users, records, s.now())
	ranked := scoring.Rank(entries)

	board := &domain.Leaderboard{
		Entries:    ranked,
		TotalUsers: len(ranked),
	}

	if s.cache != nil {
		// Cached copy carries no viewer-specific fields
		_ = s.cache.SetLeaderboard(ctx, board, leaderboardCacheTTL)
	}

	board.MyRank = scoring.RankOf(ranked, viewerID)
	return board, nil
}
