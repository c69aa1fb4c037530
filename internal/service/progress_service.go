package service

import (
	"context"
	"fmt"
	"time"

	"github.com/repforge/repforge/internal/domain"
	"github.com/repforge/repforge/internal/scoring"
)

const progressCacheTTL = 60 * time.Second

// ProgressService builds per-user progress summaries (daily histogram, weekly
// volume, personal records) from the user's workout history.
type ProgressService struct {
	userRepo    domain.UserRepository
	workoutRepo domain.WorkoutRepository
	cache       domain.CacheRepository
	now         func() time.Time
}

// NewProgressService creates a new progress service
func NewProgressService(
	userRepo domain.UserRepository,
	workoutRepo domain.WorkoutRepository,
	cache domain.CacheRepository,
) *ProgressService {
	return &ProgressService{
		userRepo:    userRepo,
		workoutRepo: workoutRepo,
		cache:       cache,
		now:         time.Now,
	}
}

// GetProgress returns the progress summary for a user
func (s *ProgressService) GetProgress(ctx context.Context, userID string) (*domain.ProgressSummary, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetProgress(ctx, userID); err == nil && cached != nil {
			return cached, nil
		}
	}

	records, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if err := scoring.ValidateSnapshot(records); err != nil {
		return nil, err
	}

	summary := scoring.AggregateProgress(records, s.now())

	if s.cache != nil {
		_ = s.cache.SetProgress(ctx, userID, summary, progressCacheTTL)
	}
	return summary, nil
}
