package service

import (
	"context"
	"fmt"
	"time"

	"github.com/repforge/repforge/internal/domain"
	"github.com/repforge/repforge/internal/scoring"
)

// WorkoutService handles workout record CRUD plus the cache invalidation that
// keeps the leaderboard and progress views honest.
type WorkoutService struct {
	workoutRepo domain.WorkoutRepository
	cache       domain.CacheRepository
}

// NewWorkoutService creates a new workout service
func NewWorkoutService(workoutRepo domain.WorkoutRepository, cache domain.CacheRepository) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		cache:       cache,
	}
}

// CreateWorkoutRequest contains the request params
type CreateWorkoutRequest struct {
	UserID          string
	Name            string
	Date            time.Time
	Exercises       []domain.ExerciseEntry
	DurationMinutes int
	Notes           string
}

// CreateWorkout validates and persists a new workout record for the user
func (s *WorkoutService) CreateWorkout(ctx context.Context, req CreateWorkoutRequest) (*domain.WorkoutRecord, error) {
	record := &domain.WorkoutRecord{
		UserID:          req.UserID,
		Name:            req.Name,
		Date:            req.Date,
		Exercises:       req.Exercises,
		DurationMinutes: req.DurationMinutes,
		Notes:           req.Notes,
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	if err := scoring.ValidateSnapshot([]*domain.WorkoutRecord{record}); err != nil {
		return nil, err
	}

	if err := s.workoutRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	s.invalidate(ctx, req.UserID)
	return record, nil
}

// ListWorkouts returns the user's workout history, newest first
func (s *WorkoutService) ListWorkouts(ctx context.Context, userID string) ([]*domain.WorkoutRecord, error) {
	records, err := s.workoutRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	return records, nil
}

// DeleteWorkout removes a workout after checking the caller owns it
func (s *WorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID string) error {
	record, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		return err
	}
	if record.UserID != userID {
		return domain.ErrForbidden
	}

	if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

// invalidate drops the derived views affected by a workout mutation. Cache
// errors are not fatal; worst case a stale entry lives out its TTL.
func (s *WorkoutService) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.InvalidateLeaderboard(ctx)
	_ = s.cache.InvalidateProgress(ctx, userID)
}
