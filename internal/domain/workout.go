package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrWorkoutNotFound = errors.New("workout not found")
)

// ExerciseEntry is one exercise performed within a logged session.
// Weight is in kilograms; 0 means bodyweight/unspecified.
type ExerciseEntry struct {
	Name   string  `json:"name" bson:"name"`
	Sets   int     `json:"sets" bson:"sets"`
	Reps   int     `json:"reps" bson:"reps"`
	Weight float64 `json:"weight" bson:"weight"`
}

// WorkoutRecord is one logged session owned by exactly one user.
// Records are immutable after creation; the only mutation is deletion.
type WorkoutRecord struct {
	ID              string          `json:"id" bson:"_id,omitempty"`
	UserID          string          `json:"user_id" bson:"user_id"`
	Name            string          `json:"name" bson:"name"`
	Date            time.Time       `json:"date" bson:"date"` // when the session happened, not when it was logged
	Exercises       []ExerciseEntry `json:"exercises" bson:"exercises"`
	DurationMinutes int             `json:"duration_minutes,omitempty" bson:"duration_minutes,omitempty"`
	Notes           string          `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at" bson:"created_at"`
}

// WorkoutRepository handles persistence for workout records
type WorkoutRepository interface {
	Create(ctx context.Context, record *WorkoutRecord) error
	GetByID(ctx context.Context, id string) (*WorkoutRecord, error)
	// ListAll returns every record across all users (leaderboard snapshot)
	ListAll(ctx context.Context) ([]*WorkoutRecord, error)
	// ListByUser returns a user's records sorted by date descending
	ListByUser(ctx context.Context, userID string) ([]*WorkoutRecord, error)
	Delete(ctx context.Context, id string) error
}
