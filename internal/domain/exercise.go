package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("exercise name already exists")
)

// Exercise represents a move in the reference library. Workout entries match
// against Name case-sensitively at the UI layer; the scoring engine treats
// names as opaque strings.
type Exercise struct {
	ID               string    `json:"id" bson:"_id,omitempty"`
	Name             string    `json:"name" bson:"name"` // Unique index
	MuscleGroup      string    `json:"muscle_group" bson:"muscle_group"`
	SecondaryMuscles []string  `json:"secondary_muscles" bson:"secondary_muscles"`
	Description      string    `json:"description" bson:"description"`
	Instructions     string    `json:"instructions" bson:"instructions"`
	Difficulty       string    `json:"difficulty" bson:"difficulty"` // beginner / intermediate / advanced
	Equipment        string    `json:"equipment" bson:"equipment"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" bson:"updated_at"`
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) error
	List(ctx context.Context) ([]*Exercise, error)
	Count(ctx context.Context) (int64, error)
	// SeedDefaults inserts the bundled library when the collection is empty
	SeedDefaults(ctx context.Context, defaults []*Exercise) error
}
