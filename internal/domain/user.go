package domain

import (
	"context"
	"time"
)

// User is an account that can log workouts and appear on the leaderboard
type User struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	FirebaseUID string    `bson:"firebase_uid,omitempty" json:"firebase_uid"`
	Email       string    `bson:"email" json:"email"`
	Name        string    `bson:"name" json:"name"`
	Goal        string    `bson:"goal,omitempty" json:"goal,omitempty"` // e.g. "Build Muscle", "Lose Fat"
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRepository defines operations for managing users
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*User, error)
	UpdateProfile(ctx context.Context, userID, name, goal string) error

	// GetAll returns every user in registration order. The leaderboard ranker
	// relies on this order as its tie-break, so it must be stable.
	GetAll(ctx context.Context) ([]*User, error)
}
