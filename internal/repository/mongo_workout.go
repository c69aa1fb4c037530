package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/repforge/repforge/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoWorkoutRepository implements domain.WorkoutRepository
type MongoWorkoutRepository struct {
	collection *mongo.Collection
}

func NewMongoWorkoutRepository(db *mongo.Database) *MongoWorkoutRepository {
	coll := db.Collection("workouts")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, _ = coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})

	return &MongoWorkoutRepository{
		collection: coll,
	}
}

func (r *MongoWorkoutRepository) Create(ctx context.Context, record *domain.WorkoutRecord) error {
	record.CreatedAt = time.Now()
	if record.Date.IsZero() {
		record.Date = record.CreatedAt
	}

	objID := primitive.NewObjectID()
	doc := bson.M{
		"_id":        objID,
		"user_id":    record.UserID,
		"name":       record.Name,
		"date":       record.Date,
		"exercises":  record.Exercises,
		"created_at": record.CreatedAt,
	}
	if record.DurationMinutes > 0 {
		doc["duration_minutes"] = record.DurationMinutes
	}
	if record.Notes != "" {
		doc["notes"] = record.Notes
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create workout: %w", err)
	}
	record.ID = objID.Hex()
	return nil
}

func (r *MongoWorkoutRepository) GetByID(ctx context.Context, id string) (*domain.WorkoutRecord, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	var raw workoutDoc
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}
	return raw.toDomain(), nil
}

func (r *MongoWorkoutRepository) ListAll(ctx context.Context) ([]*domain.WorkoutRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeWorkouts(ctx, cursor)
}

func (r *MongoWorkoutRepository) ListByUser(ctx context.Context, userID string) ([]*domain.WorkoutRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list user workouts: %w", err)
	}
	defer cursor.Close(ctx)

	return decodeWorkouts(ctx, cursor)
}

func (r *MongoWorkoutRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if result.DeletedCount == 0 {
		return domain.ErrWorkoutNotFound
	}
	return nil
}

// workoutDoc mirrors the stored shape; _id is an ObjectID on the wire but a
// hex string in the domain
type workoutDoc struct {
	ID              primitive.ObjectID     `bson:"_id"`
	UserID          string                 `bson:"user_id"`
	Name            string                 `bson:"name"`
	Date            time.Time              `bson:"date"`
	Exercises       []domain.ExerciseEntry `bson:"exercises"`
	DurationMinutes int                    `bson:"duration_minutes,omitempty"`
	Notes           string                 `bson:"notes,omitempty"`
	CreatedAt       time.Time              `bson:"created_at"`
}

func (d *workoutDoc) toDomain() *domain.WorkoutRecord {
	return &domain.WorkoutRecord{
		ID:              d.ID.Hex(),
		UserID:          d.UserID,
		Name:            d.Name,
		Date:            d.Date,
		Exercises:       d.Exercises,
		DurationMinutes: d.DurationMinutes,
		Notes:           d.Notes,
		CreatedAt:       d.CreatedAt,
	}
}

func decodeWorkouts(ctx context.Context, cursor *mongo.Cursor) ([]*domain.WorkoutRecord, error) {
	var docs []workoutDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode workouts: %w", err)
	}

	records := make([]*domain.WorkoutRecord, len(docs))
	for i := range docs {
		records[i] = docs[i].toDomain()
	}
	return records, nil
}
