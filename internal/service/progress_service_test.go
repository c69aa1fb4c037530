package service

import (
	"context"
	"testing"
	"time"

	"github.com/repforge/repforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProgressBuildsSummary(t *testing.T) {
	userRepo := &fakeUserRepo{}
	workoutRepo := &fakeWorkoutRepo{}
	cache := newFakeCache()

	alice := seedUser(t, userRepo, "Alice")
	require.NoError(t, workoutRepo.Create(context.Background(), &domain.WorkoutRecord{
		UserID: alice.ID,
		Name:   "Leg Day",
		Date:   time.Now().AddDate(0, 0, -1),
		Exercises: []domain.ExerciseEntry{
			{Name: "Squat", Sets: 5, Reps: 5, Weight: 120},
			{Name: "Leg Press", Sets: 3, Reps: 10, Weight: 200},
		},
	}))

	svc := NewProgressService(userRepo, workoutRepo, cache)
	summary, err := svc.GetProgress(context.Background(), alice.ID)
	require.NoError(t, err)

	assert.Len(t, summary.DailyCounts, 7)
	assert.Len(t, summary.WeeklyVolume, 1)
	assert.Len(t, summary.PersonalRecords, 2)
	assert.Equal(t, 5*5*120.0+3*10*200.0, summary.TotalVolume)
	assert.Equal(t, "Leg Press", summary.PersonalRecords[0].Exercise)
}

func TestGetProgressUnknownUser(t *testing.T) {
	svc := NewProgressService(&fakeUserRepo{}, &fakeWorkoutRepo{}, newFakeCache())
	_, err := svc.GetProgress(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetProgressEmptyHistory(t *testing.T) {
	userRepo := &fakeUserRepo{}
	alice := seedUser(t, userRepo, "Alice")

	svc := NewProgressService(userRepo, &fakeWorkoutRepo{}, newFakeCache())
	summary, err := svc.GetProgress(context.Background(), alice.ID)
	require.NoError(t, err)

	assert.Len(t, summary.DailyCounts, 7)
	for _, d := range summary.DailyCounts {
		assert.Zero(t, d.Count)
	}
	assert.Empty(t, summary.WeeklyVolume)
	assert.Empty(t, summary.PersonalRecords)
	assert.Zero(t, summary.TotalVolume)
}

func TestGetProgressServesFromCache(t *testing.T) {
	userRepo := &fakeUserRepo{}
	workoutRepo := &fakeWorkoutRepo{}
	cache := newFakeCache()

	alice := seedUser(t, userRepo, "Alice")
	svc := NewProgressService(userRepo, workoutRepo, cache)

	first, err := svc.GetProgress(context.Background(), alice.ID)
	require.NoError(t, err)

	require.NoError(t, workoutRepo.Create(context.Background(), &domain.WorkoutRecord{
		UserID:    alice.ID,
		Date:      time.Now(),
		Exercises: []domain.ExerciseEntry{{Name: "Squat", Sets: 3, Reps: 5, Weight: 100}},
	}))

	second, err := svc.GetProgress(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, first.TotalVolume, second.TotalVolume)
}
