package service

import (
	"context"
	"fmt"

	"github.com/repforge/repforge/internal/domain"
)

// ExerciseService serves the reference exercise library. The library is
// lazily seeded on first read so a fresh deployment is never empty.
type ExerciseService struct {
	exerciseRepo domain.ExerciseRepository
}

// NewExerciseService creates a new exercise service
func NewExerciseService(exerciseRepo domain.ExerciseRepository) *ExerciseService {
	return &ExerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// ListExercises returns the full library sorted by name, seeding the defaults
// when the collection is empty.
func (s *ExerciseService) ListExercises(ctx context.Context) ([]*domain.Exercise, error) {
	count, err := s.exerciseRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count exercises: %w", err)
	}
	if count == 0 {
		if err := s.exerciseRepo.SeedDefaults(ctx, DefaultExercises()); err != nil {
			return nil, err
		}
	}

	exercises, err := s.exerciseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}
	return exercises, nil
}

// DefaultExercises returns a fresh copy of the bundled exercise library
func DefaultExercises() []*domain.Exercise {
	defaults := []domain.Exercise{
		{Name: "Barbell Bench Press", MuscleGroup: "Chest", SecondaryMuscles: []string{"Triceps", "Shoulders"}, Description: "Classic compound chest movement.", Instructions: "Lie on a flat bench, grip the bar slightly wider than shoulder-width, lower to chest and press up.", Difficulty: "intermediate", Equipment: "Barbell"},
		{Name: "Pull-Up", MuscleGroup: "Back", SecondaryMuscles: []string{"Biceps"}, Description: "Upper body pulling compound movement.", Instructions: "Hang from a bar with overhand grip, pull chin above bar, lower with control.", Difficulty: "intermediate", Equipment: "Pull-up bar"},
		{Name: "Squat", MuscleGroup: "Legs", SecondaryMuscles: []string{"Glutes", "Core"}, Description: "King of leg exercises.", Instructions: "Bar on traps, feet shoulder-width, descend until thighs are parallel, drive up through heels.", Difficulty: "intermediate", Equipment: "Barbell"},
		{Name: "Deadlift", MuscleGroup: "Back", SecondaryMuscles: []string{"Legs", "Core", "Glutes"}, Description: "Full-body compound pull.", Instructions: "Hip-width stance, hinge at hips, flat back, pull bar from floor to lockout.", Difficulty: "advanced", Equipment: "Barbell"},
		{Name: "Overhead Press", MuscleGroup: "Shoulders", SecondaryMuscles: []string{"Triceps", "Core"}, Description: "Vertical pressing movement.", Instructions: "Bar at shoulder height, press overhead to full lockout, lower under control.", Difficulty: "intermediate", Equipment: "Barbell"},
		{Name: "Dumbbell Row", MuscleGroup: "Back", SecondaryMuscles: []string{"Biceps"}, Description: "Unilateral back rowing exercise.", Instructions: "Knee and hand on bench, pull dumbbell to hip, lower with control.", Difficulty: "beginner", Equipment: "Dumbbell"},
		{Name: "Incline Dumbbell Press", MuscleGroup: "Chest", SecondaryMuscles: []string{"Shoulders", "Triceps"}, Description: "Upper chest focus.", Instructions: "Set bench to 30-45°, press dumbbells from shoulder height to full extension.", Difficulty: "beginner", Equipment: "Dumbbell"},
		{Name: "Romanian Deadlift", MuscleGroup: "Legs", SecondaryMuscles: []string{"Glutes", "Back"}, Description: "Hip hinge for hamstrings.", Instructions: "Slight knee bend, hinge at hips pushing them back, lower bar along legs, squeeze glutes to return.", Difficulty: "intermediate", Equipment: "Barbell"},
		{Name: "Bicep Curl", MuscleGroup: "Arms", SecondaryMuscles: []string{}, Description: "Classic arm isolation movement.", Instructions: "Stand with dumbbells, curl to shoulder height, lower with control.", Difficulty: "beginner", Equipment: "Dumbbell"},
		{Name: "Tricep Dips", MuscleGroup: "Arms", SecondaryMuscles: []string{"Chest", "Shoulders"}, Description: "Bodyweight tricep builder.", Instructions: "Grip parallel bars, lower until arms are 90°, press back up.", Difficulty: "beginner", Equipment: "Parallel bars"},
		{Name: "Leg Press", MuscleGroup: "Legs", SecondaryMuscles: []string{"Glutes"}, Description: "Machine-based quad dominant movement.", Instructions: "Feet shoulder-width on platform, lower sled until 90°, press back up.", Difficulty: "beginner", Equipment: "Machine"},
		{Name: "Cable Fly", MuscleGroup: "Chest", SecondaryMuscles: []string{}, Description: "Cable chest isolation.", Instructions: "Stand between cables at shoulder height, arc arms together in front, return slowly.", Difficulty: "beginner", Equipment: "Cable machine"},
		{Name: "Face Pull", MuscleGroup: "Shoulders", SecondaryMuscles: []string{"Upper Back"}, Description: "Rear delt and rotator cuff health exercise.", Instructions: "Set cable to face height, pull to forehead with elbows high, retract shoulder blades.", Difficulty: "beginner", Equipment: "Cable machine"},
		{Name: "Plank", MuscleGroup: "Core", SecondaryMuscles: []string{}, Description: "Static core endurance exercise.", Instructions: "Forearms on floor, body in straight line from head to toe, hold position.", Difficulty: "beginner", Equipment: "none"},
		{Name: "Hanging Leg Raise", MuscleGroup: "Core", SecondaryMuscles: []string{}, Description: "Dynamic ab flexion movement.", Instructions: "Hang from pull-up bar, raise legs to 90° (or higher), lower with control.", Difficulty: "intermediate", Equipment: "Pull-up bar"},
		{Name: "Lateral Raise", MuscleGroup: "Shoulders", SecondaryMuscles: []string{}, Description: "Side delt isolation.", Instructions: "Hold dumbbells at sides, raise to shoulder height with slightly bent arms, lower slowly.", Difficulty: "beginner", Equipment: "Dumbbell"},
		{Name: "Calf Raise", MuscleGroup: "Legs", SecondaryMuscles: []string{}, Description: "Calf muscle isolation.", Instructions: "Stand on edge of step or flat ground, rise up on toes, lower fully.", Difficulty: "beginner", Equipment: "none"},
		{Name: "Hip Thrust", MuscleGroup: "Glutes", SecondaryMuscles: []string{"Hamstrings", "Core"}, Description: "Glute dominant hip extension.", Instructions: "Upper back on bench, bar across hips, drive hips up to full extension, squeeze glutes at top.", Difficulty: "intermediate", Equipment: "Barbell"},
	}

	out := make([]*domain.Exercise, len(defaults))
	for i := range defaults {
		ex := defaults[i]
		out[i] = &ex
	}
	return out
}
