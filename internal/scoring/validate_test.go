package scoring

import (
	"errors"
	"testing"
	"time"

	"github.com/repforge/repforge/internal/domain"
)

func TestValidateSnapshot(t *testing.T) {
	valid := rec("u1", testNow, entry("Squat", 3, 5, 100))

	tests := []struct {
		name      string
		record    *domain.WorkoutRecord
		wantField string
	}{
		{"valid record", valid, ""},
		{"zero date", &domain.WorkoutRecord{ID: "w1", UserID: "u1"}, "date"},
		{"missing owner", &domain.WorkoutRecord{ID: "w2", Date: testNow}, "user_id"},
		{
			"negative sets",
			rec("u1", testNow, domain.ExerciseEntry{Name: "Squat", Sets: -1, Reps: 5}),
			"exercises[0].sets",
		},
		{
			"negative reps",
			rec("u1", testNow, domain.ExerciseEntry{Name: "Squat", Sets: 3, Reps: -5}),
			"exercises[0].reps",
		},
		{
			"negative weight",
			rec("u1", testNow, domain.ExerciseEntry{Name: "Squat", Sets: 3, Reps: 5, Weight: -20}),
			"exercises[0].weight",
		},
		{
			"empty exercise name",
			rec("u1", testNow, domain.ExerciseEntry{Sets: 3, Reps: 5}),
			"exercises[0].name",
		},
		{
			"negative duration",
			&domain.WorkoutRecord{ID: "w3", UserID: "u1", Date: testNow, DurationMinutes: -10},
			"duration_minutes",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSnapshot([]*domain.WorkoutRecord{tt.record})
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateSnapshot() = %v, want nil", err)
				}
				return
			}

			var cv *domain.ContractViolationError
			if !errors.As(err, &cv) {
				t.Fatalf("ValidateSnapshot() = %v, want ContractViolationError", err)
			}
			if cv.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cv.Field, tt.wantField)
			}
			if cv.RecordID != tt.record.ID {
				t.Errorf("RecordID = %q, want %q", cv.RecordID, tt.record.ID)
			}
		})
	}
}

func TestValidateSnapshotRejectsWholeBatch(t *testing.T) {
	records := []*domain.WorkoutRecord{
		rec("u1", testNow.Add(-time.Hour), entry("Squat", 3, 5, 100)),
		rec("u1", testNow, domain.ExerciseEntry{Name: "Bench", Sets: -1, Reps: 5}),
	}

	if err := ValidateSnapshot(records); err == nil {
		t.Fatal("one bad record must fail the whole snapshot")
	}
}
