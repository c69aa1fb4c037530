package scoring

import (
	"reflect"
	"testing"
	"time"

	"github.com/repforge/repforge/internal/domain"
)

var testNow = time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

func rec(userID string, date time.Time, entries ...domain.ExerciseEntry) *domain.WorkoutRecord {
	return &domain.WorkoutRecord{
		ID:        userID + "-" + date.Format(time.RFC3339),
		UserID:    userID,
		Name:      "Workout",
		Date:      date,
		Exercises: entries,
	}
}

func daysAgo(n int) time.Time {
	return testNow.AddDate(0, 0, -n)
}

func TestScoreFormula(t *testing.T) {
	// total=10, last7=3, last30=6, uniqueDays=8 -> 10*2+3*5+6*3+8 = 61
	records := []*domain.WorkoutRecord{
		// 3 in the last 7 days across 2 unique days
		rec("u1", daysAgo(1)),
		rec("u1", daysAgo(1).Add(4*time.Hour)),
		rec("u1", daysAgo(2)),
		// 3 more in the last 30 days, 3 unique days
		rec("u1", daysAgo(10)),
		rec("u1", daysAgo(11)),
		rec("u1", daysAgo(12)),
		// 4 older than 30 days across 3 unique days
		rec("u1", daysAgo(40)),
		rec("u1", daysAgo(41)),
		rec("u1", daysAgo(42)),
		rec("u1", daysAgo(42).Add(6*time.Hour)),
	}
	users := []*domain.User{{ID: "u1", Name: "Ana"}}

	entries := CalculateScores(users, records, testNow)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.Total != 10 || e.Last7 != 3 || e.Last30 != 6 || e.UniqueDays != 8 {
		t.Fatalf("counts = total %d, last7 %d, last30 %d, uniqueDays %d; want 10/3/6/8",
			e.Total, e.Last7, e.Last30, e.UniqueDays)
	}
	if e.Score != 61 {
		t.Errorf("Score = %d, want 61", e.Score)
	}
}

func TestUniqueDayDedup(t *testing.T) {
	morning := time.Date(2025, 3, 14, 7, 0, 0, 0, time.UTC)
	evening := time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC)

	entries := CalculateScores(
		[]*domain.User{{ID: "u1", Name: "Ana"}},
		[]*domain.WorkoutRecord{rec("u1", morning), rec("u1", evening)},
		testNow,
	)

	if entries[0].Total != 2 {
		t.Errorf("Total = %d, want 2", entries[0].Total)
	}
	if entries[0].UniqueDays != 1 {
		t.Errorf("UniqueDays = %d, want 1", entries[0].UniqueDays)
	}
}

func TestSevenDayWindowInclusive(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantLast7 int
	}{
		{"exactly 7 days old counts", testNow.AddDate(0, 0, -7), 1},
		{"just over 7 days old does not", testNow.AddDate(0, 0, -7).Add(-time.Minute), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := CalculateScores(
				[]*domain.User{{ID: "u1", Name: "Ana"}},
				[]*domain.WorkoutRecord{rec("u1", tt.date)},
				testNow,
			)
			if entries[0].Last7 != tt.wantLast7 {
				t.Errorf("Last7 = %d, want %d", entries[0].Last7, tt.wantLast7)
			}
		})
	}
}

func TestZeroRecordUserIncluded(t *testing.T) {
	users := []*domain.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Ben"},
	}
	records := []*domain.WorkoutRecord{rec("u1", daysAgo(1))}

	ranked := Rank(CalculateScores(users, records, testNow))
	if len(ranked) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranked))
	}

	last := ranked[len(ranked)-1]
	if last.UserID != "u2" || last.Score != 0 {
		t.Errorf("zero-record user = %+v, want u2 with score 0", last)
	}
}

func TestUnknownUserStillScored(t *testing.T) {
	users := []*domain.User{{ID: "u1", Name: "Ana"}}
	records := []*domain.WorkoutRecord{
		rec("u1", daysAgo(1)),
		rec("ghost", daysAgo(2)),
	}

	entries := CalculateScores(users, records, testNow)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	ghost := entries[1]
	if ghost.UserID != "ghost" {
		t.Fatalf("unknown user entry = %+v", ghost)
	}
	if ghost.Name != "Unknown" {
		t.Errorf("Name = %q, want placeholder %q", ghost.Name, "Unknown")
	}
	if ghost.Total != 1 || ghost.Score == 0 {
		t.Errorf("unknown user not scored: %+v", ghost)
	}
}

func TestScoreDeterminism(t *testing.T) {
	users := []*domain.User{
		{ID: "u1", Name: "Ana"},
		{ID: "u2", Name: "Ben"},
		{ID: "u3", Name: "Caz"},
	}
	records := []*domain.WorkoutRecord{
		rec("u1", daysAgo(1)),
		rec("u2", daysAgo(3)),
		rec("u2", daysAgo(8)),
		rec("u3", daysAgo(20)),
		rec("ghost", daysAgo(5)),
	}

	first := Rank(CalculateScores(users, records, testNow))
	for i := 0; i < 10; i++ {
		again := Rank(CalculateScores(users, records, testNow))
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d diverged:\n%+v\nvs\n%+v", i, first, again)
		}
	}
}
