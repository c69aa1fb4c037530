package scoring

import (
	"sort"
	"time"

	"github.com/repforge/repforge/internal/domain"
)

const (
	histogramDays   = 7
	maxWeekBuckets  = 6
	maxPersonalRecs = 5
)

// entryVolume is sets × reps × weight with a floor of 1 on weight, so
// bodyweight entries (weight 0) still contribute work proportional to
// sets × reps instead of zeroing out.
func entryVolume(e domain.ExerciseEntry) float64 {
	w := e.Weight
	if w < 1 {
		w = 1
	}
	return float64(e.Sets*e.Reps) * w
}

// AggregateProgress computes the per-user analytics summary from the user's
// workout snapshot and a reference instant. An empty snapshot yields a dense
// zero histogram and empty series — "no data yet" is a first-class state, not
// an error. The caller is expected to have validated the snapshot.
func AggregateProgress(records []*domain.WorkoutRecord, now time.Time) *domain.ProgressSummary {
	summary := &domain.ProgressSummary{
		DailyCounts:     dailyCounts(records, now),
		WeeklyVolume:    weeklyVolume(records),
		PersonalRecords: personalRecords(records),
	}
	for _, r := range records {
		for _, e := range r.Exercises {
			summary.TotalVolume += entryVolume(e)
		}
	}
	return summary
}

// dailyCounts builds the dense 7-day histogram, oldest day first. Every day is
// emitted even when its count is zero, unlike the sparse weekly series.
func dailyCounts(records []*domain.WorkoutRecord, now time.Time) []domain.DailyCount {
	perDay := make(map[time.Time]int)
	for _, r := range records {
		perDay[calendarDate(r.Date)]++
	}

	today := calendarDate(now)
	counts := make([]domain.DailyCount, 0, histogramDays)
	for i := histogramDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		counts = append(counts, domain.DailyCount{
			Day:   day.Format(dateLayout),
			Count: perDay[day],
		})
	}
	return counts
}

// weeklyVolume buckets records into Monday-starting weeks and keeps the most
// recent 6 non-empty buckets, oldest of those first. Weeks with no records are
// never emitted.
func weeklyVolume(records []*domain.WorkoutRecord) []domain.WeekVolume {
	perWeek := make(map[time.Time]float64)
	for _, r := range records {
		var volume float64
		for _, e := range r.Exercises {
			volume += entryVolume(e)
		}
		perWeek[weekStart(r.Date)] += volume
	}

	weeks := make([]time.Time, 0, len(perWeek))
	for week := range perWeek {
		weeks = append(weeks, week)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })
	if len(weeks) > maxWeekBuckets {
		weeks = weeks[len(weeks)-maxWeekBuckets:]
	}

	series := make([]domain.WeekVolume, 0, len(weeks))
	for _, week := range weeks {
		series = append(series, domain.WeekVolume{
			Week:   week.Format(dateLayout),
			Volume: perWeek[week],
		})
	}
	return series
}

// personalRecords groups entries by exact exercise name and tracks the max
// weight and max sets independently — the two maxima may come from different
// entries. Top 5 by max weight; bodyweight-only exercises (max weight 0) are
// still eligible and rank below any weighted one. Name is the tie-break so the
// cut is reproducible.
func personalRecords(records []*domain.WorkoutRecord) []domain.PersonalRecord {
	byName := make(map[string]*domain.PersonalRecord)
	for _, r := range records {
		for _, e := range r.Exercises {
			pr := byName[e.Name]
			if pr == nil {
				pr = &domain.PersonalRecord{Exercise: e.Name}
				byName[e.Name] = pr
			}
			if e.Weight > pr.MaxWeight {
				pr.MaxWeight = e.Weight
			}
			if e.Sets > pr.MaxSets {
				pr.MaxSets = e.Sets
			}
		}
	}

	prs := make([]domain.PersonalRecord, 0, len(byName))
	for _, pr := range byName {
		prs = append(prs, *pr)
	}
	sort.Slice(prs, func(i, j int) bool {
		if prs[i].MaxWeight != prs[j].MaxWeight {
			return prs[i].MaxWeight > prs[j].MaxWeight
		}
		return prs[i].Exercise < prs[j].Exercise
	})
	if len(prs) > maxPersonalRecs {
		prs = prs[:maxPersonalRecs]
	}
	return prs
}
