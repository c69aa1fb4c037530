// Package scoring is the consistency scoring and progress aggregation engine.
// Every function here is a pure, deterministic mapping from an immutable
// workout snapshot and a reference instant to derived data; nothing in this
// package touches storage, the network or shared mutable state, so it is safe
// to call concurrently from request handlers.
package scoring

import (
	"sort"
	"time"

	"github.com/repforge/repforge/internal/domain"
)

// Score weights. Recent activity carries the most weight so the board surfaces
// current consistency over historical volume; unique days keep same-day record
// splitting from inflating scores.
const (
	weightTotal      = 2
	weightLast7      = 5
	weightLast30     = 3
	weightUniqueDays = 1
)

// unknownUserName is shown when a record's owner is missing from the user
// directory. The record still counts toward that owner's score bucket.
const unknownUserName = "Unknown"

type bucket struct {
	total      int
	last7      int
	last30     int
	uniqueDays map[time.Time]struct{}
}

// CalculateScores produces one unranked leaderboard entry per user in the
// directory, zero-filled for users with no records, plus one entry per user id
// that appears only in records. Directory users keep directory order; unknown
// users are appended in ascending id order so the output is a total,
// reproducible order for Rank to tie-break on.
//
// The caller is expected to have validated the snapshot (ValidateSnapshot).
func CalculateScores(users []*domain.User, records []*domain.WorkoutRecord, now time.Time) []domain.LeaderboardEntry {
	day7 := now.AddDate(0, 0, -7)
	day30 := now.AddDate(0, 0, -30)

	buckets := make(map[string]*bucket)

	for _, r := range records {
		b := buckets[r.UserID]
		if b == nil {
			b = &bucket{uniqueDays: make(map[time.Time]struct{})}
			buckets[r.UserID] = b
		}
		b.total++
		// Window boundaries are inclusive: a record exactly 7 days old counts
		if !r.Date.Before(day7) {
			b.last7++
		}
		if !r.Date.Before(day30) {
			b.last30++
		}
		b.uniqueDays[calendarDate(r.Date)] = struct{}{}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	known := make(map[string]bool, len(users))
	for _, u := range users {
		known[u.ID] = true
		entries = append(entries, newEntry(u.ID, u.Name, buckets[u.ID]))
	}

	// Records whose owner is absent from the directory still score
	var orphans []string
	for userID := range buckets {
		if !known[userID] {
			orphans = append(orphans, userID)
		}
	}
	sort.Strings(orphans)
	for _, userID := range orphans {
		entries = append(entries, newEntry(userID, unknownUserName, buckets[userID]))
	}

	return entries
}

func newEntry(userID, name string, b *bucket) domain.LeaderboardEntry {
	e := domain.LeaderboardEntry{UserID: userID, Name: name}
	if b == nil {
		return e
	}
	e.Total = b.total
	e.Last7 = b.last7
	e.Last30 = b.last30
	e.UniqueDays = len(b.uniqueDays)
	e.Score = e.Total*weightTotal + e.Last7*weightLast7 + e.Last30*weightLast30 + e.UniqueDays*weightUniqueDays
	return e
}
