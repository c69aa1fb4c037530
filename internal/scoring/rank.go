package scoring

import (
	"sort"

	"github.com/repforge/repforge/internal/domain"
)

// Rank orders entries descending by score and assigns 1-based ranks. The sort
// is stable, so equal scores keep the caller's order — user-directory order
// when the input comes from CalculateScores. The input slice is not mutated.
func Rank(entries []domain.LeaderboardEntry) []domain.LeaderboardEntry {
	ranked := make([]domain.LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// RankOf returns the 1-based position of userID in a ranked list, or 0 when
// the user is not on the board.
func RankOf(ranked []domain.LeaderboardEntry, userID string) int {
	for _, e := range ranked {
		if e.UserID == userID {
			return e.Rank
		}
	}
	return 0
}
