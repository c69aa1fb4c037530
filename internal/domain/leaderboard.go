package domain

// LeaderboardEntry is one row of the consistency leaderboard, derived from a
// workout snapshot and never persisted.
//
// Score weighting: recent activity (7-day window) is rewarded most heavily to
// surface current consistency over historical volume, the 30-day window
// smooths short-term gaps, the flat total rewards long-term engagement, and
// unique days reward distinct training days over multiple same-day sessions.
type LeaderboardEntry struct {
	Rank       int    `json:"rank"`
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Last7      int    `json:"last7"`
	Last30     int    `json:"last30"`
	UniqueDays int    `json:"unique_days"`
	Score      int    `json:"score"`
}

// Leaderboard is the API response for GET /v1/leaderboard
type Leaderboard struct {
	Entries    []LeaderboardEntry `json:"entries"`
	TotalUsers int                `json:"total_users"`
	MyRank     int                `json:"my_rank,omitempty"` // 0 when the caller is not on the board
}
