package domain

// DailyCount is one bar of the 7-day activity histogram
type DailyCount struct {
	Day   string `json:"day"` // "2006-01-02", UTC calendar date
	Count int    `json:"count"`
}

// WeekVolume is the training volume of one Monday-starting ISO week
type WeekVolume struct {
	Week   string  `json:"week"` // Monday of the week, "2006-01-02"
	Volume float64 `json:"volume"`
}

// PersonalRecord is the best ever logged for one exercise name. MaxWeight and
// MaxSets are tracked independently and need not come from the same entry.
type PersonalRecord struct {
	Exercise  string  `json:"exercise"`
	MaxWeight float64 `json:"max_weight"`
	MaxSets   int     `json:"max_sets"`
}

// ProgressSummary is the per-user analytics payload. All fields are a pure
// function of the user's workout snapshot and the reference instant.
type ProgressSummary struct {
	DailyCounts     []DailyCount     `json:"daily_counts"`     // always exactly 7, oldest first
	WeeklyVolume    []WeekVolume     `json:"weekly_volume"`    // sparse, at most 6, chronological
	PersonalRecords []PersonalRecord `json:"personal_records"` // at most 5, by max weight desc
	TotalVolume     float64          `json:"total_volume"`
}
