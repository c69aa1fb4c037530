package scoring

import "time"

// All calendar math in this package normalizes through UTC so that unique-day
// dedup, the daily histogram and week bucketing stay consistent with each
// other regardless of the timestamp's original zone.

// calendarDate truncates a timestamp to its UTC calendar date (midnight UTC)
func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday starting the ISO week containing t
func weekStart(t time.Time) time.Time {
	d := calendarDate(t)
	// time.Weekday is Sunday-based; shift so Monday == 0
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

const dateLayout = "2006-01-02"
