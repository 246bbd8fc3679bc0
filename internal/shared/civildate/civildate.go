// Package civildate represents calendar dates as midnight-UTC time.Time values,
// matching how postgres `date` columns round-trip through gorm.
package civildate

import (
	"time"
)

const Layout = "2006-01-02"

// Of returns the civil date of t as observed in loc.
func Of(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// New builds a civil date.
func New(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Parse(v string) (time.Time, error) {
	return time.Parse(Layout, v)
}

func Format(d time.Time) string {
	return d.Format(Layout)
}

// AddDays shifts a civil date by n days.
func AddDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// Within reports whether d lies in the inclusive range [from, to].
func Within(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

// At returns the instant at hh:mm local time on civil date d in loc.
func At(d time.Time, minuteOfDay int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), minuteOfDay/60, minuteOfDay%60, 0, 0, loc)
}

// Range lists every civil date in [from, to].
func Range(from, to time.Time) []time.Time {
	var out []time.Time
	for d := from; !d.After(to); d = AddDays(d, 1) {
		out = append(out, d)
	}
	return out
}
