package progression

import "time"

// DayBoundary is the day-cutoff policy shared by the completion guard and
// the nightly reset. Injected instead of ambient clock math so both paths
// are testable with fixed times.
type DayBoundary struct {
	loc *time.Location
}

func NewDayBoundary(loc *time.Location) DayBoundary {
	if loc == nil {
		loc = time.UTC
	}
	return DayBoundary{loc: loc}
}

func (b DayBoundary) Location() *time.Location {
	if b.loc == nil {
		return time.UTC
	}
	return b.loc
}

// StartOfDay truncates t to midnight in the boundary's timezone.
func (b DayBoundary) StartOfDay(t time.Time) time.Time {
	t = t.In(b.Location())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, b.Location())
}

// SameDay reports whether both times fall on the same calendar day.
func (b DayBoundary) SameDay(a, t time.Time) bool {
	return b.StartOfDay(a).Equal(b.StartOfDay(t))
}

// Next returns the first midnight strictly after t.
func (b DayBoundary) Next(t time.Time) time.Time {
	return b.StartOfDay(t).AddDate(0, 0, 1)
}
