package calendar

import (
	"time"

	"github.com/complia-lab/themis/pkg/domain/model"
)

// endOfDayOffset pushes a midnight boundary to the last representable
// instant of the same day.
const endOfDayOffset = 24*time.Hour - time.Nanosecond

// DaySpan returns the inclusive range covering the calendar day of t.
func DaySpan(t time.Time) model.DateRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return model.DateRange{Start: start, End: start.Add(endOfDayOffset)}
}

// WeekSpan returns the inclusive range covering the week of t. Weeks
// start on Sunday and end at the last instant of the following Saturday.
func WeekSpan(t time.Time) model.DateRange {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	return model.DateRange{Start: start, End: start.AddDate(0, 0, 6).Add(endOfDayOffset)}
}

// MonthGridSpan returns the range a month-view grid displays: the month
// padded out to full weeks on both sides, so leading and trailing days
// from the neighbor months are included.
func MonthGridSpan(year int, month time.Month, loc *time.Location) model.DateRange {
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday())).Add(endOfDayOffset)
	return model.DateRange{Start: gridStart, End: gridEnd}
}
