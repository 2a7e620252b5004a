package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/service/calendar"
	"github.com/complia-lab/themis/pkg/service/ical"
)

// CalendarView selects which prefetch window follows a range query.
type CalendarView string

const (
	CalendarViewDay   CalendarView = "day"
	CalendarViewWeek  CalendarView = "week"
	CalendarViewMonth CalendarView = "month"
	CalendarViewNone  CalendarView = ""
)

// IsValid checks if the calendar view is valid
func (v CalendarView) IsValid() bool {
	switch v {
	case CalendarViewDay, CalendarViewWeek, CalendarViewMonth, CalendarViewNone:
		return true
	default:
		return false
	}
}

// Calendar serves calendar range queries through the event cache and
// warms the neighbor windows of the requested view in the background.
type Calendar struct {
	cache      *calendar.EventCache
	prefetcher *calendar.Prefetcher
	horizons   PrefetchHorizons
}

// NewCalendar creates a new Calendar use case
func NewCalendar(cache *calendar.EventCache, prefetcher *calendar.Prefetcher, horizons PrefetchHorizons) *Calendar {
	return &Calendar{cache: cache, prefetcher: prefetcher, horizons: horizons}
}

// EventsInRange returns the events within the range. The requested range
// is fetched eagerly; the windows around it are then warmed according to
// the view, fire-and-forget.
func (uc *Calendar) EventsInRange(ctx context.Context, rng model.DateRange, view CalendarView) ([]model.CalendarEvent, error) {
	if !view.IsValid() {
		return nil, goerr.New("unknown calendar view", goerr.V("view", view), goerr.T(model.ErrTagInvalid))
	}

	events, err := uc.cache.Get(ctx, rng)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch calendar events")
	}

	// The range midpoint decides the center unit; grid ranges bleed into
	// neighbor months, so the start date alone would mislabel them.
	center := rng.Start.Add(rng.End.Sub(rng.Start) / 2)
	switch view {
	case CalendarViewDay:
		uc.prefetcher.PrefetchDayWindow(ctx, center, uc.horizons.Days)
	case CalendarViewWeek:
		uc.prefetcher.PrefetchWeekWindow(ctx, center, uc.horizons.Weeks)
	case CalendarViewMonth:
		uc.prefetcher.PrefetchMonthWindow(ctx, center.Year(), center.Month(), uc.horizons.Months, center.Location())
	}

	return events, nil
}

// ExportICS renders the events within the range as an iCalendar document
func (uc *Calendar) ExportICS(ctx context.Context, rng model.DateRange) (string, error) {
	events, err := uc.cache.Get(ctx, rng)
	if err != nil {
		return "", goerr.Wrap(err, "failed to fetch calendar events")
	}
	return ical.Export(events), nil
}
