package calendar

import (
	"context"
	"time"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/utils/async"
)

// Prefetcher warms the ranges a user is likely to navigate to next.
// Warming runs fire-and-forget: a failed prefetch only costs the next
// navigation a cache miss, so errors are logged and dropped.
type Prefetcher struct {
	cache *EventCache
}

// NewPrefetcher builds a Prefetcher over the cache.
func NewPrefetcher(cache *EventCache) *Prefetcher {
	return &Prefetcher{cache: cache}
}

// PrefetchDayWindow warms the day spans of the horizonDays days before
// and after center. The center day itself is not warmed; the caller has
// just fetched it eagerly.
func (p *Prefetcher) PrefetchDayWindow(ctx context.Context, center time.Time, horizonDays int) {
	if horizonDays < 1 {
		return
	}
	spans := make([]model.DateRange, 0, 2*horizonDays)
	for i := 1; i <= horizonDays; i++ {
		spans = append(spans,
			DaySpan(center.AddDate(0, 0, -i)),
			DaySpan(center.AddDate(0, 0, i)),
		)
	}
	p.warmAll(ctx, spans)
}

// PrefetchWeekWindow warms the week spans of the horizonWeeks weeks
// before and after the week of center, excluding the current week.
func (p *Prefetcher) PrefetchWeekWindow(ctx context.Context, center time.Time, horizonWeeks int) {
	if horizonWeeks < 1 {
		return
	}
	spans := make([]model.DateRange, 0, 2*horizonWeeks)
	for i := 1; i <= horizonWeeks; i++ {
		spans = append(spans,
			WeekSpan(center.AddDate(0, 0, -7*i)),
			WeekSpan(center.AddDate(0, 0, 7*i)),
		)
	}
	p.warmAll(ctx, spans)
}

// PrefetchMonthWindow warms the month-grid spans of the neighbor months
// around (year, month), excluding the current month. A horizon of n
// warms n-1 months in each direction, matching the month picker depth.
// A horizon below 2 warms nothing.
func (p *Prefetcher) PrefetchMonthWindow(ctx context.Context, year int, month time.Month, horizonMonths int, loc *time.Location) {
	if horizonMonths < 2 {
		return
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	spans := make([]model.DateRange, 0, 2*(horizonMonths-1))
	for i := 1; i <= horizonMonths-1; i++ {
		prev := first.AddDate(0, -i, 0)
		next := first.AddDate(0, i, 0)
		spans = append(spans,
			MonthGridSpan(prev.Year(), prev.Month(), loc),
			MonthGridSpan(next.Year(), next.Month(), loc),
		)
	}
	p.warmAll(ctx, spans)
}

func (p *Prefetcher) warmAll(ctx context.Context, spans []model.DateRange) {
	for _, rng := range spans {
		rng := rng
		async.Dispatch(ctx, func(ctx context.Context) error {
			return p.cache.Warm(ctx, rng)
		})
	}
}
