package calendar_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/complia-lab/themis/pkg/service/calendar"
	"github.com/m-mizutani/gt"
)

// recordingFetcher captures every range the cache loads, so tests can
// assert which windows a prefetch touched.
type recordingFetcher struct {
	mu     sync.Mutex
	ranges []model.DateRange
	events []model.CalendarEvent
	calls  int
}

func (f *recordingFetcher) fetch(_ context.Context, rng model.DateRange) ([]model.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = f.calls + 1
	f.ranges = append(f.ranges, rng)
	return f.events, nil
}

func (f *recordingFetcher) fetched() []model.DateRange {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.DateRange{}, f.ranges...)
}

func (f *recordingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func waitForFetches(t *testing.T, f *recordingFetcher, want int) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if f.callCount() >= want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d fetches, got %d", want, f.callCount())
}

func TestDaySpan(t *testing.T) {
	at := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	rng := calendar.DaySpan(at)
	gt.Equal(t, rng.Start, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, rng.End, time.Date(2026, 3, 15, 23, 59, 59, 999999999, time.UTC))
}

func TestWeekSpan(t *testing.T) {
	// 2026-03-18 is a Wednesday; the week runs Sunday 15th to Saturday 21st
	at := time.Date(2026, 3, 18, 10, 0, 0, 0, time.UTC)
	rng := calendar.WeekSpan(at)
	gt.Equal(t, rng.Start, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, rng.End, time.Date(2026, 3, 21, 23, 59, 59, 999999999, time.UTC))

	// A Sunday is its own week start
	sunday := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	gt.Equal(t, calendar.WeekSpan(sunday).Start, rng.Start)
}

func TestMonthGridSpan(t *testing.T) {
	// March 2026 starts on a Sunday and ends on a Tuesday; the grid pads
	// through Saturday April 4th
	rng := calendar.MonthGridSpan(2026, time.March, time.UTC)
	gt.Equal(t, rng.Start, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, rng.End, time.Date(2026, 4, 4, 23, 59, 59, 999999999, time.UTC))

	// February 2026 starts on a Sunday and ends Saturday the 28th: no padding
	rng = calendar.MonthGridSpan(2026, time.February, time.UTC)
	gt.Equal(t, rng.Start, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, rng.End, time.Date(2026, 2, 28, 23, 59, 59, 999999999, time.UTC))

	// May 2026 starts on a Friday: grid reaches back to Sunday April 26th
	rng = calendar.MonthGridSpan(2026, time.May, time.UTC)
	gt.Equal(t, rng.Start, time.Date(2026, 4, 26, 0, 0, 0, 0, time.UTC))
	gt.Equal(t, rng.End, time.Date(2026, 6, 6, 23, 59, 59, 999999999, time.UTC))

	// Every day of the month falls inside its grid
	gt.True(t, rng.Contains(time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)))
	gt.True(t, rng.Contains(time.Date(2026, 5, 31, 23, 59, 59, 0, time.UTC)))
	gt.False(t, rng.Contains(time.Date(2026, 6, 7, 0, 0, 0, 0, time.UTC)))
}

func TestEventCacheGet(t *testing.T) {
	fetcher := &recordingFetcher{events: []model.CalendarEvent{{ID: "int-1", Title: "Walkthrough"}}}
	cache := calendar.NewEventCache("events", 32, time.Minute, fetcher.fetch)
	ctx := context.Background()

	rng := calendar.DaySpan(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	events, err := cache.Get(ctx, rng)
	gt.NoError(t, err)
	gt.Equal(t, len(events), 1)
	gt.Equal(t, fetcher.callCount(), 1)

	// Second read is served from cache
	events, err = cache.Get(ctx, rng)
	gt.NoError(t, err)
	gt.Equal(t, len(events), 1)
	gt.Equal(t, fetcher.callCount(), 1)

	// Invalidation forces a refetch
	cache.Invalidate(ctx)
	_, err = cache.Get(ctx, rng)
	gt.NoError(t, err)
	gt.Equal(t, fetcher.callCount(), 2)
}

func TestEventCacheRejectsInvalidRange(t *testing.T) {
	fetcher := &recordingFetcher{}
	cache := calendar.NewEventCache("events", 32, time.Minute, fetcher.fetch)

	_, err := cache.Get(context.Background(), model.DateRange{
		Start: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
	})
	gt.Error(t, err)
	gt.Equal(t, fetcher.callCount(), 0)
}

func TestKeyDeterminism(t *testing.T) {
	day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	// Any instant of a day produces the same span and therefore the same key
	k1 := calendar.KeyFor("events", calendar.DaySpan(day.Add(3*time.Hour)))
	k2 := calendar.KeyFor("events", calendar.DaySpan(day.Add(20*time.Hour)))
	gt.Equal(t, k1, k2)

	// Different days diverge
	k3 := calendar.KeyFor("events", calendar.DaySpan(day.AddDate(0, 0, 1)))
	gt.NotEqual(t, k1, k3)
}

func TestPrefetchDayWindow(t *testing.T) {
	fetcher := &recordingFetcher{}
	cache := calendar.NewEventCache("events", 32, time.Minute, fetcher.fetch)
	prefetcher := calendar.NewPrefetcher(cache)

	center := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	prefetcher.PrefetchDayWindow(context.Background(), center, 3)
	waitForFetches(t, fetcher, 6)

	centerSpan := calendar.DaySpan(center)
	got := map[time.Time]bool{}
	for _, rng := range fetcher.fetched() {
		gt.False(t, rng.Start.Equal(centerSpan.Start))
		got[rng.Start] = true
	}
	gt.Equal(t, len(got), 6)
	for i := 1; i <= 3; i++ {
		gt.True(t, got[calendar.DaySpan(center.AddDate(0, 0, -i)).Start])
		gt.True(t, got[calendar.DaySpan(center.AddDate(0, 0, i)).Start])
	}
}

func TestPrefetchWeekWindow(t *testing.T) {
	fetcher := &recordingFetcher{}
	cache := calendar.NewEventCache("events", 32, time.Minute, fetcher.fetch)
	prefetcher := calendar.NewPrefetcher(cache)

	center := time.Date(2026, 3, 18, 12, 0, 0, 0, time.UTC)
	prefetcher.PrefetchWeekWindow(context.Background(), center, 2)
	waitForFetches(t, fetcher, 4)

	centerSpan := calendar.WeekSpan(center)
	got := map[time.Time]bool{}
	for _, rng := range fetcher.fetched() {
		gt.False(t, rng.Start.Equal(centerSpan.Start))
		got[rng.Start] = true
	}
	gt.Equal(t, len(got), 4)
	gt.True(t, got[calendar.WeekSpan(center.AddDate(0, 0, -14)).Start])
	gt.True(t, got[calendar.WeekSpan(center.AddDate(0, 0, 14)).Start])
}

func TestPrefetchMonthWindow(t *testing.T) {
	fetcher := &recordingFetcher{}
	cache := calendar.NewEventCache("events", 32, time.Minute, fetcher.fetch)
	prefetcher := calendar.NewPrefetcher(cache)

	prefetcher.PrefetchMonthWindow(context.Background(), 2026, time.March, 3, time.UTC)
	waitForFetches(t, fetcher, 4)

	currentSpan := calendar.MonthGridSpan(2026, time.March, time.UTC)
	got := map[time.Time]bool{}
	for _, rng := range fetcher.fetched() {
		gt.False(t, rng.Start.Equal(currentSpan.Start))
		got[rng.Start] = true
	}
	// Horizon 3 warms two months in each direction
	gt.True(t, got[calendar.MonthGridSpan(2026, time.January, time.UTC).Start])
	gt.True(t, got[calendar.MonthGridSpan(2026, time.February, time.UTC).Start])
	gt.True(t, got[calendar.MonthGridSpan(2026, time.April, time.UTC).Start])
	gt.True(t, got[calendar.MonthGridSpan(2026, time.May, time.UTC).Start])
}

func TestPrefetchIdempotent(t *testing.T) {
	fetcher := &recordingFetcher{}
	cache := calendar.NewEventCache("events", 32, time.Minute, fetcher.fetch)
	prefetcher := calendar.NewPrefetcher(cache)

	center := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	prefetcher.PrefetchDayWindow(context.Background(), center, 2)
	waitForFetches(t, fetcher, 4)
	gt.Equal(t, cache.Len(), 4)

	before := map[calendar.Key]bool{}
	for _, k := range cache.Keys() {
		before[k] = true
	}

	// Re-running the same window hits only cached keys
	prefetcher.PrefetchDayWindow(context.Background(), center, 2)
	time.Sleep(50 * time.Millisecond)
	gt.Equal(t, fetcher.callCount(), 4)
	gt.Equal(t, cache.Len(), 4)
	for _, k := range cache.Keys() {
		gt.True(t, before[k])
	}
}

func TestPrefetchZeroHorizon(t *testing.T) {
	fetcher := &recordingFetcher{}
	cache := calendar.NewEventCache("events", 32, time.Minute, fetcher.fetch)
	prefetcher := calendar.NewPrefetcher(cache)
	ctx := context.Background()

	center := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	prefetcher.PrefetchDayWindow(ctx, center, 0)
	prefetcher.PrefetchWeekWindow(ctx, center, 0)
	prefetcher.PrefetchMonthWindow(ctx, 2026, time.March, 0, time.UTC)
	prefetcher.PrefetchDayWindow(ctx, center, -1)
	prefetcher.PrefetchMonthWindow(ctx, 2026, time.March, -1, time.UTC)

	// A horizon of 1 month means no neighbor months
	prefetcher.PrefetchMonthWindow(ctx, 2026, time.March, 1, time.UTC)

	time.Sleep(50 * time.Millisecond)
	gt.Equal(t, fetcher.callCount(), 0)
	gt.Equal(t, cache.Len(), 0)
}
