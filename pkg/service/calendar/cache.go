package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/complia-lab/themis/pkg/domain/model"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/m-mizutani/ctxlog"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads the calendar events for a date range from the backing
// store. The repository satisfies this through a usecase adapter.
type Fetcher func(ctx context.Context, rng model.DateRange) ([]model.CalendarEvent, error)

// Key identifies one cached range. Ranges are cached under their exact
// boundaries; overlapping ranges get distinct entries.
type Key struct {
	Tag   string
	Start int64
	End   int64
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d:%d", k.Tag, k.Start, k.End)
}

// KeyFor builds the cache key of a range under the given tag.
func KeyFor(tag string, rng model.DateRange) Key {
	return Key{Tag: tag, Start: rng.Start.UnixNano(), End: rng.End.UnixNano()}
}

// EventCache is a size- and TTL-bounded cache of calendar event ranges.
// Concurrent loads of the same key are collapsed to a single fetch.
type EventCache struct {
	tag      string
	cache    *expirable.LRU[Key, []model.CalendarEvent]
	fetch    Fetcher
	inFlight singleflight.Group
}

// NewEventCache builds a cache with the given capacity and TTL. An entry
// older than ttl is evicted regardless of access pattern.
func NewEventCache(tag string, size int, ttl time.Duration, fetch Fetcher) *EventCache {
	return &EventCache{
		tag:   tag,
		cache: expirable.NewLRU[Key, []model.CalendarEvent](size, nil, ttl),
		fetch: fetch,
	}
}

// Get returns the events for the range, fetching and caching on miss.
func (c *EventCache) Get(ctx context.Context, rng model.DateRange) ([]model.CalendarEvent, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}

	key := KeyFor(c.tag, rng)
	if events, ok := c.cache.Get(key); ok {
		return events, nil
	}

	v, err, _ := c.inFlight.Do(key.String(), func() (any, error) {
		if events, ok := c.cache.Get(key); ok {
			return events, nil
		}
		events, err := c.fetch(ctx, rng)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, events)
		return events, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.CalendarEvent), nil
}

// Warm fetches the range into the cache if it is not already present.
func (c *EventCache) Warm(ctx context.Context, rng model.DateRange) error {
	if _, ok := c.cache.Get(KeyFor(c.tag, rng)); ok {
		return nil
	}
	_, err := c.Get(ctx, rng)
	return err
}

// Invalidate drops every cached range. Called after any mutation that
// can change calendar contents; the next reads refill from the store.
func (c *EventCache) Invalidate(ctx context.Context) {
	n := c.cache.Len()
	c.cache.Purge()
	ctxlog.From(ctx).Debug("calendar cache invalidated", "tag", c.tag, "entries", n)
}

// Keys returns the cached range keys, oldest first.
func (c *EventCache) Keys() []Key {
	return c.cache.Keys()
}

// Len returns the number of cached ranges.
func (c *EventCache) Len() int {
	return c.cache.Len()
}
