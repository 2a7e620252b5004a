package calendar

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/robfig/cron/v3"
)

// Rewarmer periodically refreshes the current month grid so the most
// visited view stays hot across TTL expiry.
type Rewarmer struct {
	cache *EventCache
	cron  *cron.Cron
}

// NewRewarmer builds a Rewarmer over the cache.
func NewRewarmer(cache *EventCache) *Rewarmer {
	return &Rewarmer{cache: cache, cron: cron.New()}
}

// Start registers the rewarm job under the given cron spec and starts
// the scheduler. The job drops all cached ranges and refetches the
// current month grid.
func (r *Rewarmer) Start(ctx context.Context, spec string) error {
	_, err := r.cron.AddFunc(spec, func() {
		now := time.Now()
		r.cache.Invalidate(ctx)
		rng := MonthGridSpan(now.Year(), now.Month(), now.Location())
		if err := r.cache.Warm(ctx, rng); err != nil {
			ctxlog.From(ctx).Warn("Failed to rewarm calendar cache",
				"error", err,
				"start", rng.Start,
				"end", rng.End,
			)
			return
		}
		ctxlog.From(ctx).Debug("Rewarmed calendar cache",
			"start", rng.Start,
			"end", rng.End,
		)
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	ctxlog.From(ctx).Info("Calendar rewarm scheduler started", "spec", spec)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (r *Rewarmer) Stop() {
	<-r.cron.Stop().Done()
}
