package config

import (
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/complia-lab/themis/pkg/usecase"
)

// Prefetch holds calendar cache and prefetch configuration
type Prefetch struct {
	CacheSize     int
	CacheTTL      time.Duration
	HorizonDays   int
	HorizonWeeks  int
	HorizonMonths int
	RewarmCron    string
}

// Flags returns CLI flags for Prefetch configuration
func (p *Prefetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        "cache-size",
			Usage:       "Max cached calendar ranges",
			Category:    "Calendar",
			Value:       256,
			Sources:     cli.EnvVars("THEMIS_CACHE_SIZE"),
			Destination: &p.CacheSize,
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "Calendar cache entry lifetime",
			Category:    "Calendar",
			Value:       5 * time.Minute,
			Sources:     cli.EnvVars("THEMIS_CACHE_TTL"),
			Destination: &p.CacheTTL,
		},
		&cli.IntFlag{
			Name:        "prefetch-days",
			Usage:       "Days to prefetch around the requested day",
			Category:    "Calendar",
			Value:       3,
			Sources:     cli.EnvVars("THEMIS_PREFETCH_DAYS"),
			Destination: &p.HorizonDays,
		},
		&cli.IntFlag{
			Name:        "prefetch-weeks",
			Usage:       "Weeks to prefetch around the requested week",
			Category:    "Calendar",
			Value:       2,
			Sources:     cli.EnvVars("THEMIS_PREFETCH_WEEKS"),
			Destination: &p.HorizonWeeks,
		},
		&cli.IntFlag{
			Name:        "prefetch-months",
			Usage:       "Month picker depth for month view prefetch",
			Category:    "Calendar",
			Value:       3,
			Sources:     cli.EnvVars("THEMIS_PREFETCH_MONTHS"),
			Destination: &p.HorizonMonths,
		},
		&cli.StringFlag{
			Name:        "rewarm-cron",
			Usage:       "Cron spec for current month cache rewarm (empty disables)",
			Category:    "Calendar",
			Value:       "*/10 * * * *",
			Sources:     cli.EnvVars("THEMIS_REWARM_CRON"),
			Destination: &p.RewarmCron,
		},
	}
}

// Horizons returns the prefetch window sizes for the use case layer
func (p *Prefetch) Horizons() usecase.PrefetchHorizons {
	return usecase.PrefetchHorizons{
		Days:   p.HorizonDays,
		Weeks:  p.HorizonWeeks,
		Months: p.HorizonMonths,
	}
}

// LogValue returns structured log value
func (p Prefetch) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("cacheSize", p.CacheSize),
		slog.Duration("cacheTTL", p.CacheTTL),
		slog.Int("horizonDays", p.HorizonDays),
		slog.Int("horizonWeeks", p.HorizonWeeks),
		slog.Int("horizonMonths", p.HorizonMonths),
		slog.String("rewarmCron", p.RewarmCron),
	)
}
