package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/complia-lab/themis/pkg/cli/config"
	controller "github.com/complia-lab/themis/pkg/controller/http"
	"github.com/complia-lab/themis/pkg/service/calendar"
	"github.com/complia-lab/themis/pkg/usecase"
)

func cmdServe() *cli.Command {
	var (
		serverCfg     config.Server
		storageCfg    config.Storage
		prefetchCfg   config.Prefetch
		severitiesCfg config.Severities
	)

	flags := joinFlags(
		serverCfg.Flags(),
		storageCfg.Flags(),
		prefetchCfg.Flags(),
		severitiesCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting themis server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("storage", storageCfg),
				slog.Any("prefetch", prefetchCfg),
			)

			repo, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			severities, err := severitiesCfg.Configure()
			if err != nil {
				return err
			}

			cache := calendar.NewEventCache("events", prefetchCfg.CacheSize, prefetchCfg.CacheTTL, repo.ListEventsInRange)
			ucs := usecase.New(repo, cache, severities, prefetchCfg.Horizons())

			if prefetchCfg.RewarmCron != "" {
				rewarmer := calendar.NewRewarmer(cache)
				if err := rewarmer.Start(ctx, prefetchCfg.RewarmCron); err != nil {
					return goerr.Wrap(err, "failed to start calendar rewarm scheduler",
						goerr.V("spec", prefetchCfg.RewarmCron))
				}
				defer rewarmer.Stop()
			}

			server := controller.NewServer(ctx, serverCfg.Addr, ucs)

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
