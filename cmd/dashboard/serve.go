package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/clientpulse/dashboard/internal/api"
	"github.com/clientpulse/dashboard/internal/api/handler"
	"github.com/clientpulse/dashboard/internal/core/engine"
	"github.com/clientpulse/dashboard/internal/core/ports"
	"github.com/clientpulse/dashboard/internal/core/service"
	redisdb "github.com/clientpulse/dashboard/internal/infrastructure/db/redis"
	"github.com/clientpulse/dashboard/internal/infrastructure/feed"
	"github.com/clientpulse/dashboard/internal/infrastructure/queue"
	"github.com/clientpulse/dashboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API and the live-ops feed",
	Long: `Serve the read-only dashboard API.

The client source is chosen by DATA_SOURCE (memory or mongo). When
REDIS_ENABLED is set, KPI summaries are shared through Redis. A synthetic
activity feed runs alongside the server until SIGINT or SIGTERM.`,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.String("port", "", "override PORT")
	f.Bool("no-feed", false, "disable the synthetic activity feed")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Component("serve")
	if p, _ := cmd.Flags().GetString("port"); p != "" {
		cfg.Port = p
	}
	noFeed, _ := cmd.Flags().GetBool("no-feed")

	repo, closeSource, err := openSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := closeSource(closeCtx); err != nil {
			log.Warn().Err(err).Msg("closing client source")
		}
	}()

	readiness := map[string]handler.Pinger{"clients": repo}

	var kpis ports.KPICache
	if cfg.Redis.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()
		cache := redisdb.NewKPICache(rdb, cfg.Redis.KPITTL)
		kpis = cache
		readiness["redis"] = cache
	}

	var opts []engine.Option
	if cfg.Engine.FilterCacheSize > 0 {
		opts = append(opts, engine.WithCache(cfg.Engine.FilterCacheSize))
	}
	clients := service.NewClientService(repo, engine.New(opts...), kpis, logger.Component("clients"))
	feedSvc := service.NewFeedService(cfg.Feed.Buffer, logger.Component("feed"))

	e := api.NewRouter(api.Deps{
		Clients:   clients,
		Feed:      feedSvc,
		Readiness: readiness,
		Logger:    logger.Component("http"),
		RateLimit: cfg.RateLimit,
	})
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	if !noFeed {
		dispatcher := queue.NewDispatcher(cfg.Feed.Workers, feedSvc, logger.Component("dispatcher"))
		dispatcher.Start(gctx)
		gen := feed.NewGenerator(repo, dispatcher, feed.Options{Interval: cfg.Feed.Interval}, logger.Component("generator"))
		g.Go(func() error { return gen.Run(gctx) })
		g.Go(func() error {
			dispatcher.Wait()
			return nil
		})
	}

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("source", cfg.DataSource).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
