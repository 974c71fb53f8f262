package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bessnews/rss-digest/app/aggregator"
	"github.com/bessnews/rss-digest/app/api"
	"github.com/bessnews/rss-digest/app/cfg"
	"github.com/bessnews/rss-digest/app/feed"
	"github.com/bessnews/rss-digest/app/scheduler"
	"github.com/bessnews/rss-digest/app/sources"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting rss-digest",
		"version", appCfg.Version,
		"stale_days", appCfg.StaleDays,
		"per_feed_limit", appCfg.PerFeedLimit,
		"total_limit", appCfg.TotalLimit)

	loader := sources.NewLoader(appCfg.FeedsFile)
	reader := feed.NewReader(&http.Client{})
	agg := aggregator.NewAggregator(reader)
	writer := aggregator.NewWriter(appCfg.OutputDir)
	store := api.NewStore()

	runOnce := func(ctx context.Context) {
		locators := loader.Run()

		result := agg.Run(ctx, locators)

		if err := writer.Run(result); err != nil {
			slog.Error("Failed to write output documents", "error", err)
			return
		}

		store.Set(result)

		slog.Info("Aggregation complete",
			"count", result.Meta.Count,
			"total_sources", result.Meta.Stats.TotalSources,
			"used_sources", result.Meta.Stats.UsedSources,
			"skipped_stale", result.Meta.Stats.SkippedStale,
			"errors", result.Meta.Stats.Errors)
	}

	if !appCfg.Serve {
		// One-shot mode for scheduled execution: per-source failures are
		// recorded in the meta document, never in the exit code.
		runOnce(context.Background())
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runOnce(ctx)

	feedScheduler := scheduler.New(ctx, appCfg.Schedule, runOnce)
	if err := feedScheduler.Start(); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer feedScheduler.Stop()

	handler := api.NewHandler(store)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}
}
