package app

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"spy-data/internal/checkpoint"
	"spy-data/internal/listen"
	"spy-data/internal/provider"
	"spy-data/internal/sink"
)

// RunListener wires the listener and drives it until a shutdown signal or a
// terminal condition. SIGINT/SIGTERM cancel the context; the listener only
// observes cancellation between cycles and during its wait, so a fetch or a
// checkpoint write is never interrupted mid-flight.
func RunListener(cfg *Config, dp provider.DataProvider, out sink.Sink, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := checkpoint.NewStore(cfg.CheckpointPath, log)
	l := listen.New(listen.Config{
		Ticker:          cfg.Ticker,
		FetchInterval:   cfg.FetchInterval(),
		EmptyCycleLimit: cfg.MaxEmptyCycles,
		ReportDir:       cfg.DataDir,
	}, dp, store, out, log)
	return l.Run(ctx)
}

// RunBackfill performs one bounded fetch for [from, to] and emits the result
// through the same sink as the listener. No checkpoint is read or written.
func RunBackfill(cfg *Config, dp provider.DataProvider, out sink.Sink, log *slog.Logger, from, to time.Time) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return listen.Backfill(ctx, cfg.Ticker, dp, out, log, from, to)
}
