package listen

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"spy-data/internal/checkpoint"
	"spy-data/internal/model"
	"spy-data/internal/normalize"
	"spy-data/internal/provider"
	"spy-data/internal/provider/polygon"
	"spy-data/internal/sink"
)

// Config holds the listener loop settings.
type Config struct {
	Ticker        string
	FetchInterval time.Duration
	// EmptyCycleLimit stops the listener gracefully after this many
	// consecutive cycles without new records. 0 disables the auto-stop,
	// which is what an always-on deployment wants; the default bounded
	// session keeps 3.
	EmptyCycleLimit int
	// ReportDir, when set, receives a .lastrun.json session summary on
	// shutdown.
	ReportDir string

	// now is a test seam; defaults to time.Now.
	now func() time.Time
}

// Listener runs the fetch → filter → normalize → emit → checkpoint loop.
// Strictly sequential: one cycle completes before the next starts, and
// cancellation is only observed at the top of the loop and during the
// inter-cycle wait, never mid-fetch or mid-checkpoint-write.
type Listener struct {
	cfg   Config
	dp    provider.DataProvider
	store *checkpoint.Store
	out   sink.Sink
	log   *slog.Logger

	emptyStreak int
	stats       Stats
}

func New(cfg Config, dp provider.DataProvider, store *checkpoint.Store, out sink.Sink, log *slog.Logger) *Listener {
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &Listener{cfg: cfg, dp: dp, store: store, out: out, log: log}
}

// Run drives the poll loop until the context is cancelled, the empty-cycle
// limit is reached (both graceful, nil return) or a fatal error occurs.
// A credential rejection or exhausted retries surface as the returned
// error; only the caller decides to terminate the process.
func (l *Listener) Run(ctx context.Context) error {
	l.log.Info("listener starting",
		"ticker", l.cfg.Ticker,
		"interval", l.cfg.FetchInterval,
		"empty_cycle_limit", l.cfg.EmptyCycleLimit,
		"checkpoint", l.store.Path())
	l.stats.start(l.cfg.Ticker)
	defer l.writeReport()

	for {
		if ctx.Err() != nil {
			l.log.Info("shutdown requested, stopping listener")
			l.stats.finish(outcomeGraceful)
			return nil
		}

		accepted, err := l.runCycle(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				l.log.Info("shutdown requested during fetch backoff, stopping listener")
				l.stats.finish(outcomeGraceful)
				return nil
			}
			l.stats.finish(outcomeFailed)
			var credErr *polygon.CredentialError
			if errors.As(err, &credErr) {
				l.log.Error("credential rejected by data source, not retrying", "status", credErr.StatusCode)
			}
			return err
		}

		if accepted == 0 {
			l.emptyStreak++
			if l.cfg.EmptyCycleLimit > 0 && l.emptyStreak >= l.cfg.EmptyCycleLimit {
				l.log.Info("no new data for consecutive cycles, stopping",
					"cycles", l.emptyStreak)
				l.stats.finish(outcomeAutoStop)
				return nil
			}
		} else {
			l.emptyStreak = 0
		}

		l.log.Info("waiting until next fetch", "interval", l.cfg.FetchInterval)
		if !sleepInterruptible(ctx, l.cfg.FetchInterval) {
			l.log.Info("shutdown requested during wait, stopping listener")
			l.stats.finish(outcomeGraceful)
			return nil
		}
	}
}

// runCycle executes exactly one fetch-filter-normalize-emit-checkpoint cycle
// and returns the number of accepted records.
func (l *Listener) runCycle(ctx context.Context) (int, error) {
	last, hasLast := l.store.Load()
	w := ComputeWindow(l.cfg.now().UTC(), last, hasLast)
	if !hasLast {
		l.log.Info("no previous checkpoint, fetching last 24 hours")
	}

	batch, err := l.dp.FetchMinuteBars(ctx, l.cfg.Ticker, w.From, w.To)
	if err != nil {
		return 0, err
	}
	l.stats.cycle()

	bars := batch.Bars
	if hasLast {
		bars = filterAfter(bars, last)
	}
	if len(bars) == 0 {
		if hasLast {
			l.log.Info("no new records", "last_processed", model.EpochMSToISO(last))
		} else {
			l.log.Info("no data available in the requested time range")
		}
		l.stats.emptyCycle()
		return 0, nil
	}

	normalized := normalize.Bars(bars, l.cfg.Ticker, l.log)
	if err := l.out.Emit(normalized); err != nil {
		// Checkpoint stays put so the next cycle re-fetches this window:
		// duplicate delivery is possible, data loss is not.
		l.log.Error("emit failed, will re-fetch window next cycle", "error", err)
		return len(normalized), nil
	}

	latest := maxTimestamp(bars)
	if err := l.store.Save(latest); err != nil {
		l.log.Warn("checkpoint save failed, next cycle may reprocess", "error", err)
	}
	l.stats.records(len(normalized), latest)
	l.log.Info("processed new records",
		"count", len(normalized),
		"latest", model.EpochMSToISO(latest))
	return len(normalized), nil
}

// filterAfter keeps records strictly newer than the checkpoint. The vendor
// sorts ascending, but ordering is never assumed; the timestamp is the sole
// key.
func filterAfter(bars []provider.RawBar, after int64) []provider.RawBar {
	out := bars[:0:0]
	for _, b := range bars {
		if b.Timestamp != nil && *b.Timestamp > after {
			out = append(out, b)
		}
	}
	return out
}

func maxTimestamp(bars []provider.RawBar) int64 {
	var max int64
	for _, b := range bars {
		if b.Timestamp != nil && *b.Timestamp > max {
			max = *b.Timestamp
		}
	}
	return max
}

// sleepInterruptible waits for d, returning false when ctx is cancelled first.
func sleepInterruptible(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
