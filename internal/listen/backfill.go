package listen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"spy-data/internal/normalize"
	"spy-data/internal/provider"
	"spy-data/internal/sink"
)

// Backfill runs a single bounded fetch for [from, to] and emits the
// normalized bars. It bypasses the checkpoint entirely, which makes it safe
// to run next to a live listener for the same ticker.
func Backfill(ctx context.Context, ticker string, dp provider.DataProvider, out sink.Sink, log *slog.Logger, from, to time.Time) error {
	if log == nil {
		log = slog.Default()
	}
	if !from.Before(to) {
		return fmt.Errorf("backfill range invalid: from %s is not before to %s", from, to)
	}
	log.Info("backfill starting",
		"ticker", ticker,
		"from", from.UTC().Format(time.RFC3339),
		"to", to.UTC().Format(time.RFC3339))

	batch, err := dp.FetchMinuteBars(ctx, ticker, from.UnixMilli(), to.UnixMilli())
	if err != nil {
		return err
	}
	bars := normalize.Bars(batch.Bars, ticker, log)
	if len(bars) == 0 {
		log.Info("backfill found no records")
		return nil
	}
	if err := out.Emit(bars); err != nil {
		return fmt.Errorf("emit backfill batch: %w", err)
	}
	log.Info("backfill done", "records", len(bars))
	return nil
}
