package normalize

import (
	"log/slog"

	"spy-data/internal/model"
	"spy-data/internal/provider"
)

// Bars converts raw vendor records into normalized bars, order-preserving.
// A record without a timestamp is logged and skipped; it never aborts the
// batch. Partial success beats total failure here.
func Bars(raw []provider.RawBar, ticker string, log *slog.Logger) []model.Bar {
	if log == nil {
		log = slog.Default()
	}
	out := make([]model.Bar, 0, len(raw))
	for i, r := range raw {
		if r.Timestamp == nil {
			log.Warn("skipping record without timestamp", "index", i, "ticker", ticker)
			continue
		}
		ts := *r.Timestamp
		out = append(out, model.Bar{
			TimestampISO: model.EpochMSToISO(ts),
			Timestamp:    ts,
			Ticker:       ticker,
			Open:         r.Open,
			High:         r.High,
			Low:          r.Low,
			Close:        r.Close,
			Volume:       r.Volume,
			VWAP:         r.VWAP,
			Transactions: r.Transactions,
		})
	}
	return out
}
