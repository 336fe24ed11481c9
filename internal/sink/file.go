package sink

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"spy-data/internal/model"
)

// FileSink persists each batch as one packet file
// {ticker}/{ticker}_{first}_to_{last}.{ext} under Dir, using the injected
// Saver for the on-disk format.
type FileSink struct {
	Dir   string
	Saver Saver
	Log   *slog.Logger
}

func (s FileSink) Emit(bars []model.Bar) error {
	if len(bars) == 0 {
		return nil
	}
	log := s.Log
	if log == nil {
		log = slog.Default()
	}
	ticker := bars[0].Ticker
	tickerDir := filepath.Join(s.Dir, ticker)
	if err := os.MkdirAll(tickerDir, 0o755); err != nil {
		return fmt.Errorf("create packet dir %s: %w", tickerDir, err)
	}
	name := fmt.Sprintf("%s_%s_to_%s.%s",
		ticker,
		packetStamp(bars[0].Timestamp),
		packetStamp(bars[len(bars)-1].Timestamp),
		s.Saver.Extension())
	path := filepath.Join(tickerDir, name)
	if err := s.Saver.Save(bars, path); err != nil {
		return fmt.Errorf("write packet %s: %w", path, err)
	}
	log.Info("saved packet", "path", path, "bars", len(bars), "format", s.Saver.Extension())
	return nil
}

func packetStamp(ms int64) string {
	return time.UnixMilli(ms).UTC().Format("20060102T150405")
}
