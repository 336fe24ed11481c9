package feature

import (
	"time"

	"spy-data/internal/model"
)

// Regular US session, expressed in the bar's own (UTC-normalized) clock.
const (
	marketOpenHour  = 9
	marketCloseHour = 16
)

// TimeFeatures are the calendar features derived from one bar's timestamp.
type TimeFeatures struct {
	Hour       int          `json:"hour"`
	DayOfWeek  time.Weekday `json:"day_of_week"`
	MarketOpen bool         `json:"is_market_open"`
}

// Time derives calendar features for a single bar.
func Time(b model.Bar) TimeFeatures {
	t := time.UnixMilli(b.Timestamp).UTC()
	h := t.Hour()
	return TimeFeatures{
		Hour:       h,
		DayOfWeek:  t.Weekday(),
		MarketOpen: h >= marketOpenHour && h < marketCloseHour,
	}
}

// Enrich computes time features for a batch, index-aligned with the input.
func Enrich(bars []model.Bar) []TimeFeatures {
	out := make([]TimeFeatures, len(bars))
	for i, b := range bars {
		out[i] = Time(b)
	}
	return out
}
