package provider

import (
	"context"

	"spy-data/internal/provider/polygon"
)

// RawBar is one vendor aggregate record for a one-minute bucket.
// Every field except the timestamp may be absent in a malformed record,
// so all of them decode as pointers.
type RawBar = polygon.RawBar

// Batch is the result of one bounded fetch: the vendor-reported count
// plus the raw records.
type Batch = polygon.Batch

// DataProvider is the abstraction used by the application when accessing a
// market data source. Implementations own their retry logic and cleanup.
type DataProvider interface {
	// FetchMinuteBars fetches 1-minute aggregates for ticker in [from, to]
	// (Unix milliseconds). One page only; the checkpoint catches up any
	// vendor-side truncation on the next cycle.
	FetchMinuteBars(ctx context.Context, ticker string, from, to int64) (*Batch, error)

	GetName() string
	Close() error
}
