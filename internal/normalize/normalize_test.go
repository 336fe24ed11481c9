package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spy-data/internal/provider"
)

func i64(v int64) *int64     { return &v }
func f64(v float64) *float64 { return &v }

func TestBarsCarriesFieldsThrough(t *testing.T) {
	raw := []provider.RawBar{{
		Timestamp:    i64(1_700_000_060_000),
		Open:         f64(450.3),
		High:         f64(450.8),
		Low:          f64(450.2),
		Close:        f64(450.6),
		Volume:       f64(98000),
		VWAP:         f64(450.5),
		Transactions: i64(720),
	}}

	bars := Bars(raw, "SPY", nil)
	require.Len(t, bars, 1)

	b := bars[0]
	assert.Equal(t, "2023-11-14T22:14:20Z", b.TimestampISO)
	assert.Equal(t, int64(1_700_000_060_000), b.Timestamp)
	assert.Equal(t, "SPY", b.Ticker)
	assert.Equal(t, 450.3, *b.Open)
	assert.Equal(t, 450.8, *b.High)
	assert.Equal(t, 450.2, *b.Low)
	assert.Equal(t, 450.6, *b.Close)
	assert.Equal(t, 98000.0, *b.Volume)
	assert.Equal(t, 450.5, *b.VWAP)
	assert.Equal(t, int64(720), *b.Transactions)
}

func TestBarsSkipsRecordsWithoutTimestamp(t *testing.T) {
	raw := []provider.RawBar{
		{Timestamp: i64(1_700_000_060_000), Close: f64(450.1)},
		{Close: f64(450.2)}, // malformed: no timestamp
		{Timestamp: i64(1_700_000_120_000), Close: f64(450.3)},
	}

	bars := Bars(raw, "SPY", nil)
	require.Len(t, bars, 2)
	assert.Equal(t, int64(1_700_000_060_000), bars[0].Timestamp)
	assert.Equal(t, int64(1_700_000_120_000), bars[1].Timestamp)
}

func TestBarsPreservesNilFields(t *testing.T) {
	raw := []provider.RawBar{{Timestamp: i64(1_700_000_060_000)}}

	bars := Bars(raw, "SPY", nil)
	require.Len(t, bars, 1)
	assert.Nil(t, bars[0].Open)
	assert.Nil(t, bars[0].Volume)
	assert.Nil(t, bars[0].Transactions)
}

func TestBarsEmptyInput(t *testing.T) {
	assert.Empty(t, Bars(nil, "SPY", nil))
}
