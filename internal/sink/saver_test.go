package sink

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spy-data/internal/model"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func sampleBars() []model.Bar {
	return []model.Bar{
		{
			TimestampISO: "2023-11-14T22:14:20Z",
			Timestamp:    1_700_000_060_000,
			Ticker:       "SPY",
			Open:         f64(450.3),
			High:         f64(450.8),
			Low:          f64(450.2),
			Close:        f64(450.6),
			Volume:       f64(98000),
			VWAP:         f64(450.5),
			Transactions: i64(720),
		},
		{
			TimestampISO: "2023-11-14T22:15:20Z",
			Timestamp:    1_700_000_120_000,
			Ticker:       "SPY",
			Close:        f64(450.7),
		},
	}
}

func TestNewSaverFormats(t *testing.T) {
	assert.IsType(t, CSVSaver{}, NewSaver("csv"))
	assert.IsType(t, JSONSaver{}, NewSaver("json"))
	assert.IsType(t, ParquetSaver{}, NewSaver("parquet"))
	assert.IsType(t, CSVSaver{}, NewSaver(" CSV "))
	assert.Nil(t, NewSaver("xml"))
	assert.Nil(t, NewSaver(""))
}

func TestCSVSaverNullableCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.csv")
	require.NoError(t, CSVSaver{}.Save(sampleBars(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "timestamp_iso", rows[0][0])
	assert.Equal(t, "450.3", rows[1][3])
	assert.Equal(t, "", rows[2][3], "missing open becomes an empty cell")
	assert.Equal(t, "450.7", rows[2][6])
}

func TestJSONSaverRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.json")
	require.NoError(t, JSONSaver{}.Save(sampleBars(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got []model.Bar
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 2)
	assert.Equal(t, "SPY", got[0].Ticker)
	assert.Nil(t, got[1].Open)
}

func TestFileSinkWritesPacket(t *testing.T) {
	dir := t.TempDir()
	s := FileSink{Dir: dir, Saver: JSONSaver{}}
	require.NoError(t, s.Emit(sampleBars()))

	path := filepath.Join(dir, "SPY", "SPY_20231114T221420_to_20231114T221520.json")
	assert.FileExists(t, path)
}

func TestFileSinkEmptyBatchIsNoop(t *testing.T) {
	dir := t.TempDir()
	s := FileSink{Dir: dir, Saver: JSONSaver{}}
	require.NoError(t, s.Emit(nil))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConsoleSinkFormatsRecords(t *testing.T) {
	var buf strings.Builder
	s := ConsoleSink{Out: &buf}
	require.NoError(t, s.Emit(sampleBars()))

	out := buf.String()
	assert.Contains(t, out, "NEW SPY DATA - 2 records")
	assert.Contains(t, out, `"timestamp_iso": "2023-11-14T22:14:20Z"`)
}

func TestMultiSinkFansOut(t *testing.T) {
	var a, b strings.Builder
	m := Multi(ConsoleSink{Out: &a}, ConsoleSink{Out: &b})
	require.NoError(t, m.Emit(sampleBars()))
	assert.Equal(t, a.String(), b.String())
	assert.NotEmpty(t, a.String())
}
