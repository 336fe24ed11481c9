package sink

import (
	"encoding/csv"
	"os"
	"strconv"

	"spy-data/internal/model"
)

// CSVSaver writes one packet as CSV. Nullable fields become empty cells.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(bars []model.Bar, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{
		"timestamp_iso", "timestamp_epoch", "ticker",
		"open", "high", "low", "close", "volume", "vwap", "transactions",
	}); err != nil {
		return err
	}
	for _, b := range bars {
		if err := w.Write([]string{
			b.TimestampISO,
			strconv.FormatInt(b.Timestamp, 10),
			b.Ticker,
			floatCell(b.Open),
			floatCell(b.High),
			floatCell(b.Low),
			floatCell(b.Close),
			floatCell(b.Volume),
			floatCell(b.VWAP),
			intCell(b.Transactions),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}

func floatCell(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func intCell(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}
