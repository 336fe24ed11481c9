package model

// Bar is one normalized OHLCV minute bar.
// Shared by normalize, sink and serialization (json, csv, parquet).
// Price/volume fields are pointers because the vendor may omit them;
// a bar only exists at all when the source record carried a timestamp.
type Bar struct {
	TimestampISO string   `json:"timestamp_iso" parquet:"timestamp_iso"`
	Timestamp    int64    `json:"timestamp_epoch" parquet:"timestamp_epoch"` // Unix timestamp in milliseconds
	Ticker       string   `json:"ticker" parquet:"ticker"`
	Open         *float64 `json:"open" parquet:"open,optional"`
	High         *float64 `json:"high" parquet:"high,optional"`
	Low          *float64 `json:"low" parquet:"low,optional"`
	Close        *float64 `json:"close" parquet:"close,optional"`
	Volume       *float64 `json:"volume" parquet:"volume,optional"`
	VWAP         *float64 `json:"vwap" parquet:"vwap,optional"` // Volume weighted average price
	Transactions *int64   `json:"transactions" parquet:"transactions,optional"`
}
