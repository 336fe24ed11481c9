package polygon

// RawBar is one vendor aggregate record for a one-minute bucket.
// Every field except the timestamp may be absent in a malformed record,
// so all of them decode as pointers.
type RawBar struct {
	Timestamp    *int64   `json:"t"` // Unix timestamp in milliseconds
	Open         *float64 `json:"o"`
	High         *float64 `json:"h"`
	Low          *float64 `json:"l"`
	Close        *float64 `json:"c"`
	Volume       *float64 `json:"v"`
	VWAP         *float64 `json:"vw"`
	Transactions *int64   `json:"n"`
}

// Batch is the result of one bounded fetch: the vendor-reported count
// plus the raw records.
type Batch struct {
	ResultsCount int
	Bars         []RawBar
}

// aggregatesResponse is the Polygon v2 aggregates payload.
type aggregatesResponse struct {
	Ticker       string   `json:"ticker"`
	QueryCount   int      `json:"queryCount"`
	ResultsCount int      `json:"resultsCount"`
	Adjusted     bool     `json:"adjusted"`
	Results      []RawBar `json:"results"`
	Status       string   `json:"status"`
	RequestID    string   `json:"request_id"`
	Count        int      `json:"count"`
	NextURL      string   `json:"next_url,omitempty"`
}
