package model

import "time"

// EpochMSToISO converts a Unix timestamp in milliseconds to UTC ISO-8601
// with a trailing "Z". Sub-second precision is only printed when present.
func EpochMSToISO(ms int64) string {
	t := time.UnixMilli(ms).UTC()
	if ms%1000 == 0 {
		return t.Format("2006-01-02T15:04:05Z")
	}
	return t.Format("2006-01-02T15:04:05.000Z")
}

// ISOToEpochMS converts an ISO-8601 datetime string back to Unix milliseconds.
func ISOToEpochMS(iso string) (int64, error) {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return 0, err
	}
	return t.UnixMilli(), nil
}
