package listen

import "time"

// barIntervalMS matches the one-minute bar timespan; the checkpoint advances
// in whole bar buckets, so the next window starts one bucket later.
const barIntervalMS = 60_000

// bootstrapLookback is how far back the first window reaches when no
// checkpoint exists.
const bootstrapLookback = 24 * time.Hour

// Window is the time range of one fetch, in Unix milliseconds.
// From < To by construction.
type Window struct {
	From int64
	To   int64
}

// ComputeWindow derives the next fetch range. No checkpoint → last 24 hours;
// checkpoint → [checkpoint + one bar, now]. No re-fetch of a processed
// minute, no gap.
func ComputeWindow(now time.Time, checkpoint int64, hasCheckpoint bool) Window {
	to := now.UnixMilli()
	if !hasCheckpoint {
		return Window{From: now.Add(-bootstrapLookback).UnixMilli(), To: to}
	}
	return Window{From: checkpoint + barIntervalMS, To: to}
}
