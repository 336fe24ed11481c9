package sink

import (
	"strings"

	"spy-data/internal/model"
)

// Saver is the abstraction for writing one packet of bars to a file.
// High-level code injects the implementation; the file sink only depends on
// this interface.
type Saver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// NewSaver creates an implementation by format (csv, parquet, json).
// Returns nil if the format is not supported.
func NewSaver(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
