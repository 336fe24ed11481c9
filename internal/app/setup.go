package app

import (
	"fmt"
	"log/slog"
	"strings"

	"spy-data/internal/provider"
	"spy-data/internal/provider/polygon"
	"spy-data/internal/sink"
)

// CreateProvider creates a DataProvider from config (currently Polygon only).
func CreateProvider(cfg *Config, log *slog.Logger) (provider.DataProvider, error) {
	switch strings.ToLower(cfg.DataProvider) {
	case "polygon":
		return provider.NewPolygonProvider(polygonConfig(cfg), log)
	default:
		return nil, fmt.Errorf("unsupported data provider: %s. Options: polygon", cfg.DataProvider)
	}
}

func polygonConfig(cfg *Config) polygon.Config {
	return polygon.Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		MaxRetries:     cfg.MaxRetries,
		InitialBackoff: cfg.InitialBackoff(),
		MaxBackoff:     cfg.MaxBackoff(),
		Timeout:        cfg.RequestTimeout(),
	}
}

// CreateSink builds the emit path: console always, plus a packet file sink
// when SAVE_FORMAT selects one.
func CreateSink(cfg *Config, log *slog.Logger) (sink.Sink, error) {
	console := sink.ConsoleSink{}
	if cfg.SaveFormat == "" {
		return console, nil
	}
	saver := sink.NewSaver(cfg.SaveFormat)
	if saver == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return sink.Multi(console, sink.FileSink{Dir: cfg.DataDir, Saver: saver, Log: log}), nil
}
