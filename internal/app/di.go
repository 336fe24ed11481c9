package app

import (
	"log/slog"

	"spy-data/internal/provider"
	"spy-data/internal/sink"
	"spy-data/internal/slogx"
)

// ProvideConfig loads config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	return LoadConfig()
}

// ProvideLogger creates the application logger writing to stderr and
// LOG_PATH/listener.log (for Wire). The file stays open for the process
// lifetime.
func ProvideLogger(cfg *Config) (*slog.Logger, error) {
	f, err := slogx.OpenLogFile(cfg.LogDir, "listener.log")
	if err != nil {
		return nil, err
	}
	return slogx.NewTee(f, cfg.LogLevel), nil
}

// ProvideProvider creates the configured DataProvider (for Wire).
// Caller must call Close() when shutting down.
func ProvideProvider(cfg *Config, log *slog.Logger) (provider.DataProvider, error) {
	return CreateProvider(cfg, log)
}

// ProvideSink creates the emit path from config (for Wire).
func ProvideSink(cfg *Config, log *slog.Logger) (sink.Sink, error) {
	return CreateSink(cfg, log)
}
