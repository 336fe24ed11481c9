//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"spy-data/internal/app"
)

// InitializeApp builds App (Config + Logger + DataProvider + Sink) via Wire.
// Caller must call a.DP.Close() when done.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideLogger,
		app.ProvideProvider,
		app.ProvideSink,
		wire.Struct(new(App), "Config", "Log", "DP", "Out"),
	)
	return nil, nil
}
