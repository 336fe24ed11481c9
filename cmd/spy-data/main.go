package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/subcommands"

	"spy-data/internal/app"
	"spy-data/internal/provider"
	"spy-data/internal/sink"
	"spy-data/internal/slogx"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Log    *slog.Logger
	DP     provider.DataProvider
	Out    sink.Sink
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&listenCmd{}, "")
	subcommands.Register(&backfillCmd{}, "")
	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

type listenCmd struct{}

func (*listenCmd) Name() string     { return "listen" }
func (*listenCmd) Synopsis() string { return "run the minute-bar listener loop" }
func (*listenCmd) Usage() string {
	return `listen:
  Continuously poll 1-minute aggregates for the configured ticker,
  tracking progress in the checkpoint file.
`
}
func (*listenCmd) SetFlags(*flag.FlagSet) {}

func (*listenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitUsageError
	}
	defer a.DP.Close()
	slog.SetDefault(a.Log)
	a.Log.Info("using data provider", "provider", a.DP.GetName())

	if err := app.RunListener(a.Config, a.DP, a.Out, a.Log); err != nil {
		a.Log.Error("listener failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type backfillCmd struct {
	from string
	to   string
}

func (*backfillCmd) Name() string     { return "backfill" }
func (*backfillCmd) Synopsis() string { return "fetch one bounded date range and emit it" }
func (*backfillCmd) Usage() string {
	return `backfill -from YYYY-MM-DD -to YYYY-MM-DD:
  One-shot fetch of 1-minute aggregates for the range, bypassing the checkpoint.
`
}

func (c *backfillCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "start date (YYYY-MM-DD, inclusive)")
	f.StringVar(&c.to, "to", "", "end date (YYYY-MM-DD, inclusive)")
}

func (c *backfillCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	from, to, err := c.parseRange()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		return subcommands.ExitUsageError
	}
	defer a.DP.Close()
	slog.SetDefault(a.Log)

	if err := app.RunBackfill(a.Config, a.DP, a.Out, a.Log, from, to); err != nil {
		a.Log.Error("backfill failed", "error", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *backfillCmd) parseRange() (time.Time, time.Time, error) {
	if c.from == "" || c.to == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("backfill requires both -from and -to")
	}
	from, err := time.ParseInLocation("2006-01-02", c.from, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid -from date: %w", err)
	}
	to, err := time.ParseInLocation("2006-01-02", c.to, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid -to date: %w", err)
	}
	// inclusive end date: extend to the last millisecond of the day
	return from, to.Add(24*time.Hour - time.Millisecond), nil
}
