package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config holds application configuration, bound from the environment
// (POLYGON_API_KEY, FETCH_INTERVAL, LPI_FILE, ...).
type Config struct {
	DataProvider string `mapstructure:"data_provider" validate:"required"`
	APIKey       string `mapstructure:"polygon_api_key" validate:"required"`
	Ticker       string `mapstructure:"ticker" validate:"required"`

	FetchIntervalSec int    `mapstructure:"fetch_interval" validate:"gte=1"`
	CheckpointPath   string `mapstructure:"lpi_file" validate:"required"`
	DataDir          string `mapstructure:"data_path" validate:"required"`
	LogDir           string `mapstructure:"log_path" validate:"required"`
	LogLevel         string `mapstructure:"log_level"`

	// SaveFormat selects the packet file sink (csv | json | parquet).
	// Empty means console output only.
	SaveFormat string `mapstructure:"save_format" validate:"omitempty,oneof=csv json parquet"`

	// MaxEmptyCycles stops the listener after this many consecutive empty
	// cycles. 0 disables the auto-stop for always-on deployments.
	MaxEmptyCycles int `mapstructure:"max_empty_cycles" validate:"gte=0"`

	MaxRetries        int    `mapstructure:"max_retries" validate:"gte=0"`
	InitialBackoffSec int    `mapstructure:"initial_backoff" validate:"gte=0"`
	MaxBackoffSec     int    `mapstructure:"max_backoff" validate:"gte=0"`
	RequestTimeoutSec int    `mapstructure:"request_timeout" validate:"gte=1"`
	BaseURL           string `mapstructure:"api_base_url"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig binds config from environment variables with defaults and
// validates it. A missing credential fails here, before any fetch.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("data_provider", "polygon")
	v.SetDefault("polygon_api_key", "")
	v.SetDefault("ticker", "SPY")
	v.SetDefault("fetch_interval", 60)
	v.SetDefault("lpi_file", "state/last_processed_index.json")
	v.SetDefault("data_path", "data")
	v.SetDefault("log_path", "logs")
	v.SetDefault("log_level", "info")
	v.SetDefault("save_format", "")
	v.SetDefault("max_empty_cycles", 3)
	v.SetDefault("max_retries", 5)
	v.SetDefault("initial_backoff", 1)
	v.SetDefault("max_backoff", 60)
	v.SetDefault("request_timeout", 30)
	v.SetDefault("api_base_url", "")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) FetchInterval() time.Duration {
	return time.Duration(c.FetchIntervalSec) * time.Second
}

func (c *Config) InitialBackoff() time.Duration {
	return time.Duration(c.InitialBackoffSec) * time.Second
}

func (c *Config) MaxBackoff() time.Duration {
	return time.Duration(c.MaxBackoffSec) * time.Second
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}
