package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	appenv "github.com/garrettladley/ouraface/internal/env"
	"github.com/garrettladley/ouraface/internal/paths"
	"github.com/garrettladley/ouraface/internal/storage"
	"github.com/garrettladley/ouraface/internal/xslog"
)

type Config struct {
	Env      appenv.Environment `env:"ENV" envDefault:"development"`
	LogLevel xslog.Level        `env:"LOG_LEVEL" envDefault:"info"`

	Screen  Screen  `envPrefix:"SCREEN_"`
	Store   Store   `envPrefix:"STORE_"`
	Display Display

	// MetricsAddr enables the prometheus endpoint when non-empty.
	MetricsAddr string `env:"METRICS_ADDR"`
}

type Screen struct {
	Width  int  `env:"WIDTH" envDefault:"144"`
	Height int  `env:"HEIGHT" envDefault:"168"`
	Round  bool `env:"ROUND" envDefault:"false"`
}

type Store struct {
	Driver storage.Driver `env:"DRIVER" envDefault:"sqlite"`
	// DSN is a sqlite path or a postgres/redis URL. Empty sqlite DSN uses
	// the config directory.
	DSN string `env:"DSN"`
}

type Display struct {
	Clock24h   bool `env:"CLOCK_24H" envDefault:"true"`
	SampleData bool `env:"SAMPLE_DATA" envDefault:"false"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Screen.Width <= 0 || cfg.Screen.Height <= 0 {
		return Config{}, fmt.Errorf("invalid screen size %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	return cfg, nil
}

// StoreDSN resolves the effective DSN for the configured driver.
func (c Config) StoreDSN() (string, error) {
	if c.Store.DSN != "" || c.Store.Driver != storage.DriverSQLite {
		return c.Store.DSN, nil
	}
	if _, err := paths.EnsureDir(); err != nil {
		return "", err
	}
	return paths.DB()
}
