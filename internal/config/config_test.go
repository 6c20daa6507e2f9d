package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	appenv "github.com/garrettladley/ouraface/internal/env"
	"github.com/garrettladley/ouraface/internal/storage"
	"github.com/garrettladley/ouraface/internal/xslog"
)

func TestRead_Defaults(t *testing.T) {
	for _, k := range []string{"ENV", "LOG_LEVEL", "SCREEN_WIDTH", "SCREEN_HEIGHT", "SCREEN_ROUND", "STORE_DRIVER", "STORE_DSN", "CLOCK_24H", "SAMPLE_DATA", "METRICS_ADDR"} {
		t.Setenv(k, "")
	}

	got, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		Env:      appenv.Development,
		LogLevel: xslog.LevelInfo,
		Screen:   Screen{Width: 144, Height: 168},
		Store:    Store{Driver: storage.DriverSQLite},
		Display:  Display{Clock24h: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Overrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SCREEN_WIDTH", "180")
	t.Setenv("SCREEN_HEIGHT", "180")
	t.Setenv("SCREEN_ROUND", "true")
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("STORE_DSN", "redis://localhost:6379/0")
	t.Setenv("CLOCK_24H", "false")
	t.Setenv("SAMPLE_DATA", "true")
	t.Setenv("METRICS_ADDR", ":9090")

	got, err := Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	want := Config{
		Env:         appenv.Production,
		LogLevel:    xslog.LevelDebug,
		Screen:      Screen{Width: 180, Height: 180, Round: true},
		Store:       Store{Driver: storage.DriverRedis, DSN: "redis://localhost:6379/0"},
		Display:     Display{Clock24h: false, SampleData: true},
		MetricsAddr: ":9090",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}

	dsn, err := got.StoreDSN()
	if err != nil || dsn != "redis://localhost:6379/0" {
		t.Errorf("StoreDSN() = %q, %v", dsn, err)
	}
}

func TestRead_InvalidDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mysql")

	if _, err := Read(); err == nil {
		t.Error("Read() error = nil, want invalid driver error")
	}
}
