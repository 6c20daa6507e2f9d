package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("key not found")

// Backend persists preference values. Values are opaque bytes; encoding is
// the caller's concern.
type Backend interface {
	// Get returns ErrNotFound if the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte) error

	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error

	Keys(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error

	Close() error
}

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverRedis    Driver = "redis"
)

func ParseDriver(s string) (Driver, error) {
	switch Driver(strings.ToLower(s)) {
	case DriverMemory:
		return DriverMemory, nil
	case DriverSQLite:
		return DriverSQLite, nil
	case DriverPostgres:
		return DriverPostgres, nil
	case DriverRedis:
		return DriverRedis, nil
	default:
		return "", fmt.Errorf("invalid store driver: %q (valid: memory, sqlite, postgres, redis)", s)
	}
}

func (d Driver) String() string { return string(d) }

// Open constructs the backend for driver. dsn is a file path for sqlite and
// a connection URL for postgres and redis; memory ignores it.
func Open(ctx context.Context, driver Driver, dsn string) (Backend, error) {
	switch driver {
	case DriverMemory:
		return NewMemoryBackend(), nil
	case DriverSQLite:
		return NewSQLiteBackend(ctx, dsn)
	case DriverPostgres:
		return NewPostgresBackend(ctx, dsn)
	case DriverRedis:
		return NewRedisBackend(ctx, RedisConfig{URL: dsn})
	default:
		return nil, fmt.Errorf("unsupported store driver: %q", driver)
	}
}

func (d *Driver) UnmarshalText(text []byte) error {
	parsed, err := ParseDriver(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
