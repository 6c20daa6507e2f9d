package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func backends(t *testing.T) map[string]Backend {
	t.Helper()

	ctx := context.Background()
	sqlite, err := NewSQLiteBackend(ctx, filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("NewSQLiteBackend() error = %v", err)
	}

	out := map[string]Backend{
		"memory": NewMemoryBackend(),
		"sqlite": sqlite,
	}
	t.Cleanup(func() {
		for _, b := range out {
			_ = b.Close()
		}
	})
	return out
}

func TestBackend_RoundTrip(t *testing.T) {
	t.Parallel()

	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			if _, err := b.Get(ctx, "theme_mode"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Get() on missing key error = %v, want ErrNotFound", err)
			}

			if err := b.Set(ctx, "theme_mode", []byte("1")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := b.Set(ctx, "theme_mode", []byte("2")); err != nil {
				t.Fatalf("Set() overwrite error = %v", err)
			}
			if err := b.Set(ctx, "date_format", []byte("7")); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := b.Get(ctx, "theme_mode")
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if string(got) != "2" {
				t.Errorf("Get() = %q, want %q", got, "2")
			}

			keys, err := b.Keys(ctx)
			if err != nil {
				t.Fatalf("Keys() error = %v", err)
			}
			if diff := cmp.Diff([]string{"date_format", "theme_mode"}, keys); diff != "" {
				t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
			}

			if err := b.Delete(ctx, "theme_mode"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if err := b.Delete(ctx, "missing"); err != nil {
				t.Errorf("Delete() on missing key error = %v", err)
			}
			if _, err := b.Get(ctx, "theme_mode"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
			}

			if err := b.Ping(ctx); err != nil {
				t.Errorf("Ping() error = %v", err)
			}
		})
	}
}

func TestMemoryBackend_CopiesValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := NewMemoryBackend()

	in := []byte("abc")
	_ = b.Set(ctx, "k", in)
	in[0] = 'z'

	got, _ := b.Get(ctx, "k")
	got[1] = 'z'

	again, _ := b.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through caller slice: %q", again)
	}
}

func TestSQLiteBackend_Reopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.db")

	first, err := NewSQLiteBackend(ctx, path)
	if err != nil {
		t.Fatalf("NewSQLiteBackend() error = %v", err)
	}
	if err := first.Set(ctx, "use_emoji", []byte("false")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	_ = first.Close()

	second, err := NewSQLiteBackend(ctx, path)
	if err != nil {
		t.Fatalf("reopen error = %v", err)
	}
	t.Cleanup(func() { _ = second.Close() })

	got, err := second.Get(ctx, "use_emoji")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if string(got) != "false" {
		t.Errorf("Get() = %q, want %q", got, "false")
	}
}

func TestParseDriver(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Driver
		wantErr bool
	}{
		{in: "memory", want: DriverMemory},
		{in: "SQLite", want: DriverSQLite},
		{in: "postgres", want: DriverPostgres},
		{in: "redis", want: DriverRedis},
		{in: "mysql", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDriver(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDriver(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseDriver(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpen_Memory(t *testing.T) {
	t.Parallel()

	b, err := Open(context.Background(), DriverMemory, "")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := b.(*MemoryBackend); !ok {
		t.Errorf("Open(memory) = %T, want *MemoryBackend", b)
	}
}
