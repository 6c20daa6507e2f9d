package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	go_json "github.com/goccy/go-json"

	"github.com/garrettladley/ouraface/internal/measurement"
	"github.com/garrettladley/ouraface/internal/palette"
	"github.com/garrettladley/ouraface/internal/storage"
	"github.com/garrettladley/ouraface/internal/xslog"
)

// Store is the in-memory copy of the preferences plus write-through
// persistence. It is owned by a single goroutine.
type Store struct {
	backend storage.Backend
	logger  *slog.Logger
	prefs   Preferences
}

func NewStore(backend storage.Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		backend: backend,
		logger:  logger,
		prefs:   Defaults(),
	}
}

func (s *Store) Get() Preferences {
	return s.prefs.clone()
}

// Load reads every key, keeping the default for keys that are missing or
// unreadable. It only fails when the backend itself is unreachable.
func (s *Store) Load(ctx context.Context) error {
	if err := s.backend.Ping(ctx); err != nil {
		return fmt.Errorf("failed to reach preferences backend: %w", err)
	}

	p := Defaults()

	s.loadInt(ctx, keyLayoutRows, &p.Rows)
	p.Rows = clampRows(p.Rows)
	for i, key := range row1Keys {
		s.loadKind(ctx, key, &p.Row1[i])
	}
	for i, key := range row2Keys {
		s.loadKind(ctx, key, &p.Row2[i])
	}

	s.loadInt(ctx, keyDateFormat, &p.DateFormat)
	p.DateFormat = clampDateFormat(p.DateFormat)

	var mode int
	if s.loadInt(ctx, keyThemeMode, &mode) {
		p.ThemeMode = palette.ParseMode(mode)
	}
	s.loadInt(ctx, keyCustomColorIndex, &p.CustomColorIndex)

	for _, e := range palette.Elements {
		var idx int
		if s.loadInt(ctx, colorKey(e), &idx) {
			if p.ElementColors == nil {
				p.ElementColors = make(map[palette.Element]int)
			}
			p.ElementColors[e] = palette.Index(idx)
		}
	}

	s.loadBool(ctx, keyUseEmoji, &p.UseEmoji)
	s.loadBool(ctx, keyShowDebug, &p.ShowDebug)
	s.loadBool(ctx, keyShowLoading, &p.ShowLoading)
	s.loadBool(ctx, keyShowSeconds, &p.ShowSeconds)
	s.loadBool(ctx, keyCompactTime, &p.CompactTime)

	s.loadInt(ctx, keyRefreshFrequency, &p.RefreshMinutes)
	p.RefreshMinutes = max(p.RefreshMinutes, MinRefreshMinutes)

	s.prefs = p
	return nil
}

// Apply assigns and persists every present field of u. A field whose write
// fails is still applied in memory.
func (s *Store) Apply(ctx context.Context, u Update) FollowUp {
	var f FollowUp

	if u.Rows != nil {
		rows := clampRows(*u.Rows)
		if rows != s.prefs.Rows {
			f |= FollowUpLayout | FollowUpLabels
		}
		s.prefs.Rows = rows
		s.persist(ctx, keyLayoutRows, rows)
	}
	for i, k := range u.Row1 {
		if k == nil {
			continue
		}
		s.prefs.Row1[i] = measurement.KindOf(int(*k))
		s.persist(ctx, row1Keys[i], int(s.prefs.Row1[i]))
		f |= FollowUpLayout | FollowUpTheme | FollowUpLabels
	}
	if u.Row2 != nil {
		for i, k := range u.Row2 {
			s.prefs.Row2[i] = measurement.KindOf(int(k))
			s.persist(ctx, row2Keys[i], int(s.prefs.Row2[i]))
		}
		f |= FollowUpLayout | FollowUpTheme | FollowUpLabels
	}

	if u.DateFormat != nil {
		s.prefs.DateFormat = clampDateFormat(*u.DateFormat)
		s.persist(ctx, keyDateFormat, s.prefs.DateFormat)
		f |= FollowUpDate
	}
	if u.ThemeMode != nil {
		s.prefs.ThemeMode = palette.ParseMode(int(*u.ThemeMode))
		s.persist(ctx, keyThemeMode, int(s.prefs.ThemeMode))
		f |= FollowUpTheme
	}
	if u.CustomColorIndex != nil {
		s.prefs.CustomColorIndex = palette.Index(*u.CustomColorIndex)
		s.persist(ctx, keyCustomColorIndex, s.prefs.CustomColorIndex)
		f |= FollowUpTheme
	}
	if len(u.ElementColors) > 0 {
		if s.prefs.ElementColors == nil {
			s.prefs.ElementColors = make(map[palette.Element]int, len(u.ElementColors))
		}
		for _, e := range palette.Elements {
			idx, ok := u.ElementColors[e]
			if !ok {
				continue
			}
			s.prefs.ElementColors[e] = palette.Index(idx)
			s.persist(ctx, colorKey(e), s.prefs.ElementColors[e])
		}
		f |= FollowUpTheme
	}

	if u.UseEmoji != nil {
		s.prefs.UseEmoji = *u.UseEmoji
		s.persist(ctx, keyUseEmoji, *u.UseEmoji)
		f |= FollowUpLabels
	}
	if u.ShowDebug != nil {
		s.prefs.ShowDebug = *u.ShowDebug
		s.persist(ctx, keyShowDebug, *u.ShowDebug)
		f |= FollowUpOverlay
	}
	if u.ShowLoading != nil {
		s.prefs.ShowLoading = *u.ShowLoading
		s.persist(ctx, keyShowLoading, *u.ShowLoading)
		f |= FollowUpOverlay
	}
	if u.ShowSeconds != nil {
		s.prefs.ShowSeconds = *u.ShowSeconds
		s.persist(ctx, keyShowSeconds, *u.ShowSeconds)
		f |= FollowUpTick
	}
	if u.CompactTime != nil {
		s.prefs.CompactTime = *u.CompactTime
		s.persist(ctx, keyCompactTime, *u.CompactTime)
		f |= FollowUpTick
	}
	if u.RefreshMinutes != nil {
		s.prefs.RefreshMinutes = max(*u.RefreshMinutes, MinRefreshMinutes)
		s.persist(ctx, keyRefreshFrequency, s.prefs.RefreshMinutes)
		f |= FollowUpRefresh
	}

	return f
}

// Reset deletes every persisted key and restores the defaults.
func (s *Store) Reset(ctx context.Context) error {
	keys, err := s.backend.Keys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list preferences: %w", err)
	}
	for _, key := range keys {
		if err := s.backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete preference %s: %w", key, err)
		}
	}
	s.prefs = Defaults()
	return nil
}

// Snapshot returns the raw persisted values keyed by storage key.
func (s *Store) Snapshot(ctx context.Context) (map[string]go_json.RawMessage, error) {
	keys, err := s.backend.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	out := make(map[string]go_json.RawMessage, len(keys))
	for _, key := range keys {
		data, err := s.backend.Get(ctx, key)
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read preference %s: %w", key, err)
		}
		out[key] = data
	}
	return out, nil
}

func (s *Store) persist(ctx context.Context, key string, v any) {
	data, err := go_json.Marshal(v)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to encode preference", xslog.Key(key), xslog.Error(err))
		return
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist preference", xslog.Key(key), xslog.Error(err))
	}
}

func (s *Store) load(ctx context.Context, key string, dst any) bool {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false
	}
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read preference, using default", xslog.Key(key), xslog.Error(err))
		return false
	}
	if err := go_json.Unmarshal(data, dst); err != nil {
		s.logger.WarnContext(ctx, "malformed preference, using default", xslog.Key(key), xslog.Error(err))
		return false
	}
	return true
}

func (s *Store) loadInt(ctx context.Context, key string, dst *int) bool {
	var v int
	if !s.load(ctx, key, &v) {
		return false
	}
	*dst = v
	return true
}

func (s *Store) loadBool(ctx context.Context, key string, dst *bool) bool {
	var v bool
	if !s.load(ctx, key, &v) {
		return false
	}
	*dst = v
	return true
}

func (s *Store) loadKind(ctx context.Context, key string, dst *measurement.Kind) {
	var v int
	if s.loadInt(ctx, key, &v) {
		*dst = measurement.KindOf(v)
	}
}

func clampRows(rows int) int {
	if rows <= MinRows {
		return MinRows
	}
	return MaxRows
}

func clampDateFormat(v int) int {
	if v < 0 || v >= NumDateFormats {
		return 0
	}
	return v
}
