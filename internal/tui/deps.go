package tui

import (
	"context"
	"log/slog"

	"github.com/garrettladley/ouraface/internal/companion"
	"github.com/garrettladley/ouraface/internal/face"
	"github.com/garrettladley/ouraface/internal/surface/term"
)

type Deps struct {
	Ctx     context.Context
	Face    *face.Face
	Surface *term.Surface
	// Posts carries timer callbacks that must run on the model goroutine.
	Posts <-chan func()
	Ticks *Ticker
	// Feed is optional; nil means no companion input.
	Feed   *companion.Feed
	Logger *slog.Logger
}
