package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// Ticker is the face's tick source. Each Subscribe starts a new generation
// so ticks from the previous granularity are dropped.
type Ticker struct {
	unit    time.Duration
	gen     int
	changed bool
}

func NewTicker() *Ticker {
	return &Ticker{}
}

func (t *Ticker) Subscribe(unit time.Duration) {
	t.unit = unit
	t.gen++
	t.changed = true
}

func (t *Ticker) Unit() time.Duration { return t.unit }

// next returns the command for the next boundary of the current unit, or
// nil when nothing is subscribed.
func (t *Ticker) next(now time.Time) tea.Cmd {
	if t.unit <= 0 {
		return nil
	}
	gen := t.gen
	wait := now.Truncate(t.unit).Add(t.unit).Sub(now)
	return tea.Tick(wait, func(at time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: at}
	})
}

// restart reports and clears a pending resubscription.
func (t *Ticker) restart() bool {
	changed := t.changed
	t.changed = false
	return changed
}
