// Package transient drives the loading overlay, its debug log and the
// auto-hide and auto-clear timers.
package transient

import (
	"log/slog"
	"time"

	"github.com/garrettladley/ouraface/internal/timer"
	"github.com/garrettladley/ouraface/internal/xslog"
)

const (
	HideDelay       = 2 * time.Second
	StatusClearWait = 10 * time.Second
	// StatusLimit caps the single-line status text in bytes.
	StatusLimit = 30
)

type State int

const (
	Idle State = iota
	Loading
)

func (s State) String() string {
	if s == Loading {
		return "loading"
	}
	return "idle"
}

type Options struct {
	ShowLoading bool
	ShowDebug   bool
	// OnChange runs after a timer callback changed visible state.
	OnChange func()
	Logger   *slog.Logger
}

// Machine is owned by a single goroutine; timer callbacks must be delivered
// to that goroutine by the scheduler.
type Machine struct {
	state          State
	initialStartup bool
	showLoading    bool
	showDebug      bool

	log    *DebugLog
	status string

	hide  *timer.Slot
	clear *timer.Slot

	onChange func()
	logger   *slog.Logger
}

func New(sched timer.Scheduler, opts Options) *Machine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	onChange := opts.OnChange
	if onChange == nil {
		onChange = func() {}
	}
	return &Machine{
		showLoading: opts.ShowLoading,
		showDebug:   opts.ShowDebug,
		log:         NewDebugLog(DebugLogLimit),
		hide:        timer.NewSlot(sched),
		clear:       timer.NewSlot(sched),
		onChange:    onChange,
		logger:      logger,
	}
}

// Start puts the machine in its startup state. The overlay covers the very
// first fetch only when the persisted preference asks for it.
func (m *Machine) Start() {
	m.initialStartup = true
	if m.showLoading {
		m.enterLoading()
	}
}

// SetPreferences updates the overlay preferences.
func (m *Machine) SetPreferences(showLoading, showDebug bool) {
	m.showLoading = showLoading
	m.showDebug = showDebug
}

// ConfirmShowLoading records that the companion has sent its overlay
// preference, ending the startup suppression.
func (m *Machine) ConfirmShowLoading() {
	m.initialStartup = false
}

// RequestRefresh reports whether the overlay was shown.
func (m *Machine) RequestRefresh(manual bool) bool {
	if manual {
		m.initialStartup = false
	}
	if !m.showLoading || m.initialStartup {
		m.logger.Debug("refresh without overlay",
			slog.Bool("manual", manual),
			slog.Bool("initial_startup", m.initialStartup),
		)
		return false
	}
	m.enterLoading()
	return true
}

func (m *Machine) enterLoading() {
	m.hide.Stop()
	m.log.Reset()
	m.state = Loading
}

// AppendDebugLine reports whether text was accepted.
func (m *Machine) AppendDebugLine(text string) bool {
	if !m.showDebug || m.state != Loading {
		return false
	}
	m.log.Append(text)
	return true
}

// PayloadComplete schedules the overlay to hide, restarting any pending
// hide.
func (m *Machine) PayloadComplete() {
	if m.state != Loading {
		return
	}
	m.hide.Reset(HideDelay, func() {
		if m.state == Idle {
			return
		}
		m.state = Idle
		m.logger.Debug("overlay hidden", xslog.State(m.state.String()))
		m.onChange()
	})
}

// SetStatus replaces the single-line status text.
func (m *Machine) SetStatus(text string) {
	m.status = truncate(text, StatusLimit)
}

// RestartDebugClear schedules the status text to clear, replacing any
// pending clear.
func (m *Machine) RestartDebugClear() {
	m.clear.Reset(StatusClearWait, func() {
		if m.status == "" {
			return
		}
		m.status = ""
		m.onChange()
	})
}

func (m *Machine) State() State { return m.state }

func (m *Machine) OverlayVisible() bool { return m.state == Loading }

// DebugVisible reports whether the overlay log should be drawn.
func (m *Machine) DebugVisible() bool { return m.state == Loading && m.showDebug }

func (m *Machine) InitialStartup() bool { return m.initialStartup }

func (m *Machine) DebugLog() string { return m.log.String() }

func (m *Machine) Status() string { return m.status }

// Close cancels every pending timer.
func (m *Machine) Close() {
	m.hide.Stop()
	m.clear.Stop()
}
