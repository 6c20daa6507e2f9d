// Package face is the render coordinator. It owns the measurement,
// preference and transient state and turns every change into surface calls.
package face

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/garrettladley/ouraface/internal/layout"
	"github.com/garrettladley/ouraface/internal/measurement"
	"github.com/garrettladley/ouraface/internal/message"
	"github.com/garrettladley/ouraface/internal/settings"
	"github.com/garrettladley/ouraface/internal/surface"
	"github.com/garrettladley/ouraface/internal/timer"
	"github.com/garrettladley/ouraface/internal/transient"
	"github.com/garrettladley/ouraface/internal/xslog"
)

// Outbox delivers messages to the companion.
type Outbox interface {
	Send(ctx context.Context, m message.Message) error
}

// TickSource delivers clock ticks at the requested granularity.
type TickSource interface {
	Subscribe(unit time.Duration)
}

type Recorder interface {
	message.Recorder
	RefreshRequested(trigger string)
	Rendered(surfaceCalls int)
}

// Refresh triggers.
const (
	TriggerStartup  = "startup"
	TriggerInterval = "interval"
	TriggerManual   = "manual"
)

type Config struct {
	Screen     layout.Size
	Round      bool
	Clock24h   bool
	SampleData bool
}

type Deps struct {
	Surface   surface.Surface
	Settings  *settings.Store
	Scheduler timer.Scheduler
	Outbox    Outbox
	Ticks     TickSource
	Recorder  Recorder
	Logger    *slog.Logger
}

// Face must only be called from one goroutine; the scheduler must deliver
// timer callbacks on that goroutine.
type Face struct {
	cfg Config

	surface  surface.Surface
	settings *settings.Store
	sched    timer.Scheduler
	outbox   Outbox
	ticks    TickSource
	recorder Recorder
	logger   *slog.Logger

	measurements *measurement.Store
	machine      *transient.Machine
	dispatcher   *message.Dispatcher

	ctx            context.Context
	sample         bool
	fetchCompleted bool
	lastMinute     int
	refreshCounter int
	tickUnit       time.Duration
	started        bool

	shadow shadow
}

func New(cfg Config, deps Deps) *Face {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := deps.Recorder
	if recorder == nil {
		recorder = nopRecorder{}
	}

	f := &Face{
		cfg:          cfg,
		surface:      deps.Surface,
		settings:     deps.Settings,
		sched:        deps.Scheduler,
		outbox:       deps.Outbox,
		ticks:        deps.Ticks,
		recorder:     recorder,
		logger:       logger,
		measurements: measurement.NewStore(),
		ctx:          context.Background(),
		lastMinute:   -1,
	}

	p := deps.Settings.Get()
	f.machine = transient.New(deps.Scheduler, transient.Options{
		ShowLoading: p.ShowLoading,
		ShowDebug:   p.ShowDebug,
		OnChange:    f.onTimer,
		Logger:      logger,
	})
	f.dispatcher = message.NewDispatcher(f.measurements, deps.Settings, f.machine, recorder, logger)
	return f
}

// Start creates the elements, asks the companion for data and draws the
// first frame. Preferences must already be loaded.
func (f *Face) Start(ctx context.Context) {
	f.ctx = ctx
	for e := range layout.NumElements {
		f.surface.Create(e)
	}
	f.shadow = newShadow()

	if f.cfg.SampleData {
		f.measurements.LoadSample()
		f.sample = true
	}

	p := f.settings.Get()
	f.machine.SetPreferences(p.ShowLoading, p.ShowDebug)
	f.machine.Start()
	f.subscribeTicks(p)
	now := f.sched.Now()
	f.lastMinute = now.Hour()*60 + now.Minute()
	f.started = true

	f.sendRequest(ctx, TriggerStartup)
	f.render(ctx)

	f.logger.InfoContext(ctx, "face started",
		xslog.Rows(p.Rows),
		slog.String("theme", p.ThemeMode.String()),
		slog.Bool("sample", f.sample),
		xslog.State(f.machine.State().String()),
	)
}

// HandleMessage applies one inbound companion message.
func (f *Face) HandleMessage(ctx context.Context, m message.Message) {
	res := f.dispatcher.Dispatch(ctx, m)

	f.sample = false
	if res.PayloadComplete {
		f.fetchCompleted = true
	}
	p := f.settings.Get()
	if res.FollowUp.Has(settings.FollowUpTick) {
		f.subscribeTicks(p)
	}
	if res.FollowUp.Has(settings.FollowUpRefresh) {
		f.refreshCounter = 0
	}

	f.render(ctx)
}

// HandleTick advances the clock display and the refresh counter.
func (f *Face) HandleTick(ctx context.Context, now time.Time) {
	minute := now.Hour()*60 + now.Minute()
	if f.lastMinute >= 0 && minute != f.lastMinute {
		f.refreshCounter++
		if f.refreshCounter >= f.settings.Get().RefreshMinutes {
			f.refreshCounter = 0
			f.requestRefresh(ctx, TriggerInterval, false)
		}
	}
	f.lastMinute = minute

	f.render(ctx)
}

// ManualRefresh is the single physical input: request data now.
func (f *Face) ManualRefresh(ctx context.Context) {
	f.refreshCounter = 0
	f.requestRefresh(ctx, TriggerManual, true)
	f.render(ctx)
}

// Close cancels pending timers and destroys every element.
func (f *Face) Close() {
	f.machine.Close()
	if !f.started {
		return
	}
	for e := range layout.NumElements {
		f.surface.Destroy(e)
	}
	f.started = false
}

func (f *Face) requestRefresh(ctx context.Context, trigger string, manual bool) {
	if f.machine.RequestRefresh(manual) {
		f.logger.DebugContext(ctx, "overlay shown", xslog.Trigger(trigger))
	}
	f.sendRequest(ctx, trigger)
}

func (f *Face) sendRequest(ctx context.Context, trigger string) {
	id := uuid.NewString()
	f.recorder.RefreshRequested(trigger)
	if f.outbox == nil {
		return
	}
	if err := f.outbox.Send(ctx, message.RequestData()); err != nil {
		f.logger.WarnContext(ctx, "failed to request data",
			xslog.RefreshID(id),
			xslog.Trigger(trigger),
			xslog.Error(err),
		)
		return
	}
	f.logger.InfoContext(ctx, "requested data", xslog.RefreshID(id), xslog.Trigger(trigger))
}

func (f *Face) subscribeTicks(p settings.Preferences) {
	unit := time.Minute
	if p.ShowSeconds {
		unit = time.Second
	}
	if unit == f.tickUnit || f.ticks == nil {
		f.tickUnit = unit
		return
	}
	f.tickUnit = unit
	f.ticks.Subscribe(unit)
}

func (f *Face) onTimer() {
	if !f.started {
		return
	}
	f.render(f.ctx)
}

// FetchCompleted reports whether a payload-complete marker has arrived.
func (f *Face) FetchCompleted() bool { return f.fetchCompleted }

// ShowingSample reports whether the demo values are on screen.
func (f *Face) ShowingSample() bool { return f.sample }

func (f *Face) Measurements() [measurement.NumKinds]measurement.Record {
	return f.measurements.Snapshot()
}

func (f *Face) Machine() *transient.Machine { return f.machine }

type nopRecorder struct{}

func (nopRecorder) MessageDispatched()      {}
func (nopRecorder) GroupApplied(string)     {}
func (nopRecorder) GroupIgnored(string)     {}
func (nopRecorder) RefreshRequested(string) {}
func (nopRecorder) Rendered(int)            {}
