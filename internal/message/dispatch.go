package message

import (
	"context"
	"log/slog"

	"github.com/garrettladley/ouraface/internal/measurement"
	"github.com/garrettladley/ouraface/internal/settings"
	"github.com/garrettladley/ouraface/internal/transient"
	"github.com/garrettladley/ouraface/internal/xslog"
)

// Recorder counts dispatcher decisions.
type Recorder interface {
	MessageDispatched()
	GroupApplied(kind string)
	GroupIgnored(kind string)
}

type nopRecorder struct{}

func (nopRecorder) MessageDispatched()  {}
func (nopRecorder) GroupApplied(string) {}
func (nopRecorder) GroupIgnored(string) {}

// Result summarizes what a dispatch changed, for the render pass.
type Result struct {
	FollowUp        settings.FollowUp
	MetricsChanged  bool
	StatusChanged   bool
	PayloadComplete bool
}

type Dispatcher struct {
	measurements *measurement.Store
	settings     *settings.Store
	machine      *transient.Machine
	recorder     Recorder
	logger       *slog.Logger
}

func NewDispatcher(
	measurements *measurement.Store,
	prefs *settings.Store,
	machine *transient.Machine,
	recorder Recorder,
	logger *slog.Logger,
) *Dispatcher {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		measurements: measurements,
		settings:     prefs,
		machine:      machine,
		recorder:     recorder,
		logger:       logger,
	}
}

// Dispatch applies one message. Updates land in a fixed order: debug
// status, metric groups, layout, colors, date and theme, preferences, then
// the payload-complete marker.
func (d *Dispatcher) Dispatch(ctx context.Context, m Message) Result {
	d.recorder.MessageDispatched()
	b := Decode(m)
	var res Result

	if b.DebugStatus != nil {
		d.machine.SetStatus(*b.DebugStatus)
		d.machine.AppendDebugLine(*b.DebugStatus)
		res.StatusChanged = true
	}

	for _, ig := range b.Ignored {
		d.recorder.GroupIgnored(ig.Kind.String())
		d.logger.DebugContext(ctx, "ignoring partial group",
			xslog.Kind(ig.Kind.String()),
			xslog.Field(ig.Missing),
		)
	}
	for _, mu := range b.Metrics {
		d.measurements.Set(mu.Kind, mu.Record)
		d.recorder.GroupApplied(mu.Kind.String())
		d.logger.InfoContext(ctx, "measurement updated",
			xslog.Kind(mu.Kind.String()),
			slog.Int("value", mu.Record.Primary),
			slog.Bool("available", mu.Record.Available),
		)
		res.MetricsChanged = true
	}

	res.FollowUp = d.settings.Apply(ctx, b.Settings)
	if b.Settings.ShowLoading != nil {
		d.machine.ConfirmShowLoading()
	}
	if res.FollowUp.Has(settings.FollowUpOverlay) {
		p := d.settings.Get()
		d.machine.SetPreferences(p.ShowLoading, p.ShowDebug)
	}
	if res.FollowUp != 0 {
		d.logger.InfoContext(ctx, "preferences updated", slog.String("follow_up", res.FollowUp.String()))
	}

	if b.PayloadComplete {
		d.machine.PayloadComplete()
		res.PayloadComplete = true
	}

	d.machine.RestartDebugClear()
	return res
}
