package transient

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/ouraface/internal/timer"
)

var epoch = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestDebugLog_Bounded(t *testing.T) {
	t.Parallel()

	l := NewDebugLog(DebugLogLimit)
	for i := range 200 {
		line := strings.Repeat(string(rune('a'+i%26)), 1+i%40)
		l.Append(line)

		if l.Len() > DebugLogLimit {
			t.Fatalf("after %d appends Len() = %d > %d", i+1, l.Len(), DebugLogLimit)
		}
		if got := l.String(); !strings.HasSuffix(got, line) {
			t.Fatalf("newest line %q missing from tail of %q", line, got)
		}
		if len(l.String()) != l.Len() {
			t.Fatalf("Len() = %d, len(String()) = %d", l.Len(), len(l.String()))
		}
	}
}

func TestDebugLog_EvictsOldestWholeLines(t *testing.T) {
	t.Parallel()

	l := NewDebugLog(10)
	l.Append("1234")
	l.Append("5678")
	l.Append("ab")

	if diff := cmp.Diff([]string{"5678", "ab"}, l.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugLog_SplitsEmbeddedNewlines(t *testing.T) {
	t.Parallel()

	l := NewDebugLog(DebugLogLimit)
	l.Append("fetching\nreadiness ok\n")

	if diff := cmp.Diff([]string{"fetching", "readiness ok"}, l.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestDebugLog_OversizedLineResets(t *testing.T) {
	t.Parallel()

	l := NewDebugLog(8)
	l.Append("old")
	l.Append("héééééééé")

	if got, want := l.String(), "hééé"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func newMachine(t *testing.T, opts Options) (*Machine, *timer.Manual, *int) {
	t.Helper()

	clock := timer.NewManual(epoch)
	changes := 0
	opts.OnChange = func() { changes++ }
	return New(clock, opts), clock, &changes
}

func TestMachine_StartupOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		showLoading bool
		want        State
	}{
		{name: "overlay preference on", showLoading: true, want: Loading},
		{name: "overlay preference off", showLoading: false, want: Idle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _, _ := newMachine(t, Options{ShowLoading: tt.showLoading})
			m.Start()
			if m.State() != tt.want {
				t.Errorf("State() = %v, want %v", m.State(), tt.want)
			}
			if !m.InitialStartup() {
				t.Error("InitialStartup() = false after Start")
			}
		})
	}
}

func TestMachine_RequestRefresh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		showLoading bool
		confirmed   bool
		manual      bool
		want        bool
	}{
		{name: "periodic during startup", showLoading: true, want: false},
		{name: "manual during startup", showLoading: true, manual: true, want: true},
		{name: "periodic after confirm", showLoading: true, confirmed: true, want: true},
		{name: "overlay disabled", showLoading: false, confirmed: true, manual: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _, _ := newMachine(t, Options{ShowLoading: tt.showLoading})
			m.Start()
			m.PayloadComplete()
			m.hide.Stop()
			m.state = Idle
			if tt.confirmed {
				m.ConfirmShowLoading()
			}

			if got := m.RequestRefresh(tt.manual); got != tt.want {
				t.Errorf("RequestRefresh(%v) = %v, want %v", tt.manual, got, tt.want)
			}
			if m.OverlayVisible() != tt.want {
				t.Errorf("OverlayVisible() = %v, want %v", m.OverlayVisible(), tt.want)
			}
			if tt.manual && m.InitialStartup() {
				t.Error("manual refresh left InitialStartup set")
			}
		})
	}
}

func TestMachine_DebugLinesOnlyWhileLoading(t *testing.T) {
	t.Parallel()

	m, clock, _ := newMachine(t, Options{ShowLoading: true, ShowDebug: true})
	m.Start()

	if !m.AppendDebugLine("fetching") {
		t.Fatal("AppendDebugLine rejected while loading")
	}
	m.PayloadComplete()
	clock.Advance(HideDelay)

	if m.AppendDebugLine("late") {
		t.Error("AppendDebugLine accepted while idle")
	}
	if m.DebugLog() != "fetching" {
		t.Errorf("DebugLog() = %q", m.DebugLog())
	}

	m.SetPreferences(true, false)
	m.ConfirmShowLoading()
	m.RequestRefresh(false)
	if m.AppendDebugLine("hidden") {
		t.Error("AppendDebugLine accepted with debug disabled")
	}
	if m.DebugLog() != "" {
		t.Errorf("entering loading did not clear log: %q", m.DebugLog())
	}
}

func TestMachine_HideRestartsFromSecondCall(t *testing.T) {
	t.Parallel()

	m, clock, changes := newMachine(t, Options{ShowLoading: true})
	m.Start()

	m.PayloadComplete()
	clock.Advance(1500 * time.Millisecond)
	m.PayloadComplete()

	clock.Advance(1900 * time.Millisecond)
	if m.State() != Loading {
		t.Fatal("overlay hidden before second delay elapsed")
	}

	clock.Advance(100 * time.Millisecond)
	if m.State() != Idle {
		t.Fatal("overlay still visible after second delay")
	}
	if *changes != 1 {
		t.Errorf("OnChange ran %d times, want exactly 1", *changes)
	}

	clock.Advance(time.Minute)
	if *changes != 1 {
		t.Errorf("OnChange ran %d times after settling, want 1", *changes)
	}
}

func TestMachine_PayloadCompleteWhileIdle(t *testing.T) {
	t.Parallel()

	m, clock, changes := newMachine(t, Options{ShowLoading: false})
	m.Start()
	m.PayloadComplete()
	clock.Advance(time.Minute)

	if m.State() != Idle || *changes != 0 || clock.Pending() != 0 {
		t.Errorf("State() = %v, changes = %d, pending = %d", m.State(), *changes, clock.Pending())
	}
}

func TestMachine_StatusClear(t *testing.T) {
	t.Parallel()

	m, clock, changes := newMachine(t, Options{})
	m.SetStatus("Fetching data from the companion app")
	if len(m.Status()) != StatusLimit {
		t.Errorf("Status() = %q, want %d bytes", m.Status(), StatusLimit)
	}

	m.RestartDebugClear()
	clock.Advance(8 * time.Second)
	m.RestartDebugClear()
	clock.Advance(8 * time.Second)
	if m.Status() == "" {
		t.Fatal("status cleared by the replaced timer")
	}
	if clock.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", clock.Pending())
	}

	clock.Advance(2 * time.Second)
	if m.Status() != "" {
		t.Errorf("Status() = %q after clear", m.Status())
	}
	if *changes != 1 {
		t.Errorf("OnChange ran %d times, want 1", *changes)
	}
}

func TestMachine_Close(t *testing.T) {
	t.Parallel()

	m, clock, _ := newMachine(t, Options{ShowLoading: true})
	m.Start()
	m.PayloadComplete()
	m.RestartDebugClear()
	m.Close()

	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d after Close, want 0", clock.Pending())
	}
}

func TestMachine_RefreshCancelsPendingHide(t *testing.T) {
	t.Parallel()

	m, clock, _ := newMachine(t, Options{ShowLoading: true, ShowDebug: true})
	m.Start()
	m.ConfirmShowLoading()
	m.PayloadComplete()
	clock.Advance(time.Second)

	if !m.RequestRefresh(true) {
		t.Fatal("RequestRefresh(true) = false")
	}
	clock.Advance(1500 * time.Millisecond)

	if m.State() != Loading {
		t.Fatalf("State() = %v before the new payload completed, want %v", m.State(), Loading)
	}
	if !m.AppendDebugLine("fetching readiness") {
		t.Error("AppendDebugLine rejected during the new fetch")
	}
	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", clock.Pending())
	}

	m.PayloadComplete()
	clock.Advance(HideDelay)
	if m.State() != Idle {
		t.Errorf("State() = %v after the new payload completed, want %v", m.State(), Idle)
	}
}
