package timer

import (
	"slices"
	"time"
)

// Manual is a fake clock for deterministic tests and headless replays.
// Callbacks run synchronously inside Advance.
type Manual struct {
	now     time.Time
	seq     int
	pending []*manualTask
}

var _ Scheduler = (*Manual)(nil)

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

type manualTask struct {
	at       time.Time
	seq      int
	fn       func()
	canceled bool
}

func (t *manualTask) Cancel() { t.canceled = true }

func (m *Manual) Now() time.Time { return m.now }

func (m *Manual) AfterFunc(d time.Duration, fn func()) Handle {
	m.seq++
	t := &manualTask{at: m.now.Add(d), seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward, firing due callbacks in deadline order.
// Callbacks scheduled while advancing fire too if they fall inside d.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.next(target)
		if next == nil {
			break
		}
		m.now = next.at
		next.fn()
	}
	m.now = target
}

// Pending counts callbacks that are scheduled and not canceled.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.pending {
		if !t.canceled {
			n++
		}
	}
	return n
}

func (m *Manual) next(limit time.Time) *manualTask {
	m.pending = slices.DeleteFunc(m.pending, func(t *manualTask) bool { return t.canceled })
	if len(m.pending) == 0 {
		return nil
	}
	i := 0
	for j, t := range m.pending {
		if t.at.Before(m.pending[i].at) || (t.at.Equal(m.pending[i].at) && t.seq < m.pending[i].seq) {
			i = j
		}
	}
	t := m.pending[i]
	if t.at.After(limit) {
		return nil
	}
	m.pending = slices.Delete(m.pending, i, i+1)
	return t
}
