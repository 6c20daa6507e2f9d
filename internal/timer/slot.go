package timer

import "time"

// Slot holds at most one pending callback. Starting a new one cancels the
// previous first.
type Slot struct {
	sched Scheduler
	h     Handle
	gen   uint64
}

func NewSlot(sched Scheduler) *Slot {
	return &Slot{sched: sched}
}

func (s *Slot) Reset(d time.Duration, fn func()) {
	s.Stop()
	s.gen++
	gen := s.gen
	s.h = s.sched.AfterFunc(d, func() {
		if gen != s.gen {
			return
		}
		s.h = nil
		fn()
	})
}

// Stop cancels the pending callback, if any.
func (s *Slot) Stop() {
	if s.h == nil {
		return
	}
	s.h.Cancel()
	s.h = nil
	s.gen++
}

func (s *Slot) Pending() bool {
	return s.h != nil
}
