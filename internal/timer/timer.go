// Package timer provides cancellable one-shot callbacks that always run on
// the goroutine that owns the watch face state.
package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

type Handle interface {
	// Cancel prevents the callback from running. It is safe to call more
	// than once and after the callback has fired.
	Cancel()
}

type Scheduler interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Handle
}

// Loop schedules on the wall clock. Fired callbacks are handed to post,
// which must run them on the owner goroutine.
type Loop struct {
	post func(func())
}

var _ Scheduler = (*Loop)(nil)

func NewLoop(post func(func())) *Loop {
	return &Loop{post: post}
}

func (l *Loop) Now() time.Time { return time.Now() }

func (l *Loop) AfterFunc(d time.Duration, fn func()) Handle {
	h := &loopHandle{}
	h.t = time.AfterFunc(d, func() {
		l.post(func() {
			// Cancel may have run between the timer firing and this closure
			// reaching the owner.
			if h.canceled.Load() {
				return
			}
			fn()
		})
	})
	return h
}

type loopHandle struct {
	t        *time.Timer
	canceled atomic.Bool
}

func (h *loopHandle) Cancel() {
	h.canceled.Store(true)
	h.t.Stop()
}

// Queue hands posted callbacks to an event loop that drains C.
type Queue struct {
	fns  chan func()
	once sync.Once
	done chan struct{}
}

func NewQueue(size int) *Queue {
	return &Queue{
		fns:  make(chan func(), size),
		done: make(chan struct{}),
	}
}

// Post enqueues fn. Posts after Stop are dropped.
func (q *Queue) Post(fn func()) {
	select {
	case <-q.done:
		return
	default:
	}
	select {
	case <-q.done:
	case q.fns <- fn:
	}
}

// C is drained by the owner goroutine, which runs each callback.
func (q *Queue) C() <-chan func() { return q.fns }

func (q *Queue) Stop() {
	q.once.Do(func() { close(q.done) })
}
