// Package sim provides the discrete-event collaborators the pipeline runs
// against: a virtual-time scheduler and a lossy datagram network. Both are
// single-threaded and deterministic for a given seed; agent callbacks run to
// completion, so no locking is needed anywhere in the core.
package sim

import (
	"container/heap"
	"time"
)

// Timer is the cancellable handle for a scheduled callback. Cancel prevents
// execution even when the event is already queued.
type Timer struct {
	fn       func()
	canceled bool
}

func (t *Timer) Cancel() { t.canceled = true }

type event struct {
	at    time.Duration
	seq   uint64
	timer *Timer
}

// eventQueue orders events by time, FIFO by submission for equal times.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }
func (q eventQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}
func (q eventQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }
func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	ev := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return ev
}

// Scheduler executes callbacks in non-decreasing virtual-time order.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue eventQueue
}

func NewScheduler() *Scheduler {
	s := &Scheduler{}
	heap.Init(&s.queue)
	return s
}

// Now is the current virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// NowMicros is Now in microseconds, the unit frames carry.
func (s *Scheduler) NowMicros() int64 { return s.now.Microseconds() }

// Schedule queues fn to run delay after the current virtual time and returns
// a cancellable handle. A negative delay is treated as zero.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	return s.ScheduleAt(s.now+delay, fn)
}

// ScheduleAt queues fn at an absolute virtual time. Times before Now fire at
// Now, preserving ordering.
func (s *Scheduler) ScheduleAt(at time.Duration, fn func()) *Timer {
	if at < s.now {
		at = s.now
	}
	t := &Timer{fn: fn}
	s.seq++
	heap.Push(&s.queue, &event{at: at, seq: s.seq, timer: t})
	return t
}

// Run executes queued events up to and including until, then advances the
// clock to until. Callbacks may schedule further events; canceled timers are
// skipped.
func (s *Scheduler) Run(until time.Duration) {
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.at > until {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.at
		if next.timer.canceled {
			continue
		}
		next.timer.fn()
	}
	if s.now < until {
		s.now = until
	}
}

// Pending reports how many events are queued, canceled ones included.
func (s *Scheduler) Pending() int { return s.queue.Len() }
