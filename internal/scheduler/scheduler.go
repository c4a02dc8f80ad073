// Package scheduler fires a callback exactly once per armed timer at its
// expiry instant. Pending entries live in a priority queue ordered by expiry
// and a single run loop waits for the nearest one; the clock is injected so
// tests can drive time without real waits.
package scheduler

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
)

// FireFunc is invoked when an armed entry reaches its expiry instant.
type FireFunc func(id uuid.UUID)

type entry struct {
	id   uuid.UUID
	at   time.Time
	seq  uint64
	fire FireFunc
}

// entryHeap orders pending entries by expiry, earliest first.
type entryHeap []*entry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].at.Before(h[j].at) }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(*entry)) }
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}

// Scheduler owns at most one pending fire per timer ID.
//
// Re-arming an ID replaces its pending entry; stale heap items are discarded
// lazily when they surface, by comparing sequence numbers.
type Scheduler struct {
	clk clock.Clock

	mu    sync.Mutex
	queue entryHeap
	armed map[uuid.UUID]uint64 // live sequence per armed ID
	seq   uint64

	wake chan struct{}
}

// New creates a Scheduler driven by the given clock. Run must be started for
// entries to fire.
func New(clk clock.Clock) *Scheduler {
	return &Scheduler{
		clk:   clk,
		armed: make(map[uuid.UUID]uint64),
		wake:  make(chan struct{}, 1),
	}
}

// Arm schedules fire to run at the given instant. An instant at or before the
// current one fires on the next scheduling opportunity. Arming an already
// armed ID first disarms the previous pending entry.
func (s *Scheduler) Arm(id uuid.UUID, at time.Time, fire FireFunc) {
	s.mu.Lock()
	s.seq++
	s.armed[id] = s.seq
	heap.Push(&s.queue, &entry{id: id, at: at, seq: s.seq, fire: fire})
	s.mu.Unlock()

	s.notify()
}

// Disarm cancels a pending fire if one exists. It is a no-op for IDs that
// were never armed or have already fired.
func (s *Scheduler) Disarm(id uuid.UUID) {
	s.mu.Lock()
	delete(s.armed, id)
	s.mu.Unlock()
}

// Armed reports whether the ID has a pending fire.
func (s *Scheduler) Armed(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.armed[id]
	return ok
}

// Run dispatches due entries until the context is cancelled. Each fire
// callback runs in its own goroutine so one slow callback cannot delay the
// others.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		s.mu.Lock()
		now := s.clk.Now()

		for s.queue.Len() > 0 && !s.queue[0].at.After(now) {
			e := heap.Pop(&s.queue).(*entry)
			if s.armed[e.id] != e.seq {
				continue // replaced or disarmed
			}

			delete(s.armed, e.id)
			go s.safeFire(e)
		}

		var timer *clock.Timer
		var due <-chan time.Time
		if s.queue.Len() > 0 {
			timer = s.clk.Timer(s.queue[0].at.Sub(now))
			due = timer.C
		}
		s.mu.Unlock()

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-s.wake:
			if timer != nil {
				timer.Stop()
			}
		case <-due:
		}
	}
}

// safeFire runs the callback, recovering panics so one bad callback cannot
// take down the scheduling loop or other pending timers.
func (s *Scheduler) safeFire(e *entry) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Logger.Error().Interface("panic", r).Str("id", e.id.String()).Msg("fire callback panicked")
		}
	}()

	e.fire(e.id)
}

func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
