// Package timer provides a simulation-time scheduler for delayed, cancelable callbacks.
//
// Time only moves when Advance is called, so pending timers freeze while the
// owning simulation is paused or not ticking.
package timer

import "time"

// Handle identifies a scheduled callback. The zero Handle never refers to a timer.
type Handle uint64

type entry struct {
	at time.Duration
	fn func()
}

// Scheduler fires callbacks once enough simulation time has elapsed.
// It is not safe for concurrent use; every call happens on the simulation loop.
type Scheduler struct {
	now     time.Duration
	next    Handle
	timers  map[Handle]entry
	tickers map[Handle]func()
	order   []Handle // ticker registration order
	paused  bool
}

// NewScheduler creates an empty scheduler at time zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers:  make(map[Handle]entry),
		tickers: make(map[Handle]func()),
	}
}

// Now returns the elapsed simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Schedule runs fn once delay has elapsed. Negative delays are treated as zero;
// a zero delay fires on the next Advance.
func (s *Scheduler) Schedule(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	h := s.issue()
	s.timers[h] = entry{at: s.now + delay, fn: fn}
	return h
}

// EachTick runs fn at the end of every Advance, after due timers have fired,
// until the returned handle is cancelled.
func (s *Scheduler) EachTick(fn func()) Handle {
	h := s.issue()
	s.tickers[h] = fn
	s.order = append(s.order, h)
	return h
}

// Cancel stops a pending timer or ticker. Cancelling a fired, cancelled or
// zero handle does nothing.
func (s *Scheduler) Cancel(h Handle) {
	delete(s.timers, h)
	delete(s.tickers, h)
}

// Pending reports whether h is still waiting to fire (or, for tickers, still registered).
func (s *Scheduler) Pending(h Handle) bool {
	if _, ok := s.timers[h]; ok {
		return true
	}
	_, ok := s.tickers[h]
	return ok
}

// Remaining returns the time left before h fires.
func (s *Scheduler) Remaining(h Handle) (time.Duration, bool) {
	e, ok := s.timers[h]
	if !ok {
		return 0, false
	}
	return e.at - s.now, true
}

// Len returns the number of pending one-shot timers.
func (s *Scheduler) Len() int {
	return len(s.timers)
}

// Pause freezes simulation time.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume unfreezes simulation time.
func (s *Scheduler) Resume() {
	s.paused = false
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Advance moves simulation time forward by dt and fires every due timer,
// earliest fire time first and ties in schedule order. Callbacks may schedule
// or cancel timers; a timer cancelled before its turn never fires, and a
// timer scheduled during the pass fires in the same pass if it is already due.
func (s *Scheduler) Advance(dt time.Duration) {
	if s.paused {
		return
	}
	if dt > 0 {
		s.now += dt
	}

	for {
		h, ok := s.due()
		if !ok {
			break
		}
		fn := s.timers[h].fn
		delete(s.timers, h)
		fn()
	}

	s.runTickers()
}

func (s *Scheduler) issue() Handle {
	s.next++
	return s.next
}

// due finds the earliest timer whose fire time has been reached.
// Handles are issued in increasing order, so the lower handle wins a tie.
func (s *Scheduler) due() (Handle, bool) {
	var (
		best  Handle
		bestE entry
		found bool
	)
	for h, e := range s.timers {
		if e.at > s.now {
			continue
		}
		if !found || e.at < bestE.at || (e.at == bestE.at && h < best) {
			best, bestE, found = h, e, true
		}
	}
	return best, found
}

func (s *Scheduler) runTickers() {
	live := s.order[:0]
	for _, h := range s.order {
		if _, ok := s.tickers[h]; ok {
			live = append(live, h)
		}
	}
	s.order = live

	// Snapshot so tickers registered by a ticker wait for the next Advance.
	snapshot := append([]Handle(nil), s.order...)
	for _, h := range snapshot {
		fn, ok := s.tickers[h]
		if !ok {
			continue
		}
		fn()
	}
}
