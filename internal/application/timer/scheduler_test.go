package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestScheduler_FiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Schedule(300*ms, func() { fired++ })

	s.Advance(290 * ms)
	assert.Equal(t, 0, fired)

	s.Advance(10 * ms)
	assert.Equal(t, 1, fired)

	s.Advance(time.Second)
	assert.Equal(t, 1, fired, "one-shot timers fire once")
}

func TestScheduler_Order(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.Schedule(200*ms, func() { got = append(got, "late") })
	s.Schedule(100*ms, func() { got = append(got, "early") })
	s.Schedule(100*ms, func() { got = append(got, "early-second") })
	s.Schedule(0, func() { got = append(got, "now") })

	s.Advance(time.Second)

	assert.Equal(t, []string{"now", "early", "early-second", "late"}, got)
}

func TestScheduler_Cancel(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(s *Scheduler, h Handle)
		fired  bool
	}{
		{"cancelled before due", func(s *Scheduler, h Handle) { s.Cancel(h) }, false},
		{"zero handle", func(s *Scheduler, h Handle) { s.Cancel(0) }, true},
		{"unknown handle", func(s *Scheduler, h Handle) { s.Cancel(h + 100) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScheduler()
			fired := false
			h := s.Schedule(50*ms, func() { fired = true })
			tt.cancel(s, h)
			s.Advance(100 * ms)
			assert.Equal(t, tt.fired, fired)
		})
	}
}

func TestScheduler_CancelFromEarlierCallbackInSamePass(t *testing.T) {
	s := NewScheduler()
	var second Handle
	secondFired := false
	s.Schedule(10*ms, func() { s.Cancel(second) })
	second = s.Schedule(10*ms, func() { secondFired = true })

	s.Advance(10 * ms)

	assert.False(t, secondFired)
	assert.Equal(t, 0, s.Len())
}

func TestScheduler_CancelAfterFireIsNoop(t *testing.T) {
	s := NewScheduler()
	h := s.Schedule(10*ms, func() {})
	s.Advance(10 * ms)

	assert.False(t, s.Pending(h))
	assert.NotPanics(t, func() { s.Cancel(h) })
}

func TestScheduler_ScheduleFromCallback(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.Schedule(10*ms, func() {
		got = append(got, "first")
		s.Schedule(0, func() { got = append(got, "chained") })
		s.Schedule(50*ms, func() { got = append(got, "later") })
	})

	s.Advance(20 * ms)
	assert.Equal(t, []string{"first", "chained"}, got)

	s.Advance(40 * ms)
	assert.Equal(t, []string{"first", "chained", "later"}, got)
}

func TestScheduler_Remaining(t *testing.T) {
	s := NewScheduler()
	h := s.Schedule(5*time.Second, func() {})
	s.Advance(2 * time.Second)

	rem, ok := s.Remaining(h)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, rem)

	s.Advance(3 * time.Second)
	_, ok = s.Remaining(h)
	assert.False(t, ok)
}

func TestScheduler_Pause(t *testing.T) {
	s := NewScheduler()
	fired := false
	ticks := 0
	s.Schedule(100*ms, func() { fired = true })
	s.EachTick(func() { ticks++ })

	s.Advance(50 * ms)
	s.Pause()
	assert.True(t, s.Paused())

	s.Advance(time.Second)
	assert.False(t, fired)
	assert.Equal(t, 50*ms, s.Now())
	assert.Equal(t, 1, ticks)

	s.Resume()
	s.Advance(50 * ms)
	assert.True(t, fired)
	assert.Equal(t, 2, ticks)
}

func TestScheduler_EachTick(t *testing.T) {
	s := NewScheduler()
	var seen []time.Duration
	var h Handle
	h = s.EachTick(func() {
		seen = append(seen, s.Now())
		if len(seen) == 3 {
			s.Cancel(h)
		}
	})

	for i := 0; i < 5; i++ {
		s.Advance(10 * ms)
	}

	assert.Equal(t, []time.Duration{10 * ms, 20 * ms, 30 * ms}, seen)
	assert.False(t, s.Pending(h))
}

func TestScheduler_EachTickRunsAfterTimers(t *testing.T) {
	s := NewScheduler()
	var got []string
	s.EachTick(func() { got = append(got, "tick") })
	s.Schedule(10*ms, func() { got = append(got, "timer") })

	s.Advance(10 * ms)

	assert.Equal(t, []string{"timer", "tick"}, got)
}

func TestScheduler_NoDriftOverManyTicks(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Schedule(time.Second, func() { fired = true })

	for i := 0; i < 99; i++ {
		s.Advance(10 * ms)
	}
	assert.False(t, fired)

	s.Advance(10 * ms)
	assert.True(t, fired)
}
