package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/younwookim/brawler/internal/application/timer"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

const (
	ms   = time.Millisecond
	step = 10 * ms
)

type fakeBody struct {
	jumps    int
	rotated  float64
	heading  float64
	x, z     float64
	grounded bool
}

func (b *fakeBody) TriggerJump() bool {
	if !b.grounded {
		return false
	}
	b.jumps++
	return true
}
func (b *fakeBody) Move(dx, dz float64) { b.x += dx; b.z += dz }
func (b *fakeBody) Rotate(deg float64) {
	b.rotated += deg
	b.heading = entity.NormalizeAngle(b.heading + deg)
}
func (b *fakeBody) SetHeading(deg float64) { b.heading = entity.NormalizeAngle(deg) }
func (b *fakeBody) Heading() float64       { return b.heading }
func (b *fakeBody) Grounded() bool         { return b.grounded }

type fakeAnimator struct {
	triggers []string
	floats   map[string]float64
	bools    map[string]bool
	pending  map[string]bool
}

func newFakeAnimator() *fakeAnimator {
	return &fakeAnimator{
		floats:  make(map[string]float64),
		bools:   make(map[string]bool),
		pending: make(map[string]bool),
	}
}

func (a *fakeAnimator) SetBool(name string, v bool)     { a.bools[name] = v }
func (a *fakeAnimator) SetFloat(name string, v float64) { a.floats[name] = v }
func (a *fakeAnimator) SetTrigger(name string) {
	a.triggers = append(a.triggers, name)
	a.pending[name] = true
}
func (a *fakeAnimator) ResetTrigger(name string) { delete(a.pending, name) }

func (a *fakeAnimator) count(name string) int {
	n := 0
	for _, tr := range a.triggers {
		if tr == name {
			n++
		}
	}
	return n
}

type fakeHitbox struct {
	active  bool
	history []bool
}

func (h *fakeHitbox) SetActive(active bool) {
	h.active = active
	h.history = append(h.history, active)
}

type harness struct {
	t      *testing.T
	sched  *timer.Scheduler
	body   *fakeBody
	anim   *fakeAnimator
	hitbox *fakeHitbox
	tuning *config.Tuning
	obs    *Observers
	m      *Machine

	combo       []int
	cooldown    []float64
	transitions []Transition
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	tuning := config.Default()
	h := &harness{
		t:      t,
		sched:  timer.NewScheduler(),
		body:   &fakeBody{grounded: true},
		anim:   newFakeAnimator(),
		hitbox: &fakeHitbox{},
		tuning: &tuning,
		obs:    &Observers{},
	}
	h.obs.ComboProgress.Subscribe(func(v int) { h.combo = append(h.combo, v) })
	h.obs.CooldownProgress.Subscribe(func(v float64) { h.cooldown = append(h.cooldown, v) })
	h.obs.Transitions.Subscribe(func(tr Transition) { h.transitions = append(h.transitions, tr) })

	m, err := New(Deps{
		Body:      h.body,
		Animator:  h.anim,
		Hitbox:    h.hitbox,
		Scheduler: h.sched,
		Tuning:    h.tuning,
		Observers: h.obs,
	})
	require.NoError(t, err)
	h.m = m
	return h
}

// tick runs one frame in the fixed order, input first and timers last.
func (h *harness) tick(cmd Command) {
	h.m.HandleInput(cmd)
	h.m.Update(step)
	h.m.FixedUpdate(step)
	h.sched.Advance(step)
}

// idleUntil ticks with no input until simulation time reaches at.
func (h *harness) idleUntil(at time.Duration) {
	for h.sched.Now() < at {
		h.tick(Command{})
	}
}

// pressAt idles until at, then feeds cmd on the next tick.
func (h *harness) pressAt(at time.Duration, cmd Command) {
	h.idleUntil(at)
	h.tick(cmd)
}

func (h *harness) session() ComboSession {
	return h.m.Combo().Session()
}

var (
	primary   = Command{Primary: true}
	secondary = Command{Secondary: true}
)
