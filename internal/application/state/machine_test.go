package state

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/brawler/internal/application/timer"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

func TestNew_MissingCollaborators(t *testing.T) {
	body := &fakeBody{grounded: true}
	anim := newFakeAnimator()
	sched := timer.NewScheduler()

	tests := []struct {
		name string
		deps Deps
		want error
	}{
		{"no body", Deps{Animator: anim, Scheduler: sched}, ErrNoBody},
		{"no animator", Deps{Body: body, Scheduler: sched}, ErrNoAnimator},
		{"no scheduler", Deps{Body: body, Animator: anim}, ErrNoScheduler},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.deps)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, m)
		})
	}
}

func TestNew_InvalidTuning(t *testing.T) {
	tuning := config.Default()
	tuning.Combo.Window = 0

	_, err := New(Deps{
		Body:      &fakeBody{},
		Animator:  newFakeAnimator(),
		Scheduler: timer.NewScheduler(),
		Tuning:    &tuning,
	})
	assert.Error(t, err)
}

func TestNew_StartsInLocomotion(t *testing.T) {
	h := newHarness(t)

	assert.Equal(t, Locomotion, h.m.Current())
	assert.True(t, h.m.IsInState(Locomotion))
	require.Len(t, h.transitions, 1)
	assert.True(t, h.transitions[0].Initial)
	assert.Equal(t, []int{0}, h.combo, "locomotion clears combo progress on enter")
}

func TestNew_WithoutHitboxDegrades(t *testing.T) {
	sched := timer.NewScheduler()
	m, err := New(Deps{
		Body:      &fakeBody{grounded: true},
		Animator:  newFakeAnimator(),
		Scheduler: sched,
	})
	require.NoError(t, err)

	m.HandleInput(primary)
	assert.NotPanics(t, func() {
		for i := 0; i < 200; i++ {
			sched.Advance(step)
		}
	})
	assert.Equal(t, Locomotion, m.Current())
}

func TestMachine_UnknownStatePanics(t *testing.T) {
	h := newHarness(t)

	assert.Panics(t, func() { h.m.ChangeState(ID(7)) })
	assert.Panics(t, func() { h.m.ChangeState(ID(-1)) })
	assert.Equal(t, Locomotion, h.m.Current())
}

type probe struct {
	name    string
	log     *[]string
	onEnter func()
}

func (p *probe) Enter() {
	*p.log = append(*p.log, "enter "+p.name)
	if p.onEnter != nil {
		p.onEnter()
	}
}
func (p *probe) Exit()                        { *p.log = append(*p.log, "exit "+p.name) }
func (p *probe) Update(dt time.Duration)      {}
func (p *probe) FixedUpdate(dt time.Duration) {}
func (p *probe) HandleInput(cmd Command)      {}

func TestMachine_ReentrantChangeState(t *testing.T) {
	var log []string
	m := &Machine{obs: &Observers{}}
	m.obs.Transitions.Subscribe(func(tr Transition) { log = append(log, "-> "+tr.To.String()) })
	m.states = [stateCount]State{
		Locomotion: &probe{name: "Locomotion", log: &log},
		Spin: &probe{name: "Spin", log: &log, onEnter: func() {
			m.ChangeState(Locomotion)
		}},
		Combo: &probe{name: "Combo", log: &log},
	}

	m.ChangeState(Locomotion)
	m.ChangeState(Spin)

	assert.Equal(t, []string{
		"-> Locomotion", "enter Locomotion",
		"exit Locomotion", "-> Spin", "enter Spin",
		"exit Spin", "-> Locomotion", "enter Locomotion",
	}, log)
	assert.Equal(t, Locomotion, m.Current())
}

func TestMachine_ForwardsToCurrentState(t *testing.T) {
	h := newHarness(t)

	h.tick(primary)
	assert.Equal(t, Combo, h.m.Current())

	h.anim.floats[ParamMoveSpeed] = 1
	h.m.FixedUpdate(step)
	assert.Equal(t, 0.0, h.anim.floats[ParamMoveSpeed], "combo suppresses movement")
}

// Random input never breaks the session invariants or leaks combo side
// effects outside the combo state.
func TestMachine_RandomInputKeepsInvariants(t *testing.T) {
	h := newHarness(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 5000; i++ {
		cmd := Command{
			Vertical:  rng.Float64()*2 - 1,
			Jump:      rng.Intn(10) == 0,
			Primary:   rng.Intn(4) == 0,
			Secondary: rng.Intn(40) == 0,
		}
		h.tick(cmd)

		s := h.session()
		require.GreaterOrEqual(t, s.HitIndex, 0)
		require.LessOrEqual(t, s.HitIndex, MaxComboHits)
		if s.AnimationLocked {
			require.False(t, s.InputAccepted)
		}
		if !h.m.IsInState(Combo) {
			c := h.m.Combo()
			require.False(t, h.hitbox.active, "tick %d", i)
			require.False(t, h.sched.Pending(c.lockTimer))
			require.False(t, h.sched.Pending(c.timeoutTimer))
			require.False(t, h.sched.Pending(c.hitboxTimer))
		}
		if !h.m.IsInState(Spin) {
			require.False(t, h.m.Spin().Spinning())
		}
		require.Equal(t, h.hitbox.active, s.HitboxActive)
	}

	assert.NotEmpty(t, h.transitions)
}
