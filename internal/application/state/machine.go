package state

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/younwookim/brawler/internal/application/timer"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

var (
	ErrNoBody      = errors.New("state: character body is required")
	ErrNoAnimator  = errors.New("state: animator is required")
	ErrNoScheduler = errors.New("state: scheduler is required")
)

// Deps are the collaborators the states act on.
type Deps struct {
	Body      Body
	Animator  Animator
	Hitbox    Hitbox // optional
	Scheduler *timer.Scheduler
	// Tuning is read whenever a state schedules something, so edits through
	// this pointer apply from the next scheduled timer on. Nil uses defaults.
	Tuning    *config.Tuning
	Observers *Observers // optional, created when nil
}

// actor bundles what every state needs
type actor struct {
	machine *Machine
	body    Body
	anim    Animator
	hitbox  Hitbox
	sched   *timer.Scheduler
	tuning  *config.Tuning
	obs     *Observers
}

// Machine owns the three behaviour states and exactly one current state.
type Machine struct {
	states  [stateCount]State
	current ID
	entered bool
	obs     *Observers

	locomotion *LocomotionState
	spin       *SpinState
	combo      *ComboState
}

// New builds the states and enters Locomotion.
func New(d Deps) (*Machine, error) {
	if d.Body == nil {
		return nil, ErrNoBody
	}
	if d.Animator == nil {
		return nil, ErrNoAnimator
	}
	if d.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if d.Tuning == nil {
		t := config.Default()
		d.Tuning = &t
	}
	if err := d.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("state: invalid tuning: %w", err)
	}
	if d.Hitbox == nil {
		log.Printf("state: no hitbox bound, combo hitbox windows are disabled")
		d.Hitbox = nopHitbox{}
	}
	if d.Observers == nil {
		d.Observers = &Observers{}
	}

	m := &Machine{obs: d.Observers}
	a := &actor{
		machine: m,
		body:    d.Body,
		anim:    d.Animator,
		hitbox:  d.Hitbox,
		sched:   d.Scheduler,
		tuning:  d.Tuning,
		obs:     d.Observers,
	}

	m.locomotion = newLocomotion(a)
	m.spin = newSpin(a)
	m.combo = newCombo(a)
	m.states = [stateCount]State{
		Locomotion: m.locomotion,
		Spin:       m.spin,
		Combo:      m.combo,
	}

	m.ChangeState(Locomotion)
	return m, nil
}

// ChangeState exits the current state and enters id. Enter may call
// ChangeState again; the nested call runs immediately.
// Panics if id is not a known state.
func (m *Machine) ChangeState(id ID) {
	next := m.lookup(id)

	from := m.current
	initial := !m.entered
	if m.entered {
		m.states[m.current].Exit()
	}

	m.current = id
	m.entered = true
	m.obs.Transitions.Publish(Transition{From: from, To: id, Initial: initial})
	next.Enter()
}

func (m *Machine) lookup(id ID) State {
	if !id.Valid() || m.states[id] == nil {
		panic(fmt.Sprintf("state: unknown state id %d", int(id)))
	}
	return m.states[id]
}

// Current returns the current state ID
func (m *Machine) Current() ID {
	return m.current
}

// IsInState reports whether id is current
func (m *Machine) IsInState(id ID) bool {
	return m.current == id
}

// Update forwards to the current state
func (m *Machine) Update(dt time.Duration) {
	m.states[m.current].Update(dt)
}

// FixedUpdate forwards to the current state
func (m *Machine) FixedUpdate(dt time.Duration) {
	m.states[m.current].FixedUpdate(dt)
}

// HandleInput forwards to the current state
func (m *Machine) HandleInput(cmd Command) {
	m.states[m.current].HandleInput(cmd)
}

// ConfirmHit reports that the active combo hitbox connected. The hitbox is
// switched off early; repeated or late confirmations do nothing.
func (m *Machine) ConfirmHit() {
	m.combo.ConfirmHit()
}

// Observers returns the notification feeds
func (m *Machine) Observers() *Observers {
	return m.obs
}

// Spin exposes the spin state for HUDs
func (m *Machine) Spin() *SpinState {
	return m.spin
}

// Combo exposes the combo state for HUDs
func (m *Machine) Combo() *ComboState {
	return m.combo
}

type nopHitbox struct{}

func (nopHitbox) SetActive(bool) {}
