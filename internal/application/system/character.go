package system

import (
	"time"

	"github.com/younwookim/brawler/internal/application/state"
	"github.com/younwookim/brawler/internal/application/timer"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// CharacterSystem drives the behaviour state machine and its timers
type CharacterSystem struct {
	machine   *state.Machine
	scheduler *timer.Scheduler
	body      *entity.Character
	animator  *entity.Animator
}

// NewCharacterSystem wires the machine to the character's collaborators
func NewCharacterSystem(tuning *config.Tuning, body *entity.Character, animator *entity.Animator, hitbox *entity.Hitbox, obs *state.Observers) (*CharacterSystem, error) {
	sched := timer.NewScheduler()
	deps := state.Deps{
		Scheduler: sched,
		Tuning:    tuning,
		Observers: obs,
	}
	// Nil pointers stay nil interfaces so the machine can report them.
	if body != nil {
		deps.Body = body
	}
	if animator != nil {
		deps.Animator = animator
	}
	if hitbox != nil {
		deps.Hitbox = hitbox
	}

	machine, err := state.New(deps)
	if err != nil {
		return nil, err
	}

	return &CharacterSystem{
		machine:   machine,
		scheduler: sched,
		body:      body,
		animator:  animator,
	}, nil
}

// Update runs one tick: input, update, fixed update, then due timers
func (s *CharacterSystem) Update(input InputState, dt time.Duration) {
	s.machine.HandleInput(input.Command())
	s.machine.Update(dt)
	s.animator.SetBool(state.ParamGrounded, s.body.Grounded())
	s.machine.FixedUpdate(dt)
	s.scheduler.Advance(dt)
}

// Machine returns the behaviour state machine
func (s *CharacterSystem) Machine() *state.Machine {
	return s.machine
}

// Scheduler returns the simulation clock the states schedule on
func (s *CharacterSystem) Scheduler() *timer.Scheduler {
	return s.scheduler
}
