package system

import (
	"fmt"
	"time"

	"github.com/younwookim/brawler/internal/application/state"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// World is one arena session: the character, its state machine and the
// targets it fights. Frontends feed it input and draw its Snapshot.
type World struct {
	tuning *config.Tuning
	arena  *config.ArenaConfig

	character *entity.Character
	animator  *entity.Animator
	hitbox    *entity.Hitbox
	targets   []*entity.Target

	characterSystem *CharacterSystem
	physicsSystem   *PhysicsSystem
	combatSystem    *CombatSystem
	observers       *state.Observers

	paused   bool
	frame    int
	comboHit int
	cooldown float64

	// Frontend hooks
	OnHit         func(t *entity.Target)
	OnScreenShake func(intensity float64)
}

// NewWorld builds an arena session. tuning is shared, so edits through the
// pointer reach the running state machine.
func NewWorld(tuning *config.Tuning, arena *config.ArenaConfig) (*World, error) {
	if err := arena.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		tuning:    tuning,
		arena:     arena,
		character: entity.NewCharacter(arena.Spawn.X, arena.Spawn.Z, arena.Heading),
		animator:  entity.NewAnimator(),
		hitbox:    entity.NewHitbox(tuning.Combat.HitboxReach, tuning.Combat.HitboxRadius),
		observers: &state.Observers{},
	}
	w.syncTuning()

	w.observers.ComboProgress.Subscribe(func(hit int) { w.comboHit = hit })
	w.observers.CooldownProgress.Subscribe(func(f float64) { w.cooldown = f })

	cs, err := NewCharacterSystem(tuning, w.character, w.animator, w.hitbox, w.observers)
	if err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	w.characterSystem = cs

	w.physicsSystem = NewPhysicsSystem(arena)
	w.combatSystem = NewCombatSystem(tuning)
	w.combatSystem.OnHit = w.handleHit
	w.combatSystem.OnScreenShake = func(intensity float64) {
		if w.OnScreenShake != nil {
			w.OnScreenShake(intensity)
		}
	}
	w.targets = LoadArena(arena, w.physicsSystem, w.combatSystem)

	return w, nil
}

// Step advances the session by one tick
func (w *World) Step(input InputState, dt time.Duration) {
	if input.Pause {
		w.SetPaused(!w.paused)
	}
	if w.paused {
		return
	}

	w.syncTuning()
	w.characterSystem.Update(input, dt)
	w.physicsSystem.Update(w.character, w.tuning.Movement.Gravity, dt)
	w.combatSystem.Update(w.character, w.hitbox, dt)
	w.frame++
}

// SetPaused freezes or resumes the session, timers included
func (w *World) SetPaused(paused bool) {
	w.paused = paused
	if paused {
		w.characterSystem.Scheduler().Pause()
	} else {
		w.characterSystem.Scheduler().Resume()
	}
}

// Paused reports whether the session is frozen
func (w *World) Paused() bool {
	return w.paused
}

// Machine returns the character's behaviour state machine
func (w *World) Machine() *state.Machine {
	return w.characterSystem.Machine()
}

// Observers returns the state machine's notification feeds
func (w *World) Observers() *state.Observers {
	return w.observers
}

// Animator returns the character's animation parameters
func (w *World) Animator() *entity.Animator {
	return w.animator
}

// Tuning returns the shared tuning
func (w *World) Tuning() *config.Tuning {
	return w.tuning
}

// Arena returns the arena layout
func (w *World) Arena() *config.ArenaConfig {
	return w.arena
}

// Reload replaces the tuning values in place. Timers already scheduled keep
// the delays they were given.
func (w *World) Reload(t config.Tuning) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}
	*w.tuning = t
	w.syncTuning()
	return nil
}

// syncTuning copies the tuning values the entities hold themselves
func (w *World) syncTuning() {
	w.character.JumpImpulse = w.tuning.Movement.JumpImpulse
	w.character.MinJumpInterval = w.tuning.Movement.MinJumpInterval
	w.hitbox.Reach = w.tuning.Combat.HitboxReach
	w.hitbox.Radius = w.tuning.Combat.HitboxRadius
}

func (w *World) handleHit(t *entity.Target) {
	if w.tuning.Combat.EndWindowOnHit {
		w.Machine().ConfirmHit()
	}
	if w.OnHit != nil {
		w.OnHit(t)
	}
}
