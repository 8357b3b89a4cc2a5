package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// hitFlash is how long a struck target stays highlighted, in seconds
const hitFlash = 0.2

// CombatSystem resolves the combo hitbox against the arena's targets
type CombatSystem struct {
	tuning  *config.Tuning
	targets []*entity.Target

	window int // hitbox activation the struck set belongs to
	struck map[entity.EntityID]bool

	// Callbacks for game feel
	OnHit         func(t *entity.Target)
	OnScreenShake func(intensity float64)
}

// NewCombatSystem creates a combat system reading knockback from tuning
func NewCombatSystem(tuning *config.Tuning) *CombatSystem {
	return &CombatSystem{
		tuning: tuning,
		struck: make(map[entity.EntityID]bool),
	}
}

// AddTarget registers a target that the hitbox can strike
func (s *CombatSystem) AddTarget(t *entity.Target) {
	s.targets = append(s.targets, t)
}

// Targets returns the registered targets
func (s *CombatSystem) Targets() []*entity.Target {
	return s.targets
}

// Update strikes every target the active hitbox overlaps, once per
// activation window
func (s *CombatSystem) Update(ch *entity.Character, hb *entity.Hitbox, dt time.Duration) {
	sec := dt.Seconds()
	for _, t := range s.targets {
		t.UpdateTimers(sec)
	}

	if !hb.Active() {
		return
	}
	if hb.Activations() != s.window {
		s.window = hb.Activations()
		clear(s.struck)
	}

	hx, hz := hb.Center(ch)
	for _, t := range s.targets {
		if s.struck[t.ID] {
			continue
		}
		tx, tz := t.Position()
		if !entity.CirclesOverlap(hx, hz, hb.Radius, tx, tz, t.Radius) {
			continue
		}

		s.struck[t.ID] = true
		s.knockback(ch, t)
		t.RegisterHit(hitFlash)

		if s.OnHit != nil {
			s.OnHit(t)
		}
		shake := s.tuning.Feedback.ScreenShake
		if shake.Enabled && s.OnScreenShake != nil {
			s.OnScreenShake(shake.Intensity)
		}

		// The callback may have closed the hitbox.
		if !hb.Active() {
			return
		}
	}
}

// knockback pushes the target horizontally away from the character
func (s *CombatSystem) knockback(ch *entity.Character, t *entity.Target) {
	if t.Body == nil {
		return
	}

	tx, tz := t.Position()
	dx, dz := tx-ch.X, tz-ch.Z
	d := math.Hypot(dx, dz)
	if d < 1e-9 {
		dx, dz = ch.Forward()
		d = 1
	}

	impulse := s.tuning.Combat.KnockbackImpulse
	t.Body.ApplyImpulseAtWorldPoint(
		cp.Vector{X: dx / d * impulse, Y: dz / d * impulse},
		t.Body.Position(),
	)
}
