package config

import (
	"fmt"
	"time"
)

// DefaultDisplay returns the display settings used when display.yaml omits a key.
func DefaultDisplay() DisplayConfig {
	return DisplayConfig{
		ScreenWidth:   640,
		ScreenHeight:  480,
		Scale:         1,
		Framerate:     60,
		PixelsPerUnit: 40,
	}
}

// Default returns the reference tuning.
func Default() Tuning {
	return Tuning{
		Movement: MovementConfig{
			Mode:               ControlDirect,
			MoveSpeed:          2,
			TurnSpeed:          200,
			JumpImpulse:        4,
			MinJumpInterval:    250 * time.Millisecond,
			Gravity:            9.81,
			WalkScale:          0.33,
			BackwardsWalkScale: 0.16,
			BackwardRunScale:   0.66,
			Interpolation:      10,
		},
		Spin: SpinConfig{
			AngularRate: 720,
			Duration:    time.Second,
			Cooldown:    5 * time.Second,
		},
		Combo: ComboConfig{
			Window:               800 * time.Millisecond,
			MinHitDuration:       500 * time.Millisecond,
			HitboxPreDelay:       300 * time.Millisecond,
			HitboxActiveDuration: 200 * time.Millisecond,
		},
		Combat: CombatConfig{
			HitboxReach:      0.8,
			HitboxRadius:     0.6,
			KnockbackImpulse: 10,
		},
		Feedback: FeedbackConfig{
			ScreenShake: ScreenShakeConfig{
				Enabled:   true,
				Intensity: 4,
				Decay:     0.85,
			},
		},
	}
}

// Validate reports the first setting the state machine cannot run with.
func (t *Tuning) Validate() error {
	m := t.Movement
	switch m.Mode {
	case ControlDirect, ControlTank:
	default:
		return fmt.Errorf("movement.mode must be %q or %q, got %q", ControlDirect, ControlTank, m.Mode)
	}
	if m.MoveSpeed < 0 || m.TurnSpeed < 0 || m.JumpImpulse < 0 || m.Gravity < 0 {
		return fmt.Errorf("movement speeds and forces must not be negative")
	}
	if m.MinJumpInterval < 0 {
		return fmt.Errorf("movement.minJumpInterval must not be negative, got %s", m.MinJumpInterval)
	}
	if m.Interpolation <= 0 {
		return fmt.Errorf("movement.interpolation must be positive, got %v", m.Interpolation)
	}

	positive := []struct {
		name string
		d    time.Duration
	}{
		{"spin.duration", t.Spin.Duration},
		{"combo.window", t.Combo.Window},
		{"combo.minHitDuration", t.Combo.MinHitDuration},
		{"combo.hitboxActiveDuration", t.Combo.HitboxActiveDuration},
	}
	for _, p := range positive {
		if p.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", p.name, p.d)
		}
	}
	if t.Spin.Cooldown < 0 {
		return fmt.Errorf("spin.cooldown must not be negative, got %s", t.Spin.Cooldown)
	}
	if t.Combo.HitboxPreDelay < 0 {
		return fmt.Errorf("combo.hitboxPreDelay must not be negative, got %s", t.Combo.HitboxPreDelay)
	}
	if t.Combat.HitboxRadius <= 0 {
		return fmt.Errorf("combat.hitboxRadius must be positive, got %v", t.Combat.HitboxRadius)
	}
	return nil
}
