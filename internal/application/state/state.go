// Package state implements the character's behaviour state machine:
// locomotion, a spin attack with a cooldown, and a three-hit combo.
package state

import "time"

// ID identifies one of the character's behaviour states
type ID int

const (
	Locomotion ID = iota
	Spin
	Combo

	stateCount
)

// String returns the string representation of the state ID
func (id ID) String() string {
	switch id {
	case Locomotion:
		return "Locomotion"
	case Spin:
		return "Spin"
	case Combo:
		return "Combo"
	default:
		return "Unknown"
	}
}

// Valid reports whether id names a known state
func (id ID) Valid() bool {
	return id >= 0 && id < stateCount
}

// State is one exclusive mode of character behaviour.
// Exit must cancel every timer the state owns.
type State interface {
	Enter()
	Exit()
	Update(dt time.Duration)
	FixedUpdate(dt time.Duration)
	HandleInput(cmd Command)
}

// Command is the per-tick player intent, already mapped from devices.
type Command struct {
	Vertical   float64 // forward/back axis in [-1, 1]
	Horizontal float64 // right/left axis in [-1, 1]
	Walk       bool
	Jump       bool
	Primary    bool // combo attack
	Secondary  bool // spin attack
}

// Animation parameter names shared with renderers
const (
	ParamMoveSpeed = "MoveSpeed"
	ParamGrounded  = "Grounded"
	TriggerSpin    = "attack1"
)

// MaxComboHits is the length of the combo cycle
const MaxComboHits = 3

var comboTriggers = [MaxComboHits]string{"atk_combo1", "atk_combo2", "atk_combo3"}

// ComboTrigger returns the animation trigger for a 1-based combo hit
func ComboTrigger(hit int) string {
	if hit < 1 || hit > MaxComboHits {
		return ""
	}
	return comboTriggers[hit-1]
}

// Body is the character's physical presence
type Body interface {
	// TriggerJump applies the jump impulse unless the body's own minimum
	// re-trigger interval or grounded check rejects it.
	TriggerJump() bool
	Move(dx, dz float64)
	Rotate(degrees float64)
	SetHeading(degrees float64)
	Heading() float64
	Grounded() bool
}

// Animator receives fire-and-forget animation parameters
type Animator interface {
	SetBool(name string, v bool)
	SetTrigger(name string)
	ResetTrigger(name string)
	SetFloat(name string, v float64)
}

// Hitbox is the optional damage volume toggled by the combo
type Hitbox interface {
	SetActive(active bool)
}
