package state

import (
	"math"
	"time"

	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

// LocomotionState moves the character and starts attacks.
type LocomotionState struct {
	*actor

	input       Command
	jumpPending bool

	// smoothed axes
	currentV float64
	currentH float64
}

func newLocomotion(a *actor) *LocomotionState {
	return &LocomotionState{actor: a}
}

func (l *LocomotionState) Enter() {
	l.obs.ComboProgress.Publish(0)
}

func (l *LocomotionState) Exit() {
	l.input = Command{}
	l.jumpPending = false
	l.currentV, l.currentH = 0, 0
}

func (l *LocomotionState) HandleInput(cmd Command) {
	l.input = cmd
	if cmd.Jump {
		l.jumpPending = true
	}

	// Secondary is checked first and wins when both fire together.
	if cmd.Secondary {
		l.machine.ChangeState(Spin)
		return
	}
	if cmd.Primary {
		l.machine.ChangeState(Combo)
	}
}

func (l *LocomotionState) Update(dt time.Duration) {
	if l.jumpPending {
		l.jumpPending = false
		l.body.TriggerJump()
	}
}

func (l *LocomotionState) FixedUpdate(dt time.Duration) {
	mv := l.tuning.Movement
	switch mv.Mode {
	case config.ControlTank:
		l.tank(mv, dt)
	default:
		l.direct(mv, dt)
	}
}

// direct moves toward the stick direction in world space and faces it.
func (l *LocomotionState) direct(mv config.MovementConfig, dt time.Duration) {
	v, h := l.input.Vertical, l.input.Horizontal
	if l.input.Walk {
		v *= mv.WalkScale
		h *= mv.WalkScale
	}
	l.smooth(v, h, mv.Interpolation, dt)

	dx, dz := l.currentH, l.currentV
	length := math.Hypot(dx, dz)
	if length > 1 {
		dx /= length
		dz /= length
		length = 1
	}

	if length > 1e-3 {
		l.body.SetHeading(entity.HeadingOf(dx, dz))
		step := mv.MoveSpeed * dt.Seconds()
		l.body.Move(dx*step, dz*step)
	}
	l.anim.SetFloat(ParamMoveSpeed, length)
}

// tank turns with the horizontal axis and drives along the heading.
func (l *LocomotionState) tank(mv config.MovementConfig, dt time.Duration) {
	v, h := l.input.Vertical, l.input.Horizontal
	switch {
	case v < 0 && l.input.Walk:
		v *= mv.BackwardsWalkScale
	case v < 0:
		v *= mv.BackwardRunScale
	case l.input.Walk:
		v *= mv.WalkScale
	}
	l.smooth(v, h, mv.Interpolation, dt)

	sec := dt.Seconds()
	l.body.Rotate(l.currentH * mv.TurnSpeed * sec)
	fx, fz := entity.HeadingVector(l.body.Heading())
	step := l.currentV * mv.MoveSpeed * sec
	l.body.Move(fx*step, fz*step)
	l.anim.SetFloat(ParamMoveSpeed, l.currentV)
}

func (l *LocomotionState) smooth(v, h, rate float64, dt time.Duration) {
	t := math.Min(1, dt.Seconds()*rate)
	l.currentV += (v - l.currentV) * t
	l.currentH += (h - l.currentH) * t
}
