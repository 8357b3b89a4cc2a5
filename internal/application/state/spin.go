package state

import (
	"time"

	"github.com/younwookim/brawler/internal/application/timer"
)

// SpinState rotates the character in place for a fixed time, then gates
// the next spin behind a cooldown that keeps running after the state exits.
type SpinState struct {
	*actor

	spinning    bool
	attackReady bool

	spinTimer     timer.Handle
	cooldownTimer timer.Handle
	cooldownTick  timer.Handle
	cooldownTotal time.Duration
}

func newSpin(a *actor) *SpinState {
	return &SpinState{actor: a, attackReady: true}
}

func (s *SpinState) Enter() {
	if !s.attackReady {
		s.machine.ChangeState(Locomotion)
		return
	}

	s.anim.SetTrigger(TriggerSpin)
	s.anim.SetFloat(ParamMoveSpeed, 0)

	s.spinning = true
	s.spinTimer = s.sched.Schedule(s.tuning.Spin.Duration, s.finishSpin)
	s.startCooldown()
}

func (s *SpinState) Exit() {
	s.sched.Cancel(s.spinTimer)
	s.spinTimer = 0
	s.spinning = false
}

func (s *SpinState) HandleInput(cmd Command) {}

func (s *SpinState) Update(dt time.Duration) {}

func (s *SpinState) FixedUpdate(dt time.Duration) {
	if !s.spinning {
		return
	}
	s.body.Rotate(s.tuning.Spin.AngularRate * dt.Seconds())
}

// AttackReady reports whether the cooldown has elapsed
func (s *SpinState) AttackReady() bool {
	return s.attackReady
}

// Spinning reports whether the rotation is running
func (s *SpinState) Spinning() bool {
	return s.spinning
}

// CooldownFraction returns the remaining cooldown in [0, 1]
func (s *SpinState) CooldownFraction() float64 {
	if s.attackReady || s.cooldownTotal <= 0 {
		return 0
	}
	rem, ok := s.sched.Remaining(s.cooldownTimer)
	if !ok {
		return 0
	}
	return float64(rem) / float64(s.cooldownTotal)
}

func (s *SpinState) finishSpin() {
	s.spinTimer = 0
	s.spinning = false
	s.machine.ChangeState(Locomotion)
}

func (s *SpinState) startCooldown() {
	s.attackReady = false
	s.sched.Cancel(s.cooldownTimer)
	s.sched.Cancel(s.cooldownTick)

	s.cooldownTotal = s.tuning.Spin.Cooldown
	s.cooldownTimer = s.sched.Schedule(s.cooldownTotal, s.cooldownReady)
	s.cooldownTick = s.sched.EachTick(s.reportCooldown)
	s.obs.CooldownProgress.Publish(1)
}

func (s *SpinState) reportCooldown() {
	if f := s.CooldownFraction(); f > 0 {
		s.obs.CooldownProgress.Publish(f)
	}
}

func (s *SpinState) cooldownReady() {
	s.sched.Cancel(s.cooldownTick)
	s.cooldownTimer, s.cooldownTick = 0, 0
	s.attackReady = true
	s.obs.CooldownProgress.Publish(0)
}
