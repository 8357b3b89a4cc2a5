package state

import (
	"time"

	"github.com/younwookim/brawler/internal/application/timer"
)

// ComboSession is the observable progress of the current combo.
// AnimationLocked implies !InputAccepted.
type ComboSession struct {
	HitIndex        int // 0 when no combo is running, else 1..MaxComboHits
	InputAccepted   bool
	AnimationLocked bool
	HitboxActive    bool
}

// ComboState runs a three-hit attack chain. Each hit locks input for a
// minimum time, refreshes the combo window and opens a hitbox window.
type ComboState struct {
	*actor

	session ComboSession

	lockTimer    timer.Handle
	timeoutTimer timer.Handle
	hitboxTimer  timer.Handle // pre-delay, then active duration
}

func newCombo(a *actor) *ComboState {
	return &ComboState{
		actor:   a,
		session: ComboSession{InputAccepted: true},
	}
}

// Session returns a copy of the combo progress
func (c *ComboState) Session() ComboSession {
	return c.session
}

func (c *ComboState) Enter() {
	s := c.session
	if s.HitIndex > 0 && s.InputAccepted && !s.AnimationLocked {
		c.advance()
		return
	}

	c.session.HitIndex = 1
	c.strike()
}

func (c *ComboState) Exit() {
	c.sched.Cancel(c.lockTimer)
	c.sched.Cancel(c.timeoutTimer)
	c.sched.Cancel(c.hitboxTimer)
	c.lockTimer, c.timeoutTimer, c.hitboxTimer = 0, 0, 0

	if c.session.HitboxActive {
		c.setHitbox(false)
	}
	c.session.AnimationLocked = false
	c.session.InputAccepted = true
}

func (c *ComboState) HandleInput(cmd Command) {
	if !cmd.Primary || !c.machine.IsInState(Combo) {
		return
	}
	c.advance()
}

func (c *ComboState) Update(dt time.Duration) {}

func (c *ComboState) FixedUpdate(dt time.Duration) {
	c.anim.SetFloat(ParamMoveSpeed, 0)
}

// ConfirmHit switches an active hitbox off before its window ends.
func (c *ComboState) ConfirmHit() {
	if !c.session.HitboxActive {
		return
	}
	c.sched.Cancel(c.hitboxTimer)
	c.hitboxTimer = 0
	c.setHitbox(false)
}

// advance moves to the next hit if input is open. Reports whether it did.
func (c *ComboState) advance() bool {
	if !c.session.InputAccepted || c.session.AnimationLocked {
		return false
	}

	c.session.HitIndex++
	if c.session.HitIndex > MaxComboHits {
		c.session.HitIndex = 1
	}
	c.strike()
	return true
}

// strike plays the current hit and restarts every per-hit timer.
func (c *ComboState) strike() {
	for _, name := range comboTriggers {
		c.anim.ResetTrigger(name)
	}
	c.anim.SetTrigger(ComboTrigger(c.session.HitIndex))

	cfg := c.tuning.Combo

	c.sched.Cancel(c.lockTimer)
	c.session.AnimationLocked = true
	c.session.InputAccepted = false
	c.lockTimer = c.sched.Schedule(cfg.MinHitDuration, c.releaseLock)

	c.sched.Cancel(c.timeoutTimer)
	c.timeoutTimer = c.sched.Schedule(cfg.Window, c.timeout)

	c.sched.Cancel(c.hitboxTimer)
	if c.session.HitboxActive {
		c.setHitbox(false)
	}
	c.hitboxTimer = c.sched.Schedule(cfg.HitboxPreDelay, c.openHitbox)

	c.obs.ComboProgress.Publish(c.session.HitIndex)
}

func (c *ComboState) releaseLock() {
	c.lockTimer = 0
	c.session.AnimationLocked = false
	c.session.InputAccepted = true
}

func (c *ComboState) timeout() {
	c.timeoutTimer = 0
	c.reset()
	c.machine.ChangeState(Locomotion)
}

func (c *ComboState) openHitbox() {
	c.setHitbox(true)
	c.hitboxTimer = c.sched.Schedule(c.tuning.Combo.HitboxActiveDuration, c.closeHitbox)
}

func (c *ComboState) closeHitbox() {
	c.hitboxTimer = 0
	c.setHitbox(false)
}

func (c *ComboState) reset() {
	c.session.HitIndex = 0
	c.session.AnimationLocked = false
	c.session.InputAccepted = true
	for _, name := range comboTriggers {
		c.anim.ResetTrigger(name)
	}
	c.obs.ComboProgress.Publish(0)
}

func (c *ComboState) setHitbox(active bool) {
	c.session.HitboxActive = active
	c.hitbox.SetActive(active)
}
