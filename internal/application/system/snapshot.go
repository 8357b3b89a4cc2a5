package system

import (
	"time"

	"github.com/younwookim/brawler/internal/application/state"
)

// Snapshot is a read-only view of a World for renderers
type Snapshot struct {
	Frame  int
	Time   time.Duration
	Paused bool

	State        state.ID
	ComboHit     int
	Cooldown     float64 // remaining spin cooldown fraction, 0 when ready
	AttackReady  bool
	Spinning     bool
	HitboxActive bool

	X, Y, Z float64
	Heading float64

	HitboxX, HitboxZ float64
	HitboxRadius     float64

	HalfWidth, HalfDepth float64
	Targets              []TargetView
}

// TargetView is a target's drawable state
type TargetView struct {
	Name    string
	X, Z    float64
	Radius  float64
	Hits    int
	Flashed bool
}

// Snapshot captures the current session state
func (w *World) Snapshot() Snapshot {
	m := w.Machine()
	hx, hz := w.hitbox.Center(w.character)
	halfW, halfD := w.physicsSystem.Bounds()

	snap := Snapshot{
		Frame:        w.frame,
		Time:         w.characterSystem.Scheduler().Now(),
		Paused:       w.paused,
		State:        m.Current(),
		ComboHit:     w.comboHit,
		Cooldown:     w.cooldown,
		AttackReady:  m.Spin().AttackReady(),
		Spinning:     m.Spin().Spinning(),
		HitboxActive: w.hitbox.Active(),
		X:            w.character.X,
		Y:            w.character.Y,
		Z:            w.character.Z,
		Heading:      w.character.Heading(),
		HitboxX:      hx,
		HitboxZ:      hz,
		HitboxRadius: w.hitbox.Radius,
		HalfWidth:    halfW,
		HalfDepth:    halfD,
		Targets:      make([]TargetView, 0, len(w.targets)),
	}
	for _, t := range w.targets {
		x, z := t.Position()
		snap.Targets = append(snap.Targets, TargetView{
			Name:    t.Name,
			X:       x,
			Z:       z,
			Radius:  t.Radius,
			Hits:    t.Hits,
			Flashed: t.HitTimer > 0,
		})
	}
	return snap
}
