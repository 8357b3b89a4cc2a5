package system

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

func physicsArena(width, depth, damping float64) *config.ArenaConfig {
	return &config.ArenaConfig{
		ID:      "physics",
		Size:    config.ArenaSizeConfig{Width: width, Depth: depth},
		Damping: damping,
	}
}

func runPhysics(s *PhysicsSystem, ch *entity.Character, d time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += tick {
		s.Update(ch, 9.81, tick)
	}
}

func TestPhysicsSystem_ImpulseMovesTarget(t *testing.T) {
	s := NewPhysicsSystem(physicsArena(100, 100, 1))
	ch := entity.NewCharacter(0, -40, 0)
	target := entity.NewTarget(1, "dummy", 0, 0, 0.5, 1)
	s.AddTarget(target)

	target.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: 10}, target.Body.Position())
	runPhysics(s, ch, 100*time.Millisecond)

	x, z := target.Position()
	assert.InDelta(t, 1.0, x, 0.05)
	assert.InDelta(t, 0, z, 1e-6)
	assert.InDelta(t, 10, target.Speed(), 0.01)
}

func TestPhysicsSystem_Damping(t *testing.T) {
	s := NewPhysicsSystem(physicsArena(1000, 1000, 0.5))
	ch := entity.NewCharacter(0, -400, 0)
	target := entity.NewTarget(1, "dummy", 0, 0, 0.5, 1)
	s.AddTarget(target)

	target.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: 10}, target.Body.Position())
	runPhysics(s, ch, time.Second)

	assert.InDelta(t, 5, target.Speed(), 0.1, "half the velocity survives a second")
}

func TestPhysicsSystem_WallsContainTargets(t *testing.T) {
	s := NewPhysicsSystem(physicsArena(6, 6, 1))
	ch := entity.NewCharacter(0, -2, 0)
	target := entity.NewTarget(1, "dummy", 0, 0, 0.5, 1)
	s.AddTarget(target)

	target.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: 20}, target.Body.Position())
	for i := 0; i < 300; i++ {
		s.Update(ch, 9.81, tick)
		x, z := target.Position()
		assert.LessOrEqual(t, math.Abs(x), 3.0)
		assert.LessOrEqual(t, math.Abs(z), 3.0)
	}
}

func TestPhysicsSystem_ClampsCharacter(t *testing.T) {
	s := NewPhysicsSystem(physicsArena(10, 8, 1))
	ch := entity.NewCharacter(50, -50, 0)

	s.Update(ch, 9.81, tick)

	assert.InDelta(t, 5-characterRadius, ch.X, 1e-9)
	assert.InDelta(t, -4+characterRadius, ch.Z, 1e-9)
}

func TestPhysicsSystem_IntegratesJump(t *testing.T) {
	s := NewPhysicsSystem(physicsArena(10, 10, 1))
	ch := entity.NewCharacter(0, 0, 0)
	ch.JumpImpulse = 4
	ch.TriggerJump()

	s.Update(ch, 9.81, tick)
	assert.Greater(t, ch.Y, 0.0)

	runPhysics(s, ch, 2*time.Second)
	assert.True(t, ch.Grounded())
}

func TestLoadArena(t *testing.T) {
	arena := config.DefaultArena()
	physics := NewPhysicsSystem(&arena)
	combat := NewCombatSystem(&config.Tuning{})

	targets := LoadArena(&arena, physics, combat)

	assert.Len(t, targets, 3)
	assert.Equal(t, combat.Targets(), targets)
	assert.Equal(t, entity.EntityID(1), targets[0].ID)
	x, z := targets[2].Position()
	assert.Equal(t, 3.0, x)
	assert.Equal(t, 1.5, z)
	assert.NotNil(t, targets[0].Body)
}
