package system

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/younwookim/brawler/internal/domain/entity"
	"github.com/younwookim/brawler/internal/infrastructure/config"
)

const (
	characterRadius = 0.4
	wallElasticity  = 0.5
	targetFriction  = 0.4
)

// PhysicsSystem simulates the arena floor from above: X/Z map onto the
// chipmunk plane and there is no planar gravity. The character's jump arc is
// integrated on the body itself.
type PhysicsSystem struct {
	space     *cp.Space
	character *cp.Body
	placed    bool
	targets   []*entity.Target
	halfW     float64
	halfD     float64
	damping   float64
}

// NewPhysicsSystem creates a walled space sized to the arena
func NewPhysicsSystem(arena *config.ArenaConfig) *PhysicsSystem {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})

	s := &PhysicsSystem{
		space:   space,
		halfW:   arena.Size.Width / 2,
		halfD:   arena.Size.Depth / 2,
		damping: arena.Damping,
	}
	s.addWalls()

	s.character = space.AddBody(cp.NewKinematicBody())
	shape := space.AddShape(cp.NewCircle(s.character, characterRadius, cp.Vector{}))
	shape.SetFriction(targetFriction)

	return s
}

func (s *PhysicsSystem) addWalls() {
	corners := []cp.Vector{
		{X: -s.halfW, Y: -s.halfD},
		{X: s.halfW, Y: -s.halfD},
		{X: s.halfW, Y: s.halfD},
		{X: -s.halfW, Y: s.halfD},
	}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%len(corners)]
		wall := s.space.AddShape(cp.NewSegment(s.space.StaticBody, a, b, 0.1))
		wall.SetElasticity(wallElasticity)
		wall.SetFriction(targetFriction)
	}
}

// AddTarget gives a target a dynamic circle body at its spawn point
func (s *PhysicsSystem) AddTarget(t *entity.Target) {
	moment := cp.MomentForCircle(t.Mass, 0, t.Radius, cp.Vector{})
	body := s.space.AddBody(cp.NewBody(t.Mass, moment))
	body.SetPosition(cp.Vector{X: t.X, Y: t.Z})

	shape := s.space.AddShape(cp.NewCircle(body, t.Radius, cp.Vector{}))
	shape.SetElasticity(wallElasticity)
	shape.SetFriction(targetFriction)

	t.Body = body
	s.targets = append(s.targets, t)
}

// Update integrates the character's jump, keeps it inside the arena and
// steps the target simulation
func (s *PhysicsSystem) Update(ch *entity.Character, gravity float64, dt time.Duration) {
	ch.Step(dt, gravity)
	s.clamp(ch)

	sec := dt.Seconds()
	if sec <= 0 {
		return
	}

	// Kinematic bodies push dynamic ones by velocity, so steer the body
	// onto the character's new spot instead of teleporting it.
	next := cp.Vector{X: ch.X, Y: ch.Z}
	if !s.placed {
		s.character.SetPosition(next)
		s.placed = true
	}
	s.character.SetVelocityVector(next.Sub(s.character.Position()).Mult(1 / sec))

	s.space.Step(sec)
	s.applyDamping(sec)
}

func (s *PhysicsSystem) clamp(ch *entity.Character) {
	maxX := s.halfW - characterRadius
	maxZ := s.halfD - characterRadius
	ch.X = math.Max(-maxX, math.Min(maxX, ch.X))
	ch.Z = math.Max(-maxZ, math.Min(maxZ, ch.Z))
}

func (s *PhysicsSystem) applyDamping(sec float64) {
	keep := math.Pow(s.damping, sec)
	for _, t := range s.targets {
		t.Body.SetVelocityVector(t.Body.Velocity().Mult(keep))
	}
}

// Bounds returns the arena half extents
func (s *PhysicsSystem) Bounds() (halfW, halfD float64) {
	return s.halfW, s.halfD
}
