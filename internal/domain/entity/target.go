package entity

import "github.com/jakecoffman/cp"

// Target is a training dummy that reacts to hits with knockback
type Target struct {
	ID     EntityID
	Name   string
	X, Z   float64 // spawn position, superseded by Body once simulated
	Radius float64
	Mass   float64

	Body *cp.Body

	Hits     int
	HitTimer float64 // seconds left on the hit flash
}

// NewTarget creates a target at a spawn position
func NewTarget(id EntityID, name string, x, z, radius, mass float64) *Target {
	return &Target{
		ID:     id,
		Name:   name,
		X:      x,
		Z:      z,
		Radius: radius,
		Mass:   mass,
	}
}

// Position returns the current ground-plane position
func (t *Target) Position() (x, z float64) {
	if t.Body == nil {
		return t.X, t.Z
	}
	p := t.Body.Position()
	return p.X, p.Y
}

// Speed returns the ground-plane speed
func (t *Target) Speed() float64 {
	if t.Body == nil {
		return 0
	}
	return t.Body.Velocity().Length()
}

// RegisterHit counts a hit and starts the hit flash
func (t *Target) RegisterHit(flash float64) {
	t.Hits++
	t.HitTimer = flash
}

// UpdateTimers decrements the hit flash
func (t *Target) UpdateTimers(dt float64) {
	if t.HitTimer > 0 {
		t.HitTimer -= dt
		if t.HitTimer < 0 {
			t.HitTimer = 0
		}
	}
}
