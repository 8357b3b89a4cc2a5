package entity

import "time"

// Character is the controllable body.
// X and Z are ground-plane coordinates in meters, Y is height above the floor.
type Character struct {
	X, Z  float64
	Y, VY float64

	// Jump gating, refreshed from tuning by the owning world
	JumpImpulse     float64
	MinJumpInterval time.Duration

	heading  float64 // degrees, see HeadingVector
	grounded bool

	clock    time.Duration
	lastJump time.Duration
	jumped   bool
}

// NewCharacter creates a grounded character at the given spot
func NewCharacter(x, z, heading float64) *Character {
	return &Character{
		X:        x,
		Z:        z,
		heading:  NormalizeAngle(heading),
		grounded: true,
	}
}

// TriggerJump launches the character if it is grounded and the minimum
// interval since the previous jump has passed. Reports whether it jumped.
func (c *Character) TriggerJump() bool {
	if !c.grounded {
		return false
	}
	if c.jumped && c.clock-c.lastJump < c.MinJumpInterval {
		return false
	}
	c.VY = c.JumpImpulse
	c.grounded = false
	c.lastJump = c.clock
	c.jumped = true
	return true
}

// Move displaces the character on the ground plane
func (c *Character) Move(dx, dz float64) {
	c.X += dx
	c.Z += dz
}

// Rotate turns the character by the given degrees
func (c *Character) Rotate(degrees float64) {
	c.heading = NormalizeAngle(c.heading + degrees)
}

// SetHeading faces the character toward an absolute heading
func (c *Character) SetHeading(degrees float64) {
	c.heading = NormalizeAngle(degrees)
}

// Heading returns the facing in degrees
func (c *Character) Heading() float64 {
	return c.heading
}

// Forward returns the unit facing vector on the ground plane
func (c *Character) Forward() (x, z float64) {
	return HeadingVector(c.heading)
}

// Grounded reports whether the character stands on the floor
func (c *Character) Grounded() bool {
	return c.grounded
}

// Step advances the body clock and integrates the jump arc
func (c *Character) Step(dt time.Duration, gravity float64) {
	c.clock += dt
	if c.grounded {
		return
	}

	sec := dt.Seconds()
	c.VY -= gravity * sec
	c.Y += c.VY * sec
	if c.Y <= 0 {
		c.Y = 0
		c.VY = 0
		c.grounded = true
	}
}
