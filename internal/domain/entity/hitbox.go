package entity

// Hitbox is the damage volume in front of the character, a circle on the
// ground plane Reach meters ahead of its center.
type Hitbox struct {
	Reach  float64
	Radius float64

	active      bool
	activations int
}

// NewHitbox creates an inactive hitbox
func NewHitbox(reach, radius float64) *Hitbox {
	return &Hitbox{Reach: reach, Radius: radius}
}

// SetActive switches the damage volume on or off
func (h *Hitbox) SetActive(active bool) {
	if active && !h.active {
		h.activations++
	}
	h.active = active
}

// Active reports whether the damage volume is on
func (h *Hitbox) Active() bool {
	return h.active
}

// Activations counts off-to-on switches; each one opens a new strike window
func (h *Hitbox) Activations() int {
	return h.activations
}

// Center returns the world position of the volume for the given character
func (h *Hitbox) Center(c *Character) (x, z float64) {
	fx, fz := c.Forward()
	return c.X + fx*h.Reach, c.Z + fz*h.Reach
}
