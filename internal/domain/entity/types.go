package entity

import "math"

// EntityID is a unique identifier for an entity
type EntityID uint32

// NormalizeAngle wraps degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// HeadingVector returns the unit X/Z direction for a heading in degrees.
// Heading 0 faces +Z and 90 faces +X.
func HeadingVector(deg float64) (x, z float64) {
	rad := deg * math.Pi / 180
	return math.Sin(rad), math.Cos(rad)
}

// HeadingOf returns the heading in degrees that faces along (x, z).
func HeadingOf(x, z float64) float64 {
	return NormalizeAngle(math.Atan2(x, z) * 180 / math.Pi)
}

// CirclesOverlap checks if two circles on the X/Z plane intersect
func CirclesOverlap(ax, az, ar, bx, bz, br float64) bool {
	dx := bx - ax
	dz := bz - az
	r := ar + br
	return dx*dx+dz*dz <= r*r
}
