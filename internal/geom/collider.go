package geom

import "math"

// unitTolerance bounds how far |normal| may drift from 1 before a collider
// is considered malformed.
const unitTolerance = 1e-6

// Collider is a static, one-sided line segment. It is centred on Centre,
// lies perpendicular to Normal and spans Breadth units. Only motion coming
// from the side Normal points to is blocked.
type Collider struct {
	Centre  Vec2
	Normal  Vec2 // unit length, outward-facing
	Breadth float64
}

// NewCollider builds a collider, normalising the given normal so the unit
// length invariant holds.
func NewCollider(centre, normal Vec2, breadth float64) Collider {
	return Collider{
		Centre:  centre,
		Normal:  normal.Normalize(),
		Breadth: breadth,
	}
}

// Valid reports whether the collider honours its invariants: a unit normal
// and a positive breadth.
func (c Collider) Valid() bool {
	return c.Breadth > 0 && math.Abs(c.Normal.Length()-1) <= unitTolerance
}

// Endpoints returns the two ends of the segment.
func (c Collider) Endpoints() (Vec2, Vec2) {
	// Direction along the segment is the normal rotated by 90 degrees.
	along := c.Normal.Perp().Mult(c.Breadth / 2)
	return c.Centre.Sub(along), c.Centre.Add(along)
}

// Pushback computes the correction to add to displacement so that a point
// moving from position does not pass through the collider. It returns false
// when the path does not hit the segment during this displacement.
//
// The returned vector is parallel to Normal and cancels the part of the
// displacement that would carry the point beyond the contact point.
func (c Collider) Pushback(position, displacement Vec2) (Vec2, bool) {
	denominator := c.Normal.Dot(displacement)
	if denominator >= 0 {
		// Parallel to the surface or moving away from its front face.
		return Zero, false
	}

	numerator := c.Normal.Dot(c.Centre.Sub(position))
	t := numerator / denominator
	if t < 0 || t > 1 {
		return Zero, false
	}

	contact := position.Add(displacement.Mult(t))
	if contact.Distance(c.Centre) > c.Breadth/2 {
		return Zero, false
	}

	return c.Normal.Mult((t - 1) * displacement.Dot(c.Normal)), true
}
