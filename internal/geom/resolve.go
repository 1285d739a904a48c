package geom

import (
	"iter"
	"slices"
)

// Resolve returns the pushback of the first collider, in iteration order,
// that reports a hit, or the zero vector if none does. Only one collider is
// ever applied per call, so simultaneous contact with several surfaces
// (corners) is not resolved; the first one wins even if it is not the
// nearest.
func Resolve(position, displacement Vec2, colliders iter.Seq[Collider]) (Vec2, bool) {
	for c := range colliders {
		if pushback, ok := c.Pushback(position, displacement); ok {
			return pushback, true
		}
	}
	return Zero, false
}

// Displace moves position by displacement, corrected by the pushback from
// Resolve. The applied pushback is returned along with whether a collider
// was hit.
func Displace(position *Vec2, displacement Vec2, colliders iter.Seq[Collider]) (Vec2, bool) {
	pushback, hit := Resolve(*position, displacement, colliders)
	*position = position.Add(displacement).Add(pushback)
	return pushback, hit
}

// Colliders adapts a slice to the sequence Resolve and Displace expect.
func Colliders(cs ...Collider) iter.Seq[Collider] {
	return slices.Values(cs)
}
