// Package geom holds the 2-D math used by the simulation: vectors, one-sided
// line-segment colliders and the swept-point collision resolver.
package geom

import "github.com/jakecoffman/cp"

// Vec2 is a pair of float coordinates (x, y). Y grows upward.
// It is the Chipmunk vector, so Add, Sub, Mult, Dot, Length and friends
// come for free.
type Vec2 = cp.Vector

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Zero is the zero vector.
var Zero = Vec2{}
