package mathutil

import "math"

// Vec2 is a 2D vector in world space (Y-up).
type Vec2 struct {
	X, Y float64
}

// Zero is the zero vector. The pathfinder uses it to signal "no waypoint".
var Zero = Vec2{}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div divides both components by s. A zero divisor yields the zero vector
// and ok=false.
func (v Vec2) Div(s float64) (Vec2, bool) {
	if s == 0 {
		return Zero, false
	}
	return Vec2{X: v.X / s, Y: v.Y / s}, true
}

// Length returns the Euclidean length.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector pointing the same way. The zero vector
// has no direction: it returns Zero and ok=false.
func (v Vec2) Normalize() (Vec2, bool) {
	return v.Div(v.Length())
}

// DistanceTo returns the Euclidean distance between two points.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return o.Sub(v).Length()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
