package perception

import "github.com/automoto/doomerang-ai/mathutil"

// probeLift starts downward rays slightly inside the collider so a body
// resting exactly on a surface still registers it.
const probeLift = 0.5

// edgeInset keeps the edge foot rays off the collider's vertical edges so a
// wall beside the body does not count as ground.
const edgeInset = 0.5

// Box is an axis-aligned collider in world space (Y-up).
type Box struct {
	Min, Max mathutil.Vec2
}

// BoxAt builds a Box from its bottom-left corner and size.
func BoxAt(x, y, w, h float64) Box {
	return Box{Min: mathutil.Vec2{X: x, Y: y}, Max: mathutil.Vec2{X: x + w, Y: y + h}}
}

func (b Box) Center() mathutil.Vec2 {
	return mathutil.Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

func (b Box) Width() float64  { return b.Max.X - b.Min.X }
func (b Box) Height() float64 { return b.Max.Y - b.Min.Y }

// Overlaps reports strict overlap; touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	return b.Min.X < o.Max.X && b.Max.X > o.Min.X && b.Min.Y < o.Max.Y && b.Max.Y > o.Min.Y
}

// Ray is a segment query.
type Ray struct {
	Origin, End mathutil.Vec2
}

// SightRay starts at the leading edge at mid height and extends length
// units along the facing direction.
func SightRay(b Box, facingRight bool, length float64) Ray {
	c := b.Center()
	x, sign := b.Min.X, -1.0
	if facingRight {
		x, sign = b.Max.X, 1.0
	}
	origin := mathutil.Vec2{X: x, Y: c.Y}
	return Ray{Origin: origin, End: origin.Add(mathutil.Vec2{X: sign * length})}
}

// GroundAheadRay probes for floor ahead units past the leading edge.
func GroundAheadRay(b Box, facingRight bool, ahead, depth float64) Ray {
	x := b.Min.X - ahead
	if facingRight {
		x = b.Max.X + ahead
	}
	return down(x, b.Min.Y, depth)
}

// FootRays returns the left edge, right edge and centre probes used for the
// player's grounded test.
func FootRays(b Box, depth float64) [3]Ray {
	return [3]Ray{
		down(b.Min.X+edgeInset, b.Min.Y, depth),
		down(b.Max.X-edgeInset, b.Min.Y, depth),
		down(b.Center().X, b.Min.Y, depth),
	}
}

// HazardRay is a short probe straight down from the collider's centre.
func HazardRay(b Box, depth float64) Ray {
	return down(b.Center().X, b.Min.Y, depth)
}

func down(x, bottom, depth float64) Ray {
	return Ray{
		Origin: mathutil.Vec2{X: x, Y: bottom + probeLift},
		End:    mathutil.Vec2{X: x, Y: bottom - depth},
	}
}
