package physics

import (
	"math"

	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
)

// SegmentBoxHit is a slab test of the segment origin->end against box. It
// returns the hit fraction along the segment in [0,1]; a segment starting
// inside the box hits at 0. Box edges count as inside.
func SegmentBoxHit(origin, end mathutil.Vec2, box perception.Box) (bool, float64) {
	d := end.Sub(origin)
	tmin, tmax := 0.0, 1.0

	axes := [2]struct{ o, d, lo, hi float64 }{
		{origin.X, d.X, box.Min.X, box.Max.X},
		{origin.Y, d.Y, box.Min.Y, box.Max.Y},
	}
	for _, a := range axes {
		if a.d == 0 {
			if a.o < a.lo || a.o > a.hi {
				return false, 0
			}
			continue
		}
		inv := 1.0 / a.d
		t1, t2 := (a.lo-a.o)*inv, (a.hi-a.o)*inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
	}

	if tmax >= tmin {
		return true, tmin
	}
	return false, 0
}
