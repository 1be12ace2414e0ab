// Package perceptiontest provides a scripted perception.World for tests.
package perceptiontest

import (
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/yohamta/donburi"
)

// Matcher decides whether a scripted answer applies to a ray.
type Matcher func(origin, end mathutil.Vec2) bool

type rule struct {
	match  Matcher
	result perception.Result
}

// Call records one Raycast invocation.
type Call struct {
	Origin, End mathutil.Vec2
	Exclude     donburi.Entity
	Result      perception.Result
}

// World answers rays from an ordered list of rules; the first matching rule
// wins and unmatched rays miss.
type World struct {
	rules    []rule
	overlaps map[donburi.Entity][]perception.Result
	Calls    []Call
}

func New() *World {
	return &World{overlaps: map[donburi.Entity][]perception.Result{}}
}

// On adds a rule.
func (w *World) On(m Matcher, r perception.Result) *World {
	w.rules = append(w.rules, rule{match: m, result: r})
	return w
}

// Reset drops rules and recorded calls.
func (w *World) Reset() {
	w.rules = nil
	w.Calls = nil
	w.overlaps = map[donburi.Entity][]perception.Result{}
}

// Touch records that id overlaps the given colliders.
func (w *World) Touch(id donburi.Entity, rs ...perception.Result) *World {
	w.overlaps[id] = append(w.overlaps[id], rs...)
	return w
}

func (w *World) Raycast(origin, end mathutil.Vec2, exclude donburi.Entity) perception.Result {
	res := perception.Miss
	for _, r := range w.rules {
		if r.match(origin, end) {
			res = r.result
			break
		}
	}
	w.Calls = append(w.Calls, Call{Origin: origin, End: end, Exclude: exclude, Result: res})
	return res
}

func (w *World) Overlapping(id donburi.Entity) []perception.Result {
	return w.overlaps[id]
}

// Horizontal matches rays that travel along X toward sign (+1 or -1) and
// are at most maxLen long.
func Horizontal(sign, maxLen float64) Matcher {
	return func(o, e mathutil.Vec2) bool {
		d := e.Sub(o)
		return d.Y == 0 && d.X*sign > 0 && mathutil.Abs(d.X) <= maxLen
	}
}

// HorizontalLonger matches horizontal rays toward sign strictly longer than
// minLen.
func HorizontalLonger(sign, minLen float64) Matcher {
	return func(o, e mathutil.Vec2) bool {
		d := e.Sub(o)
		return d.Y == 0 && d.X*sign > 0 && mathutil.Abs(d.X) > minLen
	}
}

// Down matches rays pointing straight down.
func Down() Matcher {
	return func(o, e mathutil.Vec2) bool {
		return o.X == e.X && e.Y < o.Y
	}
}

// DownAt matches downward rays whose X lies within [minX, maxX].
func DownAt(minX, maxX float64) Matcher {
	return func(o, e mathutil.Vec2) bool {
		return o.X == e.X && e.Y < o.Y && o.X >= minX && o.X <= maxX
	}
}

// Any matches every ray.
func Any() Matcher {
	return func(mathutil.Vec2, mathutil.Vec2) bool { return true }
}
