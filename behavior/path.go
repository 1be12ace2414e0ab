package behavior

import (
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/yohamta/donburi"
)

// TraversalMode tells the agent how to reach a waypoint.
type TraversalMode int

const (
	ModeWalk TraversalMode = iota
	ModeJump
)

func (m TraversalMode) String() string {
	if m == ModeJump {
		return "jump"
	}
	return "walk"
}

// PathReply is the pathfinder's answer: the closest and next waypoints on
// the route and how to traverse each. Zero for both waypoints means no route.
type PathReply struct {
	Closest mathutil.Vec2
	Next    mathutil.Vec2
	Modes   [2]TraversalMode
}

// Empty reports the "no route" reply.
func (r PathReply) Empty() bool {
	return r.Closest.IsZero() && r.Next.IsZero()
}

// Pathfinder is implemented by the navigation collaborator.
type Pathfinder interface {
	GetPath(id donburi.Entity) PathReply
}

// PathfinderFunc adapts a function to Pathfinder.
type PathfinderFunc func(id donburi.Entity) PathReply

func (f PathfinderFunc) GetPath(id donburi.Entity) PathReply { return f(id) }

// Path holds at most two waypoints and their traversal modes. It is never
// edited in place: a rebuild replaces the whole value.
type Path struct {
	Points []mathutil.Vec2
	Modes  []TraversalMode
	Cursor int
}

// NewPath builds a Path from a reply. A zero waypoint is treated as absent,
// so the empty reply yields an empty path.
func NewPath(r PathReply) Path {
	var p Path
	for i, pt := range [2]mathutil.Vec2{r.Closest, r.Next} {
		if pt.IsZero() {
			continue
		}
		p.Points = append(p.Points, pt)
		p.Modes = append(p.Modes, r.Modes[i])
	}
	return p
}

// Exhausted is true for an empty path or once the cursor has passed the last
// waypoint.
func (p Path) Exhausted() bool {
	return p.Cursor >= len(p.Points)
}

// Current returns the waypoint being walked to.
func (p Path) Current() (mathutil.Vec2, TraversalMode, bool) {
	if p.Exhausted() {
		return mathutil.Zero, ModeWalk, false
	}
	return p.Points[p.Cursor], p.Modes[p.Cursor], true
}

// Peek returns the waypoint after the current one.
func (p Path) Peek() (mathutil.Vec2, bool) {
	if p.Cursor+1 >= len(p.Points) {
		return mathutil.Zero, false
	}
	return p.Points[p.Cursor+1], true
}
