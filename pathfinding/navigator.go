package pathfinding

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-ai/behavior"
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/mathutil"
)

// Navigator answers path requests for agents in one world. It routes from
// the agent's standing cell to its target's.
type Navigator struct {
	world donburi.World
	grid  *Grid
}

func NewNavigator(w donburi.World, g *Grid) *Navigator {
	return &Navigator{world: w, grid: g}
}

func (n *Navigator) Grid() *Grid { return n.grid }

// GetPath returns the first two waypoints from the agent toward its target.
// Waypoints are where the agent's centre would be standing in each cell. An
// unknown agent, an unresolved target or no route gives the empty reply.
func (n *Navigator) GetPath(id donburi.Entity) behavior.PathReply {
	if !n.world.Valid(id) {
		return behavior.PathReply{}
	}
	agent := n.world.Entry(id)
	if !agent.HasComponent(components.Body) || !agent.HasComponent(components.Target) {
		return behavior.PathReply{}
	}
	target := components.Target.Get(agent).Entity
	if target == donburi.Null || !n.world.Valid(target) {
		return behavior.PathReply{}
	}
	te := n.world.Entry(target)
	if !te.HasComponent(components.Body) {
		return behavior.PathReply{}
	}

	body := components.Body.Get(agent)
	return n.Route(feet(body), feet(components.Body.Get(te)), body.Size.Y)
}

// Route plans between two foot positions for a body of the given height.
func (n *Navigator) Route(from, to mathutil.Vec2, height float64) behavior.PathReply {
	start, goal := n.grid.Stand(from), n.grid.Stand(to)
	path, ok := n.grid.FindPath(start, goal)
	if !ok {
		return behavior.PathReply{}
	}

	var reply behavior.PathReply
	prev := path[0]
	steps := path[1:]
	if len(steps) == 0 {
		// Same cell: head straight for the target
		reply.Closest = n.waypoint(goal, height)
		return reply
	}
	for i, node := range steps {
		if i == 2 {
			break
		}
		wp := n.waypoint(node, height)
		mode := behavior.ModeWalk
		if IsJumpLink(prev, node) {
			mode = behavior.ModeJump
		}
		if i == 0 {
			reply.Closest = wp
		} else {
			reply.Next = wp
		}
		reply.Modes[i] = mode
		prev = node
	}
	return reply
}

func (n *Navigator) waypoint(node *Node, height float64) mathutil.Vec2 {
	f := n.grid.Feet(node)
	return mathutil.Vec2{X: f.X, Y: f.Y + height/2}
}

func feet(b *components.BodyData) mathutil.Vec2 {
	return mathutil.Vec2{X: b.Position.X + b.Size.X/2, Y: b.Position.Y + 1}
}
