// Package pathfinding routes agents over a cell grid built from level
// geometry, using go-astar for the search.
package pathfinding

import (
	"math"

	astar "github.com/beefsack/go-astar"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
)

// cellInset shrinks each cell before testing it against geometry so boxes
// that only touch a cell edge do not block it.
const cellInset = 2.0

// Grid is the level as cells. Row 0 is the bottom of the world.
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node // [row][col]

	jump config.PathfindingConfig
}

// Node is one cell. It implements astar.Pather.
type Node struct {
	X, Y    int
	Blocked bool // Solid geometry fills the cell
	Floor   bool // The cell holds walkable geometry an agent can stand on
	grid    *Grid
}

// Standable is an open cell resting on a floor cell.
func (n *Node) Standable() bool {
	if n.Blocked || n.Y == 0 {
		return false
	}
	return n.grid.Nodes[n.Y-1][n.X].Floor
}

// NewGrid marks cells blocked by solids and floor cells from floors. Floors
// are a subset of solids: hazards block but cannot be stood on.
func NewGrid(width, height, cellSize float64, solids, floors []perception.Box, jump config.PathfindingConfig) *Grid {
	g := &Grid{
		Width:    int(math.Ceil(width / cellSize)),
		Height:   int(math.Ceil(height / cellSize)),
		CellSize: cellSize,
		jump:     jump,
	}
	g.Nodes = make([][]*Node, g.Height)
	for y := range g.Nodes {
		g.Nodes[y] = make([]*Node, g.Width)
		for x := range g.Nodes[y] {
			n := &Node{X: x, Y: y, grid: g}
			cell := g.cellBox(x, y)
			n.Blocked = overlapsAny(cell, solids)
			n.Floor = overlapsAny(cell, floors)
			g.Nodes[y][x] = n
		}
	}
	return g
}

func (g *Grid) cellBox(x, y int) perception.Box {
	s := g.CellSize
	return perception.BoxAt(float64(x)*s+cellInset, float64(y)*s+cellInset, s-2*cellInset, s-2*cellInset)
}

func overlapsAny(b perception.Box, boxes []perception.Box) bool {
	for _, o := range boxes {
		if b.Overlaps(o) {
			return true
		}
	}
	return false
}

// At returns the node holding a world point, clamped to the grid.
func (g *Grid) At(p mathutil.Vec2) *Node {
	x := clampInt(int(math.Floor(p.X/g.CellSize)), 0, g.Width-1)
	y := clampInt(int(math.Floor(p.Y/g.CellSize)), 0, g.Height-1)
	return g.Nodes[y][x]
}

// Node returns the cell at (x, y) or nil outside the grid.
func (g *Grid) Node(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

// Stand drops from p to the first standable cell at or below it.
func (g *Grid) Stand(p mathutil.Vec2) *Node {
	n := g.At(p)
	for y := n.Y; y >= 0; y-- {
		c := g.Nodes[y][n.X]
		if c.Blocked {
			break
		}
		if c.Standable() {
			return c
		}
	}
	return g.nearestStandable(n.X, n.Y)
}

func (g *Grid) nearestStandable(x, y int) *Node {
	for radius := 1; radius < 10; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.Node(x+dx, y+dy); n != nil && n.Standable() {
					return n
				}
			}
		}
	}
	return nil
}

// Feet returns where the bottom-centre of a standing body sits in n.
func (g *Grid) Feet(n *Node) mathutil.Vec2 {
	return mathutil.Vec2{X: (float64(n.X) + 0.5) * g.CellSize, Y: float64(n.Y) * g.CellSize}
}

// IsJumpLink reports whether moving from a to b needs a jump: any climb, or
// a horizontal step longer than one cell.
func IsJumpLink(a, b *Node) bool {
	return b.Y > a.Y || absInt(b.X-a.X) > 1
}

// PathNeighbors returns standable cells reachable by walking, stepping down,
// dropping off a ledge or jumping.
func (n *Node) PathNeighbors() []astar.Pather {
	var out []astar.Pather
	g := n.grid

	for _, dx := range []int{-1, 1} {
		// Walk, or step up or down one cell
		for _, dy := range []int{0, 1, -1} {
			if t := g.Node(n.X+dx, n.Y+dy); t != nil && t.Standable() && g.clearAbove(n, dy) {
				out = append(out, t)
				break
			}
		}
		// Drop off a ledge
		if side := g.Node(n.X+dx, n.Y); side != nil && !side.Blocked && !side.Standable() {
			if land := g.dropFrom(side); land != nil {
				out = append(out, land)
			}
		}
	}

	return append(out, n.jumpTargets()...)
}

func (g *Grid) clearAbove(n *Node, dy int) bool {
	if dy <= 0 {
		return true
	}
	above := g.Node(n.X, n.Y+dy)
	return above != nil && !above.Blocked
}

func (g *Grid) dropFrom(n *Node) *Node {
	for y := n.Y - 1; y >= 0; y-- {
		c := g.Nodes[y][n.X]
		if c.Blocked {
			return nil
		}
		if c.Standable() {
			return c
		}
	}
	return nil
}

func (n *Node) jumpTargets() []astar.Pather {
	var out []astar.Pather
	g := n.grid
	maxUp, maxGap := g.jump.MaxJumpHeight, g.jump.MaxJumpGap

	// Headroom bounds how high this jump can go
	headroom := 0
	for y := n.Y + 1; y <= n.Y+maxUp; y++ {
		c := g.Node(n.X, y)
		if c == nil || c.Blocked {
			break
		}
		headroom++
	}

	for dy := 0; dy <= headroom; dy++ {
		for dx := -(maxGap + 1); dx <= maxGap+1; dx++ {
			if absInt(dx) <= 1 && dy <= 1 {
				continue // walking covers these
			}
			t := g.Node(n.X+dx, n.Y+dy)
			if t == nil || !t.Standable() || !g.arcClear(n, t, headroom) {
				continue
			}
			out = append(out, t)
		}
	}
	return out
}

// arcClear checks the columns between a and b are open at the height the
// arc crosses them.
func (g *Grid) arcClear(a, b *Node, headroom int) bool {
	floor := max(a.Y, b.Y)
	top := min(a.Y+headroom, floor+1)
	step := 1
	if b.X < a.X {
		step = -1
	}
	for x := a.X + step; x != b.X; x += step {
		for y := floor; y <= top; y++ {
			if c := g.Node(x, y); c == nil || c.Blocked {
				return false
			}
		}
	}
	return true
}

func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*Node)
	dx, dy := float64(t.X-n.X), float64(t.Y-n.Y)
	cost := math.Hypot(dx, dy)
	if IsJumpLink(n, t) {
		cost *= n.grid.jump.JumpCost
	}
	return cost
}

func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return math.Hypot(float64(t.X-n.X), float64(t.Y-n.Y))
}

// FindPath returns the node route from start to goal, start first.
func (g *Grid) FindPath(start, goal *Node) ([]*Node, bool) {
	if start == nil || goal == nil {
		return nil, false
	}
	if start == goal {
		return []*Node{start}, true
	}
	raw, _, found := astar.Path(start, goal)
	if !found || len(raw) == 0 {
		return nil, false
	}
	path := make([]*Node, len(raw))
	for i, p := range raw {
		path[i] = p.(*Node)
	}
	if path[0] != start {
		for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
			path[i], path[j] = path[j], path[i]
		}
	}
	return path, true
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
