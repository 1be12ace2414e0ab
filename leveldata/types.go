// Package leveldata describes arena layouts in world space (Y-up). Levels
// come from Tiled TMX files or are built in code.
package leveldata

import "errors"

var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// Level is everything needed to populate an arena.
type Level struct {
	Name          string
	Width, Height float64
	Platforms     []Rect
	Hazards       []Rect
	Agents        []AgentSpawn
	Player        Point
}

// Rect is an axis-aligned box given by its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Point is a spawn position: the bottom-centre of the spawned body.
type Point struct {
	X, Y float64
}

// AgentSpawn places an agent of a configured kind. An empty kind uses the
// default kind.
type AgentSpawn struct {
	Point
	Kind string
}
