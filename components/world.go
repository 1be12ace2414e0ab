package components

import (
	"github.com/automoto/doomerang-ai/behavior"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/yohamta/donburi"
)

// Integrator is the physics backend's stepping side.
type Integrator interface {
	// AddStatic registers level geometry.
	AddStatic(e *donburi.Entry) error
	// AddBody registers a character with a Body component.
	AddBody(e *donburi.Entry) error
	Remove(e *donburi.Entry)
	// Step applies accumulated forces and gravity, resolves collisions and
	// zeroes every body's Force.
	Step(dt float64)
}

// Backend is a physics implementation: queries plus stepping.
type Backend interface {
	perception.World
	Integrator
}

type WorldData struct {
	Backend Backend
}

var World = donburi.NewComponentType[WorldData]()

type NavigatorData struct {
	Pathfinder behavior.Pathfinder
}

var Navigator = donburi.NewComponentType[NavigatorData]()
