package factory

import (
	"fmt"

	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/physics"
	"github.com/automoto/doomerang-ai/physics/chipmunk"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewBackend builds the physics backend named by cfg.Physics.Backend.
func NewBackend(width, height float64) (components.Backend, error) {
	switch cfg.Physics.Backend {
	case cfg.BackendResolv:
		return physics.NewResolvWorld(cfg.Physics, width, height), nil
	case cfg.BackendChipmunk:
		return chipmunk.New(cfg.Physics), nil
	}
	return nil, fmt.Errorf("physics backend %q: %w", cfg.Physics.Backend, cfg.ErrInvalid)
}

// CreateSpace spawns the world singleton holding the physics backend and
// the run's telemetry.
func CreateSpace(ecs *ecs.ECS, width, height float64) (*donburi.Entry, error) {
	backend, err := NewBackend(width, height)
	if err != nil {
		return nil, err
	}
	world := archetypes.World.Spawn(ecs)
	components.World.SetValue(world, components.WorldData{Backend: backend})
	components.Telemetry.SetValue(world, components.TelemetryData{
		Transitions: make(map[cfg.StateID]int),
	})
	return world, nil
}

// Backend returns the world singleton's physics backend.
func Backend(ecs *ecs.ECS) (components.Backend, bool) {
	e, ok := components.World.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.World.Get(e).Backend, true
}
