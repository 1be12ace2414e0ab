package factory

import (
	"fmt"

	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/input"
	"github.com/automoto/doomerang-ai/leveldata"
	"github.com/automoto/doomerang-ai/pathfinding"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel populates an arena: the level and world singletons, static
// geometry, the nav grid, the player and every agent spawn.
func CreateLevel(ecs *ecs.ECS, lvl *leveldata.Level, src input.Source) (*donburi.Entry, error) {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Name:   lvl.Name,
		Width:  lvl.Width,
		Height: lvl.Height,
	})

	world, err := CreateSpace(ecs, lvl.Width, lvl.Height)
	if err != nil {
		return nil, err
	}
	backend := components.World.Get(world).Backend

	var solids, floors []perception.Box
	for _, r := range lvl.Platforms {
		if _, err := CreatePlatform(ecs, backend, r.X, r.Y, r.W, r.H); err != nil {
			return nil, fmt.Errorf("create level %s: %w", lvl.Name, err)
		}
		box := perception.BoxAt(r.X, r.Y, r.W, r.H)
		solids = append(solids, box)
		floors = append(floors, box)
	}
	for _, r := range lvl.Hazards {
		if _, err := CreateHazard(ecs, backend, r.X, r.Y, r.W, r.H); err != nil {
			return nil, fmt.Errorf("create level %s: %w", lvl.Name, err)
		}
		solids = append(solids, perception.BoxAt(r.X, r.Y, r.W, r.H))
	}

	grid := pathfinding.NewGrid(lvl.Width, lvl.Height, float64(cfg.Physics.CellSize), solids, floors, cfg.Pathfinding)
	components.Navigator.SetValue(world, components.NavigatorData{
		Pathfinder: pathfinding.NewNavigator(ecs.World, grid),
	})

	if _, err := CreatePlayer(ecs, backend, lvl.Player.X, lvl.Player.Y, src); err != nil {
		return nil, fmt.Errorf("create level %s: %w", lvl.Name, err)
	}
	for _, a := range lvl.Agents {
		if _, err := CreateAgent(ecs, backend, a.Kind, a.X, a.Y); err != nil {
			return nil, fmt.Errorf("create level %s: %w", lvl.Name, err)
		}
	}
	return level, nil
}
