package factory

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/input"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player with its feet centred on (x, y), facing
// right, reading input from src.
func CreatePlayer(ecs *ecs.ECS, backend components.Integrator, x, y float64, src input.Source) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	components.Body.SetValue(player, components.BodyData{
		Position: mathutil.Vec2{X: x - w/2, Y: y},
		Size:     mathutil.Vec2{X: w, Y: h},
		ScaleX:   1,
	})
	components.Facing.SetValue(player, components.NewFacing(true))
	components.Animation.SetValue(player, components.AnimationData{Code: cfg.PlayerAnimIdle})
	components.Surface.SetValue(player, components.SurfaceData{
		Tag:   tags.SurfacePlayer,
		Layer: tags.LayerCharacter,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})
	components.Input.SetValue(player, components.InputData{Source: src})

	return player, backend.AddBody(player)
}
