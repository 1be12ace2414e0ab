package archetypes

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Platform = newArchetype(
		tags.Platform,
		components.Object,
		components.Surface,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
		components.Surface,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
		components.Facing,
		components.Animation,
		components.Surface,
		components.Health,
		components.Input,
		components.Flash,
	)
	Agent = newArchetype(
		tags.Agent,
		components.Agent,
		components.Brain,
		components.Target,
		components.Object,
		components.Body,
		components.Facing,
		components.Animation,
		components.Surface,
		components.Flash,
	)
	World = newArchetype(
		components.World,
		components.Navigator,
		components.Telemetry,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
