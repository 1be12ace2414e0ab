package factory

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/behavior"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateAgent spawns an agent of the named kind with its feet centred on
// (x, y). Unknown kinds use the default kind. Agents start facing left in
// the Default state; their first tick moves them to Idle.
func CreateAgent(ecs *ecs.ECS, backend components.Integrator, kind string, x, y float64) (*donburi.Entry, error) {
	k, ok := cfg.Kind(kind)
	if !ok {
		kind = cfg.Agent.DefaultKind
	}

	agent := archetypes.Agent.Spawn(ecs)

	w, h := k.CollisionWidth, k.CollisionHeight
	components.Body.SetValue(agent, components.BodyData{
		Position: mathutil.Vec2{X: x - w/2, Y: y},
		Size:     mathutil.Vec2{X: w, Y: h},
		ScaleX:   -1,
	})
	components.Facing.SetValue(agent, components.NewFacing(false))
	components.Animation.SetValue(agent, components.AnimationData{Code: cfg.AgentAnimIdle})
	components.Surface.SetValue(agent, components.SurfaceData{
		Tag:   tags.SurfaceAgent,
		Layer: tags.LayerCharacter,
	})
	components.Agent.SetValue(agent, components.AgentData{
		Kind:     kind,
		Tunables: k,
		Machine:  behavior.NewMachine(k, cfg.Perception),
	})
	// Seeded per entity so a run replays identically
	components.Brain.SetValue(agent, behavior.NewBrain(cfg.Agent.Seed+uint64(agent.Entity())))
	components.Target.SetValue(agent, components.TargetData{Entity: donburi.Null})

	return agent, backend.AddBody(agent)
}

// RetuneAgents applies reloaded kind tunables to every live agent. Brains
// keep their state.
func RetuneAgents(ecs *ecs.ECS) int {
	n := 0
	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		a := components.Agent.Get(e)
		k, ok := cfg.Kind(a.Kind)
		if !ok {
			return
		}
		a.Tunables = k
		a.Machine = behavior.NewMachine(k, cfg.Perception)
		n++
	})
	return n
}

// DestroyAgent takes an agent out of the physics backend and the world.
func DestroyAgent(ecs *ecs.ECS, backend components.Integrator, e *donburi.Entry) {
	backend.Remove(e)
	ecs.World.Remove(e.Entity())
}
