package systems

import (
	"errors"

	"github.com/automoto/doomerang-ai/behavior"
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/movement"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var ErrNoTarget = errors.New("no player to target")

// ResolveTarget returns the agent's player reference, looking the player up
// again while it is unset or stale.
func ResolveTarget(w donburi.World, t *components.TargetData) (donburi.Entity, error) {
	if t.Entity != donburi.Null && w.Valid(t.Entity) {
		return t.Entity, nil
	}
	t.Entity = donburi.Null
	player, ok := tags.Player.First(w)
	if !ok {
		return donburi.Null, ErrNoTarget
	}
	t.Entity = player.Entity()
	return t.Entity, nil
}

func UpdateAgents(ecs *ecs.ECS) {
	backend, ok := factory.Backend(ecs)
	if !ok {
		return
	}
	var nav behavior.Pathfinder
	if e, ok := components.Navigator.First(ecs.World); ok {
		nav = components.Navigator.Get(e).Pathfinder
	}
	tel := telemetry(ecs)
	dt := tickDT()

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		updateAgent(ecs.World, e, backend, nav, tel, dt)
	})
}

func updateAgent(w donburi.World, e *donburi.Entry, rc perception.Raycaster, nav behavior.Pathfinder, tel *components.TelemetryData, dt float64) {
	agent := components.Agent.Get(e)
	brain := components.Brain.Get(e)
	target := components.Target.Get(e)
	body := components.Body.Get(e)
	facing := components.Facing.Get(e)
	anim := components.Animation.Get(e)

	tgt, err := ResolveTarget(w, target)
	if err != nil && !target.Warned {
		logger.Warn("agent has no target", zap.Uint64("agent", uint64(e.Entity())), zap.Error(err))
		target.Warned = true
	}

	facing.Reconcile(body)
	agent.Grounded = movement.GroundedByVelocity(body.Velocity.Y, agent.Tunables.GroundEpsilon)

	out := agent.Machine.Update(brain, behavior.View{
		ID:          e.Entity(),
		Box:         body.Box(),
		Velocity:    body.Velocity,
		Grounded:    agent.Grounded,
		FacingRight: facing.Applied,
		Target:      tgt,
	}, rc, nav, dt)

	motor := movement.MotorForKind(agent.Tunables)
	actor := movement.Actor{
		Body:      body,
		Facing:    facing,
		Animation: anim,
		Grounded:  agent.Grounded,
		RunCode:   cfg.AgentAnimRun,
	}
	for _, dir := range out.Moves {
		if err := motor.ApplyHorizontal(actor, dir, dt); err != nil {
			logger.Debug("agent move refused", zap.Uint64("agent", uint64(e.Entity())), zap.Error(err))
		}
	}
	if out.Jump {
		if err := motor.ApplyJump(actor, dt); err != nil {
			logger.Debug("agent jump refused", zap.Uint64("agent", uint64(e.Entity())), zap.Error(err))
		}
	}
	anim.Set(out.Animation)

	if out.Strike && tgt != donburi.Null {
		components.Flash.Get(e).Start(strikeFlashTicks, cfg.White)
		killPlayer(w.Entry(tgt))
	}

	agent.Last = out
	recordOutcome(tel, e, brain, out)
}

func recordOutcome(tel *components.TelemetryData, e *donburi.Entry, brain *behavior.Brain, out behavior.Outcome) {
	if tel != nil {
		tel.Rebuilds += out.Rebuilt
		if out.Strike {
			tel.Strikes++
		}
	}
	if !out.Transitioned() {
		return
	}
	if tel != nil {
		tel.Transitions[out.To]++
	}
	logger.Debug("agent state",
		zap.Uint64("agent", uint64(e.Entity())),
		zap.Stringer("from", out.From),
		zap.Stringer("to", out.To),
		zap.Float64("time_in_state", brain.TimeInState),
	)
}
