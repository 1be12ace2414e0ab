package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/movement"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func UpdatePlayer(ecs *ecs.ECS) {
	backend, ok := factory.Backend(ecs)
	if !ok {
		return
	}
	tel := telemetry(ecs)
	dt := tickDT()
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(e, backend, tel, dt)
	})
}

func updateSinglePlayer(e *donburi.Entry, w perception.Raycaster, tel *components.TelemetryData, dt float64) {
	player := components.Player.Get(e)
	if player.Dead {
		return
	}
	body := components.Body.Get(e)
	facing := components.Facing.Get(e)
	anim := components.Animation.Get(e)
	input := components.Input.Get(e)
	box := body.Box()

	feet := perception.FootRays(box, cfg.Perception.FootProbeDepth)
	player.Grounded = movement.GroundedByProbes(
		perception.Cast(w, feet[0], e.Entity()),
		perception.Cast(w, feet[1], e.Entity()),
		perception.Cast(w, feet[2], e.Entity()),
	)

	facing.Reconcile(body)

	handlePlayerInput(input, movement.Actor{
		Body:      body,
		Facing:    facing,
		Animation: anim,
		Grounded:  player.Grounded,
		RunCode:   cfg.PlayerAnimRun,
	}, dt)

	// Spikes hurt on every tick of contact
	if hit := perception.Cast(w, perception.HazardRay(box, cfg.Perception.HazardProbeDepth), e.Entity()); hit.Is(tags.SurfaceHazard) {
		player.HazardTicks++
		if tel != nil {
			tel.HazardHits++
		}
		components.Flash.Get(e).Start(hurtFlashTicks, cfg.Red)
		if components.Health.Get(e).Damage(1) {
			killPlayer(e)
		}
	}
}

// handlePlayerInput applies exactly one of jump, move left, move right, in
// that priority. Jump only counts while grounded, so holding it in the air
// leaves air control to the move keys.
func handlePlayerInput(input *components.InputData, a movement.Actor, dt float64) {
	motor := movement.MotorForPlayer(cfg.Player)
	switch {
	case input.Pressed(cfg.ActionJump) && a.Grounded:
		if err := motor.ApplyJump(a, dt); err == nil {
			a.Animation.Set(cfg.PlayerAnimJump)
		}
	case input.Pressed(cfg.ActionMoveLeft):
		_ = motor.ApplyHorizontal(a, mathutil.Left, dt)
	case input.Pressed(cfg.ActionMoveRight):
		_ = motor.ApplyHorizontal(a, mathutil.Right, dt)
	default:
		if a.Grounded {
			a.Animation.Set(cfg.PlayerAnimIdle)
		}
	}
}

// killPlayer marks the player dead. Repeat calls do nothing.
func killPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	if player.Dead {
		return
	}
	player.Dead = true
	components.Animation.Get(e).Set(cfg.PlayerAnimDead)
	logger.Info("player died", zap.Int("health", components.Health.Get(e).Current))
}

// PlayerDead reports whether the arena's player has died.
func PlayerDead(ecs *ecs.ECS) bool {
	e, ok := tags.Player.First(ecs.World)
	return ok && components.Player.Get(e).Dead
}
