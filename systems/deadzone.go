package systems

import (
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// fallOutDepth is how far below the level's floor a body's top may sink
// before it counts as out of the level.
const fallOutDepth = 64.0

func fellOut(b *components.BodyData) bool {
	return b.Position.Y+b.Size.Y < -fallOutDepth
}

// UpdateDeadZone removes agents that fell out of the level and kills a
// player that did.
func UpdateDeadZone(ecs *ecs.ECS) {
	backend, ok := factory.Backend(ecs)
	if !ok {
		return
	}

	var lost []*donburi.Entry
	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		if fellOut(components.Body.Get(e)) {
			lost = append(lost, e)
		}
	})
	for _, e := range lost {
		logger.Info("agent fell out of the level", zap.Uint64("agent", uint64(e.Entity())))
		factory.DestroyAgent(ecs, backend, e)
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !fellOut(components.Body.Get(e)) {
			return
		}
		health := components.Health.Get(e)
		health.Damage(health.Current)
		killPlayer(e)
	})
}
