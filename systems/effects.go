package systems

import (
	"github.com/automoto/doomerang-ai/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hit flash lengths in ticks
const (
	hurtFlashTicks   = 8
	strikeFlashTicks = 4
)

// UpdateEffects counts down flash timers.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			flash.Duration--
		}
	})
}
