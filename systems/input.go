package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls each input source and shifts the previous frame.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		in := components.Input.Get(e)

		// Swap buffers: current becomes previous
		in.Previous = in.Current
		if in.Source == nil {
			in.Current = [cfg.ActionCount]bool{}
			return
		}
		in.Current = in.Source.Poll()

		if in.JustPressed(cfg.ActionDebug) {
			cfg.Sim.Debug = !cfg.Sim.Debug
		}
	})
}
