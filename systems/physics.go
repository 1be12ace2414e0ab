package systems

import (
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the forces accumulated this tick. It must run
// after every system that writes forces.
func UpdatePhysics(ecs *ecs.ECS) {
	if backend, ok := factory.Backend(ecs); ok {
		backend.Step(tickDT())
	}
}
