package factory

import (
	"github.com/automoto/doomerang-ai/archetypes"
	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns walkable level geometry and registers it with the
// physics backend.
func CreatePlatform(ecs *ecs.ECS, backend components.Integrator, x, y, w, h float64) (*donburi.Entry, error) {
	platform := archetypes.Platform.Spawn(ecs)
	return platform, addStatic(platform, backend, x, y, w, h, components.SurfaceData{
		Tag:   tags.SurfacePlatform,
		Layer: tags.LayerGround,
	})
}

// CreateHazard spawns spikes. They are solid, so characters stand on them
// and the hazard ray reports them.
func CreateHazard(ecs *ecs.ECS, backend components.Integrator, x, y, w, h float64) (*donburi.Entry, error) {
	hazard := archetypes.Hazard.Spawn(ecs)
	return hazard, addStatic(hazard, backend, x, y, w, h, components.SurfaceData{
		Tag:   tags.SurfaceHazard,
		Layer: tags.LayerHazard,
	})
}

func addStatic(e *donburi.Entry, backend components.Integrator, x, y, w, h float64, surface components.SurfaceData) error {
	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	components.Surface.SetValue(e, surface)
	return backend.AddStatic(e)
}
