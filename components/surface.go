package components

import "github.com/yohamta/donburi"

// SurfaceData is what perception reports when something hits this entity.
type SurfaceData struct {
	Tag   string
	Layer string
}

var Surface = donburi.NewComponentType[SurfaceData]()
