package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Agent    = donburi.NewTag().SetName("Agent")
	Platform = donburi.NewTag().SetName("Platform")
	Hazard   = donburi.NewTag().SetName("Hazard")
)

// Surface tags reported by perception queries. Matching is exact and
// case-sensitive.
const (
	SurfacePlatform = "Platform"
	SurfaceHazard   = "Spikes"
	SurfacePlayer   = "Player"
	SurfaceAgent    = "Agent"
)

// Collision layers
const (
	LayerGround    = "ground"
	LayerHazard    = "hazard"
	LayerCharacter = "character"
)

// Resolv tags for physics collision
const (
	ResolvSolid     = "solid"
	ResolvHazard    = "hazard"
	ResolvCharacter = "character"
)
