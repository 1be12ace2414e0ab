package components

import (
	"github.com/automoto/doomerang-ai/behavior"
	"github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi"
)

type AgentData struct {
	Kind     string
	Tunables config.AgentKindConfig
	Machine  *behavior.Machine
	Grounded bool

	// Last tick's outcome, kept for the debug overlay
	Last behavior.Outcome
}

var Agent = donburi.NewComponentType[AgentData]()

// Brain is stored by value so each agent owns its path.
var Brain = donburi.NewComponentType[behavior.Brain]()

// TargetData is an agent's lazily resolved reference to the player.
type TargetData struct {
	Entity donburi.Entity

	// Warned is set once the failed lookup has been logged
	Warned bool
}

var Target = donburi.NewComponentType[TargetData]()
