package config

// StateID identifies an agent behavior state.
type StateID int

const (
	StateDefault StateID = iota
	StateIdle
	StatePatrol
	StateChase
	StateAttack
)

var stateNames = map[StateID]string{
	StateDefault: "default",
	StateIdle:    "idle",
	StatePatrol:  "patrol",
	StateChase:   "chase",
	StateAttack:  "attack",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
