package config

// Animation codes are opaque integers handed to the renderer. Each character
// class owns its own enumeration; the values are not interchangeable.

// Agent animation codes
const (
	AgentAnimIdle   = 0
	AgentAnimRun    = 1
	AgentAnimAttack = 2
)

// Player animation codes
const (
	PlayerAnimIdle = 10
	PlayerAnimRun  = 11
	PlayerAnimJump = 12
	PlayerAnimDead = 13
)

// NoAnimation marks "leave the current animation alone".
const NoAnimation = -1

// AnimationNames is used by the debug overlay.
var AnimationNames = map[int]string{
	AgentAnimIdle:   "idle",
	AgentAnimRun:    "run",
	AgentAnimAttack: "attack",
	PlayerAnimIdle:  "p-idle",
	PlayerAnimRun:   "p-run",
	PlayerAnimJump:  "p-jump",
	PlayerAnimDead:  "p-dead",
}
