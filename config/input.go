package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionJump:      "jump",
	ActionDebug:     "debug",
}

func (a ActionID) String() string {
	return actionNames[a]
}

// ParseAction maps an action name back to its ID.
func ParseAction(name string) (ActionID, bool) {
	for id, n := range actionNames {
		if n == name {
			return id, true
		}
	}
	return ActionNone, false
}

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMoveRight: {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionJump:      {Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeyW, ebiten.KeySpace}},
			ActionDebug:     {Keys: []ebiten.Key{ebiten.KeyF1}},
		},
	}
}
