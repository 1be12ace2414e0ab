package components

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/input"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed is computed on demand by comparing frames.
type InputData struct {
	Source   input.Source
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool
}

func (i *InputData) Pressed(a config.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a config.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
