package components

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi"
)

// AnimationData carries the opaque animation code read by the renderer.
// Codes belong to the owning character class.
type AnimationData struct {
	Code    int
	Changed bool
}

func (a *AnimationData) Set(code int) {
	if code == config.NoAnimation || code == a.Code {
		return
	}
	a.Code = code
	a.Changed = true
}

var Animation = donburi.NewComponentType[AnimationData]()
