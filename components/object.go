package components

import (
	"github.com/automoto/doomerang-ai/perception"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collider geometry of level statics, and the live resolv
// object of characters on the resolv backend. Coordinates are world space.
type ObjectData struct {
	*resolv.Object
}

func (o ObjectData) Box() perception.Box {
	return perception.BoxAt(o.X, o.Y, o.W, o.H)
}

var Object = donburi.NewComponentType[ObjectData]()
