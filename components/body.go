package components

import (
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/yohamta/donburi"
)

// BodyData is a character's physical state. Position is the bottom-left
// corner of the collider in world space (Y-up).
type BodyData struct {
	Position mathutil.Vec2
	Size     mathutil.Vec2
	Velocity mathutil.Vec2

	// Force accumulated since the last physics step. The backend applies it
	// and zeroes it.
	Force mathutil.Vec2

	// ScaleX is the visual horizontal scale; its sign is the applied facing.
	ScaleX float64
}

func (b *BodyData) Box() perception.Box {
	return perception.BoxAt(b.Position.X, b.Position.Y, b.Size.X, b.Size.Y)
}

func (b *BodyData) Center() mathutil.Vec2 {
	return b.Box().Center()
}

var Body = donburi.NewComponentType[BodyData]()
