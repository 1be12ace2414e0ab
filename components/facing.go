package components

import "github.com/yohamta/donburi"

// FacingData splits facing into the logical value systems write during a tick
// and the value the sprite currently shows. Reconcile brings them together
// once per tick, before collision response has a chance to see a half-turned
// body.
type FacingData struct {
	Desired bool // true = facing right
	Applied bool
}

func NewFacing(right bool) FacingData {
	return FacingData{Desired: right, Applied: right}
}

// SetDesired records the facing wanted this tick. Setting it any number of
// times queues at most one flip.
func (f *FacingData) SetDesired(right bool) {
	f.Desired = right
}

// Pending reports a queued flip.
func (f *FacingData) Pending() bool {
	return f.Desired != f.Applied
}

// Reconcile negates ScaleX if a flip is queued and clears it. It returns
// whether a flip happened.
func (f *FacingData) Reconcile(b *BodyData) bool {
	if !f.Pending() {
		return false
	}
	b.ScaleX = -b.ScaleX
	f.Applied = f.Desired
	return true
}

var Facing = donburi.NewComponentType[FacingData]()
