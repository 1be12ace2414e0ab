package behavior

import (
	"math/rand/v2"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
)

// Brain is the per-agent behavior state. Each agent owns its Brain, including
// its Path, so concurrent chasers never share waypoints.
type Brain struct {
	State       config.StateID
	Previous    config.StateID
	TimeInState float64

	// Seconds until the next jump is allowed
	JumpCooldown float64

	Path Path

	rng *rand.Rand
}

// NewBrain returns a Brain in the Default state. seed drives the Idle state's
// direction choice.
func NewBrain(seed uint64) Brain {
	return Brain{
		State:    config.StateDefault,
		Previous: config.StateDefault,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (b *Brain) pickDirection() mathutil.Direction {
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(0, 0x9e3779b97f4a7c15))
	}
	if b.rng.IntN(2) == 0 {
		return mathutil.Left
	}
	return mathutil.Right
}

// switchTo records a transition and zeroes the state clock. It runs before
// the new state's entry action.
func (b *Brain) switchTo(s config.StateID) {
	b.Previous = b.State
	b.State = s
	b.TimeInState = 0
}
