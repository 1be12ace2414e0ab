// Package movement turns movement intents into accumulated force. It never
// integrates velocity or position; the physics backend owns that.
package movement

import (
	"errors"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
)

var (
	ErrAirborne    = errors.New("jump requested while airborne")
	ErrNoDirection = errors.New("horizontal move without a direction")
)

// Motor holds one character class's force constants.
type Motor struct {
	BaseForce  float64
	JumpForce  float64
	AirControl float64
}

func MotorForKind(k config.AgentKindConfig) Motor {
	return Motor{BaseForce: k.MovementForce, JumpForce: k.JumpForce, AirControl: k.AirControl}
}

func MotorForPlayer(p config.PlayerConfig) Motor {
	return Motor{BaseForce: p.MovementForce, JumpForce: p.JumpForce, AirControl: p.AirControl}
}

// Actor is the slice of an entity the motor writes to.
type Actor struct {
	Body      *components.BodyData
	Facing    *components.FacingData
	Animation *components.AnimationData
	Grounded  bool
	RunCode   int
}

// HorizontalMagnitude is BaseForce on the ground and BaseForce*AirControl in
// the air.
func (m Motor) HorizontalMagnitude(grounded bool) float64 {
	if grounded {
		return m.BaseForce
	}
	return m.BaseForce * m.AirControl
}

// ApplyHorizontal accumulates a horizontal push, turns the actor toward dir
// and switches it to its run animation.
func (m Motor) ApplyHorizontal(a Actor, dir mathutil.Direction, dt float64) error {
	if dir == mathutil.None {
		return ErrNoDirection
	}
	a.Body.Force.X += dir.Sign() * m.HorizontalMagnitude(a.Grounded) * dt
	a.Facing.SetDesired(dir == mathutil.Right)
	a.Animation.Set(a.RunCode)
	return nil
}

// ApplyJump accumulates an upward push. Airborne actors are refused with
// ErrAirborne and left untouched.
func (m Motor) ApplyJump(a Actor, dt float64) error {
	if !a.Grounded {
		return ErrAirborne
	}
	a.Body.Force.Y += m.JumpForce * dt
	return nil
}

// GroundedByVelocity is the agents' grounded test.
func GroundedByVelocity(vy, epsilon float64) bool {
	return mathutil.Abs(vy) <= epsilon
}

// GroundedByProbes is the player's grounded test: any probe standing on a
// walkable surface.
func GroundedByProbes(results ...perception.Result) bool {
	for _, r := range results {
		if perception.IsWalkable(r.Tag) {
			return true
		}
	}
	return false
}
