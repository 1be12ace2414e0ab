// Package physics provides the collision and integration backends behind
// perception queries and the physics step.
package physics

import (
	"errors"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/yohamta/donburi"
)

var (
	ErrNoBody     = errors.New("entry has no body component")
	ErrNoCollider = errors.New("entry has no collider")
)

// Integrate applies one tick of accumulated force, gravity and damping to a
// body's velocity and clears the force. Bodies have unit mass, and Force is
// already scaled by dt, so it is added to velocity directly.
func Integrate(b *components.BodyData, cfg config.PhysicsConfig, dt float64) {
	Accelerate(b, cfg, dt)
	b.Velocity.Y = ClampFall(b.Velocity.Y+cfg.Gravity*dt, cfg)
}

// Accelerate is Integrate without gravity, for backends whose solver applies
// gravity itself.
func Accelerate(b *components.BodyData, cfg config.PhysicsConfig, dt float64) {
	v := b.Velocity.Add(b.Force)
	v.X -= v.X * mathutil.ClampFloat(cfg.Damping*dt, 0, 1)
	v.X = mathutil.ClampFloat(v.X, -cfg.MaxRunSpeed, cfg.MaxRunSpeed)

	b.Velocity = v
	b.Force = mathutil.Zero
}

// ClampFall limits downward speed to MaxFallSpeed.
func ClampFall(vy float64, cfg config.PhysicsConfig) float64 {
	if vy < -cfg.MaxFallSpeed {
		return -cfg.MaxFallSpeed
	}
	return vy
}

// Describe reports e the way perception sees it.
func Describe(e *donburi.Entry) perception.Result {
	r := perception.Result{Hit: true, ID: e.Entity()}
	if e.HasComponent(components.Surface) {
		s := components.Surface.Get(e)
		r.Tag = s.Tag
		r.Layer = s.Layer
	}
	return r
}
