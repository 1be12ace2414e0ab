// Package behavior is the agent state machine. Each call to Machine.Update
// advances one agent by one tick and reports what it wants done as an
// Outcome; it never touches forces or positions itself.
package behavior

import (
	"math"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
)

// Below this |dir.X| a chasing agent does not steer horizontally.
const steerDeadzone = 0.1

// Entry actions may redirect (Chase with no route goes to Idle). Bound the
// chain so a bad pathfinder cannot loop.
const maxChainedEntries = 3

// View is the read-only projection of an agent the machine decides on.
type View struct {
	ID          donburi.Entity
	Box         perception.Box
	Velocity    mathutil.Vec2
	Grounded    bool
	FacingRight bool

	// Target is the resolved player, or donburi.Null. Player hits that do not
	// match a resolved target are ignored.
	Target donburi.Entity
}

// Outcome is the result of one Update.
type Outcome struct {
	From, To config.StateID

	// Horizontal moves to apply, in order
	Moves []mathutil.Direction
	Jump  bool

	// Animation is the entry animation of the new state, or
	// config.NoAnimation. Apply it after Moves.
	Animation int

	// Strike is set on every tick an attack validates against the target
	Strike bool

	// Rebuilt counts path rebuilds requested this tick
	Rebuilt int
}

// Transitioned reports whether the state changed during the tick.
func (o Outcome) Transitioned() bool {
	return o.From != o.To
}

// Machine holds the tunables shared by every agent of one class.
type Machine struct {
	Tunables config.AgentKindConfig
	Probes   config.PerceptionConfig
}

func NewMachine(k config.AgentKindConfig, probes config.PerceptionConfig) *Machine {
	return &Machine{Tunables: k, Probes: probes}
}

// Update runs one tick of b. If the tick changes state the time in state is
// reset and the new state's entry action runs before Update returns.
func (m *Machine) Update(b *Brain, v View, w perception.Raycaster, p Pathfinder, dt float64) Outcome {
	out := Outcome{From: b.State, Animation: config.NoAnimation}

	b.TimeInState += dt
	b.JumpCooldown = math.Max(0, b.JumpCooldown-dt)

	var (
		next   config.StateID
		change bool
	)
	switch b.State {
	case config.StateDefault:
		next, change = config.StateIdle, true
	case config.StateIdle:
		next, change = m.updateIdle(b, v, w, &out)
	case config.StatePatrol:
		next, change = m.updatePatrol(v, w, &out)
	case config.StateChase:
		next, change = m.updateChase(b, v, w, p, &out)
	case config.StateAttack:
		next, change = m.updateAttack(v, w, &out)
	}

	if change {
		m.enter(b, next, v, p, &out)
	}
	out.To = b.State
	return out
}

// Decide applies the sighting priority: a target inside attack range wins
// over one that is only inside vision range.
func Decide(sight, reach perception.Result) (config.StateID, bool) {
	switch {
	case reach.Is(tags.SurfacePlayer):
		return config.StateAttack, true
	case sight.Is(tags.SurfacePlayer):
		return config.StateChase, true
	}
	return config.StateDefault, false
}

func (m *Machine) enter(b *Brain, s config.StateID, v View, p Pathfinder, out *Outcome) {
	for i := 0; i < maxChainedEntries; i++ {
		if b.State == config.StateChase {
			b.Path = Path{}
		}
		b.switchTo(s)

		next, redirect := m.onEnter(b, v, p, out)
		if !redirect {
			return
		}
		s = next
	}
}

func (m *Machine) onEnter(b *Brain, v View, p Pathfinder, out *Outcome) (config.StateID, bool) {
	switch b.State {
	case config.StateIdle:
		out.Animation = config.AgentAnimIdle
	case config.StateAttack:
		out.Animation = config.AgentAnimAttack
	case config.StateChase:
		if b.Path.Exhausted() && !m.rebuild(b, v, p, out) {
			return config.StateIdle, true
		}
	}
	return config.StateDefault, false
}

func (m *Machine) updateIdle(b *Brain, v View, w perception.Raycaster, out *Outcome) (config.StateID, bool) {
	if s, ok := Decide(m.look(v, w)); ok {
		return s, true
	}
	if b.TimeInState >= m.Tunables.IdleDwell {
		out.Moves = append(out.Moves, b.pickDirection())
		return config.StatePatrol, true
	}
	return config.StateDefault, false
}

func (m *Machine) updatePatrol(v View, w perception.Raycaster, out *Outcome) (config.StateID, bool) {
	forward := mathutil.FacingDirection(v.FacingRight)

	// Airborne agents have nothing under the probe; only turn at ledges.
	if v.Grounded {
		ray := perception.GroundAheadRay(v.Box, v.FacingRight, m.Probes.GroundAhead, m.Probes.GroundProbeDepth)
		if ground := perception.Cast(w, ray, v.ID); !perception.IsWalkable(ground.Tag) {
			out.Moves = append(out.Moves, forward.Opposite())
			return config.StateIdle, true
		}
	}

	if s, ok := Decide(m.look(v, w)); ok {
		return s, true
	}

	out.Moves = append(out.Moves, forward)
	return config.StateDefault, false
}

func (m *Machine) updateChase(b *Brain, v View, w perception.Raycaster, p Pathfinder, out *Outcome) (config.StateID, bool) {
	if s, ok := Decide(m.look(v, w)); ok && s == config.StateAttack {
		return s, true
	}

	if b.Path.Exhausted() && !m.rebuild(b, v, p, out) {
		return config.StateIdle, true
	}

	pos := v.Box.Center()
	closeness := m.Tunables.WaypointCloseness
	if cur, _, _ := b.Path.Current(); pos.DistanceTo(cur) <= closeness {
		b.Path.Cursor++
	} else if next, ok := b.Path.Peek(); ok && pos.DistanceTo(next) <= closeness {
		b.Path.Cursor += 2
	}

	if b.Path.Exhausted() {
		// One rebuild per exhaustion; a fresh path is walked before the
		// next rebuild can happen.
		if out.Rebuilt > 0 {
			return config.StateDefault, false
		}
		if !m.rebuild(b, v, p, out) {
			return config.StateIdle, true
		}
	}

	cur, mode, _ := b.Path.Current()
	dir, ok := cur.Sub(pos).Normalize()
	if !ok {
		return config.StateDefault, false
	}

	if math.Abs(dir.X) > steerDeadzone {
		out.Moves = append(out.Moves, mathutil.DirectionOf(dir.X))
	}

	wantsJump := dir.Y > m.Tunables.JumpThreshold || (mode == ModeJump && dir.Y > 0)
	if wantsJump && v.Grounded && b.JumpCooldown <= 0 {
		out.Jump = true
		b.JumpCooldown = m.Tunables.JumpCooldown
	}
	return config.StateDefault, false
}

func (m *Machine) updateAttack(v View, w perception.Raycaster, out *Outcome) (config.StateID, bool) {
	ray := perception.SightRay(v.Box, v.FacingRight, m.Tunables.AttackRange)
	if hit := m.filter(perception.Cast(w, ray, v.ID), v); !hit.Is(tags.SurfacePlayer) {
		return config.StateIdle, true
	}
	out.Strike = true
	return config.StateDefault, false
}

// look casts the vision and attack-range rays along the facing direction.
func (m *Machine) look(v View, w perception.Raycaster) (sight, reach perception.Result) {
	reach = perception.Cast(w, perception.SightRay(v.Box, v.FacingRight, m.Tunables.AttackRange), v.ID)
	sight = perception.Cast(w, perception.SightRay(v.Box, v.FacingRight, m.Tunables.VisionRange), v.ID)
	return m.filter(sight, v), m.filter(reach, v)
}

// filter drops player hits while the target is unresolved or when the hit is
// some other player-tagged body.
func (m *Machine) filter(r perception.Result, v View) perception.Result {
	if !r.Is(tags.SurfacePlayer) {
		return r
	}
	if v.Target == donburi.Null || r.ID != v.Target {
		return perception.Miss
	}
	return r
}

// rebuild swaps in a fresh path from p. It returns false when p has no route.
func (m *Machine) rebuild(b *Brain, v View, p Pathfinder, out *Outcome) bool {
	out.Rebuilt++
	if p == nil {
		b.Path = Path{}
		return false
	}
	b.Path = NewPath(p.GetPath(v.ID))
	return !b.Path.Exhausted()
}
