// Package chipmunk is a physics backend on the Chipmunk2D port. Characters
// are fixed-rotation dynamic bodies; level geometry is static boxes.
package chipmunk

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/physics"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// Collision categories
const (
	categoryLevel uint = 1 << iota
	categoryCharacter
)

type handle struct {
	entry *donburi.Entry
	body  *cp.Body // nil for static geometry
	shape *cp.Shape
	size  mathutil.Vec2
}

// Space wraps a cp.Space.
type Space struct {
	cfg     config.PhysicsConfig
	space   *cp.Space
	handles map[donburi.Entity]*handle
	bodies  []donburi.Entity
}

func New(cfg config.PhysicsConfig) *Space {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{Y: cfg.Gravity})
	return &Space{
		cfg:     cfg,
		space:   space,
		handles: map[donburi.Entity]*handle{},
	}
}

func toVec(v cp.Vector) mathutil.Vec2 { return mathutil.Vec2{X: v.X, Y: v.Y} }
func toCP(v mathutil.Vec2) cp.Vector  { return cp.Vector{X: v.X, Y: v.Y} }

// groupOf gives every entity its own shape group, so a query filtered by an
// entity's group skips that entity's shape.
func groupOf(id donburi.Entity) uint {
	return uint(id) + 1
}

// AddStatic registers a level box taken from the entry's Object component.
func (s *Space) AddStatic(e *donburi.Entry) error {
	if !e.HasComponent(components.Object) || components.Object.Get(e).Object == nil {
		return fmt.Errorf("add static %d: %w", e.Entity(), physics.ErrNoCollider)
	}
	obj := components.Object.Get(e).Object
	shape := cp.NewBox2(s.space.StaticBody, cp.BB{L: obj.X, B: obj.Y, R: obj.X + obj.W, T: obj.Y + obj.H}, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetFilter(cp.NewShapeFilter(groupOf(e.Entity()), categoryLevel, cp.ALL_CATEGORIES))
	shape.UserData = e
	s.space.AddShape(shape)

	s.handles[e.Entity()] = &handle{entry: e, shape: shape, size: mathutil.Vec2{X: obj.W, Y: obj.H}}
	return nil
}

// AddBody creates a dynamic body for the entry's Body component.
func (s *Space) AddBody(e *donburi.Entry) error {
	if !e.HasComponent(components.Body) {
		return fmt.Errorf("add body %d: %w", e.Entity(), physics.ErrNoBody)
	}
	b := components.Body.Get(e)

	body := s.space.AddBody(cp.NewBody(1, cp.INFINITY))
	body.SetPosition(toCP(b.Center()))
	body.SetVelocityVector(toCP(b.Velocity))
	body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		cp.BodyUpdateVelocity(body, gravity, damping, dt)
		v := body.Velocity()
		body.SetVelocity(v.X, physics.ClampFall(v.Y, s.cfg))
	})

	shape := cp.NewBox(body, b.Size.X, b.Size.Y, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	// Characters collide with the level but pass through each other.
	shape.SetFilter(cp.NewShapeFilter(groupOf(e.Entity()), categoryCharacter, categoryLevel))
	shape.UserData = e
	s.space.AddShape(shape)

	s.handles[e.Entity()] = &handle{entry: e, body: body, shape: shape, size: b.Size}
	s.bodies = append(s.bodies, e.Entity())
	return nil
}

func (s *Space) Remove(e *donburi.Entry) {
	h, ok := s.handles[e.Entity()]
	if !ok {
		return
	}
	s.space.RemoveShape(h.shape)
	if h.body != nil {
		s.space.RemoveBody(h.body)
	}
	delete(s.handles, e.Entity())

	kept := s.bodies[:0]
	for _, id := range s.bodies {
		if id != e.Entity() {
			kept = append(kept, id)
		}
	}
	s.bodies = kept
}

// Raycast returns the closest shape along the segment, sensors included.
func (s *Space) Raycast(origin, end mathutil.Vec2, exclude donburi.Entity) perception.Result {
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)
	if exclude != donburi.Null {
		filter.Group = groupOf(exclude)
	}

	best := math.Inf(1)
	var hit *donburi.Entry
	s.space.SegmentQuery(toCP(origin), toCP(end), 0, filter,
		func(shape *cp.Shape, _, _ cp.Vector, alpha float64, _ interface{}) {
			e, ok := shape.UserData.(*donburi.Entry)
			if !ok || alpha >= best {
				return
			}
			best = alpha
			hit = e
		}, nil)

	if hit == nil || !hit.Valid() {
		return perception.Miss
	}
	return physics.Describe(hit)
}

// Overlapping reports every shape whose box strictly overlaps id's box.
// Shapes are axis-aligned boxes, so a bounding box query is exact once
// touching boxes are filtered out.
func (s *Space) Overlapping(id donburi.Entity) []perception.Result {
	h, ok := s.handles[id]
	if !ok {
		return nil
	}
	bb := h.shape.CacheBB()
	self := boxOf(bb)
	filter := cp.NewShapeFilter(groupOf(id), cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)

	var out []perception.Result
	s.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		e, ok := shape.UserData.(*donburi.Entry)
		if !ok || !e.Valid() || !self.Overlaps(boxOf(shape.BB())) {
			return
		}
		out = append(out, physics.Describe(e))
	}, nil)
	return out
}

func boxOf(bb cp.BB) perception.Box {
	return perception.Box{Min: mathutil.Vec2{X: bb.L, Y: bb.B}, Max: mathutil.Vec2{X: bb.R, Y: bb.T}}
}

// Step adds each body's accumulated force to its velocity, steps the space
// and copies position and velocity back. Gravity and contacts belong to the
// solver, so the velocity it leaves behind is kept between ticks.
func (s *Space) Step(dt float64) {
	for _, id := range s.bodies {
		h := s.handles[id]
		if !h.entry.Valid() {
			continue
		}
		b := components.Body.Get(h.entry)
		h.body.SetPosition(toCP(b.Center()))
		physics.Accelerate(b, s.cfg, dt)
		h.body.SetVelocityVector(toCP(b.Velocity))
	}

	s.space.Step(dt)

	for _, id := range s.bodies {
		h := s.handles[id]
		if !h.entry.Valid() {
			continue
		}
		b := components.Body.Get(h.entry)
		center := toVec(h.body.Position())
		b.Position = center.Sub(h.size.Scale(0.5))
		b.Velocity = toVec(h.body.Velocity())
	}
}
