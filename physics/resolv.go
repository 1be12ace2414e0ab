package physics

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-ai/components"
	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ResolvWorld is the default backend: a resolv spatial hash for movement
// checks, with ray and overlap queries answered by exact box geometry.
type ResolvWorld struct {
	cfg   config.PhysicsConfig
	space *resolv.Space

	entries map[donburi.Entity]*donburi.Entry
	objects map[donburi.Entity]*resolv.Object

	// Registration order, so equal-distance hits resolve the same way every run
	order  []donburi.Entity
	bodies []donburi.Entity
}

func NewResolvWorld(cfg config.PhysicsConfig, width, height float64) *ResolvWorld {
	cell := cfg.CellSize
	if cell <= 0 {
		cell = 16
	}
	return &ResolvWorld{
		cfg:     cfg,
		space:   resolv.NewSpace(int(math.Ceil(width)), int(math.Ceil(height)), cell, cell),
		entries: map[donburi.Entity]*donburi.Entry{},
		objects: map[donburi.Entity]*resolv.Object{},
	}
}

// Space exposes the underlying resolv space for debug drawing.
func (w *ResolvWorld) Space() *resolv.Space {
	return w.space
}

// AddStatic registers an entry whose Object component already holds its
// resolv object.
func (w *ResolvWorld) AddStatic(e *donburi.Entry) error {
	if !e.HasComponent(components.Object) || components.Object.Get(e).Object == nil {
		return fmt.Errorf("add static %d: %w", e.Entity(), ErrNoCollider)
	}
	obj := components.Object.Get(e).Object
	obj.Data = e
	w.track(e, obj)
	return nil
}

// AddBody creates a resolv object for the entry's Body and stores it in the
// entry's Object component when it has one.
func (w *ResolvWorld) AddBody(e *donburi.Entry) error {
	if !e.HasComponent(components.Body) {
		return fmt.Errorf("add body %d: %w", e.Entity(), ErrNoBody)
	}
	b := components.Body.Get(e)
	obj := resolv.NewObject(b.Position.X, b.Position.Y, b.Size.X, b.Size.Y, tags.ResolvCharacter)
	obj.SetShape(resolv.NewRectangle(0, 0, b.Size.X, b.Size.Y))
	obj.Data = e
	if e.HasComponent(components.Object) {
		components.Object.SetValue(e, components.ObjectData{Object: obj})
	}
	w.track(e, obj)
	w.bodies = append(w.bodies, e.Entity())
	return nil
}

func (w *ResolvWorld) track(e *donburi.Entry, obj *resolv.Object) {
	id := e.Entity()
	if old, ok := w.objects[id]; ok {
		w.space.Remove(old)
	} else {
		w.order = append(w.order, id)
	}
	w.entries[id] = e
	w.objects[id] = obj
	w.space.Add(obj)
}

func (w *ResolvWorld) Remove(e *donburi.Entry) {
	id := e.Entity()
	obj, ok := w.objects[id]
	if !ok {
		return
	}
	w.space.Remove(obj)
	delete(w.objects, id)
	delete(w.entries, id)
	w.order = without(w.order, id)
	w.bodies = without(w.bodies, id)
}

func without(ids []donburi.Entity, id donburi.Entity) []donburi.Entity {
	out := ids[:0]
	for _, x := range ids {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}

func boxOf(obj *resolv.Object) perception.Box {
	return perception.BoxAt(obj.X, obj.Y, obj.W, obj.H)
}

// Raycast returns the closest object along the segment. Ties go to the
// object registered first.
func (w *ResolvWorld) Raycast(origin, end mathutil.Vec2, exclude donburi.Entity) perception.Result {
	best := math.Inf(1)
	var hit *donburi.Entry
	for _, id := range w.order {
		if id == exclude {
			continue
		}
		ok, t := SegmentBoxHit(origin, end, boxOf(w.objects[id]))
		if ok && t < best {
			best = t
			hit = w.entries[id]
		}
	}
	if hit == nil || !hit.Valid() {
		return perception.Miss
	}
	return Describe(hit)
}

func (w *ResolvWorld) Overlapping(id donburi.Entity) []perception.Result {
	obj, ok := w.objects[id]
	if !ok {
		return nil
	}
	box := boxOf(obj)
	var out []perception.Result
	for _, other := range w.order {
		if other == id {
			continue
		}
		if box.Overlaps(boxOf(w.objects[other])) {
			out = append(out, Describe(w.entries[other]))
		}
	}
	return out
}

// Step integrates every body and moves it through the space, stopping at
// solids one axis at a time.
func (w *ResolvWorld) Step(dt float64) {
	for _, id := range w.bodies {
		e := w.entries[id]
		if !e.Valid() {
			continue
		}
		b := components.Body.Get(e)
		obj := w.objects[id]
		obj.X, obj.Y = b.Position.X, b.Position.Y

		Integrate(b, w.cfg, dt)

		w.moveX(obj, b, b.Velocity.X*dt)
		w.moveY(obj, b, b.Velocity.Y*dt)
		obj.Update()

		b.Position = mathutil.Vec2{X: obj.X, Y: obj.Y}
	}
}

func (w *ResolvWorld) moveX(obj *resolv.Object, b *components.BodyData, dx float64) {
	if dx == 0 {
		return
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if obj.Y >= solid.Y+solid.H || obj.Y+obj.H <= solid.Y {
				continue
			}
			if c := check.ContactWithObject(solid).X(); blocks(c, dx) {
				dx = c
				b.Velocity.X = 0
			}
		}
	}
	obj.X += dx
}

func (w *ResolvWorld) moveY(obj *resolv.Object, b *components.BodyData, dy float64) {
	if dy == 0 {
		return
	}
	if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if obj.X >= solid.X+solid.W || obj.X+obj.W <= solid.X {
				continue
			}
			if c := check.ContactWithObject(solid).Y(); blocks(c, dy) {
				dy = c
				b.Velocity.Y = 0
			}
		}
	}
	obj.Y += dy
}

// blocks reports whether a contact distance c cuts a move of d short. Solids
// behind the mover give a contact of the opposite sign and are ignored.
func blocks(c, d float64) bool {
	if c != 0 && (c < 0) != (d < 0) {
		return false
	}
	return math.Abs(c) < math.Abs(d)
}
