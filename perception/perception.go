// Package perception answers the geometric questions an agent or the player
// asks about the world each tick: what does a ray hit, and what is touching
// me. Queries are one-shot and keep no state between calls.
package perception

import (
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/yohamta/donburi"
)

// Result is the answer to one query. A miss is the zero Result: no hit,
// donburi.Null and an empty tag and layer.
type Result struct {
	Hit   bool
	ID    donburi.Entity
	Tag   string
	Layer string
}

// Miss is the result of a query that found nothing.
var Miss = Result{ID: donburi.Null}

// Is reports whether the result carries tag. An empty tag never matches.
func (r Result) Is(tag string) bool {
	return r.Hit && r.Tag != "" && r.Tag == tag
}

// Raycaster is implemented by the physics backend.
type Raycaster interface {
	// Raycast returns the first collider along origin->end, skipping exclude.
	// Ordering among several hits is the backend's: closest along the segment.
	Raycast(origin, end mathutil.Vec2, exclude donburi.Entity) Result
}

// Collider is implemented by the physics backend.
type Collider interface {
	// Overlapping returns every collider currently overlapping id.
	Overlapping(id donburi.Entity) []Result
}

// World is the full query surface of a physics backend.
type World interface {
	Raycaster
	Collider
}

// Raycast casts origin->end against w, excluding the caster.
func Raycast(w Raycaster, origin, end mathutil.Vec2, exclude donburi.Entity) Result {
	return w.Raycast(origin, end, exclude)
}

// Cast casts a prebuilt Ray.
func Cast(w Raycaster, r Ray, exclude donburi.Entity) Result {
	return w.Raycast(r.Origin, r.End, exclude)
}

func IsCollidedWithAnything(w Collider, id donburi.Entity) bool {
	return len(w.Overlapping(id)) > 0
}

func IsCollidedWithLayer(w Collider, id donburi.Entity, layer string) bool {
	if layer == "" {
		return false
	}
	for _, r := range w.Overlapping(id) {
		if r.Layer == layer {
			return true
		}
	}
	return false
}

func IsCollidedEntityPair(w Collider, a, b donburi.Entity) bool {
	for _, r := range w.Overlapping(a) {
		if r.ID == b {
			return true
		}
	}
	return false
}

// IsWalkable reports whether a surface tag can be stood on. Matching is exact
// and case-sensitive: "platform" is not walkable.
func IsWalkable(tag string) bool {
	return tag == tags.SurfacePlatform
}
