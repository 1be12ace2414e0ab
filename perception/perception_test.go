package perception_test

import (
	"testing"

	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/perception/perceptiontest"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestResultIs(t *testing.T) {
	assert.False(t, perception.Miss.Is(""))
	assert.False(t, perception.Result{Hit: true}.Is(""))
	assert.True(t, perception.Result{Hit: true, Tag: "Player"}.Is("Player"))
	assert.False(t, perception.Result{Hit: true, Tag: "player"}.Is("Player"))
}

func TestIsWalkable(t *testing.T) {
	assert.True(t, perception.IsWalkable(tags.SurfacePlatform))
	assert.False(t, perception.IsWalkable("platform"))
	assert.False(t, perception.IsWalkable(""))
	assert.False(t, perception.IsWalkable(tags.SurfaceHazard))
}

func TestRaycastDelegatesAndExcludes(t *testing.T) {
	w := perceptiontest.New().On(perceptiontest.Any(), perception.Result{Hit: true, ID: 7, Tag: "Platform"})

	r := perception.Raycast(w, mathutil.Vec2{}, mathutil.Vec2{X: 5}, donburi.Entity(3))
	assert.Equal(t, donburi.Entity(7), r.ID)
	require.Len(t, w.Calls, 1)
	assert.Equal(t, donburi.Entity(3), w.Calls[0].Exclude)
}

func TestMissIsEmpty(t *testing.T) {
	w := perceptiontest.New()
	r := perception.Cast(w, perception.Ray{End: mathutil.Vec2{X: 1}}, donburi.Null)
	assert.False(t, r.Hit)
	assert.Empty(t, r.Tag)
	assert.Empty(t, r.Layer)
}

func TestCollisionQueries(t *testing.T) {
	a, b, c := donburi.Entity(1), donburi.Entity(2), donburi.Entity(3)
	w := perceptiontest.New().Touch(a, perception.Result{Hit: true, ID: b, Tag: "Spikes", Layer: tags.LayerHazard})

	assert.True(t, perception.IsCollidedWithAnything(w, a))
	assert.False(t, perception.IsCollidedWithAnything(w, c))
	assert.True(t, perception.IsCollidedWithLayer(w, a, tags.LayerHazard))
	assert.False(t, perception.IsCollidedWithLayer(w, a, tags.LayerGround))
	assert.False(t, perception.IsCollidedWithLayer(w, a, ""))
	assert.True(t, perception.IsCollidedEntityPair(w, a, b))
	assert.False(t, perception.IsCollidedEntityPair(w, a, c))
}

func TestRayBuilders(t *testing.T) {
	box := perception.BoxAt(10, 20, 16, 32)

	sight := perception.SightRay(box, true, 100)
	assert.Equal(t, mathutil.Vec2{X: 26, Y: 36}, sight.Origin)
	assert.Equal(t, mathutil.Vec2{X: 126, Y: 36}, sight.End)

	back := perception.SightRay(box, false, 100)
	assert.Equal(t, mathutil.Vec2{X: 10, Y: 36}, back.Origin)
	assert.Equal(t, mathutil.Vec2{X: -90, Y: 36}, back.End)

	ground := perception.GroundAheadRay(box, false, 4, 8)
	assert.Equal(t, 6.0, ground.Origin.X)
	assert.Equal(t, 12.0, ground.End.Y)
	assert.Greater(t, ground.Origin.Y, ground.End.Y)

	feet := perception.FootRays(box, 1)
	assert.Less(t, feet[0].Origin.X, feet[2].Origin.X)
	assert.Greater(t, feet[1].Origin.X, feet[2].Origin.X)
	for _, r := range feet {
		assert.Equal(t, 19.0, r.End.Y)
		assert.Equal(t, r.Origin.X, r.End.X)
	}

	hazard := perception.HazardRay(box, 2)
	assert.Equal(t, 18.0, hazard.Origin.X)
	assert.Equal(t, 18.0, hazard.End.Y)
}

func TestBoxOverlaps(t *testing.T) {
	a := perception.BoxAt(0, 0, 10, 10)
	assert.True(t, a.Overlaps(perception.BoxAt(5, 5, 10, 10)))
	assert.False(t, a.Overlaps(perception.BoxAt(10, 0, 10, 10)))
}
