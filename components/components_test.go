package components

import (
	"testing"

	"github.com/automoto/doomerang-ai/config"
	"github.com/stretchr/testify/assert"
)

func TestFacingTogglesQueueAtMostOneFlip(t *testing.T) {
	tests := []struct {
		name      string
		sets      []bool
		wantScale float64
		wantFlip  bool
	}{
		{"single change", []bool{false}, -1, true},
		{"set twice same way", []bool{false, false}, -1, true},
		{"toggle away and back", []bool{false, true}, 1, false},
		{"no change", []bool{true}, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFacing(true)
			b := &BodyData{ScaleX: 1}
			for _, right := range tt.sets {
				f.SetDesired(right)
			}

			assert.Equal(t, tt.wantFlip, f.Reconcile(b))
			assert.Equal(t, tt.wantScale, b.ScaleX)
			assert.False(t, f.Pending())
			assert.False(t, f.Reconcile(b), "second reconcile is a no-op")
		})
	}
}

func TestHealthDamageClampsAtZero(t *testing.T) {
	h := HealthData{Current: 1, Max: 3}

	assert.True(t, h.Damage(1))
	assert.Equal(t, 0, h.Current)
	assert.True(t, h.Damage(1))
	assert.Equal(t, 0, h.Current)
}

func TestAnimationSetIgnoresNoAnimation(t *testing.T) {
	a := AnimationData{Code: config.AgentAnimRun}

	a.Set(config.NoAnimation)
	assert.Equal(t, config.AgentAnimRun, a.Code)
	assert.False(t, a.Changed)

	a.Set(config.AgentAnimAttack)
	assert.Equal(t, config.AgentAnimAttack, a.Code)
	assert.True(t, a.Changed)
}

func TestBodyBoxFromBottomLeft(t *testing.T) {
	b := BodyData{}
	b.Position.X, b.Position.Y = 10, 20
	b.Size.X, b.Size.Y = 16, 28

	box := b.Box()
	assert.Equal(t, 10.0, box.Min.X)
	assert.Equal(t, 48.0, box.Max.Y)
	assert.Equal(t, 34.0, b.Center().Y)
}
