package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestEaseEndpoints(t *testing.T) {
	funcs := map[string]EaseFunc{
		"linear":    Linear,
		"inQuart":   InQuart,
		"inBounce":  InBounce,
		"outBounce": OutBounce,
		"inBack":    InBack,
		"outBack":   OutBack,
	}
	for name, fn := range funcs {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 10.0, fn(10, 30, 0), 1e-4)
			assert.InDelta(t, 30.0, fn(10, 30, 1), 1e-4)
		})
	}
}

func TestEaseIsDeterministic(t *testing.T) {
	for _, p := range []float64{0.1, 0.33, 0.5, 0.9} {
		assert.Equal(t, OutBounce(0, 1, p), OutBounce(0, 1, p))
		assert.Equal(t, QuickSpikeOut(0, 1, p), QuickSpikeOut(0, 1, p))
	}
}

func TestEaseClampsProgress(t *testing.T) {
	assert.Equal(t, Linear(0, 8, 0), Linear(0, 8, -2))
	assert.Equal(t, Linear(0, 8, 1), Linear(0, 8, 5))
}

func TestLinearMidpoint(t *testing.T) {
	assert.InDelta(t, 4.0, Linear(0, 8, 0.5), 1e-5)
}

func TestQuickSpikeOut(t *testing.T) {
	// Reaches the end value at 20% of progress, then falls back to start.
	assert.InDelta(t, 0.0, QuickSpikeOut(0, 1, 0), 1e-5)
	assert.InDelta(t, 0.5, QuickSpikeOut(0, 1, 0.1), 1e-5)
	assert.InDelta(t, 1.0, QuickSpikeOut(0, 1, 0.2), 1e-5)
	assert.InDelta(t, 0.0, QuickSpikeOut(0, 1, 1), 1e-5)

	// The fall starts slowly.
	assert.Greater(t, QuickSpikeOut(0, 1, 0.4), 0.99)
	assert.Greater(t, QuickSpikeOut(0, 1, 0.6), QuickSpikeOut(0, 1, 0.8))
}

func TestPulseRepeats(t *testing.T) {
	p := NewPulse(0, 1, 1, ease.Linear)

	assert.InDelta(t, 0.5, p.Update(0.25), 1e-4)
	assert.InDelta(t, 1.0, p.Update(0.25), 1e-4)
	assert.InDelta(t, 0.5, p.Update(0.25), 1e-4)

	for i := 0; i < 8; i++ {
		v := p.Update(0.25)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}
