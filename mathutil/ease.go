package mathutil

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EaseFunc maps normalized progress in [0,1] onto the range start..end.
type EaseFunc func(start, end, progress float64) float64

// quickSpikeRamp is the share of progress spent ramping up in QuickSpikeOut.
const quickSpikeRamp = 0.2

func apply(fn ease.TweenFunc, start, end, progress float64) float64 {
	p := ClampFloat(progress, 0, 1)
	return float64(fn(float32(p), float32(start), float32(end-start), 1))
}

func Linear(start, end, progress float64) float64 {
	return apply(ease.Linear, start, end, progress)
}

func InQuart(start, end, progress float64) float64 {
	return apply(ease.InQuart, start, end, progress)
}

func InBounce(start, end, progress float64) float64 {
	return apply(ease.InBounce, start, end, progress)
}

func OutBounce(start, end, progress float64) float64 {
	return apply(ease.OutBounce, start, end, progress)
}

func InBack(start, end, progress float64) float64 {
	return apply(ease.InBack, start, end, progress)
}

func OutBack(start, end, progress float64) float64 {
	return apply(ease.OutBack, start, end, progress)
}

// QuickSpikeOut ramps linearly from start to end over the first 20% of
// progress, then falls back to start along an inverted quintic ease-in.
func QuickSpikeOut(start, end, progress float64) float64 {
	p := ClampFloat(progress, 0, 1)
	if p < quickSpikeRamp {
		return Linear(start, end, p/quickSpikeRamp)
	}
	q := (p - quickSpikeRamp) / (1 - quickSpikeRamp)
	return float64(ease.InQuint(float32(q), float32(end), float32(start-end), 1))
}

// Pulse is a repeating there-and-back tween used for debug indicators.
type Pulse struct {
	seq *gween.Sequence
}

// NewPulse builds a pulse between from and to, each leg taking half of period
// seconds.
func NewPulse(from, to, period float64, fn ease.TweenFunc) *Pulse {
	half := float32(period / 2)
	return &Pulse{seq: gween.NewSequence(
		gween.New(float32(from), float32(to), half, fn),
		gween.New(float32(to), float32(from), half, fn),
	)}
}

// Update advances the pulse and returns its current value.
func (p *Pulse) Update(dt float64) float64 {
	value, _, done := p.seq.Update(float32(dt))
	if done {
		p.seq.Reset()
	}
	return float64(value)
}
