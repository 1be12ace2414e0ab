package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	labelFace text.Face

	// Attack labels blink
	attackPulse = mathutil.NewPulse(0.3, 1, 0.5, ease.InOutSine)
)

func debugFace() text.Face {
	if labelFace != nil {
		return labelFace
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		logger.Sugar().Warnf("debug font: %v", err)
		return nil
	}
	labelFace = &text.GoTextFace{Source: src, Size: 10}
	return labelFace
}

// DrawDebug outlines every collider and labels agents with their state. The
// world is Y-up, the screen Y-down.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Sim.Debug {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	height := components.Level.Get(levelEntry).Height
	alpha := attackPulse.Update(tickDT())

	for _, tag := range []*donburi.ComponentType[donburi.Tag]{tags.Platform, tags.Hazard} {
		c := cfg.Gray
		if tag == tags.Hazard {
			c = cfg.Yellow
		}
		tag.Each(ecs.World, func(e *donburi.Entry) {
			outline(screen, components.Object.Get(e).Box(), height, c)
		})
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.LightBlue
		if components.Player.Get(e).Dead {
			c = cfg.Gray
		}
		box := components.Body.Get(e).Box()
		outline(screen, box, height, c)
		label(screen, fmt.Sprintf("hp %d", components.Health.Get(e).Current), box, height, cfg.White, 1)
	})

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		agent := components.Agent.Get(e)
		brain := components.Brain.Get(e)
		box := components.Body.Get(e).Box()
		outline(screen, box, height, agent.Tunables.TintColor)

		a := 1.0
		if brain.State == cfg.StateAttack {
			a = alpha
		}
		label(screen, brain.State.String(), box, height, cfg.White, a)

		for _, wp := range brain.Path.Points {
			vector.FillRect(screen, float32(wp.X-1), float32(height-wp.Y-1), 3, 3, cfg.Green, false)
		}
	})
}

func outline(screen *ebiten.Image, b perception.Box, height float64, c color.Color) {
	x, y := float32(b.Min.X), float32(height-b.Max.Y)
	w, h := float32(b.Width()), float32(b.Height())
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func label(screen *ebiten.Image, s string, b perception.Box, height float64, c color.Color, alpha float64) {
	face := debugFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(b.Min.X, height-b.Max.Y-12)
	op.ColorScale.ScaleWithColor(c)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, face, op)
}
