package systems

import (
	"image/color"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/perception"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var background = color.RGBA{R: 20, G: 20, B: 28, A: 255}

// DrawArena renders level geometry and characters as flat boxes. A notch on
// one side shows the applied facing (the sign of ScaleX).
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(background)
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	height := components.Level.Get(levelEntry).Height

	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		fill(screen, components.Object.Get(e).Box(), height, cfg.Gray)
	})
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		fill(screen, components.Object.Get(e).Box(), height, cfg.Yellow)
	})

	tags.Agent.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Agent.Get(e).Tunables.TintColor
		if flash := components.Flash.Get(e); flash.Active() {
			c = flash.Color
		}
		drawCharacter(screen, components.Body.Get(e), height, c)
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		c := cfg.Blue
		switch {
		case components.Player.Get(e).Dead:
			c = cfg.Gray
		case components.Flash.Get(e).Active():
			c = components.Flash.Get(e).Color
		}
		drawCharacter(screen, components.Body.Get(e), height, c)
	})
}

func drawCharacter(screen *ebiten.Image, b *components.BodyData, height float64, c color.RGBA) {
	box := b.Box()
	fill(screen, box, height, c)

	notchX := box.Max.X - 3
	if b.ScaleX < 0 {
		notchX = box.Min.X
	}
	eye := perception.BoxAt(notchX, box.Max.Y-8, 3, 3)
	fill(screen, eye, height, cfg.White)
}

func fill(screen *ebiten.Image, b perception.Box, height float64, c color.Color) {
	vector.FillRect(screen, float32(b.Min.X), float32(height-b.Max.Y), float32(b.Width()), float32(b.Height()), c, false)
}
