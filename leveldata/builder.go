package leveldata

// Builder lays out a level in code, already in world space.
type Builder struct {
	lvl Level
}

func NewBuilder(name string, width, height float64) *Builder {
	return &Builder{lvl: Level{Name: name, Width: width, Height: height}}
}

func (b *Builder) Platform(x, y, w, h float64) *Builder {
	b.lvl.Platforms = append(b.lvl.Platforms, Rect{X: x, Y: y, W: w, H: h})
	return b
}

func (b *Builder) Hazard(x, y, w, h float64) *Builder {
	b.lvl.Hazards = append(b.lvl.Hazards, Rect{X: x, Y: y, W: w, H: h})
	return b
}

func (b *Builder) Player(x, y float64) *Builder {
	b.lvl.Player = Point{X: x, Y: y}
	return b
}

func (b *Builder) Agent(kind string, x, y float64) *Builder {
	b.lvl.Agents = append(b.lvl.Agents, AgentSpawn{Point: Point{X: x, Y: y}, Kind: kind})
	return b
}

// Build returns a copy, so the builder can keep going.
func (b *Builder) Build() *Level {
	lvl := b.lvl
	lvl.Platforms = append([]Rect(nil), b.lvl.Platforms...)
	lvl.Hazards = append([]Rect(nil), b.lvl.Hazards...)
	lvl.Agents = append([]AgentSpawn(nil), b.lvl.Agents...)
	return &lvl
}

// DemoArena is the built-in level: a floor with a spike pit, two ledges and
// one agent of each default kind.
func DemoArena() *Level {
	return NewBuilder("demo", 640, 360).
		Platform(0, 0, 272, 16).
		Hazard(272, 0, 48, 12).
		Platform(320, 0, 320, 16).
		Platform(96, 64, 96, 16).
		Platform(416, 96, 128, 16).
		Player(48, 16).
		Agent("grunt", 224, 16).
		Agent("leaper", 480, 112).
		Agent("crawler", 576, 16).
		Build()
}
