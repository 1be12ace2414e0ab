package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/input"
	"github.com/automoto/doomerang-ai/leveldata"
	"github.com/automoto/doomerang-ai/logging"
	"github.com/automoto/doomerang-ai/scenes"
	"github.com/automoto/doomerang-ai/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds  image.Rectangle
	scene   Scene
	watcher *config.KindWatcher
	kinds   string
	logger  *zap.Logger
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func (g *Game) Update() error {
	if g.watcher != nil && g.watcher.Poll() {
		g.reloadKinds()
	}
	g.scene.Update()
	return nil
}

// reloadKinds runs between ticks, so agents never see half-applied tunables.
func (g *Game) reloadKinds() {
	kinds, def, err := config.LoadAgentKinds(g.kinds)
	if err != nil {
		g.logger.Warn("agent kinds reload failed", zap.Error(err))
		return
	}
	config.SetKinds(kinds, def)
	if arena, ok := g.scene.(*scenes.ArenaScene); ok {
		arena.Retune()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Sim.Width, config.Sim.Height)
	return config.Sim.Width, config.Sim.Height
}

func main() {
	configPath := flag.String("config", "", "YAML run file")
	levelPath := flag.String("level", "", "TMX level (default: built-in demo arena)")
	flag.Parse()

	run, err := config.Setup(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *levelPath == "" {
		*levelPath = run.Level
	}

	logger, err := logging.New(config.Sim.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	systems.SetLogger(logger)

	lvl, err := leveldata.LoadPath(*levelPath)
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}

	if err := systems.InitPersistence(); err != nil {
		logger.Warn("persistence disabled", zap.Error(err))
	}

	g := &Game{logger: logger, kinds: run.KindsFile}
	if run.WatchKind && run.KindsFile != "" {
		w, err := config.WatchKinds(run.KindsFile)
		if err != nil {
			logger.Warn("cannot watch agent kinds", zap.Error(err))
		} else {
			g.watcher = w
			defer w.Close()
		}
	}
	g.scene = scenes.NewArenaScene(g, lvl, input.Keyboard{}, logger)

	ebiten.SetWindowSize(config.Sim.Width, config.Sim.Height)
	ebiten.SetWindowTitle("doomerang-ai")
	ebiten.SetTPS(config.Sim.TickRate)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("run", zap.Error(err))
	}
}
