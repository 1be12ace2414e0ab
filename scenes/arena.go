package scenes

import (
	"sync"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/input"
	"github.com/automoto/doomerang-ai/leveldata"
	"github.com/automoto/doomerang-ai/systems"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// BuildArena creates the ECS for a level with the simulation systems in tick
// order. It has no window dependency, so headless runs use it directly.
func BuildArena(lvl *leveldata.Level, src input.Source) (*ecs.ECS, error) {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateAgents)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateDeadZone)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateTelemetry)

	e.AddRenderer(config.Default, systems.DrawArena)
	e.AddRenderer(config.Overlay, systems.DrawDebug)

	if _, err := factory.CreateLevel(e, lvl, src); err != nil {
		return nil, err
	}
	return e, nil
}

// ArenaScene runs one level in a window. When the player dies its state is
// saved and the level reloads.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	source       input.Source
	logger       *zap.Logger
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, lvl *leveldata.Level, src input.Source, logger *zap.Logger) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, level: lvl, source: src, logger: logger}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	if as.ecs == nil {
		return
	}
	as.ecs.Update()

	if systems.PlayerDead(as.ecs) {
		if err := systems.SavePlayerState(as.ecs); err != nil {
			as.logger.Warn("could not save player state", zap.Error(err))
		}
		systems.LogSummary(as.ecs)
		as.sceneChanger.ChangeScene(NewArenaScene(as.sceneChanger, as.level, as.source, as.logger))
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

// Retune applies reloaded agent kinds to the running arena.
func (as *ArenaScene) Retune() {
	if as.ecs == nil {
		return
	}
	n := factory.RetuneAgents(as.ecs)
	as.logger.Info("agent kinds reloaded", zap.Int("agents", n))
}

func (as *ArenaScene) configure() {
	e, err := BuildArena(as.level, as.source)
	if err != nil {
		as.logger.Error("could not build arena", zap.String("level", as.level.Name), zap.Error(err))
		return
	}
	as.ecs = e
	if err := systems.RestorePlayerState(e); err != nil {
		as.logger.Warn("could not restore player state", zap.Error(err))
	}
}
