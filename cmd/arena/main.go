// Command arena runs the simulation headless for a fixed number of ticks and
// logs what the agents did.
package main

import (
	"flag"
	"log"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/input"
	"github.com/automoto/doomerang-ai/leveldata"
	"github.com/automoto/doomerang-ai/logging"
	"github.com/automoto/doomerang-ai/scenes"
	"github.com/automoto/doomerang-ai/systems"
	"github.com/automoto/doomerang-ai/systems/factory"
	"go.uber.org/zap"
)

const defaultTicks = 600

func main() {
	configPath := flag.String("config", "", "YAML run file")
	levelPath := flag.String("level", "", "TMX level (default: built-in demo arena)")
	ticks := flag.Int("ticks", 0, "ticks to simulate")
	scriptPath := flag.String("script", "", "YAML input script for the player")
	flag.Parse()

	run, err := config.Setup(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	pick := func(flagValue, fileValue string) string {
		if flagValue != "" {
			return flagValue
		}
		return fileValue
	}

	logger, err := logging.New(config.Sim.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	systems.SetLogger(logger)

	lvl, err := leveldata.LoadPath(pick(*levelPath, run.Level))
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}

	script, err := input.NewScript()
	if err != nil {
		logger.Fatal("input script", zap.Error(err))
	}
	if p := pick(*scriptPath, run.Script); p != "" {
		if script, err = input.LoadScript(p); err != nil {
			logger.Fatal("input script", zap.Error(err))
		}
	}

	n := *ticks
	if n <= 0 {
		n = run.Ticks
	}
	if n <= 0 {
		n = defaultTicks
	}

	var watcher *config.KindWatcher
	if run.WatchKind && run.KindsFile != "" {
		if watcher, err = config.WatchKinds(run.KindsFile); err != nil {
			logger.Warn("cannot watch agent kinds", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	arena, err := scenes.BuildArena(lvl, script)
	if err != nil {
		logger.Fatal("build arena", zap.Error(err))
	}
	logger.Info("arena ready",
		zap.String("level", lvl.Name),
		zap.String("backend", config.Physics.Backend),
		zap.Int("agents", len(lvl.Agents)),
		zap.Int("ticks", n),
	)

	for i := 0; i < n; i++ {
		if watcher != nil && watcher.Poll() {
			if kinds, def, err := config.LoadAgentKinds(run.KindsFile); err != nil {
				logger.Warn("agent kinds reload failed", zap.Error(err))
			} else {
				config.SetKinds(kinds, def)
				factory.RetuneAgents(arena)
			}
		}
		arena.Update()
		if systems.PlayerDead(arena) {
			logger.Info("player died", zap.Int("tick", i))
			break
		}
	}
	systems.LogSummary(arena)
}
