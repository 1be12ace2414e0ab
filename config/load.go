package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// RunConfig is the subset of a run file that is not a tunable: where to find
// the level, the agent kinds and the scripted input.
type RunConfig struct {
	Level     string `mapstructure:"level"`
	KindsFile string `mapstructure:"kinds_file"`
	Script    string `mapstructure:"script"`
	Ticks     int    `mapstructure:"ticks"`
	WatchKind bool   `mapstructure:"watch_kinds"`
}

type fileConfig struct {
	Run         RunConfig         `mapstructure:"run"`
	Sim         SimConfig         `mapstructure:"sim"`
	Physics     PhysicsConfig     `mapstructure:"physics"`
	Perception  PerceptionConfig  `mapstructure:"perception"`
	Player      PlayerConfig      `mapstructure:"player"`
	Agent       agentFileConfig   `mapstructure:"agent"`
	Pathfinding PathfindingConfig `mapstructure:"pathfinding"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
}

type agentFileConfig struct {
	DefaultKind string `mapstructure:"default_kind"`
	Seed        uint64 `mapstructure:"seed"`
}

// Load reads a YAML run file and applies it over the built-in defaults.
// Keys absent from the file keep their default value.
func Load(path string) (*RunConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	if fc.Physics.Backend != BackendResolv && fc.Physics.Backend != BackendChipmunk {
		return nil, fmt.Errorf("%w: physics.backend %q", ErrInvalid, fc.Physics.Backend)
	}
	if fc.Sim.TickRate <= 0 {
		return nil, fmt.Errorf("%w: sim.tick_rate %d", ErrInvalid, fc.Sim.TickRate)
	}
	if _, ok := Agent.Kinds[fc.Agent.DefaultKind]; !ok {
		return nil, fmt.Errorf("%w: agent.default_kind %q", ErrUnknownKind, fc.Agent.DefaultKind)
	}

	Sim = fc.Sim
	Physics = fc.Physics
	Perception = fc.Perception
	Player = fc.Player
	Pathfinding = fc.Pathfinding
	Persistence = fc.Persistence
	Agent.DefaultKind = fc.Agent.DefaultKind
	Agent.Seed = fc.Agent.Seed

	run := fc.Run
	return &run, nil
}

// Setup applies an optional run file and then the agent kinds file it names.
// An empty path keeps the built-in defaults.
func Setup(path string) (*RunConfig, error) {
	run := &RunConfig{}
	if path != "" {
		r, err := Load(path)
		if err != nil {
			return nil, err
		}
		run = r
	}
	if run.KindsFile != "" {
		kinds, def, err := LoadAgentKinds(run.KindsFile)
		if err != nil {
			return nil, err
		}
		SetKinds(kinds, def)
	}
	return run, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("sim.tickrate", Sim.TickRate)
	v.SetDefault("sim.width", Sim.Width)
	v.SetDefault("sim.height", Sim.Height)
	v.SetDefault("sim.debug", Sim.Debug)

	v.SetDefault("physics.backend", Physics.Backend)
	v.SetDefault("physics.gravity", Physics.Gravity)
	v.SetDefault("physics.maxfallspeed", Physics.MaxFallSpeed)
	v.SetDefault("physics.maxrunspeed", Physics.MaxRunSpeed)
	v.SetDefault("physics.damping", Physics.Damping)
	v.SetDefault("physics.cellsize", Physics.CellSize)

	v.SetDefault("perception.footprobedepth", Perception.FootProbeDepth)
	v.SetDefault("perception.hazardprobedepth", Perception.HazardProbeDepth)
	v.SetDefault("perception.groundahead", Perception.GroundAhead)
	v.SetDefault("perception.groundprobedepth", Perception.GroundProbeDepth)

	v.SetDefault("player.movementforce", Player.MovementForce)
	v.SetDefault("player.jumpforce", Player.JumpForce)
	v.SetDefault("player.aircontrol", Player.AirControl)
	v.SetDefault("player.health", Player.Health)
	v.SetDefault("player.collisionwidth", Player.CollisionWidth)
	v.SetDefault("player.collisionheight", Player.CollisionHeight)

	v.SetDefault("agent.default_kind", Agent.DefaultKind)
	v.SetDefault("agent.seed", Agent.Seed)

	v.SetDefault("pathfinding.maxjumpheight", Pathfinding.MaxJumpHeight)
	v.SetDefault("pathfinding.maxjumpgap", Pathfinding.MaxJumpGap)
	v.SetDefault("pathfinding.jumpcost", Pathfinding.JumpCost)

	v.SetDefault("persistence.appname", Persistence.AppName)
	v.SetDefault("persistence.enabled", Persistence.Enabled)
}
