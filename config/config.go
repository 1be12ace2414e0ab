package config

import "image/color"

// SimConfig contains the fixed-step simulation settings
type SimConfig struct {
	TickRate int // Updates per second
	Width    int // Logical screen size
	Height   int
	Debug    bool
}

// Physics backends
const (
	BackendResolv   = "resolv"
	BackendChipmunk = "chipmunk"
)

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Backend string

	// World space is Y-up, so gravity is negative
	Gravity      float64
	MaxFallSpeed float64
	MaxRunSpeed  float64
	Damping      float64 // Horizontal velocity decay per second

	// Spatial hash cell size for the resolv backend and the nav grid
	CellSize int
}

// PerceptionConfig contains probe geometry shared by every character
type PerceptionConfig struct {
	FootProbeDepth   float64 // Length of the three grounded rays below the collider
	HazardProbeDepth float64 // Length of the downward hazard ray
	GroundAhead      float64 // Horizontal offset of the patrol ground ray
	GroundProbeDepth float64 // Length of the patrol ground ray
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MovementForce float64
	JumpForce     float64
	AirControl    float64

	// Combat
	Health int

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// AgentKindConfig contains the tunables for one class of agent
type AgentKindConfig struct {
	Name string `yaml:"name" mapstructure:"name"`

	// Movement
	MovementForce float64 `yaml:"movement_force" mapstructure:"movement_force"`
	JumpForce     float64 `yaml:"jump_force" mapstructure:"jump_force"`
	AirControl    float64 `yaml:"air_control" mapstructure:"air_control"`
	JumpCooldown  float64 `yaml:"jump_cooldown" mapstructure:"jump_cooldown"` // Seconds
	JumpThreshold float64 `yaml:"jump_threshold" mapstructure:"jump_threshold"`

	// Perception
	VisionRange float64 `yaml:"vision_range" mapstructure:"vision_range"`
	AttackRange float64 `yaml:"attack_range" mapstructure:"attack_range"`

	// Behavior
	IdleDwell         float64 `yaml:"idle_dwell" mapstructure:"idle_dwell"` // Seconds
	WaypointCloseness float64 `yaml:"waypoint_closeness" mapstructure:"waypoint_closeness"`
	GroundEpsilon     float64 `yaml:"ground_epsilon" mapstructure:"ground_epsilon"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width" mapstructure:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height" mapstructure:"collision_height"`

	// Visual
	TintColor color.RGBA `yaml:"-" mapstructure:"-"`
}

// AgentConfig contains agent system configuration
type AgentConfig struct {
	// Agent classes by kind key ("grunt", "leaper", ...)
	Kinds map[string]AgentKindConfig

	DefaultKind string
	Seed        uint64 // Base seed for per-agent idle direction choice
}

// PathfindingConfig contains nav grid settings
type PathfindingConfig struct {
	MaxJumpHeight int // In cells
	MaxJumpGap    int // In cells
	JumpCost      float64
}

// PersistenceConfig contains gdata settings
type PersistenceConfig struct {
	AppName string
	Enabled bool
}

// Global configuration instances
var Sim SimConfig
var Physics PhysicsConfig
var Perception PerceptionConfig
var Player PlayerConfig
var Agent AgentConfig
var Pathfinding PathfindingConfig
var Persistence PersistenceConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Gray      = color.RGBA{R: 90, G: 90, B: 90, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every config section to its built-in defaults.
func Reset() {
	Sim = SimConfig{
		TickRate: 60,
		Width:    640,
		Height:   360,
	}

	Physics = PhysicsConfig{
		Backend:      BackendResolv,
		Gravity:      -900.0,
		MaxFallSpeed: 600.0,
		MaxRunSpeed:  180.0,
		Damping:      8.0,
		CellSize:     16,
	}

	Perception = PerceptionConfig{
		FootProbeDepth:   1.0,
		HazardProbeDepth: 2.0,
		GroundAhead:      4.0,
		GroundProbeDepth: 8.0,
	}

	Player = PlayerConfig{
		MovementForce: 1400.0,
		JumpForce:     21000.0,
		AirControl:    0.35,

		Health: 3,

		CollisionWidth:  16,
		CollisionHeight: 32,
	}

	grunt := AgentKindConfig{
		Name:              "Grunt",
		MovementForce:     1000.0,
		JumpForce:         20000.0,
		AirControl:        0.3,
		JumpCooldown:      1.0,
		JumpThreshold:     0.9,
		VisionRange:       160.0,
		AttackRange:       20.0,
		IdleDwell:         2.0,
		WaypointCloseness: 3.0,
		GroundEpsilon:     1.0,
		CollisionWidth:    16,
		CollisionHeight:   28,
		TintColor:         Red,
	}

	// Leapers jump higher and steer more in the air
	leaper := grunt
	leaper.Name = "Leaper"
	leaper.JumpForce = 26000.0
	leaper.AirControl = 0.4
	leaper.JumpCooldown = 0.6
	leaper.TintColor = Orange

	// Crawlers are slow and barely steer in the air
	crawler := grunt
	crawler.Name = "Crawler"
	crawler.MovementForce = 700.0
	crawler.JumpForce = 16000.0
	crawler.AirControl = 0.2
	crawler.VisionRange = 96.0
	crawler.CollisionHeight = 14
	crawler.TintColor = Purple

	Agent = AgentConfig{
		Kinds: map[string]AgentKindConfig{
			"grunt":   grunt,
			"leaper":  leaper,
			"crawler": crawler,
		},
		DefaultKind: "grunt",
		Seed:        1,
	}

	Pathfinding = PathfindingConfig{
		MaxJumpHeight: 4,
		MaxJumpGap:    3,
		JumpCost:      2.0,
	}

	Persistence = PersistenceConfig{
		AppName: "doomerang_ai",
		Enabled: true,
	}
}
