package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Grounded bool

	// Dead is set by a validated agent strike or by running out of health.
	// Setting it again has no further effect.
	Dead bool

	// Ticks spent touching a hazard, for telemetry
	HazardTicks int
}

var Player = donburi.NewComponentType[PlayerData]()
