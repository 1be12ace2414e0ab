package components

import (
	"github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi"
)

// TelemetryData counts what happened during a run.
type TelemetryData struct {
	Tick        int
	Transitions map[config.StateID]int // Entries into each state
	Strikes     int
	Rebuilds    int
	HazardHits  int
}

var Telemetry = donburi.NewComponentType[TelemetryData]()
