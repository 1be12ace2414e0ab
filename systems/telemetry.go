package systems

import (
	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

func telemetry(ecs *ecs.ECS) *components.TelemetryData {
	e, ok := components.Telemetry.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Telemetry.Get(e)
}

// UpdateTelemetry advances the tick counter. It runs last.
func UpdateTelemetry(ecs *ecs.ECS) {
	if tel := telemetry(ecs); tel != nil {
		tel.Tick++
	}
}

// Telemetry returns a copy of the run counters.
func Telemetry(ecs *ecs.ECS) components.TelemetryData {
	tel := telemetry(ecs)
	if tel == nil {
		return components.TelemetryData{}
	}
	out := *tel
	out.Transitions = make(map[cfg.StateID]int, len(tel.Transitions))
	for k, v := range tel.Transitions {
		out.Transitions[k] = v
	}
	return out
}

// LogSummary writes the run counters at Info.
func LogSummary(ecs *ecs.ECS) {
	tel := Telemetry(ecs)
	fields := []zap.Field{
		zap.Int("ticks", tel.Tick),
		zap.Int("strikes", tel.Strikes),
		zap.Int("rebuilds", tel.Rebuilds),
		zap.Int("hazard_hits", tel.HazardHits),
	}
	for state := cfg.StateIdle; state <= cfg.StateAttack; state++ {
		fields = append(fields, zap.Int("enter_"+state.String(), tel.Transitions[state]))
	}
	logger.Info("run summary", fields...)
}
