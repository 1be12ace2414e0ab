package systems

import (
	"testing"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/input"
	"github.com/automoto/doomerang-ai/leveldata"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/systems/factory"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newArena(t *testing.T, lvl *leveldata.Level, steps ...input.Step) *ecs.ECS {
	t.Helper()
	cfg.Reset()
	SetLogger(nil)
	script, err := input.NewScript(steps...)
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	_, err = factory.CreateLevel(e, lvl, script)
	require.NoError(t, err)
	return e
}

func floor() *leveldata.Builder {
	return leveldata.NewBuilder("test", 320, 160).Platform(0, 0, 320, 16)
}

func player(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	p, ok := tags.Player.First(e.World)
	require.True(t, ok)
	return p
}

func agent(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	a, ok := tags.Agent.First(e.World)
	require.True(t, ok)
	return a
}

func TestPlayerJumpTakesPriorityOverMove(t *testing.T) {
	e := newArena(t, floor().Player(100, 16).Build(),
		input.Step{Action: "jump", From: 0, To: 1},
		input.Step{Action: "left", From: 0, To: 1},
	)

	UpdateInput(e)
	UpdatePlayer(e)

	p := player(t, e)
	body := components.Body.Get(p)
	assert.True(t, components.Player.Get(p).Grounded)
	assert.Equal(t, cfg.Player.JumpForce*tickDT(), body.Force.Y)
	assert.Zero(t, body.Force.X)
	assert.Equal(t, cfg.PlayerAnimJump, components.Animation.Get(p).Code)
}

func TestPlayerAirborneJumpKeepsAirControl(t *testing.T) {
	e := newArena(t, floor().Player(100, 100).Build(),
		input.Step{Action: "jump", From: 0, To: 1},
		input.Step{Action: "right", From: 0, To: 1},
	)

	UpdateInput(e)
	UpdatePlayer(e)

	p := player(t, e)
	body := components.Body.Get(p)
	assert.False(t, components.Player.Get(p).Grounded)
	assert.InDelta(t, cfg.Player.MovementForce*cfg.Player.AirControl*tickDT(), body.Force.X, 1e-9)
	assert.Zero(t, body.Force.Y)
	assert.NotEqual(t, cfg.PlayerAnimJump, components.Animation.Get(p).Code)
}

func TestPlayerMoveQueuesOneFacingFlip(t *testing.T) {
	e := newArena(t, floor().Player(100, 16).Build(),
		input.Step{Action: "left", From: 0, To: 2},
	)

	UpdateInput(e)
	UpdatePlayer(e)

	p := player(t, e)
	body := components.Body.Get(p)
	facing := components.Facing.Get(p)
	assert.Equal(t, -cfg.Player.MovementForce*tickDT(), body.Force.X)
	assert.True(t, facing.Pending())
	assert.Equal(t, 1.0, body.ScaleX, "flip waits for the next reconcile")

	UpdateInput(e)
	UpdatePlayer(e)

	assert.False(t, facing.Pending())
	assert.Equal(t, -1.0, body.ScaleX)
}

func TestPlayerOnSpikesLosesHealthAndDies(t *testing.T) {
	lvl := floor().Hazard(80, 16, 48, 8).Player(100, 24).Build()
	e := newArena(t, lvl)
	p := player(t, e)
	health := components.Health.Get(p)
	health.Current = 2

	UpdatePlayer(e)
	assert.Equal(t, 1, health.Current)
	assert.False(t, components.Player.Get(p).Dead)
	flash := components.Flash.Get(p)
	assert.Equal(t, hurtFlashTicks, flash.Duration)
	UpdateEffects(e)
	assert.Equal(t, hurtFlashTicks-1, flash.Duration)

	UpdatePlayer(e)
	assert.Equal(t, 0, health.Current)
	assert.True(t, components.Player.Get(p).Dead)
	assert.Equal(t, cfg.PlayerAnimDead, components.Animation.Get(p).Code)

	UpdatePlayer(e)
	assert.Equal(t, 0, health.Current, "health never goes negative")
	assert.Equal(t, 2, Telemetry(e).HazardHits)
}

func TestResolveTarget(t *testing.T) {
	w := donburi.NewWorld()
	target := components.TargetData{Entity: donburi.Null}

	_, err := ResolveTarget(w, &target)
	assert.ErrorIs(t, err, ErrNoTarget)

	p := w.Entry(w.Create(tags.Player))
	got, err := ResolveTarget(w, &target)
	require.NoError(t, err)
	assert.Equal(t, p.Entity(), got)

	w.Remove(p.Entity())
	_, err = ResolveTarget(w, &target)
	assert.ErrorIs(t, err, ErrNoTarget, "stale reference is dropped")
	assert.Equal(t, donburi.Null, target.Entity)
}

func TestAgentWithoutPlayerWarnsOnce(t *testing.T) {
	cfg.Reset()
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	e := ecs.NewECS(donburi.NewWorld())
	world, err := factory.CreateSpace(e, 320, 160)
	require.NoError(t, err)
	backend := components.World.Get(world).Backend
	_, err = factory.CreatePlatform(e, backend, 0, 0, 320, 16)
	require.NoError(t, err)
	_, err = factory.CreateAgent(e, backend, "grunt", 100, 16)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		UpdateAgents(e)
	}

	assert.Equal(t, 1, logs.FilterMessage("agent has no target").Len())
}

func TestAgentStrikesPlayerInReach(t *testing.T) {
	// The grunt faces left toward the player, 4 units away
	e := newArena(t, floor().Player(100, 16).Agent("grunt", 120, 16).Build())
	a := agent(t, e)
	brain := components.Brain.Get(a)

	UpdateAgents(e)
	assert.Equal(t, cfg.StateIdle, brain.State)

	UpdateAgents(e)
	assert.Equal(t, cfg.StateAttack, brain.State)
	assert.Equal(t, cfg.AgentAnimAttack, components.Animation.Get(a).Code)
	assert.False(t, components.Player.Get(player(t, e)).Dead)

	UpdateAgents(e)
	assert.True(t, components.Player.Get(player(t, e)).Dead)

	UpdateAgents(e)
	tel := Telemetry(e)
	assert.Equal(t, 2, tel.Strikes, "strikes repeat while the target stays in reach")
	assert.Equal(t, 1, tel.Transitions[cfg.StateAttack])
}

func TestAgentIgnoresPlayerBehindIt(t *testing.T) {
	e := newArena(t, floor().Player(140, 16).Agent("grunt", 120, 16).Build())
	brain := components.Brain.Get(agent(t, e))

	UpdateAgents(e)
	UpdateAgents(e)

	assert.Equal(t, cfg.StateIdle, brain.State)
}

func TestRetuneAgentsKeepsBrainState(t *testing.T) {
	e := newArena(t, floor().Player(20, 16).Agent("grunt", 200, 16).Build())
	a := agent(t, e)
	UpdateAgents(e)

	grunt := cfg.Agent.Kinds["grunt"]
	grunt.VisionRange = 300
	cfg.Agent.Kinds["grunt"] = grunt

	assert.Equal(t, 1, factory.RetuneAgents(e))
	assert.Equal(t, 300.0, components.Agent.Get(a).Machine.Tunables.VisionRange)
	assert.Equal(t, cfg.StateIdle, components.Brain.Get(a).State)
}

func TestDeadZoneRemovesFallenAgent(t *testing.T) {
	e := newArena(t, floor().Player(40, 16).Agent("grunt", 200, 16).Build())
	a := agent(t, e)
	id := a.Entity()
	backend, ok := factory.Backend(e)
	require.True(t, ok)

	UpdateDeadZone(e)
	assert.True(t, e.World.Valid(id), "agents on the floor stay")

	components.Body.Get(a).Position.Y = -200
	UpdateDeadZone(e)

	assert.False(t, e.World.Valid(id))
	_, ok = tags.Agent.First(e.World)
	assert.False(t, ok)
	assert.Empty(t, backend.Overlapping(id))
	hit := backend.Raycast(mathutil.Vec2{X: 150, Y: 30}, mathutil.Vec2{X: 260, Y: 30}, donburi.Null)
	assert.False(t, hit.Hit)
	assert.False(t, PlayerDead(e))
}

func TestDeadZoneKillsFallenPlayer(t *testing.T) {
	e := newArena(t, floor().Player(40, 16).Build())
	p := player(t, e)
	components.Body.Get(p).Position.Y = -200

	UpdateDeadZone(e)

	assert.True(t, PlayerDead(e))
	assert.Equal(t, 0, components.Health.Get(p).Current)
}

func TestUpdatePhysicsLandsPlayerOnFloor(t *testing.T) {
	e := newArena(t, floor().Player(100, 40).Build())
	p := player(t, e)

	for i := 0; i < 60; i++ {
		UpdatePlayer(e)
		UpdatePhysics(e)
		UpdateTelemetry(e)
	}

	body := components.Body.Get(p)
	assert.InDelta(t, 16, body.Position.Y, 0.5)
	assert.True(t, components.Player.Get(p).Grounded)
	assert.Equal(t, 60, Telemetry(e).Tick)
}
