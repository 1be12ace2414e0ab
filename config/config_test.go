package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	p := writeFile(t, t.TempDir(), "run.yaml", `
run:
  level: levels/pit.tmx
  ticks: 120
  watch_kinds: true
sim:
  tickrate: 30
physics:
  backend: chipmunk
  gravity: -500
agent:
  default_kind: leaper
  seed: 42
`)

	run, err := Load(p)
	require.NoError(t, err)

	assert.Equal(t, "levels/pit.tmx", run.Level)
	assert.Equal(t, 120, run.Ticks)
	assert.True(t, run.WatchKind)
	assert.Equal(t, 30, Sim.TickRate)
	assert.Equal(t, BackendChipmunk, Physics.Backend)
	assert.Equal(t, -500.0, Physics.Gravity)
	assert.Equal(t, 600.0, Physics.MaxFallSpeed, "unset key keeps its default")
	assert.Equal(t, "leaper", Agent.DefaultKind)
	assert.Equal(t, uint64(42), Agent.Seed)
	assert.Equal(t, 4, Pathfinding.MaxJumpHeight)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown backend", "physics:\n  backend: box2d\n", ErrInvalid},
		{"zero tick rate", "sim:\n  tickrate: 0\n", ErrInvalid},
		{"unknown default kind", "agent:\n  default_kind: dragon\n", ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Reset()
			t.Cleanup(Reset)
			p := writeFile(t, t.TempDir(), "run.yaml", tt.body)

			_, err := Load(p)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, BackendResolv, Physics.Backend, "globals untouched on error")
		})
	}
}

func TestParseAgentKindsInheritsDefaults(t *testing.T) {
	Reset()
	kinds, def, err := ParseAgentKinds([]byte(`
default: brute
kinds:
  brute:
    movement_force: 1500
    vision_range: 200
  scout:
    vision_range: 320
    air_control: 0.8
`))
	require.NoError(t, err)

	assert.Equal(t, "brute", def)
	grunt := Agent.Kinds["grunt"]
	assert.Equal(t, 1500.0, kinds["brute"].MovementForce)
	assert.Equal(t, grunt.JumpForce, kinds["brute"].JumpForce)
	assert.Equal(t, "scout", kinds["scout"].Name)
	assert.Equal(t, 0.8, kinds["scout"].AirControl)
	assert.Equal(t, grunt.IdleDwell, kinds["scout"].IdleDwell)
}

func TestParseAgentKindsValidates(t *testing.T) {
	Reset()
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"no kinds", "default: grunt\n", ErrInvalid},
		{"air control above one", "kinds:\n  grunt:\n    air_control: 1.5\n", ErrInvalid},
		{"attack beyond vision", "kinds:\n  grunt:\n    attack_range: 500\n", ErrInvalid},
		{"missing default", "default: ghost\nkinds:\n  grunt: {}\n", ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseAgentKinds([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestKindFallsBackToDefault(t *testing.T) {
	Reset()

	k, ok := Kind("leaper")
	assert.True(t, ok)
	assert.Equal(t, "Leaper", k.Name)

	k, ok = Kind("dragon")
	assert.False(t, ok)
	assert.Equal(t, "Grunt", k.Name)
}

func TestSetupAppliesKindsFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	dir := t.TempDir()
	kinds := writeFile(t, dir, "kinds.yaml", "default: sentry\nkinds:\n  sentry:\n    vision_range: 400\n")
	run := writeFile(t, dir, "run.yaml", "run:\n  kinds_file: "+kinds+"\n")

	_, err := Setup(run)
	require.NoError(t, err)

	assert.Equal(t, "sentry", Agent.DefaultKind)
	assert.Equal(t, 400.0, Agent.Kinds["sentry"].VisionRange)
	_, ok := Agent.Kinds["grunt"]
	assert.False(t, ok)
}

func TestSetupWithoutFileKeepsDefaults(t *testing.T) {
	Reset()
	run, err := Setup("")
	require.NoError(t, err)
	assert.Equal(t, RunConfig{}, *run)
	assert.Equal(t, 60, Sim.TickRate)
}

func TestKindWatcherSignalsWrites(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "kinds.yaml", "kinds:\n  grunt: {}\n")

	w, err := WatchKinds(p)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	writeFile(t, dir, "other.yaml", "ignored: true\n")
	writeFile(t, dir, "kinds.yaml", "kinds:\n  grunt:\n    vision_range: 99\n")

	assert.Eventually(t, w.Poll, 2*time.Second, 20*time.Millisecond)
}

func TestActionNamesRoundTrip(t *testing.T) {
	for id := ActionMoveLeft; id < ActionCount; id++ {
		got, ok := ParseAction(id.String())
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := ParseAction("attack")
	assert.False(t, ok)
}
