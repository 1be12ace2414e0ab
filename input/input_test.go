package input

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/doomerang-ai/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptReplaysWindows(t *testing.T) {
	s, err := NewScript(
		Step{Action: "right", From: 0, To: 2},
		Step{Action: "jump", From: 1, To: 2},
	)
	require.NoError(t, err)

	first := s.Poll()
	assert.True(t, first[config.ActionMoveRight])
	assert.False(t, first[config.ActionJump])

	second := s.Poll()
	assert.True(t, second[config.ActionMoveRight])
	assert.True(t, second[config.ActionJump])

	third := s.Poll()
	assert.Equal(t, Snapshot{}, third)
	assert.Equal(t, 3, s.Tick())
}

func TestScriptRejectsBadSteps(t *testing.T) {
	_, err := NewScript(Step{Action: "dance", From: 0, To: 1})
	assert.Error(t, err)

	_, err = NewScript(Step{Action: "left", From: 5, To: 1})
	assert.Error(t, err)
}

func TestLoadScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- action: left\n  from: 0\n  to: 1\n"), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)
	assert.True(t, s.Poll()[config.ActionMoveLeft])
}
