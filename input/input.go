// Package input produces per-tick action snapshots for the player.
package input

import (
	"fmt"
	"os"

	"github.com/automoto/doomerang-ai/config"
	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Snapshot is the pressed state of every action for one tick.
type Snapshot [config.ActionCount]bool

// Source yields one Snapshot per tick.
type Source interface {
	Poll() Snapshot
}

// Keyboard polls ebiten using the configured bindings.
type Keyboard struct{}

func (Keyboard) Poll() Snapshot {
	var s Snapshot
	for action, binding := range config.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				s[action] = true
			}
		}
	}
	return s
}

// Step holds one action down for ticks [From, To).
type Step struct {
	Action string `yaml:"action"`
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
}

// Script replays timed input. Each Poll is one tick.
type Script struct {
	steps []scriptStep
	tick  int
}

type scriptStep struct {
	action   config.ActionID
	from, to int
}

func NewScript(steps ...Step) (*Script, error) {
	s := &Script{}
	for i, st := range steps {
		id, ok := config.ParseAction(st.Action)
		if !ok {
			return nil, fmt.Errorf("script step %d: unknown action %q", i, st.Action)
		}
		if st.To < st.From {
			return nil, fmt.Errorf("script step %d: to %d before from %d", i, st.To, st.From)
		}
		s.steps = append(s.steps, scriptStep{action: id, from: st.From, to: st.To})
	}
	return s, nil
}

// LoadScript reads a YAML list of steps.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input script: %w", err)
	}
	var steps []Step
	if err := yaml.Unmarshal(data, &steps); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	return NewScript(steps...)
}

func (s *Script) Poll() Snapshot {
	var snap Snapshot
	for _, st := range s.steps {
		if s.tick >= st.from && s.tick < st.to {
			snap[st.action] = true
		}
	}
	s.tick++
	return snap
}

// Tick is the number of snapshots produced so far.
func (s *Script) Tick() int {
	return s.tick
}
