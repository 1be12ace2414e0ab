package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadAgentKinds parses a YAML file of agent classes. Fields a class leaves
// out inherit the built-in default class.
func LoadAgentKinds(path string) (map[string]AgentKindConfig, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read agent kinds: %w", err)
	}
	return ParseAgentKinds(data)
}

// ParseAgentKinds is LoadAgentKinds over an in-memory document.
func ParseAgentKinds(data []byte) (map[string]AgentKindConfig, string, error) {
	var raw struct {
		Default string               `yaml:"default"`
		Kinds   map[string]yaml.Node `yaml:"kinds"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, "", fmt.Errorf("parse agent kinds: %w", err)
	}
	if len(raw.Kinds) == 0 {
		return nil, "", fmt.Errorf("%w: no kinds defined", ErrInvalid)
	}

	base := Agent.Kinds[Agent.DefaultKind]
	kinds := make(map[string]AgentKindConfig, len(raw.Kinds))
	for key, node := range raw.Kinds {
		k := base
		k.Name = key
		if err := node.Decode(&k); err != nil {
			return nil, "", fmt.Errorf("parse agent kind %q: %w", key, err)
		}
		if err := validateKind(k); err != nil {
			return nil, "", fmt.Errorf("agent kind %q: %w", key, err)
		}
		kinds[key] = k
	}

	def := raw.Default
	if def == "" {
		def = Agent.DefaultKind
	}
	if _, ok := kinds[def]; !ok {
		return nil, "", fmt.Errorf("%w: default %q", ErrUnknownKind, def)
	}
	return kinds, def, nil
}

func validateKind(k AgentKindConfig) error {
	switch {
	case k.MovementForce <= 0:
		return fmt.Errorf("%w: movement_force must be positive", ErrInvalid)
	case k.AirControl < 0 || k.AirControl > 1:
		return fmt.Errorf("%w: air_control must be within [0,1]", ErrInvalid)
	case k.AttackRange > k.VisionRange:
		return fmt.Errorf("%w: attack_range exceeds vision_range", ErrInvalid)
	case k.CollisionWidth <= 0 || k.CollisionHeight <= 0:
		return fmt.Errorf("%w: collision size must be positive", ErrInvalid)
	}
	return nil
}

// SetKinds replaces the agent classes. Call from the simulation goroutine.
func SetKinds(kinds map[string]AgentKindConfig, def string) {
	Agent.Kinds = kinds
	Agent.DefaultKind = def
}

// Kind returns the tunables for an agent class, falling back to the
// default class when the key is unknown.
func Kind(key string) (AgentKindConfig, bool) {
	if k, ok := Agent.Kinds[key]; ok {
		return k, true
	}
	return Agent.Kinds[Agent.DefaultKind], false
}
