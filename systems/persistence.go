package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/doomerang-ai/components"
	cfg "github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/mathutil"
	"github.com/automoto/doomerang-ai/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

const playerStateKey = "player"

// ItemStore is the part of gdata.Manager persistence uses.
type ItemStore interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
}

// SavedPlayerState is what survives a scene reload.
type SavedPlayerState struct {
	FacingRight bool `json:"facingRight"`
	Health      int  `json:"health"`
}

var store ItemStore

// InitPersistence opens the gdata store when persistence is enabled.
func InitPersistence() error {
	if !cfg.Persistence.Enabled {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persistence.AppName,
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	store = m
	return nil
}

// SetStore swaps the backing store; nil disables persistence.
func SetStore(s ItemStore) {
	store = s
}

// SavePlayerState stores the player's facing and health.
func SavePlayerState(ecs *ecs.ECS) error {
	if store == nil {
		return nil
	}
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return ErrNoTarget
	}
	data, err := json.Marshal(SavedPlayerState{
		FacingRight: components.Facing.Get(e).Desired,
		Health:      components.Health.Get(e).Current,
	})
	if err != nil {
		return err
	}
	if err := store.SaveItem(playerStateKey, data); err != nil {
		return fmt.Errorf("save player state: %w", err)
	}
	return nil
}

// RestorePlayerState applies a saved state to the player. A missing save is
// not an error. A saved health of zero is ignored so a reload revives.
func RestorePlayerState(ecs *ecs.ECS) error {
	if store == nil {
		return nil
	}
	e, ok := tags.Player.First(ecs.World)
	if !ok {
		return ErrNoTarget
	}
	data, err := store.LoadItem(playerStateKey)
	if err != nil {
		return fmt.Errorf("load player state: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	var saved SavedPlayerState
	if err := json.Unmarshal(data, &saved); err != nil {
		logger.Warn("could not parse saved player state", zap.Error(err))
		return err
	}

	body := components.Body.Get(e)
	facing := components.Facing.Get(e)
	*facing = components.NewFacing(saved.FacingRight)
	body.ScaleX = mathutil.Abs(body.ScaleX)
	if !saved.FacingRight {
		body.ScaleX = -body.ScaleX
	}

	health := components.Health.Get(e)
	if saved.Health > 0 {
		health.Current = min(saved.Health, health.Max)
	}
	return nil
}
