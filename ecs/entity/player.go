package entity

import (
	"fmt"

	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

const PlayerPrefab = "player.yaml"

func NewPlayerAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	entity, err := SpawnPrefab(w, PlayerPrefab, x, y)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	// The walker starts its first frame where the player was placed.
	if walker, ok := ecs.Get(w, entity, component.WalkerComponent.Kind()); ok {
		walker.PrevX, walker.PrevY = x, y
	}
	return entity, nil
}
