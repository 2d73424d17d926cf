package entity

import (
	"fmt"

	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
	"github.com/milk9111/groundskeeper/levels"
)

const (
	FloorPrefab  = "grass.yaml"
	WallPrefab   = "wall.yaml"
	TargetPrefab = "puddle.yaml"
)

// LoadLevelToWorld fills an empty world from a parsed level: floor, wall
// sprites with merged colliders, targets, the player, the camera, the level
// bounds and the session.
func LoadLevelToWorld(world *ecs.World, layout *levels.Layout, runID string) error {
	if world == nil || layout == nil {
		return fmt.Errorf("load level: world and layout are required")
	}

	if err := addLevelBounds(world, layout); err != nil {
		return err
	}

	for row := 0; row < layout.Rows; row++ {
		for col := 0; col < layout.Cols; col++ {
			if layout.Solid(col, row) {
				continue
			}
			x, y := layout.Center(levels.Cell{Col: col, Row: row})
			if _, err := SpawnPrefab(world, FloorPrefab, x, y); err != nil {
				return fmt.Errorf("load level: floor %d,%d: %w", col, row, err)
			}
		}
	}

	for _, cell := range layout.Walls {
		x, y := layout.Center(cell)
		if _, err := SpawnPrefab(world, WallPrefab, x, y); err != nil {
			return fmt.Errorf("load level: wall %d,%d: %w", cell.Col, cell.Row, err)
		}
	}
	if err := addMergedWallColliders(world, layout); err != nil {
		return err
	}

	for _, cell := range layout.Targets {
		x, y := layout.Center(cell)
		if _, err := SpawnPrefab(world, TargetPrefab, x, y); err != nil {
			return fmt.Errorf("load level: target %d,%d: %w", cell.Col, cell.Row, err)
		}
	}

	if _, err := NewPlayerAt(world, layout.StartX, layout.StartY); err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	if _, err := NewCameraOn(world, layout.StartX, layout.StartY, layout.Width(), layout.Height()); err != nil {
		return fmt.Errorf("load level: %w", err)
	}

	return addSession(world, layout, runID)
}

func addLevelBounds(world *ecs.World, layout *levels.Layout) error {
	e := world.CreateEntity()
	return ecs.Add(world, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Width:  layout.Width(),
		Height: layout.Height(),
	})
}

func addSession(world *ecs.World, layout *levels.Layout, runID string) error {
	e := world.CreateEntity()
	return ecs.Add(world, e, component.SessionComponent.Kind(), &component.Session{
		RunID:     runID,
		Level:     layout.Name,
		Total:     len(layout.Targets),
		Remaining: len(layout.Targets),
	})
}

// addMergedWallColliders adds one static body per merged block of walls,
// centred on the block since bodies are centred on their transform.
func addMergedWallColliders(world *ecs.World, layout *levels.Layout) error {
	tile := layout.TileSize
	for _, r := range layout.MergedWalls() {
		w := float64(r.Cols) * tile
		h := float64(r.Rows) * tile

		e := world.CreateEntity()
		if err := ecs.Add(world, e, component.TransformComponent.Kind(), &component.Transform{
			X:      float64(r.Col)*tile + w/2,
			Y:      float64(r.Row)*tile + h/2,
			ScaleX: 1,
			ScaleY: 1,
		}); err != nil {
			return err
		}
		if err := ecs.Add(world, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:    w,
			Height:   h,
			Friction: 0.9,
			Static:   true,
		}); err != nil {
			return err
		}
	}
	return nil
}
