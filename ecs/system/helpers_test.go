package system

import (
	"testing"

	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

const testDT = 1.0 / 60.0

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, h.Kind(), v); err != nil {
		t.Fatalf("add %s: %v", h.Kind(), err)
	}
}

func newWalkerAt(t *testing.T, w *ecs.World, x, y float64, facing component.Facing) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	walker := component.NewWalker()
	walker.Facing = facing
	walker.WasFacing = facing
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.VelocityComponent, &component.Velocity{})
	mustAdd(t, w, e, component.WalkerComponent, &walker)
	return e
}

func newPlayerAt(t *testing.T, w *ecs.World, x, y float64, facing component.Facing) ecs.Entity {
	t.Helper()
	e := newWalkerAt(t, w, x, y, facing)
	mustAdd(t, w, e, component.PlayerTagComponent, &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent, &component.Player{MoveSpeed: component.DefaultMoveSpeed})
	mustAdd(t, w, e, component.InputComponent, &component.Input{Select: component.NoToolSelection})
	mustAdd(t, w, e, component.ScoreComponent, &component.Score{})
	mustAdd(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: 40, Height: 40})
	return e
}

func newWall(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.WallTagComponent, &component.WallTag{})
	mustAdd(t, w, e, component.PhysicsBodyComponent, &component.PhysicsBody{Width: width, Height: height, Static: true})
	return e
}

func newTarget(t *testing.T, w *ecs.World, x, y, radius float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.TargetComponent, &component.Target{Kind: "puddle", Radius: radius, Replacement: "grass"})
	return e
}

func newWhack(t *testing.T, w *ecs.World, x, y, radius float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.TransformComponent, &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.WhackComponent, &component.Whack{FPS: 16, TotalFrames: 16, Radius: radius, Sound: component.NoSound})
	return e
}

type spawnCall struct {
	prefab string
	x, y   float64
}

// recordingSpawner creates a bare entity per call and remembers what was
// asked for.
func recordingSpawner(calls *[]spawnCall) Spawner {
	return func(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
		*calls = append(*calls, spawnCall{prefab: prefab, x: x, y: y})
		return w.CreateEntity(), nil
	}
}

func transformOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func walkerOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Walker {
	t.Helper()
	wk, ok := ecs.Get(w, e, component.WalkerComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no walker", e)
	}
	return wk
}

func eventsOfType(events []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, evt := range events {
		if evt.Type == typ {
			out = append(out, evt)
		}
	}
	return out
}
