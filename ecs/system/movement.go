package system

import (
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

// MovementSystem is the pre-step half of the walk cycle. It lets each walker
// pick its facing from the requested velocity, then integrates the velocity
// into the transform. Velocity is logical, so Y is subtracted.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		if walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind()); ok {
			walker.Begin(v.X, v.Y, t.X, t.Y)
		}
		t.X += v.X
		t.Y -= v.Y
	})
}
