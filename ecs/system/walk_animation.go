package system

import (
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

// WalkAnimationSystem is the post-step half of the walk cycle. It runs after
// physics so that only distance actually covered advances the frame.
type WalkAnimationSystem struct{}

func NewWalkAnimationSystem() *WalkAnimationSystem {
	return &WalkAnimationSystem{}
}

func (a *WalkAnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.WalkerComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, walker *component.Walker, t *component.Transform) {
		walker.Settle(t.X, t.Y)

		sprites, ok := ecs.Get(w, e, component.WalkSpritesComponent.Kind())
		if !ok {
			return
		}
		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok {
			return
		}
		if img := sprites.Frame(walker.Facing, walker.Frame); img != nil {
			sprite.Image = img
		}
	})
}
