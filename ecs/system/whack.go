package system

import (
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

// WhackSystem plays attack effects forward. The splash is flagged on the
// effect's first tick, and the entity is destroyed on the tick it runs out of
// frames, so an expired effect is never advanced again.
type WhackSystem struct{}

func NewWhackSystem() *WhackSystem {
	return &WhackSystem{}
}

func (ws *WhackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.DeltaTime()
	ecs.ForEach(w, component.WhackComponent.Kind(), func(e ecs.Entity, whack *component.Whack) {
		if whack.Advance(dt) && whack.Sound != component.NoSound {
			if audio, ok := ecs.Get(w, e, component.AudioComponent.Kind()); ok {
				audio.Trigger(whack.Sound)
			}
		}

		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			sprite.Image = whack.Image()
			sprite.Hidden = sprite.Image == nil
		}

		if whack.Expired {
			w.DestroyEntity(e)
		}
	})
}
