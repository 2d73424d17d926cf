package system

import (
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

// CameraSystem scrolls the camera so the player stays Margin pixels inside
// the viewport. The camera transform is the world position of the
// viewport's top-left corner.
type CameraSystem struct {
	camEntity ecs.Entity

	viewW float64
	viewH float64
}

func NewCameraSystem(viewW, viewH float64) *CameraSystem {
	return &CameraSystem{viewW: viewW, viewH: viewH}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if cs == nil || w == nil {
		return
	}

	if !cs.camEntity.Valid() || !w.IsAlive(cs.camEntity) {
		camEntity, ok := w.First(component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	zoom := cam.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	viewW, viewH := cs.viewW/zoom, cs.viewH/zoom

	goalX := scrollGoal(camTransform.X, target.X, viewW, cam.Margin)
	goalY := scrollGoal(camTransform.Y, target.Y, viewH, cam.Margin)

	speed := common.Clamp(cam.Speed, 0, 1)
	camTransform.X = common.Lerp(camTransform.X, goalX, speed)
	camTransform.Y = common.Lerp(camTransform.Y, goalY, speed)

	if boundsEntity, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		if bounds, ok := ecs.Get(w, boundsEntity, component.LevelBoundsComponent.Kind()); ok {
			camTransform.X = common.Clamp(camTransform.X, 0, bounds.Width-viewW)
			camTransform.Y = common.Clamp(camTransform.Y, 0, bounds.Height-viewH)
		}
	}
}

// scrollGoal returns the scroll offset along one axis that puts pos at
// least margin inside a view of the given size, moving as little as
// possible.
func scrollGoal(scroll, pos, view, margin float64) float64 {
	if margin*2 > view {
		margin = view / 2
	}
	if pos-scroll < margin {
		return pos - margin
	}
	if pos-scroll > view-margin {
		return pos - (view - margin)
	}
	return scroll
}
