package entity

import (
	"fmt"

	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

const CameraPrefab = "camera.yaml"

// NewCameraOn builds the camera with the player at the centre of the view,
// kept inside the level.
func NewCameraOn(w *ecs.World, focusX, focusY, levelW, levelH float64) (ecs.Entity, error) {
	camera, err := BuildEntity(w, CameraPrefab)
	if err != nil {
		return 0, fmt.Errorf("camera: %w", err)
	}

	zoom := 1.0
	if cam, ok := ecs.Get(w, camera, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		zoom = cam.Zoom
	}
	viewW, viewH := common.BaseWidth/zoom, common.BaseHeight/zoom

	x := common.Clamp(focusX-viewW/2, 0, levelW-viewW)
	y := common.Clamp(focusY-viewH/2, 0, levelH-viewH)
	if err := SetEntityTransform(w, camera, x, y, 0); err != nil {
		return 0, fmt.Errorf("camera: override transform: %w", err)
	}
	return camera, nil
}
