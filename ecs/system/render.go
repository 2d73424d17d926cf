package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

var (
	debugColliderColor = color.RGBA{R: 255, G: 64, B: 64, A: 255}
	debugHitColor      = color.RGBA{R: 64, G: 255, B: 255, A: 255}
)

type RenderSystem struct {
	camEntity ecs.Entity

	// Debug outlines colliders, whacks and targets.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !r.camEntity.Valid() || !w.IsAlive(r.camEntity) {
		if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camX, camY := 0.0, 0.0
	zoom := 1.0
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		camX = camTransform.X
		camY = camTransform.Y
	}
	if camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok {
		if camComp.Zoom > 0 {
			zoom = camComp.Zoom
		}
	}

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sortByLayer(w, entities)

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Hidden || s.Image == nil {
			continue
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		op.GeoM.Scale(sx, sy)
		op.GeoM.Rotate(t.Rotation)
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate((t.X-camX)*zoom, (t.Y-camY)*zoom)

		screen.DrawImage(s.Image, op)
	}

	if r.Debug {
		r.drawDebug(w, screen, camX, camY, zoom)
	}
}

func sortByLayer(w *ecs.World, entities []ecs.Entity) {
	layerOf := func(e ecs.Entity) int {
		if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return layer.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layerOf(entities[i]), layerOf(entities[j])
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})
}

func (r *RenderSystem) drawDebug(w *ecs.World, screen *ebiten.Image, camX, camY, zoom float64) {
	toScreen := func(x, y float64) (float32, float32) {
		return float32((x - camX) * zoom), float32((y - camY) * zoom)
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, body *component.PhysicsBody, t *component.Transform) {
		x, y := toScreen(t.X-body.Width/2, t.Y-body.Height/2)
		vector.StrokeRect(screen, x, y, float32(body.Width*zoom), float32(body.Height*zoom), 1, debugColliderColor, false)
	})
	ecs.ForEach2(w, component.WhackComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, whack *component.Whack, t *component.Transform) {
		x, y := toScreen(t.X, t.Y)
		vector.StrokeCircle(screen, x, y, float32(whack.Radius*zoom), 1, debugHitColor, true)
	})
	ecs.ForEach2(w, component.TargetComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, target *component.Target, t *component.Transform) {
		x, y := toScreen(t.X, t.Y)
		vector.StrokeCircle(screen, x, y, float32(target.Radius*zoom), 1, debugHitColor, true)
	})
}
