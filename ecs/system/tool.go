package system

import (
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
	"github.com/sirupsen/logrus"
)

// ToolSystem cools every tool down and fires the selected one while its
// owner holds activate. A successful fire spawns the tool's effect one Range
// ahead of the owner.
type ToolSystem struct {
	spawn Spawner
	log   *logrus.Entry
}

func NewToolSystem(spawn Spawner, log *logrus.Entry) *ToolSystem {
	return &ToolSystem{spawn: spawn, log: entryOrDefault(log)}
}

func (ts *ToolSystem) Update(w *ecs.World) {
	if ts == nil || w == nil {
		return
	}

	dt := w.DeltaTime()
	ecs.ForEach(w, component.ToolbeltComponent.Kind(), func(e ecs.Entity, belt *component.Toolbelt) {
		belt.Tick(dt)
		if !belt.Active {
			return
		}

		tool := belt.Current()
		if tool == nil {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		facing := component.FacingSouth
		if walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind()); ok {
			facing = walker.Facing
		}
		// Transform is screen space, so the logical north vector flips.
		fx, fy := facing.Vector()
		req, fired := tool.TryFire(t.X, t.Y, fx, -fy)
		if !fired {
			return
		}

		w.Events().Push(ecs.Event{Type: ecs.EventToolFired, Entity: e, Data: req})
		if ts.spawn == nil || req.Effect == "" {
			return
		}
		effect, err := ts.spawn(w, req.Effect, req.X, req.Y)
		if err != nil {
			ts.log.WithError(err).WithField("tool", tool.Name).Warn("spawn tool effect")
			return
		}
		ts.log.WithFields(logrus.Fields{
			"tool":   tool.Name,
			"facing": facing.String(),
			"x":      req.X,
			"y":      req.Y,
			"effect": effect.String(),
		}).Debug("tool fired")
	})
}
