package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
	"github.com/sirupsen/logrus"
)

// HitSystem resolves whacks against targets. A target overlapped by any live
// whack is struck once, removed, scored and replaced by its Replacement
// prefab.
type HitSystem struct {
	spawn Spawner
	log   *logrus.Entry
}

func NewHitSystem(spawn Spawner, log *logrus.Entry) *HitSystem {
	return &HitSystem{spawn: spawn, log: entryOrDefault(log)}
}

func (hs *HitSystem) Update(w *ecs.World) {
	if hs == nil || w == nil {
		return
	}

	whacks := w.Query(component.WhackComponent.Kind(), component.TransformComponent.Kind())
	if len(whacks) == 0 {
		return
	}
	targets := w.Query(component.TargetComponent.Kind(), component.TransformComponent.Kind())
	if len(targets) == 0 {
		return
	}

	for _, we := range whacks {
		whack, _ := ecs.Get(w, we, component.WhackComponent.Kind())
		wt, _ := ecs.Get(w, we, component.TransformComponent.Kind())
		if whack == nil || wt == nil || whack.Expired {
			continue
		}
		whackBB := cp.NewBBForCircle(cp.Vector{X: wt.X, Y: wt.Y}, whack.Radius)

		for _, te := range targets {
			if !w.IsAlive(te) {
				continue
			}
			target, _ := ecs.Get(w, te, component.TargetComponent.Kind())
			tt, _ := ecs.Get(w, te, component.TransformComponent.Kind())
			if target == nil || tt == nil || target.Hit {
				continue
			}
			if !whackBB.Intersects(cp.NewBBForCircle(cp.Vector{X: tt.X, Y: tt.Y}, target.Radius)) {
				continue
			}
			if !target.Strike() {
				continue
			}
			hs.score(w, we, te, *target, tt.X, tt.Y)
		}
	}
}

func (hs *HitSystem) score(w *ecs.World, effect, target ecs.Entity, t component.Target, x, y float64) {
	w.DestroyEntity(target)

	points := 0
	if holder, ok := w.First(component.ScoreComponent.Kind()); ok {
		if score, ok := ecs.Get(w, holder, component.ScoreComponent.Kind()); ok {
			score.Points++
			points = score.Points
		}
	}

	w.Events().Push(ecs.Event{
		Type:   ecs.EventTargetHit,
		Entity: target,
		Data:   ecs.TargetHit{Target: target, Effect: effect, X: x, Y: y, Score: points},
	})
	hs.log.WithFields(logrus.Fields{
		"kind":  t.Kind,
		"x":     x,
		"y":     y,
		"score": points,
	}).Info("target hit")

	if hs.spawn == nil || t.Replacement == "" {
		return
	}
	if _, err := hs.spawn(w, t.Replacement, x, y); err != nil {
		hs.log.WithError(err).WithField("prefab", t.Replacement).Warn("spawn replacement")
	}
}
