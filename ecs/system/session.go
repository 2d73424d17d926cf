package system

import (
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
	"github.com/sirupsen/logrus"
)

// SessionSystem keeps the remaining target count current and declares the
// level cleared the first time it reaches zero.
type SessionSystem struct {
	log *logrus.Entry
}

func NewSessionSystem(log *logrus.Entry) *SessionSystem {
	return &SessionSystem{log: entryOrDefault(log)}
}

func (ss *SessionSystem) Update(w *ecs.World) {
	if ss == nil || w == nil {
		return
	}

	e, ok := w.First(component.SessionComponent.Kind())
	if !ok {
		return
	}
	session, ok := ecs.Get(w, e, component.SessionComponent.Kind())
	if !ok {
		return
	}

	session.Remaining = ecs.Count(w, component.TargetComponent.Kind())
	if session.Remaining > 0 || session.Cleared {
		return
	}

	session.Cleared = true
	points := 0
	if holder, ok := w.First(component.ScoreComponent.Kind()); ok {
		if score, ok := ecs.Get(w, holder, component.ScoreComponent.Kind()); ok {
			points = score.Points
		}
	}
	w.Events().Push(ecs.Event{Type: ecs.EventLevelCleared, Entity: e, Data: points})
	ss.log.WithFields(logrus.Fields{
		"level": session.Level,
		"total": session.Total,
		"score": points,
	}).Info("level cleared")
}
