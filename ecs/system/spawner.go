package system

import (
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/logger"
	"github.com/sirupsen/logrus"
)

// Spawner builds the named prefab centred on a screen-space position.
type Spawner func(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error)

func entryOrDefault(log *logrus.Entry) *logrus.Entry {
	if log != nil {
		return log
	}
	return logrus.NewEntry(logger.Log)
}
