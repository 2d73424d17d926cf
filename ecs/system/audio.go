package system

import (
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
	"github.com/sirupsen/logrus"
)

type AudioSystem struct {
	log *logrus.Entry
}

func NewAudioSystem(log *logrus.Entry) *AudioSystem {
	return &AudioSystem{log: entryOrDefault(log)}
}

func (a *AudioSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.AudioComponent.Kind(), func(e ecs.Entity, audioComp *component.Audio) {
		count := len(audioComp.Play)
		if len(audioComp.Players) < count {
			count = len(audioComp.Players)
		}

		for i := 0; i < count; i++ {
			if !audioComp.Play[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && !player.IsPlaying() {
				player.SetVolume(clipVolume(audioComp, i))
				if err := player.Rewind(); err != nil {
					a.log.WithError(err).WithField("entity", e.String()).Warn("rewind clip")
				}
				player.Play()
			}

			audioComp.Play[i] = false
		}

		for i := 0; i < count && i < len(audioComp.Stop); i++ {
			if !audioComp.Stop[i] {
				continue
			}

			player := audioComp.Players[i]
			if player != nil && player.IsPlaying() {
				player.Pause()
			}

			audioComp.Stop[i] = false
		}
	})
}

// clipVolume scales the clip's own volume by the global effects volume. A
// clip without a volume plays at full clip volume.
func clipVolume(a *component.Audio, i int) float64 {
	v := 1.0
	if i < len(a.Volume) {
		v = a.Volume[i]
	}
	return common.Clamp(v*common.SoundFXVolume, 0, 1)
}
