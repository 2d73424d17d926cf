package component

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const DefaultWhackFPS = 16.0

// NoSound marks a Whack without a splash clip.
const NoSound = -1

// Whack is the short-lived attack effect left by a tool. It plays its frames
// at FPS and expires once FrameIndex reaches TotalFrames.
type Whack struct {
	Elapsed     float64
	FPS         float64
	FrameIndex  int
	TotalFrames int
	Expired     bool

	// Sound is the index of the splash clip in the entity's Audio component,
	// resolved when the prefab is built.
	Sound       int
	SoundPlayed bool

	Radius float64
	Frames []*ebiten.Image
}

var WhackComponent = NewComponent[Whack]()

// Advance moves the effect dt seconds forward and reports whether the splash
// should start now, which happens on the first tick with dt > 0 only.
//
// The frame is one behind elapsed time, so frame 0 stays up for two frame
// durations.
func (w *Whack) Advance(dt float64) bool {
	if w.Expired {
		return false
	}
	if dt < 0 {
		dt = 0
	}

	playSound := false
	if w.Elapsed == 0 && dt > 0 && !w.SoundPlayed {
		w.SoundPlayed = true
		playSound = true
	}

	w.Elapsed += dt
	frame := int(math.Floor(w.Elapsed/w.frameDuration())) - 1
	if frame < 0 {
		frame = 0
	}
	if frame > w.TotalFrames {
		frame = w.TotalFrames
	}
	w.FrameIndex = frame
	w.Expired = w.FrameIndex >= w.TotalFrames
	return playSound
}

// Image returns the texture for the current frame, or nil once the effect
// has run out of frames.
func (w *Whack) Image() *ebiten.Image {
	if w.Expired || w.FrameIndex < 0 || w.FrameIndex >= len(w.Frames) {
		return nil
	}
	return w.Frames[w.FrameIndex]
}

func (w *Whack) frameDuration() float64 {
	fps := w.FPS
	if fps <= 0 {
		fps = DefaultWhackFPS
	}
	return 1 / fps
}
