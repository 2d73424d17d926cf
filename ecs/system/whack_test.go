package system

import (
	"testing"

	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

func TestWhackSystemLifecycle(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDeltaTime(1.0 / 16)

	e := newWhack(t, w, 0, 0, 16)
	whack, _ := ecs.Get(w, e, component.WhackComponent.Kind())
	whack.Sound = 0
	mustAdd(t, w, e, component.SpriteComponent, &component.Sprite{})
	mustAdd(t, w, e, component.AudioComponent, &component.Audio{
		Names:   []string{"splash"},
		Players: []component.Clip{nil},
		Volume:  []float64{1},
		Play:    []bool{false},
		Stop:    []bool{false},
	})

	ws := NewWhackSystem()
	ws.Update(w)

	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if !audio.Play[0] {
		t.Fatalf("expected splash flagged on the first tick")
	}
	audio.Play[0] = false

	for tick := 2; tick <= 16; tick++ {
		ws.Update(w)
		if audio.Play[0] {
			t.Fatalf("tick %d: splash flagged again", tick)
		}
		if !w.IsAlive(e) {
			t.Fatalf("tick %d: destroyed before the last frame", tick)
		}
		if whack.FrameIndex != tick-1 {
			t.Fatalf("tick %d: frame %d, want %d", tick, whack.FrameIndex, tick-1)
		}
	}

	ws.Update(w)
	if w.IsAlive(e) {
		t.Fatalf("expected whack destroyed on the tick it expires")
	}
}

func TestWhackSystemHidesSpriteWithoutFrames(t *testing.T) {
	w := ecs.NewWorld()
	w.SetDeltaTime(testDT)
	e := newWhack(t, w, 0, 0, 16)
	mustAdd(t, w, e, component.SpriteComponent, &component.Sprite{})

	NewWhackSystem().Update(w)

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !sprite.Hidden {
		t.Fatalf("expected sprite hidden when no frame texture is available")
	}
}

func TestWhackSystemZeroDeltaHoldsSound(t *testing.T) {
	w := ecs.NewWorld()
	e := newWhack(t, w, 0, 0, 16)
	whack, _ := ecs.Get(w, e, component.WhackComponent.Kind())
	whack.Sound = 0
	mustAdd(t, w, e, component.AudioComponent, &component.Audio{
		Players: []component.Clip{nil},
		Play:    []bool{false},
		Stop:    []bool{false},
	})

	ws := NewWhackSystem()
	ws.Update(w)
	audio, _ := ecs.Get(w, e, component.AudioComponent.Kind())
	if audio.Play[0] {
		t.Fatalf("a paused frame must not start the splash")
	}

	w.SetDeltaTime(testDT)
	ws.Update(w)
	if !audio.Play[0] {
		t.Fatalf("expected splash on the first real tick")
	}
}
