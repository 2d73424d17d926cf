package component

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// step runs one unobstructed frame: pre-step, integrate, post-step.
func step(w *Walker, x, y *float64, vx, vy float64) {
	w.Begin(vx, vy, *x, *y)
	*x += vx
	*y -= vy
	w.Settle(*x, *y)
}

func TestNewWalkerFacesSouth(t *testing.T) {
	w := NewWalker()
	if w.Facing != FacingSouth {
		t.Fatalf("expected default facing south, got %s", w.Facing)
	}
	if w.Frame != 0 || w.Travelled != 0 {
		t.Fatalf("expected idle walker, got frame=%d travelled=%v", w.Frame, w.Travelled)
	}
}

func TestWalkerFrameFollowsDistance(t *testing.T) {
	w := NewWalker()
	w.Facing = FacingEast

	want := []int{0, 1, 1, 2, 2, 3, 3, 0, 0, 1}
	x, y := 0.0, 0.0
	for i, frame := range want {
		step(&w, &x, &y, 4, 0)
		if w.Frame != frame {
			t.Fatalf("after %d frames (%v units): expected frame %d, got %d", i+1, w.Travelled, frame, w.Frame)
		}
	}
}

func TestWalkerTurnFrameDoesNotCount(t *testing.T) {
	w := NewWalker()
	x, y := 0.0, 0.0

	step(&w, &x, &y, 4, 0)
	if w.Facing != FacingEast {
		t.Fatalf("expected east, got %s", w.Facing)
	}
	if w.Travelled != 0 {
		t.Fatalf("turning frame should not accumulate, travelled=%v", w.Travelled)
	}

	step(&w, &x, &y, 4, 0)
	step(&w, &x, &y, 4, 0)
	if w.Frame != 1 {
		t.Fatalf("expected frame 1 after 8 units in one facing, got %d", w.Frame)
	}
}

func TestWalkerFacing(t *testing.T) {
	cases := []struct {
		name   string
		start  Facing
		vx, vy float64
		want   Facing
	}{
		{"east", FacingSouth, 1, 0, FacingEast},
		{"west", FacingSouth, -1, 0, FacingWest},
		{"north", FacingSouth, 0, 1, FacingNorth},
		{"south", FacingNorth, 0, -1, FacingSouth},
		{"north_east_prefers_vertical", FacingWest, 1, 1, FacingNorth},
		{"south_west_prefers_vertical", FacingEast, -1, -1, FacingSouth},
		{"tiny_component_still_counts", FacingSouth, 1e-9, 0, FacingEast},
		{"zero_keeps_facing", FacingWest, 0, 0, FacingWest},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWalker()
			w.Facing = c.start
			w.Begin(c.vx, c.vy, 0, 0)
			if w.Facing != c.want {
				t.Fatalf("expected %s, got %s", c.want, w.Facing)
			}
		})
	}
}

func TestWalkerResets(t *testing.T) {
	cases := []struct {
		name   string
		vx, vy float64
	}{
		{"stop", 0, 0},
		{"turn", 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWalker()
			w.Facing = FacingEast
			x, y := 0.0, 0.0
			for i := 0; i < 7; i++ {
				step(&w, &x, &y, 4, 0)
			}
			if w.Frame != 3 {
				t.Fatalf("setup: expected frame 3, got %d", w.Frame)
			}

			w.Begin(c.vx, c.vy, x, y)
			if w.Frame != 0 || w.Travelled != 0 {
				t.Fatalf("expected reset, got frame=%d travelled=%v", w.Frame, w.Travelled)
			}
		})
	}
}

func TestWalkerBlockedKeepsFrame(t *testing.T) {
	w := NewWalker()
	w.Facing = FacingEast
	x, y := 0.0, 0.0
	for i := 0; i < 5; i++ {
		step(&w, &x, &y, 4, 0)
	}
	frame := w.Frame
	if frame == 0 {
		t.Fatalf("setup: expected a mid-cycle frame")
	}

	for i := 0; i < 3; i++ {
		w.Begin(4, 0, x, y)
		// physics pushed the actor back to where it started
		if w.Settle(x, y) {
			t.Fatalf("blocked frame %d should not advance the cycle", i)
		}
		if w.Frame != frame {
			t.Fatalf("blocked actor should hold frame %d, got %d", frame, w.Frame)
		}
	}
}

func TestWalkerCustomStride(t *testing.T) {
	w := NewWalker()
	w.Facing = FacingNorth
	w.Stride = 2
	w.Frames = 3
	x, y := 0.0, 0.0
	step(&w, &x, &y, 0, 5)
	// floor(5/2) % 3
	if w.Frame != 2 {
		t.Fatalf("expected frame 2, got %d", w.Frame)
	}
}

func TestWalkerFrameIsPureFunctionOfDistance(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		facing := Facing(rapid.IntRange(0, int(FacingCount)-1).Draw(t, "facing"))
		steps := rapid.SliceOfN(rapid.Float64Range(0, 20), 1, 60).Draw(t, "steps")

		w := NewWalker()
		w.Facing = facing
		ux, uy := facing.Vector()
		x, y := 100.0, 100.0
		total := 0.0
		for _, d := range steps {
			w.Begin(ux, uy, x, y)
			// physics may shorten the move to anything in [0, d]
			x += ux * d
			y -= uy * d
			w.Settle(x, y)
			total += d

			want := int(math.Floor(w.Travelled/DefaultWalkStride)) % DefaultWalkFrames
			if w.Frame != want {
				t.Fatalf("frame %d does not match travelled %v", w.Frame, w.Travelled)
			}
			if math.Abs(w.Travelled-total) > 1e-6 {
				t.Fatalf("travelled %v, want %v", w.Travelled, total)
			}
		}
	})
}

func TestWalkerTurnAlwaysResets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := NewWalker()
		w.Facing = Facing(rapid.IntRange(0, int(FacingCount)-1).Draw(t, "facing"))
		w.Travelled = rapid.Float64Range(0, 1000).Draw(t, "travelled")
		w.Frame = rapid.IntRange(0, DefaultWalkFrames-1).Draw(t, "frame")

		vx := rapid.Float64Range(-4, 4).Draw(t, "vx")
		vy := rapid.Float64Range(-4, 4).Draw(t, "vy")
		w.Begin(vx, vy, 0, 0)

		if w.Turned() || (vx == 0 && vy == 0) {
			if w.Frame != 0 || w.Travelled != 0 {
				t.Fatalf("turn or stop must reset, got frame=%d travelled=%v", w.Frame, w.Travelled)
			}
		}
	})
}
