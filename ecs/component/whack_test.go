package component

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestWhackFrameTiming(t *testing.T) {
	w := Whack{FPS: 16, TotalFrames: 16}
	dt := 1.0 / 16

	// frame k-1 after k ticks of one frame duration
	for k := 1; k <= 16; k++ {
		w.Advance(dt)
		if w.FrameIndex != k-1 {
			t.Fatalf("tick %d: expected frame %d, got %d", k, k-1, w.FrameIndex)
		}
		if w.Expired {
			t.Fatalf("tick %d: expired early", k)
		}
	}

	w.Advance(dt)
	if w.FrameIndex != 16 || !w.Expired {
		t.Fatalf("expected expiry at frame 16, got frame=%d expired=%v", w.FrameIndex, w.Expired)
	}
}

func TestWhackHoldsFirstFrame(t *testing.T) {
	w := Whack{FPS: 16, TotalFrames: 16}
	w.Advance(1.0 / 60)
	w.Advance(1.0 / 60)
	w.Advance(1.0 / 60)
	w.Advance(1.0 / 60)
	w.Advance(1.0 / 60)
	w.Advance(1.0 / 60)
	w.Advance(1.0 / 60)
	if w.FrameIndex != 0 {
		t.Fatalf("expected frame 0 for the first two frame durations, got %d", w.FrameIndex)
	}
}

func TestWhackSoundOnce(t *testing.T) {
	cases := []struct {
		name string
		dts  []float64
		want []bool
	}{
		{"first_tick", []float64{0.1, 0.1, 0.1}, []bool{true, false, false}},
		{"zero_first", []float64{0, 0, 0.1, 0.1}, []bool{false, false, true, false}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := Whack{FPS: 16, TotalFrames: 16, Sound: 0}
			for i, dt := range c.dts {
				if got := w.Advance(dt); got != c.want[i] {
					t.Fatalf("tick %d: expected sound=%v, got %v", i, c.want[i], got)
				}
			}
		})
	}
}

func TestWhackExpiredIsTerminal(t *testing.T) {
	w := Whack{FPS: 16, TotalFrames: 4}
	w.Advance(10)
	if !w.Expired || w.FrameIndex != 4 {
		t.Fatalf("expected clamp to total frames, got frame=%d expired=%v", w.FrameIndex, w.Expired)
	}
	elapsed := w.Elapsed
	if w.Advance(1) {
		t.Fatalf("expired whack must not play sound")
	}
	if w.Elapsed != elapsed {
		t.Fatalf("expired whack must not advance")
	}
	if w.Image() != nil {
		t.Fatalf("expired whack has no image")
	}
}

func TestWhackReachesEndMonotonically(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		total := rapid.IntRange(0, 32).Draw(t, "total")
		fps := rapid.Float64Range(1, 60).Draw(t, "fps")
		dt := rapid.Float64Range(0.001, 0.5).Draw(t, "dt")

		w := Whack{FPS: fps, TotalFrames: total}
		limit := int(math.Ceil(float64(total+2)/(dt*fps))) + 1
		prev := 0
		for i := 0; i < limit && !w.Expired; i++ {
			w.Advance(dt)
			if w.FrameIndex < prev {
				t.Fatalf("frame went backwards: %d -> %d", prev, w.FrameIndex)
			}
			if w.FrameIndex > total {
				t.Fatalf("frame %d beyond total %d", w.FrameIndex, total)
			}
			prev = w.FrameIndex
		}
		if !w.Expired {
			t.Fatalf("whack did not expire within %d ticks", limit)
		}
	})
}

func TestTargetStrikeOnce(t *testing.T) {
	target := Target{Kind: "puddle"}
	if !target.Strike() {
		t.Fatalf("first strike should land")
	}
	if target.Strike() {
		t.Fatalf("second strike must be ignored")
	}
}
