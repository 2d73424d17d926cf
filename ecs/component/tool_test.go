package component

import (
	"testing"

	"pgregory.net/rapid"
)

func TestToolCooldownScenario(t *testing.T) {
	tool := Tool{Name: "shovel", Range: DefaultToolRange, Cooldown: 1.0}

	if _, ok := tool.TryFire(0, 0, 1, 0); !ok {
		t.Fatalf("fresh tool should fire")
	}
	if tool.Remaining != 1.0 {
		t.Fatalf("expected cooldown 1.0 after firing, got %v", tool.Remaining)
	}

	tool.Tick(0.5)
	if _, ok := tool.TryFire(0, 0, 1, 0); ok {
		t.Fatalf("tool fired at t=0.5 while cooling down")
	}
	if tool.Remaining != 0.5 {
		t.Fatalf("failed fire must not touch the cooldown, got %v", tool.Remaining)
	}

	tool.Tick(0.5)
	if !tool.Ready() {
		t.Fatalf("expected tool ready at t=1.0, remaining %v", tool.Remaining)
	}
	if _, ok := tool.TryFire(0, 0, 1, 0); !ok {
		t.Fatalf("tool should fire again at t=1.0")
	}
}

func TestToolSpawnPosition(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{"east", 1, 0, 130, 200},
		{"west", -1, 0, 70, 200},
		{"screen_up", 0, -1, 100, 170},
		{"screen_down", 0, 1, 100, 230},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tool := Tool{Range: 30, Effect: "whack.yaml"}
			req, ok := tool.TryFire(100, 200, c.dx, c.dy)
			if !ok {
				t.Fatalf("expected fire")
			}
			if req.X != c.wantX || req.Y != c.wantY {
				t.Fatalf("expected spawn at (%v, %v), got (%v, %v)", c.wantX, c.wantY, req.X, req.Y)
			}
			if req.Effect != "whack.yaml" {
				t.Fatalf("expected effect prefab to be carried, got %q", req.Effect)
			}
		})
	}
}

func TestToolTickFloorsAtZero(t *testing.T) {
	tool := Tool{Remaining: 0.25}
	tool.Tick(1)
	if tool.Remaining != 0 {
		t.Fatalf("expected 0, got %v", tool.Remaining)
	}
	tool.Tick(0)
	if !tool.Ready() {
		t.Fatalf("expected ready")
	}
}

func TestToolZeroCooldownUsesDefault(t *testing.T) {
	tool := Tool{}
	tool.TryFire(0, 0, 0, 1)
	if tool.Remaining != DefaultToolCooldown {
		t.Fatalf("expected default cooldown, got %v", tool.Remaining)
	}
}

func TestToolNeverFiresTwiceWithinCooldown(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tool := Tool{Range: 30, Cooldown: 1.0}
		frames := rapid.SliceOfN(rapid.Float64Range(0, 0.2), 1, 200).Draw(t, "dts")
		attempts := rapid.IntRange(1, 4).Draw(t, "attempts")

		sinceFire := -1.0
		for _, dt := range frames {
			tool.Tick(dt)
			if sinceFire >= 0 {
				sinceFire += dt
			}
			for i := 0; i < attempts; i++ {
				if _, ok := tool.TryFire(0, 0, 1, 0); !ok {
					continue
				}
				if sinceFire >= 0 && sinceFire < 1.0-1e-9 {
					t.Fatalf("fired again after %v seconds", sinceFire)
				}
				sinceFire = 0
			}
		}
	})
}

func TestToolbelt(t *testing.T) {
	belt := Toolbelt{Tools: []Tool{{Name: "shovel"}, {Name: "seedbag"}}}

	if got := belt.Current(); got == nil || got.Name != "shovel" {
		t.Fatalf("expected shovel selected by default, got %+v", got)
	}
	if belt.Select(5) {
		t.Fatalf("out of range select should be ignored")
	}
	if !belt.Select(1) || belt.Current().Name != "seedbag" {
		t.Fatalf("expected seedbag after select")
	}

	belt.Tools[0].Remaining = 1
	belt.Tools[1].Remaining = 0.5
	belt.Tick(0.5)
	if belt.Tools[0].Remaining != 0.5 || belt.Tools[1].Remaining != 0 {
		t.Fatalf("every tool should cool down, got %v and %v", belt.Tools[0].Remaining, belt.Tools[1].Remaining)
	}

	var empty Toolbelt
	if empty.Current() != nil {
		t.Fatalf("empty belt has no current tool")
	}
}
