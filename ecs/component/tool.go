package component

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultToolCooldown = 1.0
	DefaultToolRange    = 30.0
)

// Tool is a melee implement with a cooldown in seconds. It is Ready when
// Remaining is exactly zero.
type Tool struct {
	Name      string
	Range     float64
	Cooldown  float64
	Remaining float64

	// Effect is the prefab spawned on a successful fire.
	Effect string
	Icon   *ebiten.Image
}

// FireRequest asks for one attack effect at X, Y.
type FireRequest struct {
	X      float64
	Y      float64
	Effect string
}

// Tick decays the cooldown by dt seconds, flooring at zero.
func (t *Tool) Tick(dt float64) {
	t.Remaining = math.Max(0, t.Remaining-dt)
}

func (t *Tool) Ready() bool {
	return t.Remaining == 0
}

// TryFire starts the cooldown and returns a spawn request Range units from
// the origin along (dx, dy). While cooling down it returns false and changes
// nothing.
func (t *Tool) TryFire(originX, originY, dx, dy float64) (FireRequest, bool) {
	if !t.Ready() {
		return FireRequest{}, false
	}
	t.Remaining = t.cooldown()
	return FireRequest{
		X:      originX + t.Range*dx,
		Y:      originY + t.Range*dy,
		Effect: t.Effect,
	}, true
}

func (t *Tool) cooldown() float64 {
	if t.Cooldown <= 0 {
		return DefaultToolCooldown
	}
	return t.Cooldown
}

// Toolbelt is the set of tools an actor carries. Active mirrors the held
// activate input; only the selected tool fires, but every tool cools down.
type Toolbelt struct {
	Tools    []Tool
	Selected int
	Active   bool
}

var ToolbeltComponent = NewComponent[Toolbelt]()

// Current returns the selected tool, or nil for an empty belt.
func (b *Toolbelt) Current() *Tool {
	if b == nil || b.Selected < 0 || b.Selected >= len(b.Tools) {
		return nil
	}
	return &b.Tools[b.Selected]
}

// Select switches to tool i. Out of range indexes are ignored.
func (b *Toolbelt) Select(i int) bool {
	if b == nil || i < 0 || i >= len(b.Tools) {
		return false
	}
	b.Selected = i
	return true
}

// Tick decays the cooldown of every tool.
func (b *Toolbelt) Tick(dt float64) {
	if b == nil {
		return
	}
	for i := range b.Tools {
		b.Tools[i].Tick(dt)
	}
}
