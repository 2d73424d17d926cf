package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

// toolKeys select hotbar slots in order: 1 is the shovel, 2 the seed bag.
var toolKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2}

type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	activate := ebiten.IsKeyPressed(ebiten.KeySpace)

	moveX, moveY := directionFromKeys(up, down, left, right)

	selected := component.NoToolSelection
	for idx, key := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			selected = idx
		}
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		sx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		// Stick Y grows downward; input is logical with north positive.
		sy := -ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(sx, sy) > stickDeadzone {
			moveX, moveY = normalize(sx, sy)
		}

		activate = activate || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopLeft) {
			selected = 0
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonFrontTopRight) {
			selected = 1
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.Activate = activate
		input.Select = selected
	})
}

// directionFromKeys returns the logical unit direction for the held keys.
// Opposite keys cancel and diagonals are normalised.
func directionFromKeys(up, down, left, right bool) (float64, float64) {
	x, y := 0.0, 0.0
	if left {
		x -= 1
	}
	if right {
		x += 1
	}
	if up {
		y += 1
	}
	if down {
		y -= 1
	}
	return normalize(x, y)
}

func normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	if l <= 1 {
		return x, y
	}
	return x / l, y / l
}
