package system

import (
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
		vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())

		speed := player.MoveSpeed
		if speed <= 0 {
			speed = component.DefaultMoveSpeed
		}
		vel.X = input.MoveX * speed
		vel.Y = input.MoveY * speed

		belt, ok := ecs.Get(w, e, component.ToolbeltComponent.Kind())
		if !ok {
			continue
		}
		belt.Active = input.Activate
		if input.Select != component.NoToolSelection {
			belt.Select(input.Select)
		}
	}
}
