package system

import (
	"math"

	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
)

// MovementSystem moves players by their input at their configured speed.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	dt := w.Delta()
	ecs.ForEach2(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), func(e ecs.Entity, player *component.Player, input *component.Input) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		dx, dy := input.MoveX, input.MoveY
		// keep diagonals from being faster than straight lines
		if l := math.Hypot(dx, dy); l > 1 {
			dx /= l
			dy /= l
		}
		t.X += dx * player.MoveSpeed * dt
		t.Y += dy * player.MoveSpeed * dt
	})
}
