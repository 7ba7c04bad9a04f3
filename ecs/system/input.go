package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
	"github.com/milk9111/stickycam/obj"
)

// InputSystem polls ebiten once per frame, stores movement and pointer state in
// every Input component and queues zoom requests for the camera.
type InputSystem struct {
	zoom *obj.ZoomInput
}

func NewInputSystem(zoom *obj.ZoomInput) *InputSystem {
	return &InputSystem{zoom: zoom}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	const stickDeadzone = 0.2

	moveX, moveY := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		moveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		moveY += 1
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			moveX = lx
			moveY = ly
		}
	}

	cx, cy := ebiten.CursorPosition()

	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.MoveY = moveY
		input.PointerX = float64(cx)
		input.PointerY = float64(cy)
	})

	if i.zoom == nil {
		return
	}
	if ev := i.zoom.Poll(); ev != obj.ZoomNone {
		w.Events().Push(ecs.Event{Type: ecs.EventZoomRequested, Data: ev})
	}
}
