package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
	"github.com/milk9111/stickycam/prefabs"
)

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, fmt.Errorf("player: load spec: %w", err)
	}
	return NewPlayerFromSpec(w, playerSpec)
}

func NewPlayerFromSpec(w *ecs.World, playerSpec *prefabs.PlayerSpec) (ecs.Entity, error) {
	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}

	name := playerSpec.Name
	if name == "" {
		name = "player"
	}
	if err := ecs.Add(w, player, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("player: add name: %w", err)
	}

	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		X:      playerSpec.Transform.X,
		Y:      playerSpec.Transform.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}

	speed := playerSpec.MoveSpeed
	if speed == 0 {
		speed = 240
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: speed}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	width, height := playerSpec.Sprite.Width, playerSpec.Sprite.Height
	if width == 0 {
		width = 32
	}
	if height == 0 {
		height = 32
	}
	var c color.Color = color.White
	if playerSpec.Sprite.Color.Color != nil {
		c = playerSpec.Sprite.Color.Color
	}
	if err := ecs.Add(w, player, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  width,
		Height: height,
		Color:  c,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	if err := ecs.Add(w, player, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerSpec.RenderLayer.Index}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	return player, nil
}
