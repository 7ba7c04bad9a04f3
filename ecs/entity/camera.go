package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
	"github.com/milk9111/stickycam/obj"
	"github.com/milk9111/stickycam/prefabs"
)

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return 0, fmt.Errorf("camera: load spec: %w", err)
	}
	return NewCameraFromSpec(w, cameraSpec)
}

func NewCameraFromSpec(w *ecs.World, cameraSpec *prefabs.CameraSpec) (ecs.Entity, error) {
	controller := obj.NewStickyCamera(CameraTuning(cameraSpec))
	controller.ForceCentered = cameraSpec.ForceCentered
	controller.SnapTo(cp.Vector{X: cameraSpec.Transform.X, Y: cameraSpec.Transform.Y})

	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	name := cameraSpec.Name
	if name == "" {
		name = "camera"
	}
	if err := ecs.Add(w, camera, component.NameComponent.Kind(), &component.Name{Value: name}); err != nil {
		return 0, fmt.Errorf("camera: add name: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{
		X:      cameraSpec.Transform.X,
		Y:      cameraSpec.Transform.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		TargetName: cameraSpec.TargetName,
		Controller: controller,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}

// CameraTuning converts a decoded prefab into controller tuning.
func CameraTuning(cameraSpec *prefabs.CameraSpec) obj.CameraTuning {
	return obj.CameraTuning{
		DeadZoneRadius: cameraSpec.DeadZoneRadius,
		MaxLead:        cameraSpec.MaxLead,
		FollowSpeed:    cameraSpec.FollowSpeed,
		ZoomSpeed:      cameraSpec.ZoomSpeed,
		ZoomStep:       cameraSpec.ZoomStep,
		MinZoom:        cameraSpec.MinZoom,
		MaxZoom:        cameraSpec.MaxZoom,
	}
}

// ZoomBindings returns the key bindings from a camera prefab, falling back to
// the defaults for any action the prefab leaves empty.
func ZoomBindings(cameraSpec *prefabs.CameraSpec) obj.ZoomBindings {
	bindings := obj.DefaultZoomBindings()
	if keys := prefabs.Keys(cameraSpec.Bindings.ZoomIn); len(keys) > 0 {
		bindings.In = keys
	}
	if keys := prefabs.Keys(cameraSpec.Bindings.ZoomOut); len(keys) > 0 {
		bindings.Out = keys
	}
	if keys := prefabs.Keys(cameraSpec.Bindings.ZoomReset); len(keys) > 0 {
		bindings.Reset = keys
	}
	return bindings
}
