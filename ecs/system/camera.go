package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
	"github.com/milk9111/stickycam/obj"
)

// CameraSystem drives the camera entity's StickyCamera: it binds the target,
// forwards pointer and zoom input, advances the solver by the frame delta and
// writes the result back into the camera Transform.
type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
	controller   *obj.StickyCamera

	viewportW     float64
	viewportH     float64
	viewportDirty bool
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// SetViewportSize records the viewport the camera renders into. Metrics are
// recomputed on the next Update when the size changed.
func (cs *CameraSystem) SetViewportSize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if cs.viewportW == width && cs.viewportH == height {
		return
	}
	cs.viewportW = width
	cs.viewportH = height
	cs.viewportDirty = true
}

// Controller returns the controller currently driven, if any.
func (cs *CameraSystem) Controller() *obj.StickyCamera {
	return cs.controller
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if !ecs.IsAlive(w, cs.camEntity) {
		cs.detach()
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			cs.camEntity = camEntity
		}
	}

	camComp, ok := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())
	if !ok || camComp.Controller == nil {
		return
	}

	ctrl := camComp.Controller
	if ctrl != cs.controller {
		// newly attached: it needs viewport metrics and a target binding
		cs.detach()
		cs.controller = ctrl
		cs.viewportDirty = true
	}

	if cs.viewportDirty && cs.viewportW > 0 && cs.viewportH > 0 {
		ctrl.RecalculateViewportMetrics(cs.viewportW, cs.viewportH)
		cs.viewportDirty = false
	}

	if cs.targetEntity.Valid() && !ecs.IsAlive(w, cs.targetEntity) {
		cs.targetEntity = 0
		ctrl.SetTarget(nil)
	}
	if !cs.targetEntity.Valid() {
		if targetEntity := findEntityByNameOrTag(w, camComp.TargetName); targetEntity.Valid() {
			cs.targetEntity = targetEntity
			ctrl.SetTarget(transformTarget(w, targetEntity))
		}
	}

	if inputEntity, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		input, _ := ecs.Get(w, inputEntity, component.InputComponent.Kind())
		ctrl.SetPointer(cp.Vector{X: input.PointerX, Y: input.PointerY})
	}

	for _, evt := range w.Events().DrainType(ecs.EventZoomRequested) {
		if zoom, ok := evt.Data.(obj.ZoomEvent); ok {
			ctrl.HandleZoom(zoom)
		}
	}
	for range w.Events().DrainType(ecs.EventCameraCenterToggled) {
		ctrl.ForceCentered = !ctrl.ForceCentered
	}

	ctrl.Update(w.Delta())

	if camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind()); ok {
		pos := ctrl.Position()
		zoom := ctrl.Zoom()
		camTransform.X = pos.X
		camTransform.Y = pos.Y
		camTransform.ScaleX = zoom.X
		camTransform.ScaleY = zoom.Y
	}
}

// Close releases the current camera binding.
func (cs *CameraSystem) Close() {
	if cs.controller != nil {
		cs.controller.Close()
	}
	cs.detach()
	cs.camEntity = 0
}

func (cs *CameraSystem) detach() {
	cs.controller = nil
	cs.targetEntity = 0
}

// transformTarget follows an entity's Transform. Once the entity loses its
// transform the last seen position is reported.
func transformTarget(w *ecs.World, e ecs.Entity) obj.TargetFunc {
	var last cp.Vector
	return func() cp.Vector {
		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			last = cp.Vector{X: t.X, Y: t.Y}
		}
		return last
	}
}

func findEntityByNameOrTag(w *ecs.World, name string) ecs.Entity {
	if name == "player" {
		if e, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
			return e
		}
	}

	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	return found
}
