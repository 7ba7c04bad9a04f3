package component

import "github.com/milk9111/stickycam/obj"

// Camera links a camera entity to the controller that solves its position.
// The entity's Transform receives the solved position (X, Y) and zoom
// (ScaleX, ScaleY) every frame.
type Camera struct {
	TargetName string
	Controller *obj.StickyCamera
}

var CameraComponent = NewComponent[Camera]()
