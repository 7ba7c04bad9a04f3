package obj

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickycam/common"
)

// Target is anything the camera can follow. The camera never owns it.
type Target interface {
	GlobalPosition() cp.Vector
}

// TargetFunc adapts a plain function to Target.
type TargetFunc func() cp.Vector

func (f TargetFunc) GlobalPosition() cp.Vector {
	return f()
}

// StickyCamera follows a target and leads the view toward the pointer once the
// pointer leaves a circular dead zone around the viewport center. Position and
// zoom are smoothed toward their goals every Update.
//
// The camera is inactive until a target is assigned with SetTarget; Update is a
// no-op while inactive.
type StickyCamera struct {
	// ForceCentered ignores the pointer and keeps the target dead center.
	ForceCentered bool

	target Target
	active bool

	halfExtent  cp.Vector
	axisScaling cp.Vector

	pointer     cp.Vector
	pos         cp.Vector
	zoom        cp.Vector
	desiredZoom cp.Vector

	tuning CameraTuning
}

// NewStickyCamera creates an inactive camera at the origin with a zoom of 1.
func NewStickyCamera(tuning CameraTuning) *StickyCamera {
	return &StickyCamera{
		zoom:        cp.Vector{X: 1, Y: 1},
		desiredZoom: cp.Vector{X: 1, Y: 1},
		tuning:      tuning,
	}
}

// SetTarget assigns the followed target. A nil target deactivates the camera
// and freezes its current position and zoom.
func (c *StickyCamera) SetTarget(t Target) {
	c.target = t
	c.active = t != nil
}

func (c *StickyCamera) Target() Target {
	return c.target
}

// Active reports whether Update currently does any work.
func (c *StickyCamera) Active() bool {
	return c.active
}

// RecalculateViewportMetrics must be called whenever the camera is attached to
// a viewport or the viewport changes size. Both dimensions must be positive.
func (c *StickyCamera) RecalculateViewportMetrics(width, height float64) {
	c.halfExtent = cp.Vector{X: width / 2, Y: height / 2}

	// Stretch the shorter axis so the dead zone is a circle on screen.
	if width > height {
		c.axisScaling = cp.Vector{X: 1, Y: width / height}
	} else {
		c.axisScaling = cp.Vector{X: height / width, Y: 1}
	}
}

func (c *StickyCamera) HalfExtent() cp.Vector {
	return c.halfExtent
}

func (c *StickyCamera) AxisScaling() cp.Vector {
	return c.axisScaling
}

// SetPointer stores the pointer position in viewport space for the next Update.
func (c *StickyCamera) SetPointer(p cp.Vector) {
	c.pointer = p
}

func (c *StickyCamera) Pointer() cp.Vector {
	return c.pointer
}

// DesiredPosition returns where the camera wants to be for the given pointer
// (viewport space) and target (world space). Inside the dead zone this is the
// target itself; past it the camera leads toward the pointer by at most
// MaxLead units.
func (c *StickyCamera) DesiredPosition(pointer, target cp.Vector) cp.Vector {
	offset := pointer.Sub(c.halfExtent)
	offset = cp.Vector{X: offset.X * c.axisScaling.X, Y: offset.Y * c.axisScaling.Y}

	radius := c.tuning.DeadZoneRadius
	lengthSq := offset.LengthSq()
	if lengthSq <= radius*radius {
		return target
	}

	lead := math.Min(math.Sqrt(lengthSq)-radius, c.tuning.MaxLead)
	return target.Add(offset.Normalize().Mult(lead))
}

// Update advances the camera by dt seconds.
func (c *StickyCamera) Update(dt float64) {
	if !c.active {
		return
	}

	targetPos := c.target.GlobalPosition()
	next := targetPos
	if !c.ForceCentered {
		next = c.DesiredPosition(c.pointer, targetPos)
	}

	if !common.ApproxEqualVec(c.pos, next) {
		c.pos = c.pos.Lerp(next, common.SmoothFactor(dt, c.tuning.FollowSpeed))
	}

	if !common.ApproxEqualVec(c.zoom, c.desiredZoom) {
		c.zoom = c.zoom.Lerp(c.desiredZoom, common.SmoothFactor(dt, c.tuning.ZoomSpeed))
	}
}

// HandleZoom applies a discrete zoom request. Callers deliver each press once,
// on its leading edge.
func (c *StickyCamera) HandleZoom(ev ZoomEvent) {
	switch ev {
	case ZoomIn:
		c.setDesiredZoom(c.desiredZoom.X + c.tuning.ZoomStep)
	case ZoomOut:
		c.setDesiredZoom(c.desiredZoom.X - c.tuning.ZoomStep)
	case ZoomReset:
		c.desiredZoom = cp.Vector{X: 1, Y: 1}
	}
}

func (c *StickyCamera) setDesiredZoom(z float64) {
	z = common.Clamp(z, c.tuning.MinZoom, c.tuning.MaxZoom)
	c.desiredZoom = cp.Vector{X: z, Y: z}
}

// Position returns the camera center in world coordinates.
func (c *StickyCamera) Position() cp.Vector {
	return c.pos
}

// Zoom returns the current (smoothed) zoom factor.
func (c *StickyCamera) Zoom() cp.Vector {
	return c.zoom
}

func (c *StickyCamera) DesiredZoom() cp.Vector {
	return c.desiredZoom
}

// SnapTo immediately moves the camera center to p. Use this when a smoothed
// pan would look wrong, e.g. after a level load.
func (c *StickyCamera) SnapTo(p cp.Vector) {
	c.pos = p
}

func (c *StickyCamera) Tuning() CameraTuning {
	return c.tuning
}

// SetTuning replaces the tuning and pulls the desired zoom back into the new
// range.
func (c *StickyCamera) SetTuning(t CameraTuning) {
	c.tuning = t
	if c.desiredZoom.X < t.MinZoom || c.desiredZoom.X > t.MaxZoom {
		c.setDesiredZoom(c.desiredZoom.X)
	}
}

// Close detaches the camera from its target and viewport.
func (c *StickyCamera) Close() {
	c.active = false
	c.target = nil
	c.halfExtent = cp.Vector{}
	c.axisScaling = cp.Vector{}
}

// GeoM returns the world-to-screen transform for the current camera state: the
// camera position lands on the viewport center.
func (c *StickyCamera) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.pos.X, -c.pos.Y)
	g.Scale(c.zoom.X, c.zoom.Y)
	g.Translate(c.halfExtent.X, c.halfExtent.Y)
	return g
}

// ScreenToWorld maps a viewport position to world coordinates.
func (c *StickyCamera) ScreenToWorld(x, y float64) (float64, float64) {
	g := c.GeoM()
	if !g.IsInvertible() {
		return c.pos.X, c.pos.Y
	}
	g.Invert()
	return g.Apply(x, y)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *StickyCamera) ViewTopLeft() (float64, float64) {
	if c.zoom.X == 0 || c.zoom.Y == 0 {
		return c.pos.X, c.pos.Y
	}
	return c.pos.X - c.halfExtent.X/c.zoom.X, c.pos.Y - c.halfExtent.Y/c.zoom.Y
}
