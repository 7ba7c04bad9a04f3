package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
	"github.com/milk9111/stickycam/ecs/entity"
	"github.com/milk9111/stickycam/obj"
	"github.com/milk9111/stickycam/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cameraFixture struct {
	w      *ecs.World
	sched  *ecs.Scheduler
	camSys *CameraSystem
	player ecs.Entity
	camera ecs.Entity
}

func newCameraFixture(t *testing.T, cameraSpec *prefabs.CameraSpec) *cameraFixture {
	t.Helper()

	w := ecs.NewWorld()
	player, err := entity.NewPlayerFromSpec(w, &prefabs.PlayerSpec{Name: "player", MoveSpeed: 100})
	require.NoError(t, err)
	camera, err := entity.NewCameraFromSpec(w, cameraSpec)
	require.NoError(t, err)

	camSys := NewCameraSystem()
	camSys.SetViewportSize(800, 800)

	return &cameraFixture{
		w:      w,
		sched:  ecs.NewScheduler(NewMovementSystem(), camSys),
		camSys: camSys,
		player: player,
		camera: camera,
	}
}

func defaultCameraSpec(t *testing.T) *prefabs.CameraSpec {
	t.Helper()
	spec, err := prefabs.ParseCameraSpec([]byte("name: camera\n"))
	require.NoError(t, err)
	return spec
}

func (f *cameraFixture) setPointer(x, y float64) {
	input, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	input.PointerX = x
	input.PointerY = y
}

func (f *cameraFixture) cameraTransform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.camera, component.TransformComponent.Kind())
	require.True(t, ok)
	return tr
}

func TestCameraSystemFollowsPlayer(t *testing.T) {
	f := newCameraFixture(t, defaultCameraSpec(t))
	f.setPointer(400, 400)

	input, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	input.MoveX = 1

	// one second of movement at 100 units/s with a camera that lands in one step
	f.sched.Step(f.w, 1)

	ctrl := f.camSys.Controller()
	require.NotNil(t, ctrl)
	assert.True(t, ctrl.Active())
	assert.Equal(t, cp.Vector{X: 400, Y: 400}, ctrl.HalfExtent())

	playerT, _ := ecs.Get(f.w, f.player, component.TransformComponent.Kind())
	assert.InDelta(t, 100, playerT.X, 1e-9)

	camT := f.cameraTransform(t)
	assert.InDelta(t, 100, camT.X, 1e-9)
	assert.InDelta(t, 0, camT.Y, 1e-9)
	assert.Equal(t, 1.0, camT.ScaleX)
}

func TestCameraSystemLeadsTowardPointer(t *testing.T) {
	f := newCameraFixture(t, defaultCameraSpec(t))
	f.setPointer(800, 400)

	f.sched.Step(f.w, 1)

	camT := f.cameraTransform(t)
	assert.InDelta(t, 100, camT.X, 1e-9)
	assert.InDelta(t, 0, camT.Y, 1e-9)
}

func TestCameraSystemZoomEvents(t *testing.T) {
	f := newCameraFixture(t, defaultCameraSpec(t))
	f.setPointer(400, 400)

	for i := 0; i < 3; i++ {
		f.w.Events().Push(ecs.Event{Type: ecs.EventZoomRequested, Data: obj.ZoomIn})
	}
	f.w.Events().Push(ecs.Event{Type: "unrelated"})
	f.sched.Step(f.w, 0.25)

	ctrl := f.camSys.Controller()
	assert.InDelta(t, 1.3, ctrl.DesiredZoom().X, 1e-9)
	camT := f.cameraTransform(t)
	assert.InDelta(t, 1.3, camT.ScaleX, 1e-9)
	assert.InDelta(t, 1.3, camT.ScaleY, 1e-9)

	f.w.Events().Push(ecs.Event{Type: ecs.EventZoomRequested, Data: obj.ZoomReset})
	f.sched.Step(f.w, 0)
	assert.Equal(t, cp.Vector{X: 1, Y: 1}, ctrl.DesiredZoom())
}

func TestCameraSystemCenterToggle(t *testing.T) {
	f := newCameraFixture(t, defaultCameraSpec(t))
	f.setPointer(800, 400)

	f.w.Events().Push(ecs.Event{Type: ecs.EventCameraCenterToggled})
	f.sched.Step(f.w, 1)

	assert.True(t, f.camSys.Controller().ForceCentered)
	camT := f.cameraTransform(t)
	assert.Equal(t, 0.0, camT.X)
}

func TestCameraSystemTargetDies(t *testing.T) {
	f := newCameraFixture(t, defaultCameraSpec(t))
	f.setPointer(400, 400)
	input, _ := ecs.Get(f.w, f.player, component.InputComponent.Kind())
	input.MoveY = 1
	f.sched.Step(f.w, 1)

	frozen := f.camSys.Controller().Position()
	require.True(t, ecs.DestroyEntity(f.w, f.player))

	for i := 0; i < 10; i++ {
		f.sched.Step(f.w, 1)
	}
	assert.False(t, f.camSys.Controller().Active())
	assert.Equal(t, frozen, f.camSys.Controller().Position())

	// a new player re-activates the camera
	_, err := entity.NewPlayerFromSpec(f.w, &prefabs.PlayerSpec{
		Name:      "player",
		Transform: prefabs.TransformSpec{X: -50, Y: 20},
	})
	require.NoError(t, err)
	f.sched.Step(f.w, 1)
	assert.True(t, f.camSys.Controller().Active())
}

func TestCameraSystemNamedTarget(t *testing.T) {
	spec := defaultCameraSpec(t)
	spec.TargetName = "beacon"
	spec.ForceCentered = true
	f := newCameraFixture(t, spec)

	f.sched.Step(f.w, 1)
	assert.False(t, f.camSys.Controller().Active())

	beacon := ecs.CreateEntity(f.w)
	require.NoError(t, ecs.Add(f.w, beacon, component.NameComponent.Kind(), &component.Name{Value: "beacon"}))
	require.NoError(t, ecs.Add(f.w, beacon, component.TransformComponent.Kind(), &component.Transform{X: 300, Y: -40}))

	f.sched.Step(f.w, 1)
	camT := f.cameraTransform(t)
	assert.Equal(t, 300.0, camT.X)
	assert.Equal(t, -40.0, camT.Y)
}

func TestCameraSystemViewportResize(t *testing.T) {
	f := newCameraFixture(t, defaultCameraSpec(t))
	f.sched.Step(f.w, 0)
	assert.Equal(t, cp.Vector{X: 400, Y: 400}, f.camSys.Controller().HalfExtent())

	f.camSys.SetViewportSize(1920, 1080)
	f.camSys.SetViewportSize(0, 100)
	f.sched.Step(f.w, 0)

	ctrl := f.camSys.Controller()
	assert.Equal(t, cp.Vector{X: 960, Y: 540}, ctrl.HalfExtent())
	assert.InDelta(t, 1920.0/1080.0, ctrl.AxisScaling().Y, 1e-12)
}

func TestCameraSystemClose(t *testing.T) {
	f := newCameraFixture(t, defaultCameraSpec(t))
	f.sched.Step(f.w, 0)
	ctrl := f.camSys.Controller()

	f.camSys.Close()
	assert.Nil(t, f.camSys.Controller())
	assert.False(t, ctrl.Active())
}

func TestMovementSystemNormalizesDiagonal(t *testing.T) {
	w := ecs.NewWorld()
	player, err := entity.NewPlayerFromSpec(w, &prefabs.PlayerSpec{MoveSpeed: 10})
	require.NoError(t, err)

	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.MoveX = 1
	input.MoveY = 1

	ecs.NewScheduler(NewMovementSystem()).Step(w, 1)

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	assert.InDelta(t, 10/1.4142135623730951, tr.X, 1e-9)
	assert.InDelta(t, 10/1.4142135623730951, tr.Y, 1e-9)
}

func TestRenderablesOrder(t *testing.T) {
	w := ecs.NewWorld()
	mk := func(layer int) ecs.Entity {
		e := ecs.CreateEntity(w)
		require.NoError(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
		require.NoError(t, ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}))
		require.NoError(t, ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer}))
		return e
	}
	top := mk(5)
	bottom := mk(-1)
	middle := mk(0)

	assert.Equal(t, []ecs.Entity{bottom, middle, top}, renderables(w))
}
