package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
	"github.com/milk9111/stickycam/ecs/entity"
	"github.com/milk9111/stickycam/ecs/system"
	"github.com/milk9111/stickycam/obj"
	"github.com/milk9111/stickycam/prefabs"
	"golang.design/x/clipboard"
)

type Options struct {
	Debug    bool
	Watch    bool
	Centered bool
}

type Game struct {
	world  *ecs.World
	sched  *ecs.Scheduler
	camera ecs.Entity

	zoom    *obj.ZoomInput
	camSys  *system.CameraSystem
	render  *system.RenderSystem
	watcher *prefabs.Watcher

	ui        *ebitenui.UI
	showPanel bool

	clipboardOnce sync.Once
	clipboardErr  error
}

func NewGame(opts Options) (*Game, error) {
	w := ecs.NewWorld()

	if _, err := entity.NewPlayer(w); err != nil {
		return nil, fmt.Errorf("game: spawn player: %w", err)
	}

	spec, err := prefabs.LoadCameraSpec()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	if opts.Centered {
		spec.ForceCentered = true
	}
	camera, err := entity.NewCameraFromSpec(w, spec)
	if err != nil {
		return nil, fmt.Errorf("game: spawn camera: %w", err)
	}

	zoom := obj.NewZoomInput(entity.ZoomBindings(spec))
	camSys := system.NewCameraSystem()
	render := system.NewRenderSystem()
	render.Debug = opts.Debug

	g := &Game{
		world:     w,
		camera:    camera,
		zoom:      zoom,
		camSys:    camSys,
		render:    render,
		showPanel: opts.Debug,
		sched: ecs.NewScheduler(
			system.NewInputSystem(zoom),
			system.NewMovementSystem(),
			camSys,
		),
	}
	g.ui = NewCameraUI(g)

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.DiskDir)
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showPanel = !g.showPanel
		g.render.Debug = g.showPanel
	}

	g.reloadPrefabs()

	if g.showPanel {
		g.ui.Update()
	}

	g.sched.Step(g.world, 1/float64(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.showPanel {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	g.camSys.SetViewportSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the prefab watcher and releases the camera.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
	g.camSys.Close()
}

// requestZoom queues a zoom request for the next camera step.
func (g *Game) requestZoom(ev obj.ZoomEvent) {
	g.world.Events().Push(ecs.Event{Type: ecs.EventZoomRequested, Data: ev})
}

func (g *Game) toggleCentered() {
	g.world.Events().Push(ecs.Event{Type: ecs.EventCameraCenterToggled})
}

// copyCameraState puts the camera position and zoom on the system clipboard as
// a transform snippet that can be pasted into a prefab.
func (g *Game) copyCameraState() {
	ctrl := g.camSys.Controller()
	if ctrl == nil {
		return
	}

	g.clipboardOnce.Do(func() { g.clipboardErr = clipboard.Init() })
	if g.clipboardErr != nil {
		log.Printf("clipboard: %v", g.clipboardErr)
		return
	}

	pos := ctrl.Position()
	zoom := ctrl.DesiredZoom()
	state := fmt.Sprintf("transform:\n  x: %.2f\n  y: %.2f\n# zoom: %.2f\n", pos.X, pos.Y, zoom.X)
	clipboard.Write(clipboard.FmtText, []byte(state))
}

func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}

	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch: %v", err)
		}
	default:
	}

	for _, path := range g.watcher.Drain() {
		if prefabs.Name(path) != prefabs.CameraPrefab {
			continue
		}
		spec, err := prefabs.LoadCameraSpec()
		if err != nil {
			log.Printf("prefabs: reload %s: %v", prefabs.CameraPrefab, err)
			continue
		}
		camComp, ok := ecs.Get(g.world, g.camera, component.CameraComponent.Kind())
		if !ok || camComp.Controller == nil {
			continue
		}
		camComp.Controller.SetTuning(entity.CameraTuning(spec))
		g.zoom.SetBindings(entity.ZoomBindings(spec))
		if modified, ok := prefabs.ModTime(prefabs.CameraPrefab); ok {
			log.Printf("prefabs: reloaded %s (modified %s)", prefabs.CameraPrefab, modified.Format(time.TimeOnly))
		}
	}
}
