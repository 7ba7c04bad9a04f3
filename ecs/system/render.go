package system

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/stickycam/common"
	"github.com/milk9111/stickycam/ecs"
	"github.com/milk9111/stickycam/ecs/component"
	"github.com/milk9111/stickycam/obj"
	"golang.org/x/image/colornames"
)

const gridSpacing = 64.0

type RenderSystem struct {
	camEntity ecs.Entity

	// Debug draws the desired camera position and solver state on top.
	Debug bool
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	camComp, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind())
	if !ok || camComp.Controller == nil {
		return
	}
	cam := camComp.Controller
	geo := cam.GeoM()

	screen.Fill(colornames.Midnightblue)
	r.drawGrid(screen, cam, geo)

	entities := renderables(w)
	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Color == nil {
			continue
		}

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		halfW := s.Width * sx / 2
		halfH := s.Height * sy / 2

		x0, y0 := geo.Apply(t.X-halfW, t.Y-halfH)
		x1, y1 := geo.Apply(t.X+halfW, t.Y+halfH)
		vector.FillRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), s.Color, false)
	}

	if r.Debug {
		r.drawDebug(screen, cam, geo)
	}
}

func (r *RenderSystem) drawGrid(screen *ebiten.Image, cam *obj.StickyCamera, geo ebiten.GeoM) {
	b := screen.Bounds()
	left, top := cam.ViewTopLeft()
	right, bottom := cam.ScreenToWorld(float64(b.Dx()), float64(b.Dy()))

	// fade the grid out as the view zooms away
	t := cam.Tuning()
	zoomT := 1.0
	if t.MaxZoom > t.MinZoom {
		zoomT = cp.Clamp01((cam.Zoom().X - t.MinZoom) / (t.MaxZoom - t.MinZoom))
	}
	lineColor := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: uint8(common.Lerp(0x0c, 0x30, zoomT))}
	for x := math.Floor(left/gridSpacing) * gridSpacing; x <= right; x += gridSpacing {
		sx, _ := geo.Apply(x, 0)
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(b.Dy()), 1, lineColor, false)
	}
	for y := math.Floor(top/gridSpacing) * gridSpacing; y <= bottom; y += gridSpacing {
		_, sy := geo.Apply(0, y)
		vector.StrokeLine(screen, 0, float32(sy), float32(b.Dx()), float32(sy), 1, lineColor, false)
	}

	// world origin
	ox, oy := geo.Apply(0, 0)
	vector.StrokeLine(screen, float32(ox)-8, float32(oy), float32(ox)+8, float32(oy), 2, colornames.Lightgrey, false)
	vector.StrokeLine(screen, float32(ox), float32(oy)-8, float32(ox), float32(oy)+8, 2, colornames.Lightgrey, false)
}

func (r *RenderSystem) drawDebug(screen *ebiten.Image, cam *obj.StickyCamera, geo ebiten.GeoM) {
	center := cam.HalfExtent()
	vector.StrokeLine(screen, float32(center.X)-6, float32(center.Y), float32(center.X)+6, float32(center.Y), 1, colornames.Red, false)
	vector.StrokeLine(screen, float32(center.X), float32(center.Y)-6, float32(center.X), float32(center.Y)+6, 1, colornames.Red, false)

	var desired cp.Vector
	if target := cam.Target(); target != nil {
		desired = target.GlobalPosition()
		if !cam.ForceCentered {
			desired = cam.DesiredPosition(cam.Pointer(), desired)
		}
		dx, dy := geo.Apply(desired.X, desired.Y)
		vector.StrokeRect(screen, float32(dx)-4, float32(dy)-4, 8, 8, 1, colornames.Lime, false)
	}

	pos := cam.Position()
	zoom := cam.Zoom()
	want := cam.DesiredZoom()
	msg := fmt.Sprintf("cam %.1f,%.1f  zoom %.2f -> %.2f  centered %v  active %v\nFPS: %.2f",
		pos.X, pos.Y, zoom.X, want.X, cam.ForceCentered, cam.Active(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

// renderables returns sprite entities ordered by render layer, then slot.
func renderables(w *ecs.World) []ecs.Entity {
	var entities []ecs.Entity
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		entities = append(entities, e)
	})

	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			return l.Index
		}
		return 0
	}
	sort.SliceStable(entities, func(i, j int) bool {
		li, lj := layer(entities[i]), layer(entities[j])
		if li != lj {
			return li < lj
		}
		return uint32(entities[i]) < uint32(entities[j])
	})
	return entities
}
