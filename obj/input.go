package obj

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ZoomBindings lists the keys that trigger each zoom request.
type ZoomBindings struct {
	In    []ebiten.Key
	Out   []ebiten.Key
	Reset []ebiten.Key
}

func DefaultZoomBindings() ZoomBindings {
	return ZoomBindings{
		In:    []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd},
		Out:   []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
		Reset: []ebiten.Key{ebiten.KeyDigit0, ebiten.KeyNumpad0},
	}
}

// ZoomInput turns key presses and mouse wheel ticks into ZoomEvents. Keys only
// fire on the frame they go down; holding a key does not repeat.
type ZoomInput struct {
	bindings ZoomBindings

	justPressed func(ebiten.Key) bool
	wheel       func() (float64, float64)
}

func NewZoomInput(bindings ZoomBindings) *ZoomInput {
	return &ZoomInput{
		bindings:    bindings,
		justPressed: inpututil.IsKeyJustPressed,
		wheel:       ebiten.Wheel,
	}
}

func (z *ZoomInput) SetBindings(bindings ZoomBindings) {
	z.bindings = bindings
}

func (z *ZoomInput) Bindings() ZoomBindings {
	return z.bindings
}

// Poll returns at most one event for the current frame. When several bindings
// fire together, zoom in wins over zoom out, which wins over reset.
func (z *ZoomInput) Poll() ZoomEvent {
	_, wheelY := z.wheel()

	switch {
	case wheelY > 0 || z.anyJustPressed(z.bindings.In):
		return ZoomIn
	case wheelY < 0 || z.anyJustPressed(z.bindings.Out):
		return ZoomOut
	case z.anyJustPressed(z.bindings.Reset):
		return ZoomReset
	}
	return ZoomNone
}

func (z *ZoomInput) anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if z.justPressed(k) {
			return true
		}
	}
	return false
}
