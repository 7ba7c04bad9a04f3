package obj

// CameraTuning is the full parameter set of a StickyCamera.
type CameraTuning struct {
	// DeadZoneRadius is the pointer distance from the viewport center (after
	// aspect correction) inside which the camera stays on the target.
	DeadZoneRadius float64
	// MaxLead caps how far the camera may move from the target toward the
	// pointer.
	MaxLead float64

	FollowSpeed float64
	ZoomSpeed   float64

	ZoomStep float64
	MinZoom  float64
	MaxZoom  float64
}

func DefaultCameraTuning() CameraTuning {
	return CameraTuning{
		DeadZoneRadius: 200,
		MaxLead:        100,
		FollowSpeed:    4,
		ZoomSpeed:      4,
		ZoomStep:       0.1,
		MinZoom:        0.5,
		MaxZoom:        4,
	}
}

// ZoomEvent is a discrete zoom request.
type ZoomEvent int

const (
	ZoomNone ZoomEvent = iota
	ZoomIn
	ZoomOut
	ZoomReset
)

func (e ZoomEvent) String() string {
	switch e {
	case ZoomIn:
		return "zoom_in"
	case ZoomOut:
		return "zoom_out"
	case ZoomReset:
		return "zoom_reset"
	default:
		return "none"
	}
}
