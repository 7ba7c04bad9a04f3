package component

// Input stores per-frame input state for an entity.
type Input struct {
	MoveX float64
	MoveY float64

	// PointerX/Y is the cursor in viewport (screen) coordinates.
	PointerX float64
	PointerY float64
}

var InputComponent = NewComponent[Input]()
