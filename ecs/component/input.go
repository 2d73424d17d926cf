package component

// NoToolSelection marks an Input with no hotbar key pressed this frame.
const NoToolSelection = -1

// Input stores per-frame input state for an entity.
type Input struct {
	// MoveX and MoveY form a unit (or zero) logical direction.
	MoveX    float64
	MoveY    float64
	Activate bool
	Select   int
}

var InputComponent = NewComponent[Input]()
