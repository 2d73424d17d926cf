package component

const DefaultMoveSpeed = 4.0

// Player holds the tuning the controller needs to turn input into velocity.
type Player struct {
	MoveSpeed float64
}

var PlayerComponent = NewComponent[Player]()
