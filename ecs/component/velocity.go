package component

// Velocity is the requested per-frame movement. Unlike Transform it is
// logical: positive Y points north, up the screen.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
