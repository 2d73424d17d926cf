package component

// Camera scrolls so the player stays Margin pixels inside the screen,
// closing Speed of the remaining gap each tick.
type Camera struct {
	Margin float64
	Speed  float64
	Zoom   float64
}

var CameraComponent = NewComponent[Camera]()
