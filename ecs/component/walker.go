package component

import "math"

// Facing is one of the four compass directions an actor can face.
type Facing int

const (
	FacingNorth Facing = iota
	FacingEast
	FacingSouth
	FacingWest

	FacingCount
)

func (f Facing) String() string {
	switch f {
	case FacingNorth:
		return "north"
	case FacingEast:
		return "east"
	case FacingSouth:
		return "south"
	case FacingWest:
		return "west"
	default:
		return "unknown"
	}
}

// Vector returns the logical unit vector for f, north being +Y.
func (f Facing) Vector() (x, y float64) {
	switch f {
	case FacingNorth:
		return 0, 1
	case FacingEast:
		return 1, 0
	case FacingSouth:
		return 0, -1
	case FacingWest:
		return -1, 0
	default:
		return 0, 0
	}
}

const (
	DefaultWalkStride = 8.0
	DefaultWalkFrames = 4
)

// Walker drives the directional walk cycle. Frame is derived from Travelled
// only; nothing increments it directly.
type Walker struct {
	Facing    Facing
	WasFacing Facing

	PrevX float64
	PrevY float64

	// Travelled is the distance actually covered since the last turn or stop.
	Travelled float64
	Frame     int

	Stride float64
	Frames int
}

var WalkerComponent = NewComponent[Walker]()

func NewWalker() Walker {
	return Walker{
		Facing:    FacingSouth,
		WasFacing: FacingSouth,
		Stride:    DefaultWalkStride,
		Frames:    DefaultWalkFrames,
	}
}

// Begin runs before physics. It records where the actor starts the frame,
// picks a facing from the requested logical velocity, and drops back to the
// first frame when the actor stops or turns.
//
// Horizontal is assigned before vertical, so a diagonal faces north or south.
func (w *Walker) Begin(vx, vy, x, y float64) {
	w.PrevX = x
	w.PrevY = y
	w.WasFacing = w.Facing

	if math.Hypot(vx, vy) > 0 {
		if vx < 0 {
			w.Facing = FacingWest
		} else if vx > 0 {
			w.Facing = FacingEast
		}
		if vy < 0 {
			w.Facing = FacingSouth
		} else if vy > 0 {
			w.Facing = FacingNorth
		}
	} else {
		w.rest()
	}

	if w.Facing != w.WasFacing {
		w.rest()
	}
}

// Settle runs after physics with the resolved position. Only movement that
// really happened in an unchanged facing advances the cycle; an actor held
// against a wall keeps its current frame. It reports whether the cycle
// advanced.
func (w *Walker) Settle(x, y float64) bool {
	moved := math.Hypot(x-w.PrevX, y-w.PrevY)
	if w.Facing != w.WasFacing || moved <= 0 {
		return false
	}
	w.Travelled += moved
	w.Frame = int(math.Floor(w.Travelled/w.stride())) % w.frames()
	return true
}

// Turned reports whether the last Begin changed facing.
func (w *Walker) Turned() bool {
	return w.Facing != w.WasFacing
}

func (w *Walker) rest() {
	w.Frame = 0
	w.Travelled = 0
}

func (w *Walker) stride() float64 {
	if w.Stride <= 0 {
		return DefaultWalkStride
	}
	return w.Stride
}

func (w *Walker) frames() int {
	if w.Frames <= 0 {
		return DefaultWalkFrames
	}
	return w.Frames
}
