package common

import "image/color"

var (
	// BackgroundColor shows through wherever the level has no floor.
	BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}

	// ToolbarColor is the HUD strip, a dark jungle green.
	ToolbarColor = color.NRGBA{R: 0x1a, G: 0x24, B: 0x21, A: 0xff}

	ReadyColor    = color.NRGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	CooldownColor = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	TextColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)
