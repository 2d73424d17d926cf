package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TileSize is the rendered edge length of one level grid cell.
	TileSize = 64

	// ViewportMargin is the minimum distance kept between the player and
	// the edge of the screen before the camera scrolls.
	ViewportMargin = 96

	// CameraSpeed is the fraction of the remaining distance the camera pans
	// each tick. 1.0 snaps instantly.
	CameraSpeed = 0.1

	SoundFXVolume = 0.8

	TPS = 60

	// ToolbarHeight is the strip reserved at the bottom of the screen for
	// the HUD toolbar.
	ToolbarHeight = 44
)
