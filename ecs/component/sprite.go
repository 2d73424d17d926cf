package component

import "github.com/hajimehoshi/ebiten/v2"

type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
	Hidden  bool
}

var SpriteComponent = NewComponent[Sprite]()

// WalkSprites is the texture table indexed by facing then walk frame.
type WalkSprites struct {
	Strips [FacingCount][]*ebiten.Image
}

var WalkSpritesComponent = NewComponent[WalkSprites]()

// Frame returns the texture for facing f at walk frame i, or nil.
func (s *WalkSprites) Frame(f Facing, i int) *ebiten.Image {
	if s == nil || f < 0 || f >= FacingCount {
		return nil
	}
	strip := s.Strips[f]
	if i < 0 || i >= len(strip) {
		return nil
	}
	return strip[i]
}
