// Command spsa previews the sprite sheet animations a prefab declares: the
// frames of a whack effect, or one walk strip of a walking actor.
package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/groundskeeper/assets"
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/logger"
	"github.com/milk9111/groundskeeper/prefabs"
)

const previewSize = 512

type demoGame struct {
	title       string
	frames      []*ebiten.Image
	current     int
	tick        int
	ticksPerFrm int
	scale       float64
}

func (g *demoGame) Update() error {
	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticksPerFrm {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	if len(g.frames) == 0 {
		return
	}
	frame := g.frames[g.current]
	fw := float64(frame.Bounds().Dx()) * g.scale
	fh := float64(frame.Bounds().Dy()) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-fw)/2, (previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d", g.title, g.current+1, len(g.frames)))
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

// loadWhackFrames returns the effect frames and how many ticks each stays up.
func loadWhackFrames(spec prefabs.EntityBuildSpec) ([]*ebiten.Image, int, error) {
	whack, err := prefabs.DecodeComponentSpec[prefabs.WhackComponentSpec](spec.Components["whack"])
	if err != nil {
		return nil, 0, err
	}
	frames, err := assets.LoadSheet(whack.Sheet, whack.FrameW, whack.FrameH, whack.Columns, whack.Frames)
	if err != nil {
		return nil, 0, err
	}
	return frames, ticksPerFrame(whack.FPS), nil
}

// loadWalkFrames returns one facing's walk strip. The walk cycle is driven by
// distance in the game; here it steps at a fixed rate.
func loadWalkFrames(spec prefabs.EntityBuildSpec, facing string, fps float64) ([]*ebiten.Image, int, error) {
	walk, err := prefabs.DecodeComponentSpec[prefabs.WalkSpritesComponentSpec](spec.Components["walk_sprites"])
	if err != nil {
		return nil, 0, err
	}
	strip, ok := walk.Strips[facing]
	if !ok {
		return nil, 0, fmt.Errorf("no %q strip", facing)
	}
	frames, err := assets.LoadSheet(walk.Sheet, walk.FrameW, walk.FrameH, walk.Columns, strip[1])
	if err != nil {
		return nil, 0, err
	}
	return frames[strip[0]:strip[1]], ticksPerFrame(fps), nil
}

func ticksPerFrame(fps float64) int {
	if fps <= 0 {
		return 1
	}
	ticks := int(common.TPS / fps)
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func main() {
	prefab := flag.String("prefab", "whack.yaml", "prefab with a whack or walk_sprites component")
	facing := flag.String("facing", "south", "walk strip to preview")
	fps := flag.Float64("fps", 8, "walk preview speed")
	scale := flag.Float64("scale", 4, "pixel scale")
	flag.Parse()

	logger.Init(false)
	log := logger.Log.WithField("prefab", *prefab)

	spec, err := prefabs.LoadEntityBuildSpec(*prefab)
	if err != nil {
		log.WithError(err).Fatal("load prefab")
	}

	var (
		frames []*ebiten.Image
		ticks  int
		title  string
	)
	switch {
	case spec.Components["whack"] != nil:
		frames, ticks, err = loadWhackFrames(spec)
		title = spec.Name
	case spec.Components["walk_sprites"] != nil:
		frames, ticks, err = loadWalkFrames(spec, *facing, *fps)
		title = spec.Name + " " + *facing
	default:
		err = fmt.Errorf("nothing to animate")
	}
	if err != nil {
		log.WithError(err).Fatal("load frames")
	}
	log.WithField("frames", len(frames)).Info("previewing")

	g := &demoGame{title: title, frames: frames, ticksPerFrm: ticks, scale: *scale}
	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("run preview")
	}
}
