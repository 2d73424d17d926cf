package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/levels"
	"github.com/milk9111/groundskeeper/logger"
	"github.com/milk9111/groundskeeper/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and collider outlines")
	levelName := flag.String("level", "level1", "level name in levels/ (basename, .yaml optional)")
	watch := flag.Bool("watch", false, "reload the level when files under prefabs/ or levels/ change")
	scale := flag.Float64("scale", 1, "window scale relative to 1280x720")
	flag.Parse()

	logger.Init(*debug)

	var watcher *prefabs.Watcher
	if *watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, levels.Dir)
		if err != nil {
			logger.Log.WithError(err).Fatal("start file watcher")
		}
		defer w.Close()
		watcher = w
	}

	game, err := NewGame(*levelName, *debug, watcher)
	if err != nil {
		logger.Log.WithError(err).WithField("level", *levelName).Fatal("load level")
	}

	if *scale <= 0 {
		*scale = 1
	}
	ebiten.SetWindowSize(int(common.BaseWidth * *scale), int(common.BaseHeight * *scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("groundskeeper")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithError(err).Fatal("run game")
	}
}
