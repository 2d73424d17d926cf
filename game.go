package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/entity"
	"github.com/milk9111/groundskeeper/ecs/system"
	"github.com/milk9111/groundskeeper/levels"
	"github.com/milk9111/groundskeeper/logger"
	"github.com/milk9111/groundskeeper/prefabs"
	"github.com/sirupsen/logrus"
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem

	hud      *HUD
	gameOver *GameOverUI
	gameUI   *ebitenui.UI

	levelName string
	runID     string
	log       *logrus.Entry
	debug     bool
	cleared   bool

	watcher *prefabs.Watcher
	reload  bool
}

func NewGame(levelName string, debug bool, watcher *prefabs.Watcher) (*Game, error) {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		watcher:   watcher,
	}
	if err := g.loadLevel(); err != nil {
		return nil, err
	}
	return g, nil
}

// loadLevel replaces the world with a fresh copy of the current level under
// a new run id.
func (g *Game) loadLevel() error {
	layout, err := levels.LoadLayout(g.levelName)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	log := logger.WithRun(runID).WithField("level", layout.Name)

	world := ecs.NewWorld()
	if err := entity.LoadLevelToWorld(world, layout, runID); err != nil {
		return err
	}

	g.world = world
	g.runID = runID
	g.log = log
	g.cleared = false
	g.scheduler = newScheduler(log)
	g.render = system.NewRenderSystem()
	g.render.Debug = g.debug

	hud, err := NewHUD(world)
	if err != nil {
		return err
	}
	g.hud = hud
	g.gameOver = NewGameOverUI(g.restart)
	g.gameUI = hud.UI

	log.WithFields(logrus.Fields{
		"targets": len(layout.Targets),
		"walls":   len(layout.Walls),
	}).Info("level loaded")
	return nil
}

// newScheduler wires the systems in frame order: input, control, movement,
// collision, animation, tools, effects, hits, session, camera, audio.
func newScheduler(log *logrus.Entry) *ecs.Scheduler {
	return ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControllerSystem(),
		system.NewMovementSystem(),
		system.NewPhysicsSystem(),
		system.NewWalkAnimationSystem(),
		system.NewToolSystem(entity.SpawnPrefab, log),
		system.NewWhackSystem(),
		system.NewHitSystem(entity.SpawnPrefab, log),
		system.NewSessionSystem(log),
		system.NewCameraSystem(common.BaseWidth, common.BaseHeight-common.ToolbarHeight),
		system.NewAudioSystem(log),
	)
}

func (g *Game) restart() {
	g.reload = true
}

func (g *Game) Update() error {
	g.drainWatcher()
	if g.reload {
		g.reload = false
		if err := g.loadLevel(); err != nil {
			// Keep playing the last good world until the files are fixed.
			g.log.WithError(err).Error("reload level")
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
		g.render.Debug = g.debug
	}

	if g.cleared {
		g.gameUI.Update()
		return nil
	}

	g.world.SetDeltaTime(1.0 / float64(ebiten.TPS()))
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventLevelCleared:
			points, _ := evt.Data.(int)
			g.cleared = true
			g.gameOver.SetScore(points)
			g.gameUI = g.gameOver.UI
		case ecs.EventTargetHit:
			if hit, ok := evt.Data.(ecs.TargetHit); ok {
				g.log.WithField("score", hit.Score).Debug("score changed")
			}
		}
	}

	g.hud.Refresh(g.world)
	g.gameUI.Update()
	return nil
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithField("file", name).Info("file changed, reloading level")
			g.reload = true
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.log.WithError(err).Warn("file watcher")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(common.BackgroundColor)
	g.render.Draw(g.world, screen)
	if g.cleared {
		g.hud.UI.Draw(screen)
	}
	g.gameUI.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
