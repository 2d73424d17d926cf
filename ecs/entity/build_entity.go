package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/groundskeeper/assets"
	"github.com/milk9111/groundskeeper/common"
	"github.com/milk9111/groundskeeper/ecs"
	"github.com/milk9111/groundskeeper/ecs/component"
	"github.com/milk9111/groundskeeper/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":   addPlayerTag,
	"camera_tag":   addCameraTag,
	"wall_tag":     addWallTag,
	"floor_tag":    addFloorTag,
	"player":       addPlayer,
	"input":        addInput,
	"score":        addScore,
	"velocity":     addVelocity,
	"transform":    addTransform,
	"walker":       addWalker,
	"sprite":       addSprite,
	"walk_sprites": addWalkSprites,
	"render_layer": addRenderLayer,
	"camera":       addCamera,
	"audio":        addAudio,
	"whack":        addWhack,
	"target":       addTarget,
	"toolbelt":     addToolbelt,
	"physics_body": addPhysicsBody,
}

// componentBuildOrder lists builders that read components added before
// them: whack resolves its sound against audio.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"wall_tag",
	"floor_tag",
	"player",
	"input",
	"score",
	"velocity",
	"transform",
	"walker",
	"sprite",
	"walk_sprites",
	"render_layer",
	"camera",
	"audio",
	"whack",
	"target",
	"toolbelt",
	"physics_body",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return buildFromSpec(w, prefabPath, spec)
}

func buildFromSpec(w *ecs.World, prefabPath string, spec entityPrefabSpec) (ecs.Entity, error) {
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := w.CreateEntity()
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			w.DestroyEntity(e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		w.DestroyEntity(e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

// SpawnPrefab builds a prefab and moves it to x, y. It satisfies
// system.Spawner.
func SpawnPrefab(w *ecs.World, prefab string, x, y float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, e, x, y, 0); err != nil {
		w.DestroyEntity(e)
		return 0, fmt.Errorf("spawn %q: %w", prefab, err)
	}
	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addWallTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.WallTagComponent.Kind(), &component.WallTag{})
}

func addFloorTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.FloorTagComponent.Kind(), &component.FloorTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	if spec.MoveSpeed <= 0 {
		spec.MoveSpeed = component.DefaultMoveSpeed
	}
	return ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed})
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Select: component.NoToolSelection})
}

func addScore(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ScoreComponent.Kind(), &component.Score{})
}

func addVelocity(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type walkerSpec = prefabs.WalkerComponentSpec

func addWalker(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[walkerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode walker spec: %w", err)
	}

	walker := component.NewWalker()
	if spec.Stride > 0 {
		walker.Stride = spec.Stride
	}
	if spec.Frames > 0 {
		walker.Frames = spec.Frames
	}
	if spec.Facing != "" {
		facing, err := parseFacing(spec.Facing)
		if err != nil {
			return err
		}
		walker.Facing = facing
		walker.WasFacing = facing
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		walker.PrevX, walker.PrevY = t.X, t.Y
	}
	return ecs.Add(w, e, component.WalkerComponent.Kind(), &walker)
}

func parseFacing(s string) (component.Facing, error) {
	for f := component.FacingNorth; f < component.FacingCount; f++ {
		if strings.EqualFold(s, f.String()) {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown facing %q", s)
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	if spec.Image != "" {
		img, err := assets.LoadImage(spec.Image)
		if err != nil {
			return fmt.Errorf("load image %q: %w", spec.Image, err)
		}
		sprite.Image = img
	}

	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero && sprite.Image != nil {
		w, h := sprite.Image.Bounds().Dx(), sprite.Image.Bounds().Dy()
		sprite.OriginX = float64(w) / 2
		sprite.OriginY = float64(h) / 2
	}

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type walkSpritesSpec = prefabs.WalkSpritesComponentSpec

func addWalkSprites(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[walkSpritesSpec](raw)
	if err != nil {
		return fmt.Errorf("decode walk sprites spec: %w", err)
	}

	count := 0
	for _, strip := range spec.Strips {
		if strip[1] > count {
			count = strip[1]
		}
	}
	frames, err := assets.LoadSheet(spec.Sheet, spec.FrameW, spec.FrameH, spec.Columns, count)
	if err != nil {
		return err
	}

	var walk component.WalkSprites
	for name, strip := range spec.Strips {
		facing, err := parseFacing(name)
		if err != nil {
			return err
		}
		if strip[0] < 0 || strip[0] > strip[1] {
			return fmt.Errorf("strip %s: bad range %v", name, strip)
		}
		walk.Strips[facing] = frames[strip[0]:strip[1]]
	}

	// The first frame facing the walker's way is the idle pose.
	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Image == nil {
		facing := component.FacingSouth
		if walker, ok := ecs.Get(w, e, component.WalkerComponent.Kind()); ok {
			facing = walker.Facing
		}
		sprite.Image = walk.Frame(facing, 0)
	}

	return ecs.Add(w, e, component.WalkSpritesComponent.Kind(), &walk)
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Margin == 0 {
		spec.Margin = common.ViewportMargin
	}
	if spec.Speed == 0 {
		spec.Speed = common.CameraSpeed
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		Margin: spec.Margin,
		Speed:  spec.Speed,
		Zoom:   spec.Zoom,
	})
}

type audioSpec = prefabs.AudioComponentSpec
type audioClipSpec = prefabs.AudioClipSpec

func addAudio(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[audioSpec](raw)
	if err != nil {
		return fmt.Errorf("decode audio spec: %w", err)
	}
	if len(spec.Clips) == 0 {
		return nil
	}
	comp, err := buildAudioComponentFromSpec(spec.Clips)
	if err != nil {
		return fmt.Errorf("build audio component from spec: %w", err)
	}
	for _, name := range spec.Autoplay {
		comp.Trigger(comp.Index(name))
	}
	return ecs.Add(w, e, component.AudioComponent.Kind(), comp)
}

func buildAudioComponentFromSpec(audioSpecs []audioClipSpec) (*component.Audio, error) {
	n := len(audioSpecs)
	comp := &component.Audio{
		Names:   make([]string, 0, n),
		Players: make([]component.Clip, 0, n),
		Volume:  make([]float64, 0, n),
		Play:    make([]bool, n),
		Stop:    make([]bool, n),
	}

	for i, clip := range audioSpecs {
		player, err := assets.LoadAudioPlayer(clip.File)
		if err != nil {
			return nil, fmt.Errorf("audio clip %d (%q): %w", i, clip.Name, err)
		}
		comp.Names = append(comp.Names, clip.Name)
		comp.Players = append(comp.Players, player)
		comp.Volume = append(comp.Volume, clip.Volume)
	}
	return comp, nil
}

type whackSpec = prefabs.WhackComponentSpec

func addWhack(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[whackSpec](raw)
	if err != nil {
		return fmt.Errorf("decode whack spec: %w", err)
	}

	whack := component.Whack{
		FPS:         spec.FPS,
		TotalFrames: spec.Frames,
		Radius:      spec.Radius,
		Sound:       component.NoSound,
	}
	if whack.FPS <= 0 {
		whack.FPS = component.DefaultWhackFPS
	}

	if spec.Sheet != "" {
		frames, err := assets.LoadSheet(spec.Sheet, spec.FrameW, spec.FrameH, spec.Columns, spec.Frames)
		if err != nil {
			return err
		}
		whack.Frames = frames
	}
	if whack.TotalFrames <= 0 {
		whack.TotalFrames = len(whack.Frames)
	}

	if spec.Sound != "" {
		audioComp, _ := ecs.Get(w, e, component.AudioComponent.Kind())
		whack.Sound = audioComp.Index(spec.Sound)
		if whack.Sound < 0 {
			return fmt.Errorf("sound %q is not an audio clip of this prefab", spec.Sound)
		}
	}

	if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok && sprite.Image == nil {
		sprite.Image = whack.Image()
	}

	return ecs.Add(w, e, component.WhackComponent.Kind(), &whack)
}

type targetSpec = prefabs.TargetComponentSpec

func addTarget(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[targetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode target spec: %w", err)
	}
	if spec.Radius <= 0 {
		spec.Radius = common.TileSize / 2
	}
	return ecs.Add(w, e, component.TargetComponent.Kind(), &component.Target{
		Kind:        spec.Kind,
		Radius:      spec.Radius,
		Replacement: spec.Replacement,
	})
}

type toolbeltSpec = prefabs.ToolbeltComponentSpec

func addToolbelt(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[toolbeltSpec](raw)
	if err != nil {
		return fmt.Errorf("decode toolbelt spec: %w", err)
	}
	if spec.Toolset == "" {
		return fmt.Errorf("toolbelt needs a toolset")
	}

	belt, err := BuildToolbelt(spec.Toolset)
	if err != nil {
		return err
	}
	belt.Select(spec.Selected)
	return ecs.Add(w, e, component.ToolbeltComponent.Kind(), belt)
}

// BuildToolbelt loads a toolset file into a ready toolbelt with icons.
func BuildToolbelt(toolset string) (*component.Toolbelt, error) {
	spec, err := prefabs.LoadToolsetSpec(toolset)
	if err != nil {
		return nil, err
	}

	belt := &component.Toolbelt{Tools: make([]component.Tool, 0, len(spec.Tools))}
	for _, ts := range spec.Tools {
		tool := component.Tool{
			Name:     ts.Name,
			Range:    ts.Range,
			Cooldown: ts.Cooldown,
			Effect:   ts.Effect,
		}
		if tool.Range <= 0 {
			tool.Range = component.DefaultToolRange
		}
		if tool.Cooldown <= 0 {
			tool.Cooldown = component.DefaultToolCooldown
		}
		if ts.Icon != "" {
			icon, err := assets.LoadImage(ts.Icon)
			if err != nil {
				return nil, fmt.Errorf("tool %q icon: %w", ts.Name, err)
			}
			tool.Icon = icon
		}
		belt.Tools = append(belt.Tools, tool)
	}
	return belt, nil
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Width,
		Height:   spec.Height,
		Friction: spec.Friction,
		Static:   spec.Static,
	})
}
