package prefabs

import "gopkg.in/yaml.v3"

type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image              string  `yaml:"image"`
	OriginX            float64 `yaml:"origin_x"`
	OriginY            float64 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Margin float64 `yaml:"margin"`
	Speed  float64 `yaml:"speed"`
	Zoom   float64 `yaml:"zoom"`
}

// SheetSpec describes a sprite sheet of equal frames laid out in rows.
type SheetSpec struct {
	Sheet   string `yaml:"sheet"`
	FrameW  int    `yaml:"frame_w"`
	FrameH  int    `yaml:"frame_h"`
	Columns int    `yaml:"columns"`
}

type WalkerComponentSpec struct {
	Stride float64 `yaml:"stride"`
	Frames int     `yaml:"frames"`
	Facing string  `yaml:"facing"`
}

// WalkSpritesComponentSpec maps each facing to a [start, end) frame range
// of the sheet.
type WalkSpritesComponentSpec struct {
	SheetSpec `yaml:",inline"`
	Strips    map[string][2]int `yaml:"strips"`
}

type WhackComponentSpec struct {
	SheetSpec `yaml:",inline"`
	Frames    int     `yaml:"frames"`
	FPS       float64 `yaml:"fps"`
	Radius    float64 `yaml:"radius"`
	Sound     string  `yaml:"sound"`
}

type TargetComponentSpec struct {
	Kind        string  `yaml:"kind"`
	Radius      float64 `yaml:"radius"`
	Replacement string  `yaml:"replacement"`
}

type ToolbeltComponentSpec struct {
	Toolset  string `yaml:"toolset"`
	Selected int    `yaml:"selected"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips    []AudioClipSpec `yaml:"clips"`
	Autoplay []string        `yaml:"autoplay"`
}

type PhysicsBodyComponentSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Friction float64 `yaml:"friction"`
	Static   bool    `yaml:"static"`
}
