package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// ToolsetSpec is the hotbar definition shared by the player's toolbelt and
// the HUD.
type ToolsetSpec struct {
	ReadyColor    *YAMLColor `yaml:"ready_color"`
	CooldownColor *YAMLColor `yaml:"cooldown_color"`
	Tools         []ToolSpec `yaml:"tools"`
}

type ToolSpec struct {
	Name     string  `yaml:"name"`
	Icon     string  `yaml:"icon"`
	Range    float64 `yaml:"range"`
	Cooldown float64 `yaml:"cooldown"`
	Effect   string  `yaml:"effect"`
}

func LoadToolsetSpec(filename string) (*ToolsetSpec, error) {
	spec, err := LoadSpec[ToolsetSpec](filename)
	if err != nil {
		return nil, err
	}
	if len(spec.Tools) == 0 {
		return nil, fmt.Errorf("prefabs: %s defines no tools", filename)
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the parsed color, or fallback when the field was absent.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
