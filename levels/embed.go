package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Dir is the on-disk directory whose files override the embedded levels.
const Dir = "levels"

// Level is a level file as written on disk: one string per grid row.
type Level struct {
	Name     string   `yaml:"name"`
	TileSize float64  `yaml:"tile_size"`
	Rows     []string `yaml:"rows"`
}

// Load reads a level by name, preferring a copy on disk.
func Load(name string) (*Level, error) {
	data, err := readLevel(name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	return &lvl, nil
}

// LoadLayout is Load followed by Parse.
func LoadLayout(name string) (*Layout, error) {
	lvl, err := Load(name)
	if err != nil {
		return nil, err
	}
	return Parse(lvl), nil
}

func readLevel(name string) ([]byte, error) {
	clean := filepath.ToSlash(name)
	clean = strings.TrimPrefix(clean, Dir+"/")
	if filepath.Ext(clean) == "" {
		clean += ".yaml"
	}
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return LevelsFS.ReadFile(clean)
}
