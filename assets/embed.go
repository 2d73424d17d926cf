package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

//go:embed *.png *.wav
var assetsFS embed.FS

const sampleRate = 44100

var (
	imagesMu sync.Mutex
	images   = map[string]*ebiten.Image{}

	audioOnce    sync.Once
	audioContext *audio.Context
)

// LoadImage loads an embedded image by assets-relative path. Decoded images
// are cached, so prefabs sharing a sheet share one *ebiten.Image.
func LoadImage(path string) (*ebiten.Image, error) {
	clean := cleanAssetPath(path)

	imagesMu.Lock()
	defer imagesMu.Unlock()
	if img, ok := images[clean]; ok {
		return img, nil
	}

	b, err := assetsFS.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", clean, err)
	}
	src, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", clean, err)
	}
	img := ebiten.NewImageFromImage(src)
	images[clean] = img
	return img, nil
}

// LoadSheet slices an embedded sprite sheet into count frames of frameW x
// frameH, reading left to right and then top to bottom.
func LoadSheet(path string, frameW, frameH, columns, count int) ([]*ebiten.Image, error) {
	sheet, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	if frameW <= 0 || frameH <= 0 || columns <= 0 {
		return nil, fmt.Errorf("assets: sheet %s: invalid frame layout %dx%d/%d", path, frameW, frameH, columns)
	}

	bounds := sheet.Bounds()
	frames := make([]*ebiten.Image, 0, count)
	for i := 0; i < count; i++ {
		x := (i % columns) * frameW
		y := (i / columns) * frameH
		rect := image.Rect(x, y, x+frameW, y+frameH)
		if !rect.In(bounds) {
			return nil, fmt.Errorf("assets: sheet %s: frame %d outside %v", path, i, bounds)
		}
		frames = append(frames, sheet.SubImage(rect).(*ebiten.Image))
	}
	return frames, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// AudioContext returns the process audio context, creating it on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.CurrentContext()
		if audioContext == nil {
			audioContext = audio.NewContext(sampleRate)
		}
	})
	return audioContext
}

// LoadAudioPlayer loads an embedded audio asset and creates an audio player.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", path, err)
	}

	ctx := AudioContext()
	clean := strings.ToLower(cleanAssetPath(path))
	if strings.HasSuffix(clean, ".wav") {
		stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("assets: decode wav %q: %w", path, err)
		}
		return ctx.NewPlayer(stream)
	}

	return ctx.NewPlayerFromBytes(b), nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if filepath.IsAbs(path) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s = strings.TrimPrefix(s, "../")
	if after, ok := strings.CutPrefix(s, "resources/"); ok {
		return after
	}
	return strings.TrimPrefix(s, "assets/")
}
