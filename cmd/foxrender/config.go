package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/layerfx"
	"github.com/gogpu/layerfx/display"
	"github.com/gogpu/layerfx/effect"
)

// Config describes a stage: its size, background and scenes.
type Config struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Background string        `yaml:"background"`
	FPS        int           `yaml:"fps"`
	Volume     float32       `yaml:"volume"`
	Scenes     []SceneConfig `yaml:"scenes"`
}

// SceneConfig describes one scene and its layers, in order.
type SceneConfig struct {
	Name     string         `yaml:"name"`
	Options  map[string]any `yaml:"options"`
	Displays []LayerConfig  `yaml:"displays"`
	Effects  []LayerConfig  `yaml:"effects"`
}

// LayerConfig describes one display or effect. Src is only read by image
// displays and is resolved relative to the config file.
type LayerConfig struct {
	Type    string         `yaml:"type"`
	Name    string         `yaml:"name"`
	Src     string         `yaml:"src"`
	Options map[string]any `yaml:"options"`
}

// decodeConfig reads a YAML stage description.
func decodeConfig(r io.Reader) (*Config, error) {
	cfg := &Config{Width: 854, Height: 480, FPS: 30}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func loadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decodeConfig(f)
}

// buildScene creates a scene, attaches it to stage and adds its layers.
func buildScene(stage *layerfx.PixmapStage, sc SceneConfig, dir string) (*layerfx.Scene, error) {
	var opts []layerfx.SceneOption
	if sc.Name != "" {
		opts = append(opts, layerfx.WithName(sc.Name))
	}
	if sc.Options != nil {
		opts = append(opts, layerfx.WithOptions(layerfx.Options(sc.Options)))
	}
	s := layerfx.NewScene(opts...)
	if err := stage.AddScene(s); err != nil {
		return nil, err
	}

	for _, lc := range sc.Displays {
		n, err := newDisplay(stage, lc, dir)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name(), err)
		}
		if err := s.AddElement(n); err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name(), err)
		}
	}
	for _, lc := range sc.Effects {
		n, err := newEffect(lc)
		if err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name(), err)
		}
		if err := s.AddElement(n); err != nil {
			return nil, fmt.Errorf("scene %q: %w", s.Name(), err)
		}
	}
	return s, nil
}

func newDisplay(stage *layerfx.PixmapStage, lc LayerConfig, dir string) (*layerfx.Node, error) {
	opts := layerfx.Options(lc.Options)
	var n *layerfx.Node
	switch lc.Type {
	case "image":
		var src image.Image
		if lc.Src != "" {
			img, err := loadImage(filepath.Join(dir, lc.Src))
			if err != nil {
				return nil, err
			}
			src = img
		}
		n = display.NewImage(src, stage.Registry(), opts).Node
	case "text":
		n = display.NewText(opts).Node
	case "geometry":
		n = display.NewGeometry(opts).Node
	default:
		return nil, fmt.Errorf("display type %q: %w", lc.Type, layerfx.ErrInvalidNodeType)
	}
	if lc.Name != "" {
		n.Name = lc.Name
	}
	return n, nil
}

func newEffect(lc LayerConfig) (*layerfx.Node, error) {
	opts := layerfx.Options(lc.Options)
	var n *layerfx.Node
	switch lc.Type {
	case "pixelate":
		n = effect.NewPixelate(opts).Node
	case "mirror":
		n = effect.NewMirror(opts).Node
	default:
		return nil, fmt.Errorf("effect type %q: %w", lc.Type, layerfx.ErrInvalidNodeType)
	}
	if lc.Name != "" {
		n.Name = lc.Name
	}
	return n, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
