// Command foxrender renders a YAML-described stage to a PNG file.
//
// Usage:
//
//	foxrender -config stage.yaml -output frame.png -frames 30
//
// The config lists scenes, each with displays (image, text, geometry) and
// effects (pixelate, mirror). Every scene is composited onto the stage
// with its blendMode and opacity options. After the requested number of
// frames the last composite is written out.
package main

import (
	"flag"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/layerfx"
	"github.com/gogpu/layerfx/display"
	"github.com/gogpu/layerfx/render"
)

func main() {
	var (
		config  = flag.String("config", "stage.yaml", "stage description")
		output  = flag.String("output", "frame.png", "output file")
		frames  = flag.Int("frames", 1, "frames to render")
		width   = flag.Int("width", 0, "override stage width")
		height  = flag.Int("height", 0, "override stage height")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		layerfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*config)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}

	out, err := run(cfg, filepath.Dir(*config), *frames)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	if err := savePNG(*output, out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Frame saved to %s (%dx%d)\n", *output, cfg.Width, cfg.Height)
}

// run builds the stage described by cfg and renders frames frames. It
// returns the last composite.
func run(cfg *Config, dir string, frames int) (*render.PixmapTarget, error) {
	var opts []layerfx.StageOption
	if cfg.Background != "" {
		c, err := display.ParseColor(cfg.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, layerfx.WithBackground(c))
	}
	stage := layerfx.NewStage(cfg.Width, cfg.Height, opts...)
	defer stage.Dispose()

	for _, sc := range cfg.Scenes {
		if _, err := buildScene(stage, sc, dir); err != nil {
			return nil, err
		}
	}

	frame := layerfx.FrameData{
		Delta:     time.Second / time.Duration(max(cfg.FPS, 1)),
		Volume:    cfg.Volume,
		HasUpdate: true,
	}
	var out *render.PixmapTarget
	for i := range max(frames, 1) {
		composite, err := stage.Render(frame)
		if err != nil {
			return nil, err
		}
		out = composite
		layerfx.Logger().Debug("foxrender: frame", "index", i)
	}

	// The composite is owned by the stage and released by Dispose.
	snapshot := render.NewPixmapTarget(out.Width(), out.Height())
	snapshot.CopyFrom(out)
	return snapshot, nil
}

func savePNG(path string, t *render.PixmapTarget) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, t.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
