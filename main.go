package main

import (
	"context"
	"flag"
	"image/png"
	"os"

	"github.com/golang/glog"

	"github.com/s0berman/go-pathtracer/pkg/renderer"
	"github.com/s0berman/go-pathtracer/pkg/scene"
)

var (
	output  = flag.String("output", "render.png", "Output image path")
	seed    = flag.Int64("seed", 42, "Render seed; a fixed seed reproduces the image exactly")
	workers = flag.Int("workers", 0, "Worker goroutines (0 = one per CPU)")
)

func main() {
	flag.Parse()
	defer glog.Flush()

	var sc *scene.Scene
	if configPath := flag.Arg(0); configPath != "" {
		cfg, err := scene.LoadConfig(configPath)
		if err != nil {
			glog.Fatalf("Failed to load config: %v", err)
		}
		sc, err = scene.FromConfig(cfg)
		if err != nil {
			glog.Fatalf("Failed to build scene: %v", err)
		}
		glog.Infof("Loaded scene from %s", configPath)
	} else {
		sc = scene.Default()
		glog.Info("No config file given, rendering the built-in scene")
	}

	consts := sc.Consts
	filter, err := renderer.NewFilter(consts.Filter)
	if err != nil {
		glog.Fatalf("Invalid filter: %v", err)
	}

	glog.Infof("Rendering %dx%d at %d spp (depth %d, filter %s)",
		consts.Width, consts.Height, consts.SamplesPerPixel, consts.MaxDepth, filter)

	r := renderer.NewRenderer(sc, renderer.Options{
		Width:           consts.Width,
		Height:          consts.Height,
		SamplesPerPixel: consts.SamplesPerPixel,
		MaxDepth:        consts.MaxDepth,
		MinDepth:        consts.MinDepth,
		Filter:          filter,
		Seed:            *seed,
		Workers:         *workers,
	})

	img, err := r.Render(context.Background())
	if err != nil {
		glog.Fatalf("Render failed: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		glog.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		glog.Fatalf("Failed to encode %s: %v", *output, err)
	}
	glog.Infof("Wrote %s", *output)
}
