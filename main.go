package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/canvas-sketches-go/pkg/host"
	"github.com/olivierh59500/canvas-sketches-go/pkg/swarm"
)

func main() {
	sketchName := flag.String("sketch", host.Particles, "sketch to show: particles, tree or spiral")
	variant := flag.String("variant", string(swarm.Flat), "particle variant: flat or gradient")
	configPath := flag.String("config", "config.json", "swarm config file (S saves, L loads)")
	load := flag.Bool("load", false, "load -config at startup instead of using defaults")
	width := flag.Int("width", 800, "window width")
	height := flag.Int("height", 600, "window height")
	tps := flag.Int("tps", 60, "ticks per second")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	cfg, err := buildConfig(swarm.Variant(*variant), *seed, *load, *configPath)
	if err != nil {
		log.Fatal(err)
	}

	ctrl, err := host.New(host.Options{
		Sketch:     *sketchName,
		Config:     cfg,
		ConfigPath: *configPath,
		Width:      float64(*width),
		Height:     float64(*height),
		FPS:        *tps,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer ctrl.Close()

	// Set up Ebitengine game
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Canvas Sketches")
	ebiten.SetTPS(*tps)

	// Run the game loop
	if err := ebiten.RunGame(NewSimulation(ctrl, *width, *height)); err != nil {
		log.Fatal(err)
	}
}

// buildConfig starts from the variant's defaults, or from the file when load
// is set. A non-zero seed always wins over the file's.
func buildConfig(variant swarm.Variant, seed int64, load bool, path string) (swarm.Config, error) {
	cfg := swarm.DefaultConfig(variant)
	cfg.Variant = variant
	if load {
		loaded, err := swarm.LoadConfig(path)
		if err != nil {
			return swarm.Config{}, err
		}
		cfg = loaded
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}
