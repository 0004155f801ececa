// Command sketch-sdl runs the sketches in an SDL window through the
// tfriedel6 canvas, which mirrors the HTML canvas API.
package main

import (
	"flag"
	"log"

	"github.com/tfriedel6/canvas/sdlcanvas"

	"github.com/olivierh59500/canvas-sketches-go/pkg/host"
	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
	"github.com/olivierh59500/canvas-sketches-go/pkg/surface/cvsurf"
	"github.com/olivierh59500/canvas-sketches-go/pkg/swarm"
)

func main() {
	sketchName := flag.String("sketch", host.Particles, "sketch to show: particles, tree or spiral")
	variant := flag.String("variant", string(swarm.Gradient), "particle variant: flat or gradient")
	configPath := flag.String("config", "config.json", "swarm config file (s saves, l loads)")
	width := flag.Int("width", 1200, "window width")
	height := flag.Int("height", 800, "window height")
	flag.Parse()

	win, cv, err := sdlcanvas.CreateWindow(*width, *height, "Canvas Sketches")
	if err != nil {
		log.Fatal(err)
	}
	defer win.Destroy()

	surface := cvsurf.New(cv)
	w, h := surface.Size()

	cfg := swarm.DefaultConfig(swarm.Variant(*variant))
	cfg.Variant = swarm.Variant(*variant)
	ctrl, err := host.New(host.Options{
		Sketch:     *sketchName,
		Config:     cfg,
		ConfigPath: *configPath,
		Width:      w,
		Height:     h,
		Bounds:     swarm.Rect{Right: float64(*width), Bottom: float64(*height)},
		FPS:        60,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer ctrl.Close()

	// SDL only reports motion while the cursor is over the window, so the
	// first motion event doubles as the enter event.
	mouseIn := false
	win.MouseMove = func(x, y int) {
		page := sketch.Vec(float64(x), float64(y))
		inside := x >= 0 && y >= 0 && x < *width && y < *height
		switch {
		case inside && !mouseIn:
			ctrl.Pointer().OnEnter(page)
		case inside:
			ctrl.Pointer().OnMove(page)
		case mouseIn:
			ctrl.Pointer().OnLeave()
		}
		mouseIn = inside
	}
	win.KeyDown = func(scancode int, rn rune, name string) {
		switch rn {
		case ' ':
			ctrl.TogglePause()
		case 'r':
			ctrl.Reseed()
		case 'v':
			ctrl.ToggleVariant()
		case 'h':
			ctrl.NextSketch()
		case 's':
			if err := ctrl.SaveConfig(); err != nil {
				log.Printf("save config: %v", err)
			}
		case 'l':
			if err := ctrl.LoadConfig(); err != nil {
				log.Printf("load config: %v", err)
			}
		}
	}

	win.MainLoop(func() {
		ctrl.Render(surface)
	})
}
