// Command sketch-term runs the sketches inside a terminal.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/olivierh59500/canvas-sketches-go/pkg/host"
	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
	"github.com/olivierh59500/canvas-sketches-go/pkg/surface/termsurf"
	"github.com/olivierh59500/canvas-sketches-go/pkg/swarm"
)

// Surface units per terminal cell. Cells are roughly twice as tall as wide.
const (
	cellW = 8.0
	cellH = 16.0
)

func main() {
	sketchName := flag.String("sketch", host.Particles, "sketch to show: particles, tree or spiral")
	variant := flag.String("variant", string(swarm.Flat), "particle variant: flat or gradient")
	configPath := flag.String("config", "config.json", "swarm config file (s saves, l loads)")
	particles := flag.Int("particles", 0, "override particle count (0 keeps the default)")
	fps := flag.Int("fps", 30, "frames per second")
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	var logFile *os.File
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logFile = f
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	surface := termsurf.New(screen, cellW, cellH)
	width, height := surface.Size()
	cols, rows := surface.Grid()

	cfg := swarm.DefaultConfig(swarm.Variant(*variant))
	cfg.Variant = swarm.Variant(*variant)
	if *particles > 0 {
		cfg.Particles = *particles
	}
	ctrl, err := host.New(host.Options{
		Sketch:     *sketchName,
		Config:     cfg,
		ConfigPath: *configPath,
		Width:      width,
		Height:     height,
		// Mouse events arrive in cell coordinates.
		Bounds: swarm.Rect{Right: float64(cols), Bottom: float64(rows)},
		FPS:    *fps,
	})
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	defer ctrl.Close()

	// The screen owns the terminal from here on.
	if logFile != nil {
		log.SetOutput(logFile)
	} else {
		log.SetOutput(io.Discard)
	}

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-quit:
				return
			default:
			}
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second / time.Duration(*fps))
	defer ticker.Stop()

	mouseIn := false
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !handleKey(ctrl, ev) {
					return
				}
			case *tcell.EventMouse:
				x, y := ev.Position()
				// Cell centers, so a still cursor maps to a stable point.
				page := sketch.Vec(float64(x)+0.5, float64(y)+0.5)
				if !mouseIn {
					ctrl.Pointer().OnEnter(page)
					mouseIn = true
				} else {
					ctrl.Pointer().OnMove(page)
				}
			case *tcell.EventFocus:
				if !ev.Focused {
					ctrl.Pointer().OnLeave()
					mouseIn = false
				}
			case *tcell.EventResize:
				screen.Sync()
				if err := resize(ctrl, surface); err != nil {
					log.Printf("resize: %v", err)
				}
			}
		case <-ticker.C:
			surface.Reset()
			if ctrl.Render(surface) {
				surface.Flush()
			}
		}
	}
}

// resize refits the controller to the screen's current cell grid.
func resize(ctrl *host.Controller, surface *termsurf.Surface) error {
	surface.Reset()
	width, height := surface.Size()
	cols, rows := surface.Grid()
	return ctrl.Resize(width, height, swarm.Rect{Right: float64(cols), Bottom: float64(rows)})
}

// handleKey applies a key binding. It returns false when the user quits.
func handleKey(ctrl *host.Controller, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		ctrl.NextSketch()
		return true
	}
	switch ev.Rune() {
	case 'q':
		return false
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
	return true
}
