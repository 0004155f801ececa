package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/canvas-sketches-go/pkg/host"
	"github.com/olivierh59500/canvas-sketches-go/pkg/sketch"
	"github.com/olivierh59500/canvas-sketches-go/pkg/surface/ebitensurf"
)

// Simulation adapts a host.Controller to Ebitengine's game loop.
type Simulation struct {
	Width, Height int
	ctrl          *host.Controller
	surface       *ebitensurf.Surface

	// The sketch renders into canvas once per tick; Draw only presents it.
	canvas    *ebiten.Image
	newCanvas func(width, height int) *ebiten.Image

	// Cursor tracking for enter/move/leave detection
	PrevMX, PrevMY int
	MouseIn        bool
}

// NewSimulation wraps ctrl for a width x height window.
func NewSimulation(ctrl *host.Controller, width, height int) *Simulation {
	return &Simulation{
		Width:     width,
		Height:    height,
		ctrl:      ctrl,
		surface:   ebitensurf.New(nil),
		newCanvas: ebiten.NewImage,
		PrevMX:    -1,
		PrevMY:    -1,
	}
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	s.handleInput()
	s.step()
	return nil
}

// step renders one sketch frame, which also advances the simulation. It runs
// at the tick rate whatever the display refresh rate is.
func (s *Simulation) step() {
	if s.canvas == nil {
		s.canvas = s.newCanvas(s.Width, s.Height)
	}
	s.surface.Reset(s.canvas)
	s.ctrl.Render(s.surface)
}

// Draw is called each frame by Ebitengine. The canvas is never cleared, so a
// paused sketch keeps its last picture.
func (s *Simulation) Draw(screen *ebiten.Image) {
	if s.canvas == nil || screen == nil {
		return
	}
	screen.DrawImage(s.canvas, nil)
}

// Layout returns the screen size
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.Width, s.Height
}

// handleInput processes keyboard and mouse input
func (s *Simulation) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.ctrl.Reseed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		s.ctrl.ToggleVariant()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.ctrl.NextSketch()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := s.ctrl.SaveConfig(); err != nil {
			log.Printf("save config: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := s.ctrl.LoadConfig(); err != nil {
			log.Printf("load config: %v", err)
		}
	}

	// Ebitengine reports the cursor in screen coordinates, which is the
	// page space the pointer was configured with.
	mx, my := ebiten.CursorPosition()
	inside := mx >= 0 && my >= 0 && mx < s.Width && my < s.Height
	page := sketch.Vec(float64(mx), float64(my))
	ptr := s.ctrl.Pointer()
	switch {
	case inside && !s.MouseIn:
		ptr.OnEnter(page)
	case inside && (mx != s.PrevMX || my != s.PrevMY):
		ptr.OnMove(page)
	case !inside && s.MouseIn:
		ptr.OnLeave()
	}
	s.MouseIn = inside
	s.PrevMX, s.PrevMY = mx, my
}
