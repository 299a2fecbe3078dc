package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"

	"scene-camera/camera"
)

// frameScheduler is the per-frame tick grant for inertial motion. The
// controller subscribes on drag release and unsubscribes when the motion
// settles; Game.Update only ticks the controller while active.
type frameScheduler struct {
	active bool
}

func (s *frameScheduler) Subscribe()   { s.active = true }
func (s *frameScheduler) Unsubscribe() { s.active = false }

type Game struct {
	settings Settings

	// Viewport state owned by the controller through the Node interface
	camX, camY   float64
	camSX, camSY float64

	screenWidth  int
	screenHeight int

	controller *camera.Controller
	scheduler  *frameScheduler
	clock      func() float64

	// Sub-systems
	input *InputSystem
	ui    *UISystem

	scenery  *Scenery
	sceneErr error
	uiFont   font.Face

	cameraReady         bool
	screenshotRequested bool
}

func NewGame(settings Settings) *Game {
	g := &Game{
		settings:  settings,
		camSX:     1,
		camSY:     1,
		scheduler: &frameScheduler{},
		clock: func() float64 {
			return float64(time.Now().UnixNano()) / 1e9
		},
	}

	g.controller = camera.New(g, camera.Config{
		MaxZoom:   settings.Camera.MaxZoom,
		Friction:  settings.Camera.Friction,
		MaxPoints: settings.Camera.MaxPoints,
		MinPoints: settings.Camera.MinPoints,
		Clock:     g.clock,
		Scheduler: g.scheduler,
	})

	g.scenery, g.sceneErr = LoadScenery(settings.Scene, settings.Content.Width, settings.Content.Height)
	if g.sceneErr != nil {
		log.Println("scene script error, using built-in scene:", g.sceneErr)
	}

	g.uiFont = LoadUIFont()
	g.input = NewInputSystem(g)
	g.ui = NewUISystem(g)

	return g
}

// --- camera.Node ---

func (g *Game) Position() (float64, float64) { return g.camX, g.camY }
func (g *Game) SetPosition(x, y float64)     { g.camX, g.camY = x, y }
func (g *Game) Scale() (float64, float64)    { return g.camSX, g.camSY }
func (g *Game) SetScale(sx, sy float64)      { g.camSX, g.camSY = sx, sy }

func (g *Game) ViewportSize() (float64, float64) {
	return float64(g.screenWidth), float64(g.screenHeight)
}

func (g *Game) ContentSize() (float64, float64) {
	return g.settings.Content.Width, g.settings.Content.Height
}

func (g *Game) Contains(x, y float64) bool {
	return x >= 0 && x <= float64(g.screenWidth) && y >= 0 && y <= float64(g.screenHeight)
}

// worldToScreen maps a content-space point through the camera transform.
func (g *Game) worldToScreen(wx, wy float64) (float64, float64) {
	return wx*g.camSX + g.camX, wy*g.camSY + g.camY
}

// --- ebiten.Game ---

func (g *Game) Update() error {
	// The viewport size is only known after the first Layout call, so the
	// initial zoom-to-fit and centering happen here.
	if !g.cameraReady && g.screenWidth > 0 {
		g.controller.SetScale(1)
		g.controller.CenterPoint(g.settings.Content.Width/2, g.settings.Content.Height/2)
		g.cameraReady = true
	}

	g.input.Update()
	g.ui.Update()

	if g.scheduler.active {
		g.controller.Tick(g.clock())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorVoid)

	g.scenery.Draw(screen, g)
	g.ui.Draw(screen)

	status := ""
	if g.sceneErr != nil {
		status = "\nScene script failed, showing built-in scene"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"Camera: (%.1f, %.1f) Scale: (%.2f, %.2f)\n"+
			"Mode: %s  Focused: %v  Moving: %v\n"+
			"Drag to pan, pinch or wheel to zoom, Home to recenter%s",
		g.camX, g.camY, g.camSX, g.camSY,
		g.controller.Mode(), g.controller.Focused(), g.controller.Moving(),
		status,
	), 10, 10)

	// --- Save Screenshot ---
	if g.screenshotRequested {
		g.screenshotRequested = false
		f, err := os.Create("screenshot.png")
		if err != nil {
			log.Println("screenshot error:", err)
		} else {
			defer f.Close()
			if err := png.Encode(f, screen); err != nil {
				log.Println("screenshot error:", err)
			} else {
				log.Println("Screenshot saved as screenshot.png")
			}
		}
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenWidth = outsideWidth
	g.screenHeight = outsideHeight
	return outsideWidth, outsideHeight
}
