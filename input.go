package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"scene-camera/camera"
)

// mouseContactID is the synthetic contact ID for the mouse pointer. Real
// ebiten touch IDs are non-negative, so -1 never collides.
const mouseContactID = -1

// InputSystem translates ebiten's polled mouse and touch state into the
// touch-event stream the camera controller consumes. It maintains the
// ordered list of active contacts the controller expects on every event.
type InputSystem struct {
	game *Game

	contacts  []camera.Touch
	mouseDown bool

	// Scratch buffers reused every frame
	pressed  []ebiten.TouchID
	released []ebiten.TouchID
}

func NewInputSystem(g *Game) *InputSystem {
	return &InputSystem{game: g}
}

func (is *InputSystem) Update() {
	is.handleControlKeys()
	is.handleZoom()
	is.handleTouches()

	mx, my := ebiten.CursorPosition()
	overUI := is.game.ui.IsMouseOver(mx, my)
	is.handleMouse(mx, my, overUI)
}

func (is *InputSystem) handleControlKeys() {
	g := is.game

	// --- Screenshot ---
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.screenshotRequested = true
	}

	// --- Save Settings ---
	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := SaveSettings(g.settings, SettingsFile); err != nil {
			// Nothing user-facing to do; the HUD is for camera state.
		}
	}

	// --- Recenter ---
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		g.controller.Stop()
		g.controller.CenterPoint(g.settings.Content.Width/2, g.settings.Content.Height/2)
	}

	// --- Abort gesture ---
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.controller.TouchCancel(&camera.TouchEvent{Touches: is.snapshot()})
	}
}

func (is *InputSystem) handleZoom() {
	g := is.game
	_, dy := ebiten.Wheel()

	// Keyboard zooming
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		dy += 0.1
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		dy -= 0.1
	}

	if dy != 0 {
		sx, _ := g.Scale()
		g.controller.SetScale(sx * math.Pow(1+ZoomSpeed, dy))
	}
}

func (is *InputSystem) handleTouches() {
	g := is.game

	// New contacts first so the full batch is visible to every begin event.
	is.pressed = inpututil.AppendJustPressedTouchIDs(is.pressed[:0])
	for _, id := range is.pressed {
		x, y := ebiten.TouchPosition(id)
		is.contacts = append(is.contacts, camera.Touch{ID: int(id), X: float64(x), Y: float64(y)})
	}
	for _, id := range is.pressed {
		if i := is.findContact(int(id)); i >= 0 {
			c := is.contacts[i]
			g.controller.TouchBegin(is.event(c.ID, c.X, c.Y))
		}
	}

	// Movement of ongoing contacts
	for i := range is.contacts {
		c := &is.contacts[i]
		if c.ID == mouseContactID || inpututil.IsTouchJustReleased(ebiten.TouchID(c.ID)) {
			continue
		}
		x, y := ebiten.TouchPosition(ebiten.TouchID(c.ID))
		fx, fy := float64(x), float64(y)
		if fx != c.X || fy != c.Y {
			c.X, c.Y = fx, fy
			g.controller.TouchMove(is.event(c.ID, fx, fy))
		}
	}

	// Releases: the end event still lists the lifting contact.
	is.released = inpututil.AppendJustReleasedTouchIDs(is.released[:0])
	for _, id := range is.released {
		i := is.findContact(int(id))
		if i < 0 {
			continue
		}
		c := is.contacts[i]
		g.controller.TouchEnd(is.event(c.ID, c.X, c.Y))
		is.contacts = append(is.contacts[:i], is.contacts[i+1:]...)
	}
}

func (is *InputSystem) handleMouse(mx, my int, overUI bool) {
	g := is.game
	fx, fy := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !overUI {
		is.mouseDown = true
		is.contacts = append(is.contacts, camera.Touch{ID: mouseContactID, X: fx, Y: fy})
		g.controller.TouchBegin(is.event(mouseContactID, fx, fy))
		return
	}

	if !is.mouseDown {
		return
	}

	i := is.findContact(mouseContactID)
	if i < 0 {
		is.mouseDown = false
		return
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		c := &is.contacts[i]
		if fx != c.X || fy != c.Y {
			c.X, c.Y = fx, fy
			g.controller.TouchMove(is.event(mouseContactID, fx, fy))
		}
	} else {
		c := is.contacts[i]
		g.controller.TouchEnd(is.event(mouseContactID, c.X, c.Y))
		is.contacts = append(is.contacts[:i], is.contacts[i+1:]...)
		is.mouseDown = false
	}
}

func (is *InputSystem) findContact(id int) int {
	for i, c := range is.contacts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (is *InputSystem) snapshot() []camera.Touch {
	touches := make([]camera.Touch, len(is.contacts))
	copy(touches, is.contacts)
	return touches
}

func (is *InputSystem) event(id int, x, y float64) *camera.TouchEvent {
	return &camera.TouchEvent{X: x, Y: y, HasPoint: true, ID: id, Touches: is.snapshot()}
}
