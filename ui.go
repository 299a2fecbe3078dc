package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UISystem draws the zoom controls in the top-right corner and applies
// their actions through the camera controller, so button zooms get the
// same clamping and anchor recentering as gestures.
type UISystem struct {
	game *Game
}

func NewUISystem(g *Game) *UISystem {
	return &UISystem{game: g}
}

// buttonRects returns the plus, minus and reset button rectangles.
func (ui *UISystem) buttonRects() [3][4]float64 {
	w := float64(ui.game.screenWidth)
	size := float64(ButtonSize)
	pad := float64(ButtonPadding)
	return [3][4]float64{
		{w - size - pad, pad, size, size},
		{w - 2*(size+pad), pad, size, size},
		{w - 3*(size+pad), pad, size, size},
	}
}

func (ui *UISystem) IsMouseOver(mx, my int) bool {
	for _, r := range ui.buttonRects() {
		if float64(mx) >= r[0] && float64(mx) <= r[0]+r[2] &&
			float64(my) >= r[1] && float64(my) <= r[1]+r[3] {
			return true
		}
	}
	return false
}

func (ui *UISystem) Update() {
	g := ui.game
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	rects := ui.buttonRects()

	hit := func(r [4]float64) bool {
		return float64(mx) >= r[0] && float64(mx) <= r[0]+r[2] &&
			float64(my) >= r[1] && float64(my) <= r[1]+r[3]
	}

	sx, _ := g.Scale()
	switch {
	case hit(rects[0]):
		g.controller.SetScale(sx * 1.1)
	case hit(rects[1]):
		g.controller.SetScale(sx / 1.1)
	case hit(rects[2]):
		g.controller.Stop()
		g.controller.SetScale(1)
		g.controller.CenterPoint(g.settings.Content.Width/2, g.settings.Content.Height/2)
	}
}

func (ui *UISystem) Draw(screen *ebiten.Image) {
	labels := [3]string{"+", "-", "o"}
	for i, r := range ui.buttonRects() {
		vector.DrawFilledRect(screen, float32(r[0]), float32(r[1]), float32(r[2]), float32(r[3]), ColorButton, false)
		DrawTextLines(screen, ui.game.uiFont, labels[i], int(r[0])+11, int(r[1])+7, color.White)
	}
}
