package main

import (
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"scene-camera/bezier"
	"scene-camera/script"
)

// defaultScene is used when no scene script is present on disk.
const defaultScene = `
cols = 4
rows = 3
cards = [
    {
        "x": 160 + c * (content_w - 480) / (cols - 1),
        "y": 160 + r * (content_h - 440) / (rows - 1),
        "w": 220, "h": 140,
        "r": 60 + c * 40, "g": 120 + r * 30, "b": 200 - c * 30,
        "title": "Landmark %d.%d" % (r, c),
    }
    for r in range(rows)
    for c in range(cols)
]

paths = [
    {"kind": "quad", "points": [160, content_h / 2, content_w / 2, 100, content_w - 160, content_h / 2]},
    {"kind": "cubic", "points": [160, content_h - 200, content_w / 3, content_h / 2, 2 * content_w / 3, content_h - 100, content_w - 160, content_h / 2], "segments": 32},
]
`

// SceneCard is one static rectangle of scenery.
type SceneCard struct {
	X, Y, W, H float64
	Color      color.RGBA
	Title      string
}

// Scenery is the drawable content of the viewer: cards, simplified bezier
// polylines and the coordinate grid, all in content space.
type Scenery struct {
	cards []SceneCard
	paths [][]bezier.Point
}

// LoadScenery runs the scene script at path, falling back to the built-in
// scene when the file is missing or the script fails. The returned error
// reports a failed script; the scenery is usable either way.
func LoadScenery(path string, contentW, contentH float64) (*Scenery, error) {
	src := defaultScene
	var runErr error
	if data, err := os.ReadFile(path); err == nil {
		src = string(data)
	}

	scene, err := script.Run(path, src, map[string]interface{}{
		"content_w": contentW,
		"content_h": contentH,
	})
	if err != nil {
		runErr = err
		scene, _ = script.Run("builtin", defaultScene, map[string]interface{}{
			"content_w": contentW,
			"content_h": contentH,
		})
	}

	s := &Scenery{}
	if scene != nil {
		for _, c := range scene.Cards {
			s.cards = append(s.cards, SceneCard{
				X: c.X, Y: c.Y, W: c.W, H: c.H,
				Color: color.RGBA{c.R, c.G, c.B, 255},
				Title: c.Title,
			})
		}
		for _, p := range scene.Paths {
			s.paths = append(s.paths, buildPath(p))
		}
	}
	return s, runErr
}

// buildPath generates and simplifies the polyline for one scripted path.
func buildPath(p script.Path) []bezier.Point {
	segments := p.Segments
	if segments <= 0 {
		segments = DefaultSegments
	}
	tolerance := p.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	pt := func(i int) bezier.Point {
		return bezier.Point{X: p.Points[2*i], Y: p.Points[2*i+1]}
	}
	var pts []bezier.Point
	if p.Kind == "cubic" {
		pts = bezier.Cubic(pt(0), pt(1), pt(2), pt(3), segments)
	} else {
		pts = bezier.Quadratic(pt(0), pt(1), pt(2), segments)
	}
	return bezier.Simplify(pts, tolerance)
}

func (s *Scenery) Draw(screen *ebiten.Image, g *Game) {
	s.drawContent(screen, g)
	s.drawGrid(screen, g)
	s.drawCards(screen, g)
	s.drawPaths(screen, g)
}

// drawContent fills the content rectangle; everything outside stays void.
func (s *Scenery) drawContent(screen *ebiten.Image, g *Game) {
	cw, ch := g.ContentSize()
	x0, y0 := g.worldToScreen(0, 0)
	x1, y1 := g.worldToScreen(cw, ch)
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), ColorBackground, false)
	vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), BorderThickness, ColorBorder, false)
}

func (s *Scenery) drawGrid(screen *ebiten.Image, g *Game) {
	cw, ch := g.ContentSize()

	// Only walk the grid lines inside the visible window.
	left := math.Max(0, -g.camX/g.camSX)
	top := math.Max(0, -g.camY/g.camSY)
	right := math.Min(cw, (float64(g.screenWidth)-g.camX)/g.camSX)
	bottom := math.Min(ch, (float64(g.screenHeight)-g.camY)/g.camSY)

	for wx := math.Floor(left/GridSize) * GridSize; wx <= right; wx += GridSize {
		if wx < 0 {
			continue
		}
		sx, syTop := g.worldToScreen(wx, top)
		_, syBot := g.worldToScreen(wx, bottom)
		vector.StrokeLine(screen, float32(sx), float32(syTop), float32(sx), float32(syBot), 1, ColorGrid, false)
	}
	for wy := math.Floor(top/GridSize) * GridSize; wy <= bottom; wy += GridSize {
		if wy < 0 {
			continue
		}
		sxLeft, sy := g.worldToScreen(left, wy)
		sxRight, _ := g.worldToScreen(right, wy)
		vector.StrokeLine(screen, float32(sxLeft), float32(sy), float32(sxRight), float32(sy), 1, ColorGrid, false)
	}
}

func (s *Scenery) drawCards(screen *ebiten.Image, g *Game) {
	for _, card := range s.cards {
		sx, sy := g.worldToScreen(card.X, card.Y)
		sw := card.W * g.camSX
		sh := card.H * g.camSY

		vector.DrawFilledRect(screen, float32(sx+ShadowOffset*g.camSX), float32(sy+ShadowOffset*g.camSY), float32(sw), float32(sh), ColorShadow, false)
		vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(sw), float32(sh), card.Color, false)
		if card.Title != "" {
			ebitenutil.DebugPrintAt(screen, card.Title, int(sx)+5, int(sy)+5)
		}
	}
}

func (s *Scenery) drawPaths(screen *ebiten.Image, g *Game) {
	for _, path := range s.paths {
		for i := 1; i < len(path); i++ {
			x0, y0 := g.worldToScreen(path[i-1].X, path[i-1].Y)
			x1, y1 := g.worldToScreen(path[i].X, path[i].Y)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), PathThickness, ColorPath, false)
		}
	}
}
