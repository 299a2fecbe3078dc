// Package camera implements drag, pinch-zoom and kinetic scrolling for a
// bounded 2D viewport. The controller wraps a scene node (anything that can
// report and accept position/scale) and layers boundary clamping, anchor
// bookkeeping, gesture tracking and inertial motion on top of it.
package camera

import "time"

// Node is the scene-node capability the controller drives. Position is the
// top-left offset of the content relative to the viewport (non-positive when
// the content covers the viewport). ContentSize is the natural, unscaled size
// of the content; ViewportSize is the on-screen window. Contains hit-tests a
// screen-space point against the node's occupied region.
type Node interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Scale() (sx, sy float64)
	SetScale(sx, sy float64)
	ViewportSize() (w, h float64)
	ContentSize() (w, h float64)
	Contains(x, y float64) bool
}

// Scheduler grants and revokes the per-frame tick the controller needs while
// inertial motion is running. Both calls are made at most once per motion:
// the controller keeps its own ticking flag so Subscribe/Unsubscribe pairs
// stay balanced.
type Scheduler interface {
	Subscribe()
	Unsubscribe()
}

type nopScheduler struct{}

func (nopScheduler) Subscribe()   {}
func (nopScheduler) Unsubscribe() {}

// Defaults for zero-valued Config fields.
const (
	DefaultMaxZoom   = 2.0
	DefaultFriction  = 0.85
	DefaultMaxPoints = 10
	DefaultMinPoints = 3
)

// Config configures a Controller. The zero value of every field means "use
// the default". Friction is the per-tick velocity multiplier and must stay
// in (0, 1). Clock returns the current time in seconds; tests inject a fake.
type Config struct {
	MaxZoom   float64
	Friction  float64
	MaxPoints int
	MinPoints int
	Clock     func() float64
	Scheduler Scheduler
}

func (cfg Config) withDefaults() Config {
	if cfg.MaxZoom <= 0 {
		cfg.MaxZoom = DefaultMaxZoom
	}
	if cfg.Friction <= 0 || cfg.Friction >= 1 {
		cfg.Friction = DefaultFriction
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = DefaultMaxPoints
	}
	if cfg.MinPoints <= 0 {
		cfg.MinPoints = DefaultMinPoints
	}
	if cfg.Clock == nil {
		cfg.Clock = func() float64 { return float64(time.Now().UnixNano()) / 1e9 }
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = nopScheduler{}
	}
	return cfg
}

// Mode is the gesture state of the controller.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDrag
	ModeScale
)

func (m Mode) String() string {
	switch m {
	case ModeDrag:
		return "drag"
	case ModeScale:
		return "scale"
	}
	return "idle"
}

// Controller is the virtual viewport. All methods mutate synchronously; the
// surrounding event loop is expected to deliver touch events and frame ticks
// one at a time.
type Controller struct {
	node Node
	cfg  Config

	// Anchor: the content-space point currently at the viewport center.
	anchorX, anchorY float64

	// Gesture state
	mode         Mode
	focused      bool
	lastX, lastY float64
	history      history

	// Pinch baseline captured when SCALE begins
	pinchDist                float64
	pinchScaleX, pinchScaleY float64

	// Inertial motion
	hasVelocity bool
	vx, vy      float64
	lastTick    float64
	ticking     bool
}

// New creates a controller for node. Zero-valued Config fields fall back to
// the package defaults.
func New(node Node, cfg Config) *Controller {
	c := &Controller{node: node, cfg: cfg.withDefaults()}
	c.history.max = c.cfg.MaxPoints
	c.UpdateAnchor()
	return c
}

// Mode reports the current gesture mode.
func (c *Controller) Mode() Mode { return c.mode }

// Focused reports whether the controller owns the active gesture.
func (c *Controller) Focused() bool { return c.focused }

// Moving reports whether inertial motion is in flight.
func (c *Controller) Moving() bool { return c.hasVelocity }

// SetPosition moves the viewport to the clamped position and refreshes the
// anchor. Out-of-range requests are silently corrected, never rejected.
func (c *Controller) SetPosition(x, y float64) {
	c.node.SetPosition(c.clampX(x), c.clampY(y))
	c.UpdateAnchor()
}

// SetScale applies a uniform zoom factor. See SetScaleXY.
func (c *Controller) SetScale(s float64) {
	c.SetScaleXY(s, s)
}

// SetScaleXY applies independent axis zoom factors, clamped so the content
// always covers the viewport, then re-centers the view on the anchor so the
// zoom appears centered on the pre-scale focal point.
func (c *Controller) SetScaleXY(sx, sy float64) {
	sx, sy = c.clampScale(sx, sy)
	c.node.SetScale(sx, sy)
	c.CenterAnchor()
}

// UpdateAnchor recomputes the anchor from the current position, scale and
// viewport center.
func (c *Controller) UpdateAnchor() {
	vw, vh := c.node.ViewportSize()
	x, y := c.node.Position()
	sx, sy := c.node.Scale()
	if sx == 0 || sy == 0 {
		return
	}
	c.anchorX = (vw/2 - x) / sx
	c.anchorY = (vh/2 - y) / sy
}

// CenterAnchor re-derives the position from the stored anchor and the
// current scale, clamped.
func (c *Controller) CenterAnchor() {
	c.CenterPoint(c.anchorX, c.anchorY)
}

// CenterPoint positions the viewport so content point (x, y) maps to the
// viewport center.
func (c *Controller) CenterPoint(x, y float64) {
	vw, vh := c.node.ViewportSize()
	sx, sy := c.node.Scale()
	c.SetPosition(vw/2-x*sx, vh/2-y*sy)
}

// TranslateEvent converts a touch event's screen coordinates into
// content-space coordinates relative to the current position and scale.
func (c *Controller) TranslateEvent(ev *TouchEvent) (float64, float64) {
	ex, ey := ev.point()
	x, y := c.node.Position()
	sx, sy := c.node.Scale()
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return (ex - x) / sx, (ey - y) / sy
}
