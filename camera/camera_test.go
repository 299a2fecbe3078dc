package camera

import (
	"math"
	"testing"
)

// fakeNode is a scene node backed by plain fields. The hit region is the
// whole viewport.
type fakeNode struct {
	x, y   float64
	sx, sy float64
	vw, vh float64
	cw, ch float64
}

func (n *fakeNode) Position() (float64, float64)     { return n.x, n.y }
func (n *fakeNode) SetPosition(x, y float64)         { n.x, n.y = x, y }
func (n *fakeNode) Scale() (float64, float64)        { return n.sx, n.sy }
func (n *fakeNode) SetScale(sx, sy float64)          { n.sx, n.sy = sx, sy }
func (n *fakeNode) ViewportSize() (float64, float64) { return n.vw, n.vh }
func (n *fakeNode) ContentSize() (float64, float64)  { return n.cw, n.ch }
func (n *fakeNode) Contains(x, y float64) bool {
	return x >= 0 && x <= n.vw && y >= 0 && y <= n.vh
}

type fakeClock struct{ now float64 }

type countScheduler struct{ subs, unsubs int }

func (s *countScheduler) Subscribe()   { s.subs++ }
func (s *countScheduler) Unsubscribe() { s.unsubs++ }

// newTestController builds the standard fixture: 320x480 viewport over
// 640x960 content at scale 1, position (0,0).
func newTestController() (*Controller, *fakeNode, *fakeClock, *countScheduler) {
	n := &fakeNode{sx: 1, sy: 1, vw: 320, vh: 480, cw: 640, ch: 960}
	clk := &fakeClock{}
	sched := &countScheduler{}
	c := New(n, Config{Clock: func() float64 { return clk.now }, Scheduler: sched})
	return c, n, clk, sched
}

func begin(c *Controller, id int, x, y float64, touches []Touch) bool {
	return c.TouchBegin(&TouchEvent{X: x, Y: y, HasPoint: true, ID: id, Touches: touches})
}

func move(c *Controller, id int, x, y float64, touches []Touch) bool {
	return c.TouchMove(&TouchEvent{X: x, Y: y, HasPoint: true, ID: id, Touches: touches})
}

func end(c *Controller, id int, x, y float64, touches []Touch) bool {
	return c.TouchEnd(&TouchEvent{X: x, Y: y, HasPoint: true, ID: id, Touches: touches})
}

func TestClampIdempotent(t *testing.T) {
	c, _, _, _ := newTestController()

	for _, x := range []float64{100, 0, -50, -320, -1000, 0.5} {
		once := c.clampX(x)
		twice := c.clampX(once)
		if once != twice {
			t.Errorf("clampX(%v): clamp(clamp) = %v, clamp = %v", x, twice, once)
		}
		if once > 0 || once < -320 {
			t.Errorf("clampX(%v) = %v outside [-320, 0]", x, once)
		}
	}
}

func TestScaleCoverageHolds(t *testing.T) {
	c, n, _, _ := newTestController()

	for _, s := range []float64{0.1, 0.5, 1, 2, 3, 10} {
		c.SetScale(s)
		if n.vw > n.cw*n.sx {
			t.Errorf("SetScale(%v): viewport width %v exceeds covered width %v", s, n.vw, n.cw*n.sx)
		}
		if n.vh > n.ch*n.sy {
			t.Errorf("SetScale(%v): viewport height %v exceeds covered height %v", s, n.vh, n.ch*n.sy)
		}
	}
}

func TestScaleClampBelowFullCoverage(t *testing.T) {
	// minScale = max(640/320, 960/480) = 2, which also beats the default
	// MaxZoom of 2.0 tying at the boundary. Zooming out below it must pin.
	c, n, _, _ := newTestController()

	c.SetScale(0.5)
	if n.sx != 2 || n.sy != 2 {
		t.Errorf("SetScale(0.5) = (%v, %v), want (2, 2)", n.sx, n.sy)
	}

	// minScale wins even when MaxZoom is configured below it.
	n2 := &fakeNode{sx: 1, sy: 1, vw: 320, vh: 480, cw: 640, ch: 960}
	c2 := New(n2, Config{MaxZoom: 1.5})
	c2.SetScale(5)
	if n2.sx != 2 || n2.sy != 2 {
		t.Errorf("SetScale(5) with MaxZoom 1.5 = (%v, %v), want minScale (2, 2)", n2.sx, n2.sy)
	}
}

func TestAnchorConsistency(t *testing.T) {
	c, n, _, _ := newTestController()

	c.SetPosition(-80, -120)
	c.SetScale(2.5)
	c.SetPosition(-33.7, -210.2)

	x, y := n.x, n.y
	c.UpdateAnchor()
	c.CenterAnchor()
	if math.Abs(n.x-x) > 1e-9 || math.Abs(n.y-y) > 1e-9 {
		t.Errorf("anchor round trip moved position: (%v, %v) -> (%v, %v)", x, y, n.x, n.y)
	}
}

func TestCenterPoint(t *testing.T) {
	c, n, _, _ := newTestController()

	c.CenterPoint(320, 480)
	// Content point (320, 480) at scale 1 maps to screen 320+x = 160.
	if n.x != -160 || n.y != -240 {
		t.Errorf("CenterPoint(320, 480) position = (%v, %v), want (-160, -240)", n.x, n.y)
	}
}

func TestHistoryBound(t *testing.T) {
	h := history{max: 10}
	h.reset(0, 0, 0)
	for i := 1; i <= 25; i++ {
		h.push(float64(i), float64(i), float64(i))
	}
	if h.len() != 10 {
		t.Fatalf("history length = %d, want 10", h.len())
	}
	// FIFO eviction: the buffer holds the 10 most recent samples, 16..25.
	for i, s := range h.samples {
		want := float64(16 + i)
		if s.x != want || s.t != want {
			t.Errorf("samples[%d] = (%v, t=%v), want %v", i, s.x, s.t, want)
		}
	}
}

func TestDragReleaseStartsInertia(t *testing.T) {
	c, _, clk, sched := newTestController()

	if !begin(c, 1, 100, 100, []Touch{{ID: 1, X: 100, Y: 100}}) {
		t.Fatal("begin inside the camera region was not handled")
	}
	samples := [][3]float64{
		{150, 120, 0.00},
		{170, 140, 0.05},
		{190, 150, 0.10},
		{195, 155, 0.12},
	}
	for _, s := range samples {
		clk.now = s[2]
		move(c, 1, s[0], s[1], []Touch{{ID: 1, X: s[0], Y: s[1]}})
	}
	clk.now = 0.12
	end(c, 1, 195, 155, []Touch{{ID: 1, X: 195, Y: 155}})

	if !c.Moving() {
		t.Fatal("release with enough history did not start inertial motion")
	}
	if sched.subs != 1 {
		t.Errorf("scheduler subscriptions = %d, want 1", sched.subs)
	}
	// Velocity comes from the oldest sample (the begin position at t=0).
	if math.Abs(c.vx-95/0.12) > 1e-9 || math.Abs(c.vy-55/0.12) > 1e-9 {
		t.Errorf("velocity = (%v, %v), want (%v, %v)", c.vx, c.vy, 95/0.12, 55/0.12)
	}
	if c.Focused() {
		t.Error("focus was not cleared on release")
	}
}

func TestReleaseWithoutHistoryStaysStill(t *testing.T) {
	c, _, clk, sched := newTestController()

	begin(c, 1, 100, 100, []Touch{{ID: 1, X: 100, Y: 100}})
	clk.now = 0.05
	move(c, 1, 120, 110, []Touch{{ID: 1, X: 120, Y: 110}})
	clk.now = 0.10
	end(c, 1, 120, 110, []Touch{{ID: 1, X: 120, Y: 110}})

	// Two samples, MinPoints is 3: motion must not start.
	if c.Moving() {
		t.Error("inertial motion started with insufficient history")
	}
	if sched.subs != 0 {
		t.Errorf("scheduler subscriptions = %d, want 0", sched.subs)
	}
}

func TestInertiaDecayTerminates(t *testing.T) {
	c, n, clk, sched := newTestController()
	n.x, n.y = -160, -240 // room to move in every direction

	begin(c, 1, 300, 300, []Touch{{ID: 1, X: 300, Y: 300}})
	for i := 1; i <= 5; i++ {
		clk.now = float64(i) * 0.02
		p := 300 - float64(i)*20
		move(c, 1, p, p, []Touch{{ID: 1, X: p, Y: p}})
	}
	end(c, 1, 200, 200, []Touch{{ID: 1, X: 200, Y: 200}})
	if !c.Moving() {
		t.Fatal("inertial motion did not start")
	}

	prevSpeed := math.Hypot(c.vx, c.vy)
	ticks := 0
	for c.Moving() {
		ticks++
		if ticks > 200 {
			t.Fatal("inertial motion did not terminate within 200 ticks")
		}
		clk.now += 1.0 / 60
		c.Tick(clk.now)
		speed := math.Hypot(c.vx, c.vy)
		if speed > prevSpeed {
			t.Fatalf("velocity grew on tick %d: %v -> %v", ticks, prevSpeed, speed)
		}
		prevSpeed = speed
	}

	if c.vx != 0 || c.vy != 0 {
		t.Errorf("terminal velocity = (%v, %v), want exactly (0, 0)", c.vx, c.vy)
	}
	if sched.unsubs != 1 {
		t.Errorf("scheduler unsubscriptions = %d, want 1", sched.unsubs)
	}

	// Further ticks are no-ops.
	x, y := n.x, n.y
	clk.now += 1.0 / 60
	c.Tick(clk.now)
	if n.x != x || n.y != y {
		t.Error("tick after terminal state moved the position")
	}
}

func TestStopIdempotent(t *testing.T) {
	c, _, _, sched := newTestController()
	c.Stop()
	c.Stop()
	if sched.unsubs != 0 {
		t.Errorf("Stop without a subscription unsubscribed %d times", sched.unsubs)
	}
}

// newZoomController is the standard fixture with headroom above minScale so
// pinch results are not masked by the MaxZoom clamp.
func newZoomController(maxZoom float64) (*Controller, *fakeNode) {
	n := &fakeNode{sx: 2, sy: 2, vw: 320, vh: 480, cw: 640, ch: 960}
	c := New(n, Config{MaxZoom: maxZoom})
	return c, n
}

func TestPinchScales(t *testing.T) {
	c, n := newZoomController(4)
	n.x, n.y = -160, -240

	begin(c, 1, 100, 200, []Touch{{ID: 1, X: 100, Y: 200}})
	two := []Touch{{ID: 1, X: 100, Y: 200}, {ID: 2, X: 200, Y: 200}}
	begin(c, 2, 200, 200, two)
	if c.Mode() != ModeScale {
		t.Fatalf("mode = %v, want scale", c.Mode())
	}

	// Spread the second finger: distance 100 -> 150, scale 2 -> 3.
	spread := []Touch{{ID: 1, X: 100, Y: 200}, {ID: 2, X: 250, Y: 200}}
	move(c, 2, 250, 200, spread)
	if math.Abs(n.sx-3) > 1e-9 || math.Abs(n.sy-3) > 1e-9 {
		t.Errorf("pinch scale = (%v, %v), want (3, 3)", n.sx, n.sy)
	}
}

func TestPinchCoincidentContactsIgnored(t *testing.T) {
	c, n := newZoomController(4)

	begin(c, 1, 100, 200, []Touch{{ID: 1, X: 100, Y: 200}})
	// Both fingers land on the same point: zero baseline distance.
	two := []Touch{{ID: 1, X: 100, Y: 200}, {ID: 2, X: 100, Y: 200}}
	begin(c, 2, 100, 200, two)

	apart := []Touch{{ID: 1, X: 100, Y: 200}, {ID: 2, X: 180, Y: 200}}
	move(c, 2, 180, 200, apart)
	if n.sx != 2 || n.sy != 2 {
		t.Errorf("scale changed from a degenerate pinch baseline: (%v, %v)", n.sx, n.sy)
	}
}

func TestPinchIntermediateContactIgnored(t *testing.T) {
	c, _ := newZoomController(4)

	begin(c, 1, 100, 200, []Touch{{ID: 1, X: 100, Y: 200}})
	three := []Touch{{ID: 1, X: 100, Y: 200}, {ID: 2, X: 200, Y: 200}, {ID: 3, X: 150, Y: 300}}
	// Batch lands contacts 2 and 3 together; only contact 3's event counts.
	if !begin(c, 2, 200, 200, three) {
		t.Error("intermediate contact event was not swallowed")
	}
	if c.Mode() == ModeScale {
		t.Fatal("intermediate contact event captured the pinch baseline")
	}
	begin(c, 3, 150, 300, three)
	if c.Mode() != ModeScale {
		t.Fatal("newest contact event did not enter scale mode")
	}
	if c.pinchDist != math.Hypot(150-100, 300-200) {
		t.Errorf("pinch baseline = %v, want distance newest-to-first", c.pinchDist)
	}
}

func TestTwoTouchReleaseReturnsToDrag(t *testing.T) {
	c, _, clk, _ := newTestController()

	begin(c, 1, 100, 200, []Touch{{ID: 1, X: 100, Y: 200}})
	two := []Touch{{ID: 1, X: 100, Y: 200}, {ID: 2, X: 200, Y: 200}}
	begin(c, 2, 200, 200, two)
	if c.Mode() != ModeScale {
		t.Fatalf("mode = %v, want scale", c.Mode())
	}

	clk.now = 1.0
	end(c, 2, 200, 200, two)
	if c.Mode() != ModeDrag {
		t.Fatalf("mode after release = %v, want drag", c.Mode())
	}
	if c.lastX != 100 || c.lastY != 200 {
		t.Errorf("drag seed = (%v, %v), want the surviving contact (100, 200)", c.lastX, c.lastY)
	}
	if c.history.len() != 1 {
		t.Errorf("history length = %d, want 1", c.history.len())
	}
	if !c.Focused() {
		t.Error("focus lost while a contact is still down")
	}
}

func TestBeginOutsideRegionIgnored(t *testing.T) {
	c, _, _, _ := newTestController()

	if begin(c, 1, 500, 100, []Touch{{ID: 1, X: 500, Y: 100}}) {
		t.Error("begin outside the hit region claimed the gesture")
	}
	if c.Focused() {
		t.Error("focus set by an out-of-region contact")
	}
}

func TestMoveOutsideRegionStillProcessed(t *testing.T) {
	c, n, _, _ := newTestController()
	n.x, n.y = -100, -100

	begin(c, 1, 300, 400, []Touch{{ID: 1, X: 300, Y: 400}})
	// Once focused, hit-testing no longer gates move events.
	if !move(c, 1, 600, 700, []Touch{{ID: 1, X: 600, Y: 700}}) {
		t.Error("move outside the region was dropped despite focus")
	}
}

func TestCancelClearsFocusOnly(t *testing.T) {
	c, n, _, _ := newTestController()
	n.x, n.y = -50, -50

	begin(c, 1, 100, 100, []Touch{{ID: 1, X: 100, Y: 100}})
	mode := c.Mode()
	x, y := n.x, n.y
	if !c.TouchCancel(&TouchEvent{ID: 1, HasPoint: true, X: 100, Y: 100}) {
		t.Error("cancel during a gesture was not handled")
	}
	if c.Focused() {
		t.Error("cancel did not clear focus")
	}
	if c.Mode() != mode {
		t.Errorf("cancel changed mode: %v -> %v", mode, c.Mode())
	}
	if n.x != x || n.y != y {
		t.Error("cancel moved the position")
	}
}

func TestNewGestureStopsInertia(t *testing.T) {
	c, _, clk, sched := newTestController()

	begin(c, 1, 100, 100, []Touch{{ID: 1, X: 100, Y: 100}})
	for i := 1; i <= 4; i++ {
		clk.now = float64(i) * 0.02
		move(c, 1, 100+float64(i)*30, 100, []Touch{{ID: 1, X: 100 + float64(i)*30, Y: 100}})
	}
	end(c, 1, 220, 100, []Touch{{ID: 1, X: 220, Y: 100}})
	if !c.Moving() {
		t.Fatal("inertial motion did not start")
	}

	begin(c, 2, 50, 50, []Touch{{ID: 2, X: 50, Y: 50}})
	if c.Moving() {
		t.Error("a new gesture did not stop inertial motion")
	}
	if sched.unsubs != 1 {
		t.Errorf("scheduler unsubscriptions = %d, want 1", sched.unsubs)
	}
}

func TestTranslateEvent(t *testing.T) {
	c, n, _, _ := newTestController()
	n.x, n.y = -100, -50
	n.sx, n.sy = 2, 2

	ev := &TouchEvent{X: 60, Y: 30, HasPoint: true, ID: 1}
	x, y := c.TranslateEvent(ev)
	if x != 80 || y != 40 {
		t.Errorf("TranslateEvent = (%v, %v), want (80, 40)", x, y)
	}

	// Direct coordinates win even when they are zero.
	zero := &TouchEvent{X: 0, Y: 0, HasPoint: true, Touch: &Touch{X: 999, Y: 999}}
	x, y = c.TranslateEvent(zero)
	if x != 50 || y != 25 {
		t.Errorf("TranslateEvent with direct zero = (%v, %v), want (50, 25)", x, y)
	}

	// Without a direct point the touch sub-object is used.
	sub := &TouchEvent{Touch: &Touch{X: 100, Y: 150}}
	x, y = c.TranslateEvent(sub)
	if x != 100 || y != 100 {
		t.Errorf("TranslateEvent via sub-object = (%v, %v), want (100, 100)", x, y)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.MaxZoom != 2.0 || cfg.Friction != 0.85 || cfg.MaxPoints != 10 || cfg.MinPoints != 3 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.Clock == nil || cfg.Scheduler == nil {
		t.Error("clock or scheduler default missing")
	}

	bad := Config{Friction: 1.5}.withDefaults()
	if bad.Friction != 0.85 {
		t.Errorf("out-of-domain friction kept: %v", bad.Friction)
	}
}
