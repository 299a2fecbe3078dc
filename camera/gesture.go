package camera

import "math"

// Touch is one active contact point in screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// TouchEvent is a touch lifecycle event. X, Y carry the triggering contact's
// screen position when HasPoint is set; otherwise the Touch sub-object is
// consulted. Touches lists every currently-active contact ordered by arrival,
// including the triggering one.
type TouchEvent struct {
	X, Y     float64
	HasPoint bool
	ID       int
	Touch    *Touch
	Touches  []Touch
}

// point prefers the event's direct coordinates and falls back to the touch
// sub-object. A direct coordinate of 0 is still a direct coordinate.
func (ev *TouchEvent) point() (float64, float64) {
	if ev.HasPoint {
		return ev.X, ev.Y
	}
	if ev.Touch != nil {
		return ev.Touch.X, ev.Touch.Y
	}
	return 0, 0
}

// newestOnly reports whether ev belongs to the most-recently-added contact.
// When several contacts land in one batch only the last one is processed;
// recomputing the pinch baseline for each intermediate contact would be
// redundant.
func (ev *TouchEvent) newestOnly() bool {
	n := len(ev.Touches)
	return n > 0 && ev.Touches[n-1].ID == ev.ID
}

func touchDist(a, b Touch) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// TouchBegin handles a new contact. A gesture is only claimed if the
// initiating contact falls within this camera's region; once focused,
// position no longer gates processing. Returns true when the event was
// handled and must not propagate to peers.
func (c *Controller) TouchBegin(ev *TouchEvent) bool {
	x, y := ev.point()
	if !c.focused && !c.node.Contains(x, y) {
		return false
	}

	if len(ev.Touches) >= 2 {
		if !ev.newestOnly() {
			return true
		}
		d := touchDist(ev.Touches[len(ev.Touches)-1], ev.Touches[0])
		c.Stop()
		c.mode = ModeScale
		c.focused = true
		c.pinchDist = d
		c.pinchScaleX, c.pinchScaleY = c.node.Scale()
		return true
	}

	// First contact: start a fresh drag.
	c.Stop()
	c.focused = true
	c.mode = ModeDrag
	c.lastX, c.lastY = x, y
	c.history.reset(x, y, c.cfg.Clock())
	return true
}

// TouchMove handles contact movement while this camera owns the gesture.
func (c *Controller) TouchMove(ev *TouchEvent) bool {
	if !c.focused {
		return false
	}
	x, y := ev.point()

	if c.mode == ModeScale && len(ev.Touches) >= 2 {
		if !ev.newestOnly() {
			return true
		}
		d := touchDist(ev.Touches[len(ev.Touches)-1], ev.Touches[0])
		// Coincident contacts would divide by zero; skip the frame instead.
		if c.pinchDist > 0 && d > 0 {
			r := d / c.pinchDist
			c.SetScaleXY(r*c.pinchScaleX, r*c.pinchScaleY)
		}
		return true
	}

	if c.mode != ModeDrag {
		return true
	}
	px, py := c.node.Position()
	c.SetPosition(px+(x-c.lastX), py+(y-c.lastY))
	c.lastX, c.lastY = x, y
	c.history.push(x, y, c.cfg.Clock())
	return true
}

// TouchEnd handles a contact lifting. A pinch dropping to one surviving
// contact falls back to DRAG seeded from the survivor; the final release
// estimates a velocity from the history buffer and starts inertial motion
// when enough samples were collected.
func (c *Controller) TouchEnd(ev *TouchEvent) bool {
	if !c.focused {
		return false
	}
	now := c.cfg.Clock()

	if c.mode == ModeScale && len(ev.Touches) == 2 {
		survivor := ev.Touches[0]
		if survivor.ID == ev.ID {
			survivor = ev.Touches[1]
		}
		c.mode = ModeDrag
		c.lastX, c.lastY = survivor.X, survivor.Y
		c.history.reset(survivor.X, survivor.Y, now)
		return true
	}
	if len(ev.Touches) > 2 {
		return true
	}

	if c.mode == ModeDrag && c.history.len() > c.cfg.MinPoints {
		x, y := ev.point()
		ox, oy, ot := c.history.oldest()
		if dt := now - ot; dt > 0 {
			c.vx = (x - ox) / dt
			c.vy = (y - oy) / dt
			c.hasVelocity = true
			c.lastTick = now
			c.subscribe()
		}
	}
	c.focused = false
	return true
}

// TouchCancel aborts the gesture. Only focus is cleared: mode is left as-is
// and any in-flight inertial motion keeps running.
func (c *Controller) TouchCancel(ev *TouchEvent) bool {
	if !c.focused {
		return false
	}
	c.focused = false
	return true
}
