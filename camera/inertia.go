package camera

import "math"

// restThreshold is the velocity magnitude (content units per second) below
// which an axis snaps to exactly zero.
const restThreshold = 0.1

// Tick advances inertial motion by one frame. The host calls it once per
// frame; it does nothing unless a release velocity is set. Displacement is
// integrated over the elapsed time since the previous tick, clamped, and the
// velocity decays by the friction factor. When both axes reach zero the
// controller unsubscribes from frame ticks and the motion is complete.
func (c *Controller) Tick(now float64) {
	if !c.hasVelocity || c.mode != ModeDrag {
		return
	}
	elapsed := now - c.lastTick
	c.lastTick = now
	if elapsed <= 0 {
		return
	}

	px, py := c.node.Position()
	c.SetPosition(px+c.vx*elapsed, py+c.vy*elapsed)

	c.vx *= c.cfg.Friction
	c.vy *= c.cfg.Friction
	if math.Abs(c.vx) < restThreshold {
		c.vx = 0
	}
	if math.Abs(c.vy) < restThreshold {
		c.vy = 0
	}
	if c.vx == 0 && c.vy == 0 {
		c.Stop()
	}
}

// Stop cancels any in-flight inertial motion. Idempotent.
func (c *Controller) Stop() {
	c.unsubscribe()
	c.hasVelocity = false
	c.vx, c.vy = 0, 0
	c.lastTick = 0
}

func (c *Controller) subscribe() {
	if c.ticking {
		return
	}
	c.ticking = true
	c.cfg.Scheduler.Subscribe()
}

func (c *Controller) unsubscribe() {
	if !c.ticking {
		return
	}
	c.ticking = false
	c.cfg.Scheduler.Unsubscribe()
}
