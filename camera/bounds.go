package camera

// clampX keeps the viewport inside the content horizontally: the position may
// not exceed 0 (content left edge at the viewport left edge) and may not drop
// below viewportW - contentW*scaleX (content right edge at the viewport right
// edge). When the scaled content is narrower than the viewport the range
// collapses and the position pins to 0.
func (c *Controller) clampX(x float64) float64 {
	vw, _ := c.node.ViewportSize()
	cw, _ := c.node.ContentSize()
	sx, _ := c.node.Scale()
	low := vw - cw*sx
	if low > 0 {
		low = 0
	}
	if x < low {
		x = low
	}
	if x > 0 {
		x = 0
	}
	return x
}

func (c *Controller) clampY(y float64) float64 {
	_, vh := c.node.ViewportSize()
	_, ch := c.node.ContentSize()
	_, sy := c.node.Scale()
	low := vh - ch*sy
	if low > 0 {
		low = 0
	}
	if y < low {
		y = low
	}
	if y > 0 {
		y = 0
	}
	return y
}

// clampScale bounds both axes to [minScale, MaxZoom] where minScale is the
// smallest zoom that still covers the viewport in both dimensions. The two
// per-axis minimums are cross-applied: each axis is bounded below by the
// larger of the two, so one axis can never zoom out past full coverage of
// the other. If the configured MaxZoom is below minScale, minScale wins:
// full coverage is a harder constraint than the configured maximum.
func (c *Controller) clampScale(sx, sy float64) (float64, float64) {
	vw, vh := c.node.ViewportSize()
	cw, ch := c.node.ContentSize()
	if vw <= 0 || vh <= 0 {
		return sx, sy
	}
	minScale := cw / vw
	if m := ch / vh; m > minScale {
		minScale = m
	}
	maxScale := c.cfg.MaxZoom
	if maxScale < minScale {
		maxScale = minScale
	}
	sx = clamp(sx, minScale, maxScale)
	sy = clamp(sy, minScale, maxScale)
	return sx, sy
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
