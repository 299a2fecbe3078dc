package camera

// sample is one observed contact position with its timestamp in seconds.
type sample struct {
	x, y float64
	t    float64
}

// history is a bounded rolling buffer of recent contact samples, oldest
// first. It seeds the release velocity estimate: the wider the time window
// it covers, the smoother the estimate.
type history struct {
	max     int
	samples []sample
}

// reset discards everything and starts over with a single sample. Called
// whenever a new drag begins.
func (h *history) reset(x, y, t float64) {
	h.samples = append(h.samples[:0], sample{x, y, t})
}

// push appends a sample, evicting the oldest when the buffer is full.
func (h *history) push(x, y, t float64) {
	if h.max > 0 && len(h.samples) >= h.max {
		n := copy(h.samples, h.samples[1:])
		h.samples = h.samples[:n]
	}
	h.samples = append(h.samples, sample{x, y, t})
}

func (h *history) len() int { return len(h.samples) }

// oldest returns the first (earliest) sample. Callers check len first.
func (h *history) oldest() (x, y, t float64) {
	s := h.samples[0]
	return s.x, s.y, s.t
}
