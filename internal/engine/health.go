package engine

// Health tracks hit points.
type Health struct {
	Current, Max int
}

// Health implements HasHealth.
func (h *Health) Health() *Health {
	return h
}

// Damage subtracts n hit points, never going below zero.
func (h *Health) Damage(n int) {
	h.Current -= n
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal restores n hit points, capped at Max.
func (h *Health) Heal(n int) {
	h.Current += n
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Alive reports whether any hit points remain.
func (h Health) Alive() bool {
	return h.Current > 0
}
