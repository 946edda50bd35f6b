package core

import (
	"slices"
	"time"
)

// Coordinator owns the registry of live pickers and enforces the
// cross-instance protocol: at most one open popup, and a shared dimmed
// overlay whose visibility is always recomputed from the registry rather
// than toggled, so interleaved open/close sequences cannot drift. The
// registry is an explicit object injected into whatever owns the pickers,
// never package state.
type Coordinator struct {
	pickers []*Picker
	turn    uint64
}

func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Register adds a picker to the registry. Registration order is stable.
func (c *Coordinator) Register(p *Picker) {
	if c == nil || p == nil || slices.Contains(c.pickers, p) {
		return
	}
	c.pickers = append(c.pickers, p)
}

// Pickers returns the live instances in registration order.
func (c *Coordinator) Pickers() []*Picker {
	if c == nil {
		return nil
	}
	return slices.Clone(c.pickers)
}

// BeginTurn marks the start of one interaction event. Every open recorded
// during a turn is immune to that same turn's outside-press close, so the
// press that opened a popup cannot immediately close it.
func (c *Coordinator) BeginTurn() {
	if c != nil {
		c.turn++
	}
}

// Open closes every other instance first, then opens p. Mutual exclusion
// holds even if p was somehow already open elsewhere in the registry.
func (c *Coordinator) Open(p *Picker, seed string, now time.Time) {
	if c == nil || p == nil || !slices.Contains(c.pickers, p) {
		return
	}
	for _, other := range c.pickers {
		if other != p {
			other.Close()
		}
	}
	p.Open(seed, now)
	p.openedTurn = c.turn
}

// CloseOutside handles an interaction outside any popup: the open picker
// closes unless it was opened during this same turn.
func (c *Coordinator) CloseOutside() {
	if c == nil {
		return
	}
	for _, p := range c.pickers {
		if p.IsOpen() && p.openedTurn != c.turn {
			p.Close()
		}
	}
}

// OpenPicker returns the single open instance, if any.
func (c *Coordinator) OpenPicker() *Picker {
	if c == nil {
		return nil
	}
	for _, p := range c.pickers {
		if p.IsOpen() {
			return p
		}
	}
	return nil
}

// OverlayVisible derives the shared overlay state: visible iff at least
// one instance is open.
func (c *Coordinator) OverlayVisible() bool {
	return c.OpenPicker() != nil
}

// Destroy tears an instance down: closes it and removes it from the
// registry. The overlay collapses on its own since visibility is derived.
func (c *Coordinator) Destroy(p *Picker) {
	if c == nil || p == nil {
		return
	}
	p.Close()
	if i := slices.Index(c.pickers, p); i >= 0 {
		c.pickers = slices.Delete(c.pickers, i, i+1)
	}
}
