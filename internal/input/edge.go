package input

import "github.com/Atomic-Germ/snes9xGC/internal/device"

// EdgeDelta is the button transition between two consecutive frames.
type EdgeDelta struct {
	Pressed  uint32
	Released uint32
}

// ComputeEdges derives the press/release delta from a previous and
// current logical mask.
func ComputeEdges(previous, current uint32) EdgeDelta {
	return EdgeDelta{
		Pressed:  current &^ previous,
		Released: previous &^ current,
	}
}

// Tracker keeps the previous logical mask per channel and advances it
// as each frame's current mask arrives. The previous mask starts at 0,
// so the first frame reports everything held as pressed.
type Tracker struct {
	prev [device.NumChannels]uint32
}

// Advance computes this frame's edges for a channel and moves previous
// forward to current. A nil tracker or out-of-range channel is
// rejected: ok is false and no state changes.
func (t *Tracker) Advance(channel int, current uint32) (delta EdgeDelta, ok bool) {
	if t == nil || channel < 0 || channel >= device.NumChannels {
		return EdgeDelta{}, false
	}
	delta = ComputeEdges(t.prev[channel], current)
	t.prev[channel] = current
	return delta, true
}

// Previous returns the stored previous mask for a channel, 0 if the
// channel is out of range.
func (t *Tracker) Previous(channel int) uint32 {
	if t == nil || channel < 0 || channel >= device.NumChannels {
		return 0
	}
	return t.prev[channel]
}

// Reset clears every channel's previous mask.
func (t *Tracker) Reset() {
	if t == nil {
		return
	}
	t.prev = [device.NumChannels]uint32{}
}
