// Package input implements the per-frame normalization pipeline: raw
// device bitmasks are remapped through the mapping registry into
// scheme-native button masks, press/release edges are tracked per
// channel, analog sticks are folded into digital directions, and hotkey
// combos are validated.
package input

import (
	"github.com/Atomic-Germ/snes9xGC/internal/adapter"
	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/mapping"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

// Normalizer turns a family's raw held mask into the logical mask of a
// console scheme using the registry's row for the pair.
type Normalizer struct {
	reg      *mapping.Registry
	adapters adapter.Set
}

func NewNormalizer(reg *mapping.Registry, adapters adapter.Set) *Normalizer {
	return &Normalizer{reg: reg, adapters: adapters}
}

// Normalize reads the raw mask for channel from the family's adapter and
// decodes it. A missing adapter, disconnected family, or undefined pair
// yields 0.
func (n *Normalizer) Normalize(s snes.Scheme, f device.Family, channel int) uint32 {
	a, ok := n.adapters[f]
	if !ok || !a.IsConnected() {
		return 0
	}
	return n.Decode(s, f, a.ButtonsHeld(channel))
}

// Decode remaps a raw held mask through the (scheme, family) row. For
// each slot whose entry is non-zero the scheme-native bit is set when
// every bit of the entry is held; a 0 entry never contributes.
func (n *Normalizer) Decode(s snes.Scheme, f device.Family, raw uint32) uint32 {
	row := n.reg.Row(s, f)
	var logical uint32
	for slot, code := range row {
		if code != 0 && raw&code == code {
			logical |= snes.SlotMask(s, slot)
		}
	}
	return logical
}
