// Package snes defines the logical control schemes the emulated SNES
// exposes on its controller ports, and the native button bit encoding
// for each scheme.
package snes

// Scheme is the logical controller the emulated machine expects on a port.
type Scheme int

const (
	// SchemeAll is the sentinel accepted by mapping.Registry.Rebuild
	// meaning "every scheme".
	SchemeAll Scheme = iota - 1

	Pad
	Superscope
	Mouse
	Justifier

	NumSchemes = 4
)

func (s Scheme) String() string {
	switch s {
	case Pad:
		return "pad"
	case Superscope:
		return "superscope"
	case Mouse:
		return "mouse"
	case Justifier:
		return "justifier"
	}
	return "unknown"
}

// Valid reports whether s names a concrete scheme (not the ALL sentinel).
func (s Scheme) Valid() bool {
	return s >= Pad && s < NumSchemes
}

// SNES joypad hardware bits, as latched by the console.
const (
	ButtonB      uint32 = 0x8000
	ButtonY      uint32 = 0x4000
	ButtonSelect uint32 = 0x2000
	ButtonStart  uint32 = 0x1000
	ButtonUp     uint32 = 0x0800
	ButtonDown   uint32 = 0x0400
	ButtonLeft   uint32 = 0x0200
	ButtonRight  uint32 = 0x0100
	ButtonA      uint32 = 0x0080
	ButtonX      uint32 = 0x0040
	ButtonL      uint32 = 0x0020
	ButtonR      uint32 = 0x0010
)

// MaxSlots is the widest scheme's slot count (the Pad).
const MaxSlots = 12

// slotCounts holds the fixed logical slot count per scheme.
var slotCounts = [NumSchemes]int{
	Pad:        12,
	Superscope: 6,
	Mouse:      2,
	Justifier:  3,
}

// SlotCount returns the number of logical button slots for a scheme,
// or 0 for an invalid scheme.
func SlotCount(s Scheme) int {
	if !s.Valid() {
		return 0
	}
	return slotCounts[s]
}

// padSlotBits maps Pad slot index to the SNES hardware bit. Slot order
// matches the canonical mapping rows: A, B, X, Y, L, R, Start, Select,
// Up, Down, Left, Right.
var padSlotBits = [12]uint32{
	ButtonA, ButtonB, ButtonX, ButtonY,
	ButtonL, ButtonR, ButtonStart, ButtonSelect,
	ButtonUp, ButtonDown, ButtonLeft, ButtonRight,
}

// SlotMask returns the scheme-native bit for one logical slot. The Pad
// scheme uses the SNES hardware encoding; the pointer schemes have no
// hardware mask of their own and use 1<<slot. Returns 0 for an
// out-of-range slot.
func SlotMask(s Scheme, slot int) uint32 {
	if slot < 0 || slot >= SlotCount(s) {
		return 0
	}
	if s == Pad {
		return padSlotBits[slot]
	}
	return 1 << uint(slot)
}

var slotNames = [NumSchemes][]string{
	Pad: {
		"A", "B", "X", "Y", "L", "R",
		"Start", "Select", "Up", "Down", "Left", "Right",
	},
	Superscope: {
		"Fire", "Aim Offscreen", "Cursor", "Turbo On", "Turbo Off", "Pause",
	},
	Mouse: {
		"Left Button", "Right Button",
	},
	Justifier: {
		"Fire", "Aim Offscreen", "Start",
	},
}

// SlotName returns the human-readable name of a logical slot, or "" if
// the scheme or slot is out of range.
func SlotName(s Scheme, slot int) string {
	if slot < 0 || slot >= SlotCount(s) {
		return ""
	}
	return slotNames[s][slot]
}

// DirectionMask groups the four Pad direction bits, the set
// StickToDigital can produce.
const DirectionMask = ButtonUp | ButtonDown | ButtonLeft | ButtonRight
