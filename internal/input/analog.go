package input

import "github.com/Atomic-Germ/snes9xGC/internal/snes"

// StickToDigital converts an analog stick position to SNES d-pad bits.
// An axis value strictly within [-threshold, threshold] contributes
// nothing for that axis; diagonals combine both axes.
func StickToDigital(x, y, threshold int16) uint32 {
	var digital uint32
	if x < -threshold {
		digital |= snes.ButtonLeft
	}
	if x > threshold {
		digital |= snes.ButtonRight
	}
	if y < -threshold {
		digital |= snes.ButtonDown
	}
	if y > threshold {
		digital |= snes.ButtonUp
	}
	return digital
}

// InDeadzone reports whether both axes sit inside the deadzone. It is a
// standalone helper; StickToDigital applies its own threshold and does
// not call it.
func InDeadzone(x, y, deadzone int16) bool {
	return abs(x) < deadzone && abs(y) < deadzone
}

func abs(v int16) int16 {
	if v < 0 {
		return -v
	}
	return v
}
