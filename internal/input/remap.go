package input

import (
	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

// gcToSNES maps each GameCube pad raw code directly onto the SNES
// native encoding. USB bridges that report GC-style masks go through
// this table instead of the mapping registry. Every source code is a
// single bit and maps to exactly one destination bit.
var gcToSNES = []struct {
	src uint32
	dst uint32
}{
	{device.GCA, snes.ButtonA},
	{device.GCB, snes.ButtonB},
	{device.GCX, snes.ButtonX},
	{device.GCY, snes.ButtonY},
	{device.GCTriggerL, snes.ButtonL},
	{device.GCTriggerR, snes.ButtonR},
	{device.GCStart, snes.ButtonStart},
	{device.GCTriggerZ, snes.ButtonSelect},
	{device.GCUp, snes.ButtonUp},
	{device.GCDown, snes.ButtonDown},
	{device.GCLeft, snes.ButtonLeft},
	{device.GCRight, snes.ButtonRight},
}

// MapGCButton translates a single GameCube raw code to its SNES bit.
// An undefined source code maps to 0.
func MapGCButton(code uint32) uint32 {
	for _, m := range gcToSNES {
		if m.src == code {
			return m.dst
		}
	}
	return 0
}

// RemapGCHeld translates a whole GameCube held mask to the SNES
// encoding with the same bit-test-then-OR walk the normalizer uses.
func RemapGCHeld(raw uint32) uint32 {
	var out uint32
	for _, m := range gcToSNES {
		if raw&m.src == m.src {
			out |= m.dst
		}
	}
	return out
}
