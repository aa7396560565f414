package mapping

import (
	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

// defaultRows holds the canonical slot assignments for every pair. Slot
// order follows the scheme's slot list (snes.SlotName). A 0 entry means
// the family has no physical counterpart for that slot.
//
// The Nunchuk rows for the pointer schemes mirror the Wiimote: the
// nunchuk is an add-on and its pointer input comes from the attached
// remote.
var defaultRows = [snes.NumSchemes][device.NumFamilies][]uint32{
	snes.Pad: {
		// A, B, X, Y, L, R, Start, Select, Up, Down, Left, Right
		device.GCPad: {
			device.GCA, device.GCB, device.GCX, device.GCY,
			device.GCTriggerL, device.GCTriggerR,
			device.GCStart, device.GCTriggerZ,
			device.GCUp, device.GCDown, device.GCLeft, device.GCRight,
		},
		// Sideways remote: the d-pad is rotated a quarter turn, and
		// there is nothing left to map to L and R.
		device.Wiimote: {
			device.WiimoteB, device.Wiimote2, device.Wiimote1, device.WiimoteA,
			0, 0,
			device.WiimotePlus, device.WiimoteMinus,
			device.WiimoteRight, device.WiimoteLeft,
			device.WiimoteUp, device.WiimoteDown,
		},
		device.Nunchuk: {
			device.WiimoteA, device.WiimoteB, device.NunchukC, device.NunchukZ,
			device.Wiimote2, device.Wiimote1,
			device.WiimotePlus, device.WiimoteMinus,
			device.WiimoteUp, device.WiimoteDown,
			device.WiimoteLeft, device.WiimoteRight,
		},
		device.Classic: {
			device.ClassicA, device.ClassicB, device.ClassicX, device.ClassicY,
			device.ClassicFullL, device.ClassicFullR,
			device.ClassicPlus, device.ClassicMinus,
			device.ClassicUp, device.ClassicDown,
			device.ClassicLeft, device.ClassicRight,
		},
		device.WiiUPro: {
			device.ClassicA, device.ClassicB, device.ClassicX, device.ClassicY,
			device.ClassicFullL, device.ClassicFullR,
			device.ClassicPlus, device.ClassicMinus,
			device.ClassicUp, device.ClassicDown,
			device.ClassicLeft, device.ClassicRight,
		},
		device.WiiUGamepad: {
			device.DRCA, device.DRCB, device.DRCX, device.DRCY,
			device.DRCL, device.DRCR,
			device.DRCPlus, device.DRCMinus,
			device.DRCUp, device.DRCDown, device.DRCLeft, device.DRCRight,
		},
	},
	snes.Superscope: {
		// Fire, Aim Offscreen, Cursor, Turbo On, Turbo Off, Pause
		device.GCPad: {
			device.GCA, device.GCB, device.GCTriggerZ,
			device.GCY, device.GCX, device.GCStart,
		},
		device.Wiimote: {
			device.WiimoteB, device.WiimoteA, device.WiimoteMinus,
			device.WiimoteUp, device.WiimoteDown, device.WiimotePlus,
		},
		device.Nunchuk: {
			device.WiimoteB, device.WiimoteA, device.WiimoteMinus,
			device.WiimoteUp, device.WiimoteDown, device.WiimotePlus,
		},
		device.Classic: {
			device.ClassicB, device.ClassicA, device.ClassicMinus,
			device.ClassicY, device.ClassicX, device.ClassicPlus,
		},
		device.WiiUPro: {
			device.ClassicB, device.ClassicA, device.ClassicMinus,
			device.ClassicY, device.ClassicX, device.ClassicPlus,
		},
		device.WiiUGamepad: {
			device.DRCB, device.DRCA, device.DRCMinus,
			device.DRCY, device.DRCX, device.DRCPlus,
		},
	},
	snes.Mouse: {
		// Left Button, Right Button
		device.GCPad:   {device.GCA, device.GCB},
		device.Wiimote: {device.WiimoteA, device.WiimoteB},
		device.Nunchuk: {device.WiimoteA, device.WiimoteB},
		device.Classic: {device.ClassicA, device.ClassicB},
		device.WiiUPro: {device.ClassicA, device.ClassicB},
		device.WiiUGamepad: {
			device.DRCA, device.DRCB,
		},
	},
	snes.Justifier: {
		// Fire, Aim Offscreen, Start
		device.GCPad:   {device.GCB, device.GCA, device.GCStart},
		device.Wiimote: {device.WiimoteB, device.WiimoteA, device.WiimotePlus},
		device.Nunchuk: {device.WiimoteB, device.WiimoteA, device.WiimotePlus},
		device.Classic: {device.ClassicB, device.ClassicA, device.ClassicPlus},
		device.WiiUPro: {device.ClassicB, device.ClassicA, device.ClassicPlus},
		device.WiiUGamepad: {
			device.DRCB, device.DRCA, device.DRCPlus,
		},
	},
}
