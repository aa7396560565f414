// Package device enumerates the physical controller families that can
// drive an emulated port, and the raw button bit codes each family
// reports in its held-button mask.
package device

// Family is a physical controller hardware family.
type Family int

const (
	// FamilyAll is the sentinel accepted by mapping.Registry.Rebuild
	// meaning "every family".
	FamilyAll Family = iota - 1

	GCPad
	Wiimote
	Nunchuk
	Classic
	WiiUPro
	WiiUGamepad

	NumFamilies = 6
)

func (f Family) String() string {
	switch f {
	case GCPad:
		return "GameCube Controller"
	case Wiimote:
		return "Wiimote"
	case Nunchuk:
		return "Nunchuk + Wiimote"
	case Classic:
		return "Classic Controller"
	case WiiUPro:
		return "Wii U Pro Controller"
	case WiiUGamepad:
		return "Wii U GamePad"
	}
	return "Unknown Controller"
}

// Valid reports whether f names a concrete family (not the ALL sentinel).
func (f Family) Valid() bool {
	return f >= GCPad && f < NumFamilies
}

// NumChannels is the number of controller channels polled per frame.
const NumChannels = 4

// GameCube pad raw bits.
const (
	GCLeft     uint32 = 0x0001
	GCRight    uint32 = 0x0002
	GCDown     uint32 = 0x0004
	GCUp       uint32 = 0x0008
	GCTriggerZ uint32 = 0x0010
	GCTriggerR uint32 = 0x0020
	GCTriggerL uint32 = 0x0040
	GCA        uint32 = 0x0100
	GCB        uint32 = 0x0200
	GCX        uint32 = 0x0400
	GCY        uint32 = 0x0800
	GCStart    uint32 = 0x1000
)

// Wiimote raw bits. The Nunchuk buttons share the Wiimote's report and
// occupy the extension half of the word.
const (
	Wiimote2     uint32 = 0x0001
	Wiimote1     uint32 = 0x0002
	WiimoteB     uint32 = 0x0004
	WiimoteA     uint32 = 0x0008
	WiimoteMinus uint32 = 0x0010
	WiimoteHome  uint32 = 0x0080
	WiimoteLeft  uint32 = 0x0100
	WiimoteRight uint32 = 0x0200
	WiimoteDown  uint32 = 0x0400
	WiimoteUp    uint32 = 0x0800
	WiimotePlus  uint32 = 0x1000

	NunchukZ uint32 = 0x0001 << 16
	NunchukC uint32 = 0x0002 << 16
)

// Classic Controller raw bits (extension half of the report word). The
// Wii U Pro Controller reports the same encoding.
const (
	ClassicUp    uint32 = 0x0001 << 16
	ClassicLeft  uint32 = 0x0002 << 16
	ClassicZR    uint32 = 0x0004 << 16
	ClassicX     uint32 = 0x0008 << 16
	ClassicA     uint32 = 0x0010 << 16
	ClassicY     uint32 = 0x0020 << 16
	ClassicB     uint32 = 0x0040 << 16
	ClassicZL    uint32 = 0x0080 << 16
	ClassicFullR uint32 = 0x0200 << 16
	ClassicPlus  uint32 = 0x0400 << 16
	ClassicHome  uint32 = 0x0800 << 16
	ClassicMinus uint32 = 0x1000 << 16
	ClassicFullL uint32 = 0x2000 << 16
	ClassicDown  uint32 = 0x4000 << 16
	ClassicRight uint32 = 0x8000 << 16
)

// Wii U GamePad raw bits.
const (
	DRCSync  uint32 = 0x0001
	DRCHome  uint32 = 0x0002
	DRCMinus uint32 = 0x0004
	DRCPlus  uint32 = 0x0008
	DRCR     uint32 = 0x0010
	DRCL     uint32 = 0x0020
	DRCZR    uint32 = 0x0040
	DRCZL    uint32 = 0x0080
	DRCDown  uint32 = 0x0100
	DRCUp    uint32 = 0x0200
	DRCRight uint32 = 0x0400
	DRCLeft  uint32 = 0x0800
	DRCY     uint32 = 0x1000
	DRCX     uint32 = 0x2000
	DRCB     uint32 = 0x4000
	DRCA     uint32 = 0x8000
)
