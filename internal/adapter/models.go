package adapter

import "github.com/Atomic-Germ/snes9xGC/internal/device"

// buttonEntry maps one SDL button index to a family raw code.
type buttonEntry struct {
	Index int32
	Code  uint32
}

// hatEntry maps one SDL hat bit to a family raw code.
type hatEntry struct {
	Bit  uint8
	Code uint32
}

// Model describes how one kind of physical device presents over the
// joystick bus: which family's raw encoding it reports and how SDL
// button/hat indexes translate into it.
type Model struct {
	Name    string
	Family  device.Family
	Buttons []buttonEntry
	Hats    []hatEntry
	// GCEncoded marks third-party bridges that report GameCube-style
	// masks regardless of the console pad plugged into them; their
	// output goes through the cross-family remap, not the registry.
	GCEncoded bool
}

const (
	hatUp    uint8 = 0x01
	hatRight uint8 = 0x02
	hatDown  uint8 = 0x04
	hatLeft  uint8 = 0x08
)

var gcHats = []hatEntry{
	{hatUp, device.GCUp},
	{hatRight, device.GCRight},
	{hatDown, device.GCDown},
	{hatLeft, device.GCLeft},
}

var gcPadModel = &Model{
	Name:   "gcpad",
	Family: device.GCPad,
	Buttons: []buttonEntry{
		{0, device.GCA},
		{1, device.GCB},
		{2, device.GCX},
		{3, device.GCY},
		{4, device.GCTriggerL},
		{5, device.GCTriggerR},
		{6, device.GCTriggerZ},
		{7, device.GCStart},
	},
	Hats: gcHats,
}

var classicModel = &Model{
	Name:   "classic",
	Family: device.Classic,
	Buttons: []buttonEntry{
		{0, device.ClassicA},
		{1, device.ClassicB},
		{2, device.ClassicX},
		{3, device.ClassicY},
		{4, device.ClassicFullL},
		{5, device.ClassicFullR},
		{6, device.ClassicZL},
		{7, device.ClassicZR},
		{8, device.ClassicMinus},
		{9, device.ClassicPlus},
		{10, device.ClassicHome},
	},
	Hats: []hatEntry{
		{hatUp, device.ClassicUp},
		{hatRight, device.ClassicRight},
		{hatDown, device.ClassicDown},
		{hatLeft, device.ClassicLeft},
	},
}

var proModel = &Model{
	Name:    "wiiupro",
	Family:  device.WiiUPro,
	Buttons: classicModel.Buttons,
	Hats:    classicModel.Hats,
}

var gamepadModel = &Model{
	Name:   "wiiugamepad",
	Family: device.WiiUGamepad,
	Buttons: []buttonEntry{
		{0, device.DRCA},
		{1, device.DRCB},
		{2, device.DRCX},
		{3, device.DRCY},
		{4, device.DRCL},
		{5, device.DRCR},
		{6, device.DRCZL},
		{7, device.DRCZR},
		{8, device.DRCMinus},
		{9, device.DRCPlus},
		{10, device.DRCHome},
	},
	Hats: []hatEntry{
		{hatUp, device.DRCUp},
		{hatRight, device.DRCRight},
		{hatDown, device.DRCDown},
		{hatLeft, device.DRCLeft},
	},
}

var wiimoteModel = &Model{
	Name:   "wiimote",
	Family: device.Wiimote,
	Buttons: []buttonEntry{
		{0, device.WiimoteA},
		{1, device.WiimoteB},
		{2, device.Wiimote1},
		{3, device.Wiimote2},
		{4, device.WiimoteMinus},
		{5, device.WiimotePlus},
		{6, device.WiimoteHome},
	},
	Hats: []hatEntry{
		{hatUp, device.WiimoteUp},
		{hatRight, device.WiimoteRight},
		{hatDown, device.WiimoteDown},
		{hatLeft, device.WiimoteLeft},
	},
}

var nunchukModel = &Model{
	Name:   "nunchuk",
	Family: device.Nunchuk,
	Buttons: []buttonEntry{
		{0, device.WiimoteA},
		{1, device.WiimoteB},
		{2, device.NunchukC},
		{3, device.NunchukZ},
		{4, device.WiimoteMinus},
		{5, device.WiimotePlus},
		{6, device.Wiimote1},
		{7, device.Wiimote2},
	},
	Hats: []hatEntry{
		{hatUp, device.WiimoteUp},
		{hatRight, device.WiimoteRight},
		{hatDown, device.WiimoteDown},
		{hatLeft, device.WiimoteLeft},
	},
}

// Third-party USB bridges. Both report GameCube-style masks that the
// pipeline routes through the cross-family remap.

var retrodeModel = &Model{
	Name:      "Retrode",
	Family:    device.GCPad,
	Buttons:   gcPadModel.Buttons,
	Hats:      gcHats,
	GCEncoded: true,
}

var mayflashModel = &Model{
	Name:      "Mayflash",
	Family:    device.GCPad,
	Buttons:   gcPadModel.Buttons,
	Hats:      gcHats,
	GCEncoded: true,
}

// Known vendor/product IDs.
type deviceKey struct {
	VendorID  uint16
	ProductID uint16
}

var knownDevices = map[deviceKey]*Model{
	// Retrode 2 cartridge/controller reader
	{0x0403, 0x97C1}: retrodeModel,
	// Mayflash GameCube controller adapters
	{0x0E8F, 0x3013}: mayflashModel,
	{0x0079, 0x1844}: mayflashModel,
	// Nintendo Switch/Wii U Pro over USB
	{0x057E, 0x2009}: proModel,
	{0x057E, 0x0337}: gcPadModel, // official GC adapter
	// Classic Controller over common Bluetooth HID bridges
	{0x057E, 0x0306}: wiimoteModel,
	{0x057E, 0x0330}: classicModel,
}

// ModelFor picks the model for a device identified by vendor/product
// ID, falling back to a plain GameCube pad for unknown hardware.
func ModelFor(vendorID, productID uint16) *Model {
	if m, ok := knownDevices[deviceKey{vendorID, productID}]; ok {
		return m
	}
	return gcPadModel
}
