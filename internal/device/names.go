package device

import "strings"

// ParseFamily resolves a configuration name to a controller family.
// "all" yields the FamilyAll sentinel.
func ParseFamily(name string) (Family, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all":
		return FamilyAll, true
	case "gcpad", "gamecube":
		return GCPad, true
	case "wiimote":
		return Wiimote, true
	case "nunchuk":
		return Nunchuk, true
	case "classic":
		return Classic, true
	case "wiiupro", "pro":
		return WiiUPro, true
	case "wiiugamepad", "drc":
		return WiiUGamepad, true
	}
	return 0, false
}
