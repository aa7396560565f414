package tray

import _ "embed"

//go:embed icon.ico
var iconData []byte

// GetIcon returns the tray icon image data.
func GetIcon() []byte {
	return iconData
}
