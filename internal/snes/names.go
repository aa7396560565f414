package snes

import "strings"

// ParseScheme resolves a configuration name to a scheme. "all" yields
// the SchemeAll sentinel.
func ParseScheme(name string) (Scheme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "all":
		return SchemeAll, true
	case "pad":
		return Pad, true
	case "superscope", "scope":
		return Superscope, true
	case "mouse":
		return Mouse, true
	case "justifier":
		return Justifier, true
	}
	return 0, false
}

var buttonsByName = map[string]uint32{
	"a":      ButtonA,
	"b":      ButtonB,
	"x":      ButtonX,
	"y":      ButtonY,
	"l":      ButtonL,
	"r":      ButtonR,
	"start":  ButtonStart,
	"select": ButtonSelect,
	"up":     ButtonUp,
	"down":   ButtonDown,
	"left":   ButtonLeft,
	"right":  ButtonRight,
}

// ButtonByName resolves a Pad button name to its SNES bit, 0 if unknown.
func ButtonByName(name string) uint32 {
	return buttonsByName[strings.ToLower(strings.TrimSpace(name))]
}

// ComboByNames ORs a list of Pad button names into one mask. Unknown
// names make the whole combo invalid (0), so a misspelled hotkey can
// never fire by accident.
func ComboByNames(names []string) uint32 {
	var combo uint32
	for _, n := range names {
		bit := ButtonByName(n)
		if bit == 0 {
			return 0
		}
		combo |= bit
	}
	return combo
}
