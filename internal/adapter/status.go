package adapter

import "github.com/Atomic-Germ/snes9xGC/internal/device"

// StatusLines collects one diagnostic line per family, in family order.
func (s Set) StatusLines() []string {
	lines := make([]string, 0, len(s))
	for f := device.GCPad; f.Valid(); f++ {
		if a, ok := s[f]; ok {
			lines = append(lines, a.Status())
		}
	}
	return lines
}
