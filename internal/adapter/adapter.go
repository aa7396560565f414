// Package adapter defines the contract a physical controller family
// fulfils toward the input pipeline, and the SDL-backed implementations
// for real hardware and third-party USB bridges.
package adapter

import "github.com/Atomic-Germ/snes9xGC/internal/device"

// Adapter is implemented once per controller family. A failing ScanPads
// is never an error: downstream treats it as disconnected with a zero
// held mask.
type Adapter interface {
	// ScanPads refreshes the family's device state for this poll
	// cycle and reports whether any supported device was seen.
	ScanPads() bool
	// IsConnected reports whether at least one device of the family
	// is currently attached.
	IsConnected() bool
	// ButtonsHeld returns the raw held-button bitmask for one
	// channel, 0 for an out-of-range channel or a disconnected
	// device.
	ButtonsHeld(channel int) uint32
	// Status returns a short diagnostic line for the family.
	Status() string
}

// StickSource is implemented by adapters whose hardware carries an
// analog stick.
type StickSource interface {
	Stick(channel int) (x, y int16)
}

// Set resolves the adapter serving each controller family.
type Set map[device.Family]Adapter

// Null is the adapter for a family with no backing hardware. It scans
// nothing and holds nothing.
type Null struct{}

func (Null) ScanPads() bool                 { return false }
func (Null) IsConnected() bool              { return false }
func (Null) ButtonsHeld(channel int) uint32 { return 0 }
func (Null) Status() string                 { return "not connected" }
