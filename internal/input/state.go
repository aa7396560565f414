package input

import "github.com/Atomic-Germ/snes9xGC/internal/device"

// ChannelState is one controller channel's decoded state for a frame.
type ChannelState struct {
	Connected bool   `json:"connected"`
	Family    string `json:"family"`
	Scheme    string `json:"scheme"`
	Raw       uint32 `json:"raw"`
	Held      uint32 `json:"held"`
	Pressed   uint32 `json:"pressed"`
	Released  uint32 `json:"released"`
	StickX    int16  `json:"stickX"`
	StickY    int16  `json:"stickY"`
}

// FrameState is the full decoded state of every channel after one poll.
type FrameState struct {
	Channels [device.NumChannels]ChannelState `json:"channels"`
}

// DeltaChanges carries only the channels that changed between two
// frames.
type DeltaChanges struct {
	Channels [device.NumChannels]*ChannelState `json:"channels"`
}

// IsEmpty reports whether no channel changed.
func (d *DeltaChanges) IsEmpty() bool {
	for _, c := range d.Channels {
		if c != nil {
			return false
		}
	}
	return true
}

// ComputeDelta compares two frame snapshots channel by channel.
func ComputeDelta(old, cur FrameState) *DeltaChanges {
	d := &DeltaChanges{}
	for i := range cur.Channels {
		if old.Channels[i] != cur.Channels[i] {
			c := cur.Channels[i]
			d.Channels[i] = &c
		}
	}
	return d
}

// HotkeyEvent is emitted when a configured button combo is satisfied on
// a channel.
type HotkeyEvent struct {
	Name    string `json:"name"`
	Channel int    `json:"channel"`
}
