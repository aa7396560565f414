package hub

import (
	"time"

	"github.com/Atomic-Germ/snes9xGC/internal/input"
)

// WSMessage is a message sent from server to client.
type WSMessage struct {
	Type      string              `json:"type"` // "full", "delta", "hotkey", "status"
	Seq       int64               `json:"seq"`
	Timestamp int64               `json:"timestamp"`
	Data      *input.FrameState   `json:"data,omitempty"`
	Changes   *input.DeltaChanges `json:"changes,omitempty"`
	Hotkey    *input.HotkeyEvent  `json:"hotkey,omitempty"`
	Status    []string            `json:"status,omitempty"`
}

// NewFullMessage carries a complete frame snapshot.
func NewFullMessage(seq int64, state *input.FrameState) *WSMessage {
	return &WSMessage{
		Type:      "full",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Data:      state,
	}
}

// NewDeltaMessage carries only the channels that changed.
func NewDeltaMessage(seq int64, changes *input.DeltaChanges) *WSMessage {
	return &WSMessage{
		Type:      "delta",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Changes:   changes,
	}
}

// NewHotkeyMessage announces a satisfied hotkey combo.
func NewHotkeyMessage(seq int64, ev input.HotkeyEvent) *WSMessage {
	return &WSMessage{
		Type:      "hotkey",
		Seq:       seq,
		Timestamp: time.Now().UnixMilli(),
		Hotkey:    &ev,
	}
}

// NewStatusMessage carries the adapter diagnostic lines.
func NewStatusMessage(status []string) *WSMessage {
	return &WSMessage{
		Type:      "status",
		Timestamp: time.Now().UnixMilli(),
		Status:    status,
	}
}

// ClientMessage is a message sent from the client to the server.
type ClientMessage struct {
	Type string `json:"type"` // "status"
}
