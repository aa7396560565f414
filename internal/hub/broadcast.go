package hub

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Atomic-Germ/snes9xGC/internal/input"
)

const (
	fullSyncInterval = 5 * time.Second
	deltaCountSync   = 100
)

// Broadcaster listens for frame changes and hotkey events and
// broadcasts them to the hub.
type Broadcaster struct {
	hub       *Hub
	changes   <-chan input.FrameState
	events    <-chan input.HotkeyEvent
	lastState input.FrameState
	seq       int64
}

func NewBroadcaster(h *Hub, changes <-chan input.FrameState, events <-chan input.HotkeyEvent) *Broadcaster {
	return &Broadcaster{
		hub:     h,
		changes: changes,
		events:  events,
	}
}

// Run starts the broadcaster loop. Should be run in a goroutine.
func (b *Broadcaster) Run() {
	ticker := time.NewTicker(fullSyncInterval)
	defer ticker.Stop()

	var deltaCount int64

	for {
		select {
		case state, ok := <-b.changes:
			if !ok {
				return
			}

			delta := input.ComputeDelta(b.lastState, state)
			b.lastState = state

			if delta.IsEmpty() {
				continue
			}

			b.seq++
			deltaCount++

			// Delta messages drift if one is dropped; resync with
			// a full snapshot every so often.
			if deltaCount >= deltaCountSync {
				b.sendFull(state)
				deltaCount = 0
			} else {
				b.sendDelta(delta)
			}

		case ev, ok := <-b.events:
			if !ok {
				return
			}
			b.seq++
			b.sendHotkey(ev)

		case <-ticker.C:
			b.seq++
			b.sendFull(b.lastState)
		}
	}
}

// SendInitialState sends the current full state to a newly connected
// client.
func (b *Broadcaster) SendInitialState(c *Client) {
	b.seq++
	msg := NewFullMessage(b.seq, &b.lastState)
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling initial state: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (b *Broadcaster) sendFull(state input.FrameState) {
	msg := NewFullMessage(b.seq, &state)
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling full message: %v", err)
		return
	}
	b.hub.Broadcast(data)
}

func (b *Broadcaster) sendDelta(delta *input.DeltaChanges) {
	msg := NewDeltaMessage(b.seq, delta)
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling delta message: %v", err)
		return
	}
	b.hub.Broadcast(data)
}

func (b *Broadcaster) sendHotkey(ev input.HotkeyEvent) {
	msg := NewHotkeyMessage(b.seq, ev)
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling hotkey message: %v", err)
		return
	}
	b.hub.Broadcast(data)
}
