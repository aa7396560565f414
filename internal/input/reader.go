package input

import (
	"context"
	"sync"
	"time"

	"github.com/Atomic-Germ/snes9xGC/internal/adapter"
	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/mapping"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

const defaultPollInterval = 16 * time.Millisecond // ~60Hz

// ChannelConfig assigns one channel the console scheme the emulated
// machine expects on that port and the controller family driving it.
type ChannelConfig struct {
	Scheme snes.Scheme
	Family device.Family
}

// Hotkey is a named button combo checked each frame against a channel's
// held mask.
type Hotkey struct {
	Name  string
	Combo uint32
}

// Options configures a Reader.
type Options struct {
	Channels     [device.NumChannels]ChannelConfig
	Threshold    int16 // analog-to-digital threshold for the Pad scheme
	Deadzone     int16 // stick positions inside this radius read as centered
	Hotkeys      []Hotkey
	PollInterval time.Duration
	// Pump, when set, is called once per frame before scanning, for
	// device buses that need their event queue drained.
	Pump func()
}

// Reader runs the poll→normalize→edge pipeline once per frame and emits
// changed frame snapshots and hotkey events.
type Reader struct {
	norm       *Normalizer
	adapters   adapter.Set
	tracker    Tracker
	hotkeyPrev [device.NumChannels]uint32
	opts       Options

	state     FrameState
	prevState FrameState
	mu        sync.RWMutex

	changes chan FrameState
	events  chan HotkeyEvent
}

func NewReader(reg *mapping.Registry, adapters adapter.Set, opts Options) *Reader {
	if opts.PollInterval <= 0 {
		opts.PollInterval = defaultPollInterval
	}
	return &Reader{
		norm:     NewNormalizer(reg, adapters),
		adapters: adapters,
		opts:     opts,
		changes:  make(chan FrameState, 64),
		events:   make(chan HotkeyEvent, 16),
	}
}

// Changes returns the channel on which changed frame snapshots are sent.
func (r *Reader) Changes() <-chan FrameState {
	return r.changes
}

// Events returns the channel on which hotkey events are sent.
func (r *Reader) Events() <-chan HotkeyEvent {
	return r.events
}

// CurrentState returns a snapshot of the last polled frame.
func (r *Reader) CurrentState() FrameState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// SetChannel reassigns a channel's scheme and family. Returns false and
// changes nothing for an out-of-range channel or an invalid pair.
func (r *Reader) SetChannel(channel int, s snes.Scheme, f device.Family) bool {
	if channel < 0 || channel >= device.NumChannels || !s.Valid() || !f.Valid() {
		return false
	}
	r.mu.Lock()
	r.opts.Channels[channel] = ChannelConfig{Scheme: s, Family: f}
	r.mu.Unlock()
	return true
}

// Run polls frames until the context is cancelled. The loop owns all
// registry reads; rebuilds must happen before Run starts or from the
// same goroutine.
func (r *Reader) Run(ctx context.Context) {
	ticker := time.NewTicker(r.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Step()
		}
	}
}

// Step performs one full frame: pump the bus, scan every family, then
// normalize, fold in the stick, and advance edges per channel.
func (r *Reader) Step() {
	if r.opts.Pump != nil {
		r.opts.Pump()
	}

	var scanned [device.NumFamilies]bool
	for f, a := range r.adapters {
		if f.Valid() {
			scanned[f] = a.ScanPads()
		}
	}

	var frame FrameState
	for ch := 0; ch < device.NumChannels; ch++ {
		r.mu.RLock()
		cfg := r.opts.Channels[ch]
		r.mu.RUnlock()

		cs := ChannelState{
			Scheme: cfg.Scheme.String(),
			Family: cfg.Family.String(),
		}

		a := r.adapters[cfg.Family]
		connected := cfg.Family.Valid() && scanned[cfg.Family] &&
			a != nil && a.IsConnected()

		var raw, logical uint32
		if connected {
			raw = a.ButtonsHeld(ch)
			logical = r.norm.Decode(cfg.Scheme, cfg.Family, raw)

			if cfg.Scheme == snes.Pad {
				if src, ok := a.(adapter.StickSource); ok {
					x, y := src.Stick(ch)
					if InDeadzone(x, y, r.opts.Deadzone) {
						x, y = 0, 0
					}
					cs.StickX, cs.StickY = x, y
					logical |= StickToDigital(x, y, r.opts.Threshold)
				}
			}
		}

		delta, ok := r.tracker.Advance(ch, logical)
		if !ok {
			continue
		}

		// Hotkeys for GC-encoded devices bypass the registry through
		// the fixed cross-family table, so a user remap of the pad
		// row never moves the combo off its physical buttons.
		hotkeyHeld := logical
		if cfg.Family == device.GCPad {
			hotkeyHeld = RemapGCHeld(raw)
		}
		for _, hk := range r.opts.Hotkeys {
			if hk.Combo == 0 {
				continue
			}
			if ValidateCombo(hotkeyHeld, hk.Combo) && !ValidateCombo(r.hotkeyPrev[ch], hk.Combo) {
				r.emitEvent(HotkeyEvent{Name: hk.Name, Channel: ch})
			}
		}
		r.hotkeyPrev[ch] = hotkeyHeld

		cs.Connected = connected
		cs.Raw = raw
		cs.Held = logical
		cs.Pressed = delta.Pressed
		cs.Released = delta.Released
		frame.Channels[ch] = cs
	}

	r.mu.Lock()
	changed := !ComputeDelta(r.prevState, frame).IsEmpty()
	if changed {
		r.state = frame
		r.prevState = frame
	}
	r.mu.Unlock()

	if changed {
		r.emitState(frame)
	}
}

func (r *Reader) emitState(s FrameState) {
	select {
	case r.changes <- s:
	default:
		// Drop if the consumer is behind; the next frame supersedes it.
	}
}

func (r *Reader) emitEvent(ev HotkeyEvent) {
	select {
	case r.events <- ev:
	default:
	}
}
