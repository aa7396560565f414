package input

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/Atomic-Germ/snes9xGC/internal/adapter"
	"github.com/Atomic-Germ/snes9xGC/internal/device"
	"github.com/Atomic-Germ/snes9xGC/internal/mapping"
	"github.com/Atomic-Germ/snes9xGC/internal/snes"
)

// newTestReader wires a reader over a single fake GC pad adapter. The
// zero ChannelConfig already means a GameCube pad on a Pad port.
func newTestReader(fake *fakeAdapter, opts Options) *Reader {
	reg := mapping.NewRegistry()
	return NewReader(reg, adapter.Set{device.GCPad: fake}, opts)
}

func TestReaderStepEdges(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true}
	r := newTestReader(fake, Options{Threshold: 70})

	fake.held[0] = device.GCA
	r.Step()
	st := r.CurrentState()
	if st.Channels[0].Pressed != snes.ButtonA {
		t.Fatalf("frame 1: pressed = %#x, want %#x\n%s",
			st.Channels[0].Pressed, snes.ButtonA, spew.Sdump(st.Channels[0]))
	}

	// Held steady: edge clears.
	r.Step()
	st = r.CurrentState()
	if st.Channels[0].Pressed != 0 || st.Channels[0].Held != snes.ButtonA {
		t.Fatalf("frame 2: %s", spew.Sdump(st.Channels[0]))
	}

	fake.held[0] = 0
	r.Step()
	st = r.CurrentState()
	if st.Channels[0].Released != snes.ButtonA {
		t.Fatalf("frame 3: released = %#x, want %#x", st.Channels[0].Released, snes.ButtonA)
	}
}

func TestReaderScanFailureMeansDisconnected(t *testing.T) {
	fake := &fakeAdapter{scan: false, connected: true}
	fake.held[0] = device.GCA
	r := newTestReader(fake, Options{})

	r.Step()
	st := r.CurrentState()
	if st.Channels[0].Connected {
		t.Error("failed scan reported connected")
	}
	if st.Channels[0].Held != 0 || st.Channels[0].Raw != 0 {
		t.Errorf("failed scan leaked buttons: %s", spew.Sdump(st.Channels[0]))
	}
}

func TestReaderStickFoldsIntoDirections(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true, x: -90, y: 0}
	r := newTestReader(fake, Options{Threshold: 70})

	r.Step()
	st := r.CurrentState()
	if st.Channels[0].Held&snes.ButtonLeft == 0 {
		t.Errorf("stick left not folded in: held = %#x", st.Channels[0].Held)
	}

	// Inside the threshold nothing is added.
	fake.x = -50
	r.Step()
	st = r.CurrentState()
	if st.Channels[0].Held&snes.DirectionMask != 0 {
		t.Errorf("sub-threshold stick produced directions: %#x", st.Channels[0].Held)
	}
}

func TestReaderStickDeadzoneZeroesAxes(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true, x: 30, y: -25}
	r := newTestReader(fake, Options{Threshold: 20, Deadzone: 50})

	r.Step()
	st := r.CurrentState()
	if st.Channels[0].StickX != 0 || st.Channels[0].StickY != 0 {
		t.Errorf("stick inside deadzone reported as (%d, %d), want (0, 0)",
			st.Channels[0].StickX, st.Channels[0].StickY)
	}
	if st.Channels[0].Held&snes.DirectionMask != 0 {
		t.Errorf("stick inside deadzone produced directions: %#x", st.Channels[0].Held)
	}

	// Outside the deadzone the axes pass through and fold again.
	fake.x = 60
	r.Step()
	st = r.CurrentState()
	if st.Channels[0].StickX != 60 {
		t.Errorf("stick outside deadzone reported as %d, want 60", st.Channels[0].StickX)
	}
	if st.Channels[0].Held&snes.ButtonRight == 0 {
		t.Errorf("stick outside deadzone not folded in: held = %#x", st.Channels[0].Held)
	}
}

func TestReaderStickIgnoredForPointerSchemes(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true, x: 120, y: 120}
	var opts Options
	opts.Threshold = 70
	opts.Channels[0] = ChannelConfig{Scheme: snes.Mouse, Family: device.GCPad}
	r := newTestReader(fake, opts)

	r.Step()
	st := r.CurrentState()
	if st.Channels[0].Held != 0 {
		t.Errorf("mouse scheme picked up stick directions: %#x", st.Channels[0].Held)
	}
}

func TestReaderHotkeyFiresOnceWhileHeld(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true}
	r := newTestReader(fake, Options{
		Hotkeys: []Hotkey{{Name: "menu", Combo: snes.ButtonL | snes.ButtonR | snes.ButtonStart}},
	})

	fake.held[0] = device.GCTriggerL | device.GCTriggerR | device.GCStart
	r.Step()

	select {
	case ev := <-r.Events():
		if ev.Name != "menu" || ev.Channel != 0 {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("hotkey did not fire")
	}

	// Still held: no second event.
	r.Step()
	select {
	case ev := <-r.Events():
		t.Fatalf("hotkey fired again while held: %+v", ev)
	default:
	}

	// Release and press again: fires again.
	fake.held[0] = 0
	r.Step()
	fake.held[0] = device.GCTriggerL | device.GCTriggerR | device.GCStart
	r.Step()
	select {
	case <-r.Events():
	default:
		t.Fatal("hotkey did not re-fire after release")
	}
}

func TestReaderHotkeySurvivesUserRemap(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true}
	reg := mapping.NewRegistry()
	// User moves L and R off the triggers entirely.
	reg.SetEntry(snes.Pad, device.GCPad, 4, device.GCX)
	reg.SetEntry(snes.Pad, device.GCPad, 5, device.GCY)
	r := NewReader(reg, adapter.Set{device.GCPad: fake}, Options{
		Hotkeys: []Hotkey{{Name: "menu", Combo: snes.ButtonL | snes.ButtonR | snes.ButtonStart}},
	})

	fake.held[0] = device.GCTriggerL | device.GCTriggerR | device.GCStart
	r.Step()

	select {
	case ev := <-r.Events():
		if ev.Name != "menu" {
			t.Fatalf("unexpected event: %+v", ev)
		}
	default:
		t.Fatal("hotkey lost to a pad-row remap")
	}
}

func TestReaderEmitsOnlyOnChange(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true}
	r := newTestReader(fake, Options{})

	fake.held[1] = device.GCB
	r.Step()
	select {
	case <-r.Changes():
	default:
		t.Fatal("no snapshot emitted on change")
	}

	// Same frame again: pressed clears, so one more change, then quiet.
	r.Step()
	select {
	case <-r.Changes():
	default:
		t.Fatal("edge decay should emit once")
	}
	r.Step()
	select {
	case st := <-r.Changes():
		t.Fatalf("steady state emitted: %s", spew.Sdump(st))
	default:
	}
}

func TestReaderSetChannel(t *testing.T) {
	fake := &fakeAdapter{scan: true, connected: true}
	r := newTestReader(fake, Options{})

	if r.SetChannel(5, snes.Pad, device.GCPad) {
		t.Error("out-of-range channel accepted")
	}
	if r.SetChannel(1, snes.SchemeAll, device.GCPad) {
		t.Error("ALL sentinel accepted as channel scheme")
	}
	if !r.SetChannel(1, snes.Justifier, device.GCPad) {
		t.Fatal("valid reassignment rejected")
	}

	fake.held[1] = device.GCB // justifier slot 0 (Fire)
	r.Step()
	st := r.CurrentState()
	if st.Channels[1].Scheme != "justifier" {
		t.Errorf("scheme = %q, want justifier", st.Channels[1].Scheme)
	}
	if st.Channels[1].Held != 1<<0 {
		t.Errorf("justifier fire mask = %#x, want 0x1", st.Channels[1].Held)
	}
}
